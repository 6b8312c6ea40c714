package correlate

import "fmt"

// InvalidInputError reports a precondition failure on the inputs:
// a missing or unreadable file, a malformed option value, or a
// template that does not fit inside the search image.
type InvalidInputError struct {
	Msg   string
	Cause error
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Msg, e.Cause)
	}
	return "invalid input: " + e.Msg
}

// Unwrap returns the underlying error
func (e *InvalidInputError) Unwrap() error { return e.Cause }

// NewInvalidInput creates an InvalidInputError with a formatted message.
func NewInvalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedEnvironmentError reports that the execution environment
// lacks a required numeric or transform capability, detected by the
// startup probe.
type UnsupportedEnvironmentError struct {
	Msg   string
	Cause error
}

// Error implements the error interface
func (e *UnsupportedEnvironmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported environment: %s: %v", e.Msg, e.Cause)
	}
	return "unsupported environment: " + e.Msg
}

// Unwrap returns the underlying error
func (e *UnsupportedEnvironmentError) Unwrap() error { return e.Cause }

// ComputationError reports a failure inside the correlation itself,
// such as degenerate template statistics making the score undefined.
type ComputationError struct {
	Msg   string
	Cause error
}

// Error implements the error interface
func (e *ComputationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("computation failed: %s: %v", e.Msg, e.Cause)
	}
	return "computation failed: " + e.Msg
}

// Unwrap returns the underlying error
func (e *ComputationError) Unwrap() error { return e.Cause }
