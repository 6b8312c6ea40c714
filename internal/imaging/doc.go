// Package imaging provides the image primitives used by the correlator.
//
// The central type is Plane, a single-channel grayscale buffer with
// float64 samples. Input images of any color model are reduced to a
// Plane by luminance conversion (alpha is discarded); the correlation
// surface produced by the correlator is also a Plane, with samples
// approximating the range [-1, 1].
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner: X increases rightward, Y increases downward. Plane samples
// are stored row-major.
//
// # Rendering
//
// Render turns a correlation surface into an encodable image. The
// default output is 16-bit grayscale so that scores spanning [-1, 1]
// keep their full precision; optional post-processing stretches the
// surface to the full output range and/or applies a fixed 7-stop
// pseudocolor gradient.
//
// # Match Annotation
//
// DrawMatch and OverlayMatch produce annotated copies of a search
// image marking a match region. They never mutate their inputs.
//
// # Error Handling
//
// Functions return errors for unreadable or undecodable files and for
// malformed color specifications. Pure buffer operations do not fail.
package imaging
