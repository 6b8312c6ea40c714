// Package correlate implements normalized cross-correlation template
// matching in the frequency domain.
//
// Given a template plane and a larger search plane, Correlate produces
// a correlation surface the size of the search plane where each sample
// is the correlation coefficient between the template and the search
// region anchored at that coordinate, then locates the best match.
//
// # Algorithm Overview
//
// The surface is computed as three circular cross-correlations, each
// evaluated as an elementwise conjugate multiply in the frequency
// domain followed by an inverse transform:
//
//  1. Zero-mean the template and pad it (bottom/right) to the search
//     dimensions, together with a constant ones window of the
//     template's size.
//  2. Correlate the zero-meaned template against the search plane
//     (the covariance numerator), and the ones window against the
//     search plane and its square (the per-window sum and sum of
//     squares).
//  3. Combine elementwise: divide the numerator by the template
//     standard deviation times the per-window standard deviation
//     term. Windows with no variation have no defined score and
//     yield 0.
//
// Because the transforms are circular, anchors within the valid
// region (x <= W-tw, y <= H-th) are exact; anchors nearer the right
// or bottom edge correlate against wrapped content and are reported
// as computed.
//
// # Scores
//
// Surface samples are true correlation coefficients: 1.0 is a perfect
// match up to linear brightness and contrast changes, 0 is no
// correlation, -1.0 a perfect inversion. Scores are invariant to
// adding a constant to every pixel of the search image.
//
// # Error Taxonomy
//
//   - InvalidInputError: empty inputs, or a template exceeding the
//     search image in either dimension.
//   - UnsupportedEnvironmentError: the transform backend failed its
//     startup capability probe.
//   - ComputationError: degenerate statistics, e.g. a constant
//     template whose standard deviation is zero.
package correlate
