package correlate

import (
	"math"

	"corrmatch/internal/imaging"
)

// Match is the best-scoring alignment of the template within the
// search image: the top-left anchor coordinate plus the correlation
// coefficient there.
type Match struct {
	X     int
	Y     int
	Score float64
}

// radicandFloor guards the per-window variance term against FFT
// rounding noise: values at or below it are treated as a flat window
// with no defined score rather than dividing by a near-zero.
const radicandFloor = 1e-12

// Correlate computes the normalized cross-correlation of template
// against search and locates the best match.
//
// The returned surface has exactly the search dimensions; each sample
// is the correlation coefficient between the template and the search
// window anchored at that coordinate, clamped to [-1, 1]. Windows
// with no variation score 0. The Match is the arg-max of the surface
// with ties resolved to the first occurrence in row-major order.
//
// Neither input plane is modified.
//
// # Errors
//
//   - *InvalidInputError if either plane is empty or the template
//     exceeds the search plane in either dimension
//   - *ComputationError if the template has zero standard deviation
func Correlate(template, search *imaging.Plane) (*imaging.Plane, Match, error) {
	if template.W <= 0 || template.H <= 0 {
		return nil, Match{}, NewInvalidInput("template is empty (%dx%d)", template.W, template.H)
	}
	if search.W <= 0 || search.H <= 0 {
		return nil, Match{}, NewInvalidInput("search image is empty (%dx%d)", search.W, search.H)
	}
	if template.W > search.W {
		return nil, Match{}, NewInvalidInput("template width %d exceeds search width %d", template.W, search.W)
	}
	if template.H > search.H {
		return nil, Match{}, NewInvalidInput("template height %d exceeds search height %d", template.H, search.H)
	}

	n := float64(template.W * template.H)
	mean := template.Mean()
	std := template.StdDev()
	if std == 0 {
		return nil, Match{}, &ComputationError{Msg: "template has zero standard deviation, correlation is undefined"}
	}

	w, h := search.W, search.H
	ft := newTransformer(w, h)

	// Four signals in the frequency domain: the search plane, its
	// square, the zero-meaned template and a ones window, the latter
	// two zero-padded bottom/right to the search dimensions.
	searchF := toComplex(search.Pix)
	searchSqF := make([]complex128, w*h)
	for i, v := range search.Pix {
		searchSqF[i] = complex(v*v, 0)
	}
	tmplF := make([]complex128, w*h)
	onesF := make([]complex128, w*h)
	for y := 0; y < template.H; y++ {
		for x := 0; x < template.W; x++ {
			tmplF[y*w+x] = complex(template.Pix[y*template.W+x]-mean, 0)
			onesF[y*w+x] = 1
		}
	}
	ft.forward(searchF)
	ft.forward(searchSqF)
	ft.forward(tmplF)
	ft.forward(onesF)

	termA := ft.correlate(tmplF, searchF)   // covariance numerator per window
	sumW := ft.correlate(onesF, searchF)    // per-window sum
	sumW2 := ft.correlate(onesF, searchSqF) // per-window sum of squares

	// surface = termA / (std * sqrt(N*sumW2 - sumW^2)). The radicand
	// is N^2 times the window variance; flat windows score 0.
	surface := imaging.NewPlane(w, h)
	for i := range surface.Pix {
		radicand := n*sumW2[i] - sumW[i]*sumW[i]
		if radicand <= radicandFloor {
			continue
		}
		score := termA[i] / (std * math.Sqrt(radicand))
		if score > 1 {
			score = 1
		} else if score < -1 {
			score = -1
		}
		surface.Pix[i] = score
	}

	mx, my, best := surface.Max()
	return surface, Match{X: mx, Y: my, Score: best}, nil
}
