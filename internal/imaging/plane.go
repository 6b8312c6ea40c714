package imaging

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Plane is a single-channel grayscale image with float64 samples
// stored in row-major order. A plane converted from a decoded image
// holds values in [0, 1]; a correlation surface holds values
// approximating [-1, 1].
type Plane struct {
	W, H int
	Pix  []float64
}

// NewPlane allocates a zeroed plane of the given dimensions.
func NewPlane(w, h int) *Plane {
	return &Plane{W: w, H: h, Pix: make([]float64, w*h)}
}

// At returns the sample at (x, y). Bounds are not checked.
func (p *Plane) At(x, y int) float64 { return p.Pix[y*p.W+x] }

// Set stores a sample at (x, y). Bounds are not checked.
func (p *Plane) Set(x, y int, v float64) { p.Pix[y*p.W+x] = v }

// ToPlane converts an image to a grayscale plane.
//
// Luminance uses the ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B)
// over 8-bit channel values normalized to [0, 1]. The alpha channel is
// discarded: a fully transparent pixel contributes the luminance of
// its color channels alone.
func ToPlane(img image.Image) *Plane {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	p := NewPlane(width, height)

	// NRGBA fast path (the decoder's native type): read the color
	// channels directly so alpha is discarded rather than
	// premultiplied in.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := src.Pix[off : off+width*4]
			for x := 0; x < width; x++ {
				rf := float64(row[x*4]) / 255.0
				gf := float64(row[x*4+1]) / 255.0
				bf := float64(row[x*4+2]) / 255.0
				p.Pix[y*width+x] = 0.299*rf + 0.587*gf + 0.114*bf
			}
		}
		return p
	}

	// Generic path: convert through the non-premultiplied model so
	// alpha is dropped here too, not folded into the color channels.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			rf := float64(c.R) / 255.0
			gf := float64(c.G) / 255.0
			bf := float64(c.B) / 255.0
			p.Pix[y*width+x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}
	return p
}

// Mean returns the average sample value.
func (p *Plane) Mean() float64 {
	return stat.Mean(p.Pix, nil)
}

// StdDev returns the population standard deviation of the samples.
// The population form (divide by N, not N-1) is what the correlation
// normalization requires.
func (p *Plane) StdDev() float64 {
	return stat.PopStdDev(p.Pix, nil)
}

// Max returns the maximum sample and its coordinate. Ties resolve to
// the first occurrence in row-major scan order.
func (p *Plane) Max() (x, y int, v float64) {
	v = math.Inf(-1)
	for i, s := range p.Pix {
		if s > v {
			v = s
			x = i % p.W
			y = i / p.W
		}
	}
	return x, y, v
}

// MinMax returns the minimum and maximum sample values.
func (p *Plane) MinMax() (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, s := range p.Pix {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}
