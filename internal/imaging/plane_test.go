package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func createInMemoryImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestToPlane_Luminance(t *testing.T) {
	tests := []struct {
		name string
		c    color.NRGBA
		want float64
	}{
		{"black", color.NRGBA{0, 0, 0, 255}, 0},
		{"white", color.NRGBA{255, 255, 255, 255}, 1},
		{"red", color.NRGBA{255, 0, 0, 255}, 0.299},
		{"green", color.NRGBA{0, 255, 0, 255}, 0.587},
		{"blue", color.NRGBA{0, 0, 255, 255}, 0.114},
		{"mid gray", color.NRGBA{128, 128, 128, 255}, 128.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(3, 3, tt.c)
			p := ToPlane(img)

			if p.W != 3 || p.H != 3 {
				t.Fatalf("plane size: got %dx%d, want 3x3", p.W, p.H)
			}
			if got := p.At(1, 1); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("luminance: got %.6f, want %.6f", got, tt.want)
			}
		})
	}
}

func TestToPlane_DiscardsAlpha(t *testing.T) {
	// A fully transparent red pixel must contribute the luminance of
	// its color channels, not premultiplied black.
	img := createInMemoryImage(2, 2, color.NRGBA{255, 0, 0, 0})
	p := ToPlane(img)

	if got := p.At(0, 0); math.Abs(got-0.299) > 1e-9 {
		t.Errorf("transparent red luminance: got %.6f, want 0.299", got)
	}
}

// hideNRGBA masks the concrete type so ToPlane takes its generic path.
type hideNRGBA struct {
	image.Image
}

func TestToPlane_GenericPathDiscardsAlpha(t *testing.T) {
	img := createInMemoryImage(2, 2, color.NRGBA{255, 0, 0, 0})
	p := ToPlane(hideNRGBA{img})

	if got := p.At(1, 1); math.Abs(got-0.299) > 1e-9 {
		t.Errorf("transparent red via generic path: got %.6f, want 0.299", got)
	}
}

func TestToPlane_NonNRGBASource(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})

	p := ToPlane(img)
	if got := p.At(0, 0); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("white gray pixel: got %.6f, want 1.0", got)
	}
	if got := p.At(1, 1); got != 0 {
		t.Errorf("black gray pixel: got %.6f, want 0", got)
	}
}

func TestPlaneStats(t *testing.T) {
	p := NewPlane(2, 2)
	copy(p.Pix, []float64{1, 2, 3, 4})

	if got := p.Mean(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Mean: got %v, want 2.5", got)
	}
	// Population std of {1,2,3,4} is sqrt(1.25).
	if got := p.StdDev(); math.Abs(got-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("StdDev: got %v, want %v", got, math.Sqrt(1.25))
	}
}

func TestPlaneMax_TieBreaksRowMajor(t *testing.T) {
	p := NewPlane(3, 3)
	p.Set(2, 0, 0.9)
	p.Set(1, 1, 0.9) // same value, later in row-major order
	p.Set(0, 2, 0.5)

	x, y, v := p.Max()
	if x != 2 || y != 0 {
		t.Errorf("Max location: got (%d,%d), want (2,0)", x, y)
	}
	if v != 0.9 {
		t.Errorf("Max value: got %v, want 0.9", v)
	}
}

func TestPlaneMinMax(t *testing.T) {
	p := NewPlane(2, 2)
	copy(p.Pix, []float64{-0.5, 0.25, 0.75, 0})

	lo, hi := p.MinMax()
	if lo != -0.5 || hi != 0.75 {
		t.Errorf("MinMax: got (%v, %v), want (-0.5, 0.75)", lo, hi)
	}
}
