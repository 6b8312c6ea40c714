package imaging

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RenderOptions controls how a correlation surface is turned into an
// output image.
type RenderOptions struct {
	// Stretch rescales the surface so its minimum maps to the bottom
	// and its maximum to the top of the output range (auto-level).
	Stretch bool

	// Pseudocolor replaces the grayscale ramp with a fixed 7-stop
	// gradient (violet through red) looked up over the normalized
	// sample value.
	Pseudocolor bool
}

// Render converts a correlation surface to an encodable image.
//
// Without options, samples in [-1, 1] map linearly onto 16-bit gray,
// preserving the full score precision (values outside the nominal
// range are clamped). With Stretch, the observed [min, max] of the
// surface maps onto the full output range instead. With Pseudocolor,
// the normalized value indexes the gradient and the output is RGBA.
func Render(surface *Plane, opts RenderOptions) image.Image {
	normalize := func(v float64) float64 {
		return clamp01((v + 1) / 2)
	}
	if opts.Stretch {
		lo, hi := surface.MinMax()
		if hi > lo {
			span := hi - lo
			normalize = func(v float64) float64 {
				return clamp01((v - lo) / span)
			}
		} else {
			// Constant surface: everything maps to the top of the range.
			normalize = func(float64) float64 { return 1 }
		}
	}

	bounds := image.Rect(0, 0, surface.W, surface.H)

	if opts.Pseudocolor {
		out := image.NewNRGBA(bounds)
		for y := 0; y < surface.H; y++ {
			for x := 0; x < surface.W; x++ {
				c := gradientAt(normalize(surface.At(x, y)))
				r, g, b := c.RGB255()
				out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
			}
		}
		return out
	}

	out := image.NewGray16(bounds)
	for y := 0; y < surface.H; y++ {
		for x := 0; x < surface.W; x++ {
			v := normalize(surface.At(x, y))
			out.SetGray16(x, y, color.Gray16{Y: uint16(v*65535 + 0.5)})
		}
	}
	return out
}

// gradientStops is the 7-stop pseudocolor ramp, violet at 0 through
// red at 1, with stops evenly spaced.
var gradientStops = []struct {
	pos float64
	col colorful.Color
}{
	{0.0 / 6, mustHex("#8b00ff")}, // violet
	{1.0 / 6, mustHex("#0000ff")}, // blue
	{2.0 / 6, mustHex("#00ffff")}, // cyan
	{3.0 / 6, mustHex("#00ff00")}, // green
	{4.0 / 6, mustHex("#ffff00")}, // yellow
	{5.0 / 6, mustHex("#ff7f00")}, // orange
	{6.0 / 6, mustHex("#ff0000")}, // red
}

// gradientAt looks up the gradient color for t in [0, 1], blending
// between adjacent stops in HCL space for perceptually even ramps.
func gradientAt(t float64) colorful.Color {
	t = clamp01(t)
	for i := 0; i < len(gradientStops)-1; i++ {
		s1 := gradientStops[i]
		s2 := gradientStops[i+1]
		if t >= s1.pos && t <= s2.pos {
			frac := (t - s1.pos) / (s2.pos - s1.pos)
			return s1.col.BlendHcl(s2.col, frac).Clamped()
		}
	}
	return gradientStops[len(gradientStops)-1].col
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad gradient stop: " + s)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
