package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DrawMatch returns a copy of img with an unfilled 1-pixel rectangle
// outline marking the region from (x, y) to (x+w, y+h) in the given
// stroke color. The input image is not modified.
func DrawMatch(img image.Image, x, y, w, h int, stroke color.Color) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	drawRect(out, x, y, x+w, y+h, stroke)
	return out
}

// drawRect draws an unfilled rectangle outline clipped to dst.
// (x1, y1) is inclusive, (x2, y2) exclusive.
func drawRect(dst *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > w {
		x2 = w
	}
	if y2 > h {
		y2 = h
	}

	for x := x1; x < x2; x++ {
		if inBounds(x, y1, w, h) {
			dst.Set(x, y1, c)
		}
		if inBounds(x, y2-1, w, h) {
			dst.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if inBounds(x1, y, w, h) {
			dst.Set(x1, y, c)
		}
		if inBounds(x2-1, y, w, h) {
			dst.Set(x2-1, y, c)
		}
	}
}

func inBounds(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}

// OverlayMatch returns a half-transparent copy of the search image
// with the opaque template composited at (x, y). The washed-out
// background keeps the match region visually prominent.
func OverlayMatch(search, template image.Image, x, y int) *image.RGBA {
	sb := search.Bounds()
	white := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Draw(white, white.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	out := blend.Opacity(white, search, 0.5)

	tb := template.Bounds()
	rect := image.Rect(x, y, x+tb.Dx(), y+tb.Dy())
	draw.Draw(out, rect, template, tb.Min, draw.Src)
	return out
}

// namedColors maps a few common stroke color names to hex specs.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
}

// ParseColor interprets a stroke color specification: either a
// "#RRGGBB" hex string or one of a small set of color names.
func ParseColor(spec string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	// The underlying parser also accepts other hex shapes; enforce
	// the #RRGGBB contract before delegating.
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q: want a color name or #RRGGBB", spec)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", spec, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
