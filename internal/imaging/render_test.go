package imaging

import (
	"image"
	"testing"
)

func TestRender_Gray16Mapping(t *testing.T) {
	p := NewPlane(3, 1)
	copy(p.Pix, []float64{-1, 0, 1})

	out := Render(p, RenderOptions{})
	gray, ok := out.(*image.Gray16)
	if !ok {
		t.Fatalf("expected *image.Gray16, got %T", out)
	}

	tests := []struct {
		x    int
		want uint16
	}{
		{0, 0},
		{1, 32768},
		{2, 65535},
	}
	for _, tt := range tests {
		if got := gray.Gray16At(tt.x, 0).Y; got != tt.want {
			t.Errorf("sample at x=%d: got %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestRender_ClampsOutOfRange(t *testing.T) {
	p := NewPlane(2, 1)
	copy(p.Pix, []float64{-1.5, 1.5})

	gray := Render(p, RenderOptions{}).(*image.Gray16)
	if got := gray.Gray16At(0, 0).Y; got != 0 {
		t.Errorf("below-range sample: got %d, want 0", got)
	}
	if got := gray.Gray16At(1, 0).Y; got != 65535 {
		t.Errorf("above-range sample: got %d, want 65535", got)
	}
}

func TestRender_StretchMapsExtremes(t *testing.T) {
	p := NewPlane(3, 1)
	copy(p.Pix, []float64{0.2, 0.5, 0.8})

	gray := Render(p, RenderOptions{Stretch: true}).(*image.Gray16)

	if got := gray.Gray16At(0, 0).Y; got != 0 {
		t.Errorf("minimum sample: got %d, want 0", got)
	}
	if got := gray.Gray16At(2, 0).Y; got != 65535 {
		t.Errorf("maximum sample: got %d, want 65535 (top of range)", got)
	}
	// Midpoint of [0.2, 0.8] lands mid-range.
	if got := gray.Gray16At(1, 0).Y; got < 32000 || got > 33500 {
		t.Errorf("middle sample: got %d, want ~32768", got)
	}
}

func TestRender_StretchDisabledLeavesSurfaceUnscaled(t *testing.T) {
	p := NewPlane(2, 1)
	copy(p.Pix, []float64{0.2, 0.8})

	gray := Render(p, RenderOptions{}).(*image.Gray16)

	// (v+1)/2 * 65535, not the stretched extremes.
	for i, v := range p.Pix {
		want := uint16((v+1)/2*65535 + 0.5)
		if got := gray.Gray16At(i, 0).Y; got != want {
			t.Errorf("unstretched sample %d: got %d, want %d", i, got, want)
		}
	}
}

func TestRender_PseudocolorEndpoints(t *testing.T) {
	p := NewPlane(2, 1)
	copy(p.Pix, []float64{-1, 1})

	out := Render(p, RenderOptions{Pseudocolor: true})
	rgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}

	// Bottom of the range is the violet stop, top is the red stop.
	// Allow off-by-one from colorspace round-trips.
	lo := rgba.NRGBAAt(0, 0)
	if absInt(int(lo.R)-0x8b) > 1 || absInt(int(lo.G)) > 1 || absInt(int(lo.B)-0xff) > 1 {
		t.Errorf("low endpoint: got #%02X%02X%02X, want ~#8B00FF", lo.R, lo.G, lo.B)
	}
	hi := rgba.NRGBAAt(1, 0)
	if absInt(int(hi.R)-0xff) > 1 || absInt(int(hi.G)) > 1 || absInt(int(hi.B)) > 1 {
		t.Errorf("high endpoint: got #%02X%02X%02X, want ~#FF0000", hi.R, hi.G, hi.B)
	}
}

func TestGradientAt_StopPositions(t *testing.T) {
	for i, stop := range gradientStops {
		got := gradientAt(stop.pos)
		r1, g1, b1 := got.RGB255()
		r2, g2, b2 := stop.col.RGB255()
		if absInt(int(r1)-int(r2)) > 1 || absInt(int(g1)-int(g2)) > 1 || absInt(int(b1)-int(b2)) > 1 {
			t.Errorf("stop %d: got #%02X%02X%02X, want #%02X%02X%02X", i, r1, g1, b1, r2, g2, b2)
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
