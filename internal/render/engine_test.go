package render

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name           string
		fw, fh, tw, th int
		want           Viewport
	}{
		{"wide frame", 1280, 720, 80, 24, Viewport{OffsetX: 0, OffsetY: 0, ViewW: 80, ViewH: 23}},
		{"square frame", 100, 100, 80, 24, Viewport{OffsetX: 16, OffsetY: 0, ViewW: 48, ViewH: 24}},
		{"exact", 4, 4, 4, 2, Viewport{ViewW: 4, ViewH: 2}},
		{"empty terminal", 100, 100, 0, 0, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitViewport(tt.fw, tt.fh, tt.tw, tt.th); got != tt.want {
				t.Errorf("FitViewport = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPixelOver(t *testing.T) {
	bd := P(10, 20, 30)
	if got := PixelOver(color.RGBA{}, bd); got != bd {
		t.Errorf("transparent = %+v, want backdrop", got)
	}
	if got := PixelOver(color.RGBA{255, 0, 0, 255}, bd); got != P(255, 0, 0) {
		t.Errorf("opaque = %+v, want red", got)
	}
}

func solidFrame(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Fill(img, c)
	return img
}

func TestEngineRenderDiffs(t *testing.T) {
	e := NewEngine(4, 2)
	red := solidFrame(4, 4, color.RGBA{255, 0, 0, 255})

	out := e.Render(red, 4, 2)
	if !strings.HasPrefix(out, CSI+"1;1H") {
		t.Errorf("first frame does not start at the origin: %q", out)
	}
	if n := strings.Count(out, string(HalfBlock)); n != 8 {
		t.Errorf("first frame has %d half blocks, want 8", n)
	}
	if !strings.Contains(out, "38;2;255;0;0;48;2;255;0;0m") {
		t.Errorf("first frame lacks red cells: %q", out)
	}
	if !strings.HasSuffix(out, Reset) {
		t.Error("output does not reset attributes")
	}

	if out := e.Render(red, 4, 2); out != "" {
		t.Errorf("unchanged frame emitted %q", out)
	}

	// one changed pixel touches one cell
	red.SetRGBA(3, 3, color.RGBA{0, 0, 255, 255})
	out = e.Render(red, 4, 2)
	if n := strings.Count(out, string(HalfBlock)); n != 1 {
		t.Errorf("changed frame has %d half blocks, want 1: %q", n, out)
	}
	if !strings.HasPrefix(out, CSI+"2;4H") {
		t.Errorf("changed cell not addressed at row 2 col 4: %q", out)
	}
}

func TestEngineResizeRedraws(t *testing.T) {
	e := NewEngine(4, 2)
	f := solidFrame(4, 4, color.RGBA{0, 255, 0, 255})
	e.Render(f, 4, 2)

	out := e.Render(f, 6, 2)
	// 4 frame cells plus 2 backdrop cells per row
	if n := strings.Count(out, string(HalfBlock)); n != 8 {
		t.Errorf("resized frame has %d half blocks, want 8", n)
	}
	if n := strings.Count(out, " "); n != 4 {
		t.Errorf("resized frame has %d backdrop cells, want 4", n)
	}
}
