package grid

import (
	"errors"
	"testing"
)

// glyphs returns the glyph of every cell, "" for cells still blank.
func glyphs(g *Grid) map[[2]int]string {
	out := map[[2]int]string{}
	g.Each(func(x, y int, c Cell) {
		if c != Blank() {
			out[[2]int{x, y}] = c.Glyph
		}
	})
	return out
}

func expectGlyphs(t *testing.T, g *Grid, want map[[2]int]string) {
	t.Helper()
	got := glyphs(g)
	for pos, w := range want {
		if got[pos] != w {
			t.Errorf("cell (%d,%d) = %q, want %q", pos[0], pos[1], got[pos], w)
		}
	}
	for pos, v := range got {
		if _, ok := want[pos]; !ok {
			t.Errorf("unexpected cell (%d,%d) = %q", pos[0], pos[1], v)
		}
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		x, y  int
		msg   string
		opt   TextOptions
		cells map[[2]int]string
	}{
		{
			name: "left clamp short message",
			w:    10, h: 10, x: 0, y: 0, msg: "hi",
			opt:   TextOptions{Mode: WrapClamp, Box: Box{0, 0, 5, 5}},
			cells: map[[2]int]string{{0, 0}: "h", {1, 0}: "i"},
		},
		{
			name: "right aligned start column",
			w:    10, h: 10, x: 4, y: 0, msg: "abc",
			opt:   TextOptions{Align: AlignRight, Box: Box{0, 0, 5, 5}},
			cells: map[[2]int]string{{2, 0}: "a", {3, 0}: "b", {4, 0}: "c"},
		},
		{
			name: "mid aligned",
			w:    10, h: 3, x: 5, y: 1, msg: "abcd",
			opt:   TextOptions{Align: AlignMid},
			cells: map[[2]int]string{{3, 1}: "a", {4, 1}: "b", {5, 1}: "c", {6, 1}: "d"},
		},
		{
			name: "auto wrap at box edge",
			w:    10, h: 10, x: 3, y: 0, msg: "abcdefg",
			opt: TextOptions{Box: Box{0, 0, 5, 5}},
			cells: map[[2]int]string{
				{3, 0}: "a", {4, 0}: "b",
				{0, 1}: "c", {1, 1}: "d", {2, 1}: "e", {3, 1}: "f", {4, 1}: "g",
			},
		},
		{
			name: "auto wrap stops below box",
			w:    6, h: 6, x: 0, y: 0, msg: "abcdefgh",
			opt: TextOptions{Box: Box{0, 0, 3, 2}},
			cells: map[[2]int]string{
				{0, 0}: "a", {1, 0}: "b", {2, 0}: "c",
				{0, 1}: "d", {1, 1}: "e", {2, 1}: "f",
			},
		},
		{
			name: "clamp drops overflow on the same row",
			w:    10, h: 10, x: 3, y: 0, msg: "abcdefg",
			opt:   TextOptions{Mode: WrapClamp, Box: Box{0, 0, 5, 3}},
			cells: map[[2]int]string{{3, 0}: "a", {4, 0}: "b"},
		},
		{
			name: "clamp never writes the last box row",
			w:    10, h: 10, x: 0, y: 2, msg: "abc",
			opt:   TextOptions{Mode: WrapClamp, Box: Box{0, 0, 5, 3}},
			cells: map[[2]int]string{},
		},
		{
			name: "start left of box wraps backwards",
			w:    10, h: 10, x: 3, y: 2, msg: "abcdef",
			opt: TextOptions{Align: AlignMid, Box: Box{2, 0, 4, 5}},
			cells: map[[2]int]string{
				{4, 1}: "a", {5, 1}: "b",
				{2, 2}: "c", {3, 2}: "d", {4, 2}: "e", {5, 2}: "f",
			},
		},
		{
			name: "content above box is discarded",
			w:    10, h: 10, x: -2, y: 1, msg: "abcdef",
			opt: TextOptions{Box: Box{0, 1, 4, 3}},
			cells: map[[2]int]string{
				{0, 1}: "c", {1, 1}: "d", {2, 1}: "e", {3, 1}: "f",
			},
		},
		{
			name: "escape tokens take one cell each",
			w:    5, h: 1, x: 0, y: 0, msg: "/ULcorner/Hbar/URcorner",
			opt:   TextOptions{},
			cells: map[[2]int]string{{0, 0}: "/ULcorner", {1, 0}: "/Hbar", {2, 0}: "/URcorner"},
		},
		{
			name: "box wider than grid clips",
			w:    3, h: 2, x: 1, y: 0, msg: "abcd",
			opt:   TextOptions{Box: Box{0, 0, 8, 4}},
			cells: map[[2]int]string{{1, 0}: "a", {2, 0}: "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.w, tt.h)
			if err := g.Place(tt.x, tt.y, tt.msg, tt.opt); err != nil {
				t.Fatalf("Place: %v", err)
			}
			expectGlyphs(t, g, tt.cells)
		})
	}
}

func TestPlaceColours(t *testing.T) {
	g := New(4, 1)
	g.Place(0, 0, "ab", TextOptions{Fg: "red", Bg: "navy"})
	c, _ := g.Cell(1, 0)
	if c.Fg != "red" || c.Bg != "navy" {
		t.Errorf("cell colours = %s/%s, want red/navy", c.Fg, c.Bg)
	}
	g.Place(2, 0, "c", TextOptions{})
	c, _ = g.Cell(2, 0)
	if c.Fg != DefaultFg || c.Bg != DefaultBg {
		t.Errorf("default colours = %s/%s", c.Fg, c.Bg)
	}
}

func TestPlaceInvalidAlignment(t *testing.T) {
	g := New(4, 4)
	err := g.Place(0, 0, "x", TextOptions{Align: "centre"})
	var ae *InvalidAlignmentError
	if !errors.As(err, &ae) {
		t.Fatalf("expected InvalidAlignmentError, got %v", err)
	}
	if ae.Align != "centre" {
		t.Errorf("error carries %q", ae.Align)
	}
	if len(glyphs(g)) != 0 {
		t.Errorf("grid mutated on error")
	}
}

func TestPlaceHugeMessageNeverErrors(t *testing.T) {
	g := New(4, 2)
	msg := ""
	for i := 0; i < 200; i++ {
		msg += "x"
	}
	for _, mode := range []WrapMode{WrapAuto, WrapClamp} {
		for _, align := range []Align{AlignLeft, AlignMid, AlignRight} {
			if err := g.Place(1, 1, msg, TextOptions{Mode: mode, Align: align}); err != nil {
				t.Errorf("Place(mode=%d, align=%s) = %v", mode, align, err)
			}
		}
	}
}
