package grid

import "fmt"

// ShapeStyle is the cell written by the drawing helpers.
type ShapeStyle struct {
	Glyph string
	Fg    string
	Bg    string
}

func (s ShapeStyle) cell() Cell {
	c := Cell{Glyph: s.Glyph, Fg: s.Fg, Bg: s.Bg}
	if c.Glyph == "" {
		c.Glyph = DefaultGlyph
	}
	if c.Fg == "" {
		c.Fg = DefaultFg
	}
	if c.Bg == "" {
		c.Bg = DefaultBg
	}
	return c
}

// Frame line styles.
const (
	FrameSingle = 0
	FrameDouble = 1
)

type frameGlyphs struct {
	ul, ur, dl, dr, h, v string
}

var frameSets = map[int]frameGlyphs{
	FrameSingle: {ul: "/ULcorner", ur: "/URcorner", dl: "/DLcorner", dr: "/DRcorner", h: "/Hbar", v: "/Vbar"},
	FrameDouble: {ul: "/2U2Lcorner", ur: "/2U2Rcorner", dl: "/2D2Lcorner", dr: "/2D2Rcorner", h: "/2Hbar", v: "/2Vbar"},
}

// FrameOptions configures DrawFrame.
type FrameOptions struct {
	Style  int
	Filled bool
	Fill   ShapeStyle // interior cells when Filled
	Fg, Bg string     // border colours
}

// DrawHLine fills cells xmin..xmax (inclusive) on row y. Cells off the grid
// are skipped.
func DrawHLine(g *Grid, xmin, xmax, y int, s ShapeStyle) {
	c := s.cell()
	for x := xmin; x <= xmax; x++ {
		g.putClipped(x, y, c.Glyph, c.Fg, c.Bg)
	}
}

// DrawVLine fills cells ymin..ymax (inclusive) in column x.
func DrawVLine(g *Grid, x, ymin, ymax int, s ShapeStyle) {
	c := s.cell()
	for y := ymin; y <= ymax; y++ {
		g.putClipped(x, y, c.Glyph, c.Fg, c.Bg)
	}
}

// DrawRect draws a w x h rectangle, either solid or as a one-cell outline.
func DrawRect(g *Grid, x, y, w, h int, filled bool, s ShapeStyle) {
	if filled {
		for i := 0; i < h; i++ {
			DrawHLine(g, x, x+w-1, y+i, s)
		}
		return
	}
	DrawHLine(g, x, x+w-1, y, s)
	DrawHLine(g, x, x+w-1, y+h-1, s)
	DrawVLine(g, x, y+1, y+h-2, s)
	DrawVLine(g, x+w-1, y+1, y+h-2, s)
}

// DrawFrame draws a box-drawing border around a w x h rectangle and
// optionally fills its interior.
func DrawFrame(g *Grid, x, y, w, h int, opt FrameOptions) error {
	set, ok := frameSets[opt.Style]
	if !ok {
		return fmt.Errorf("draw frame: unknown style %d", opt.Style)
	}
	border := func(glyph string) ShapeStyle {
		return ShapeStyle{Glyph: glyph, Fg: opt.Fg, Bg: opt.Bg}
	}

	DrawHLine(g, x+1, x+w-2, y, border(set.h))
	DrawHLine(g, x+1, x+w-2, y+h-1, border(set.h))
	DrawVLine(g, x, y+1, y+h-2, border(set.v))
	DrawVLine(g, x+w-1, y+1, y+h-2, border(set.v))

	for _, corner := range []struct {
		cx, cy int
		glyph  string
	}{
		{x, y, set.ul},
		{x, y + h - 1, set.dl},
		{x + w - 1, y, set.ur},
		{x + w - 1, y + h - 1, set.dr},
	} {
		c := border(corner.glyph).cell()
		g.putClipped(corner.cx, corner.cy, c.Glyph, c.Fg, c.Bg)
	}

	if opt.Filled {
		for i := 1; i < h-1; i++ {
			DrawHLine(g, x+1, x+w-2, y+i, opt.Fill)
		}
	}
	return nil
}
