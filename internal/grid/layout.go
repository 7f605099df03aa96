package grid

import "tile-curses/internal/glyph"

// Align selects how a message is positioned relative to its anchor column.
type Align string

const (
	AlignLeft  Align = "left"
	AlignMid   Align = "mid"
	AlignRight Align = "right"
)

// WrapMode selects what happens when a message reaches the right edge of
// its box.
type WrapMode int

const (
	// WrapAuto continues on the next row of the box and stops once the
	// bottom of the box is passed.
	WrapAuto WrapMode = iota
	// WrapClamp drops every token that falls outside the box, excluding the
	// last box row, and keeps going.
	WrapClamp
)

// Box is a clipping rectangle in cell units. A zero width or height
// stands for the full grid width or height.
type Box struct {
	X, Y, W, H int
}

// TextOptions controls Place. The zero value writes white-on-transparent,
// left aligned, wrapping inside the whole grid.
type TextOptions struct {
	Fg    string
	Bg    string
	Mode  WrapMode
	Align Align
	Box   Box
}

func (g *Grid) resolveBox(b Box) Box {
	if b.W == 0 {
		b.W = g.width
	}
	if b.H == 0 {
		b.H = g.height
	}
	return b
}

// Place writes msg into the grid starting at anchor (x, y). Tokens that land
// outside the box (or the grid) are dropped; the only error is an unknown
// alignment.
func (g *Grid) Place(x, y int, msg string, opt TextOptions) error {
	tokens := glyph.Tokenize(msg)

	var curX int
	switch opt.Align {
	case AlignLeft, "":
		curX = x
	case AlignMid:
		curX = x - len(tokens)/2
	case AlignRight:
		curX = x - len(tokens) + 1
	default:
		return &InvalidAlignmentError{Align: opt.Align}
	}

	fg, bg := opt.Fg, opt.Bg
	if fg == "" {
		fg = DefaultFg
	}
	if bg == "" {
		bg = DefaultBg
	}

	box := g.resolveBox(opt.Box)
	if box.W <= 0 || box.H <= 0 {
		return nil
	}

	curY := y
	// Starting left of the box wraps backwards onto earlier rows.
	if curX < box.X {
		d := box.X - curX
		curY -= (d + box.W - 1) / box.W
		curX = box.X + box.W - d%box.W
	}

	// Whatever would land above the box is discarded.
	if curY < box.Y {
		skip := (box.Y-curY)*box.W - (curX - box.X)
		if skip > len(tokens) {
			skip = len(tokens)
		}
		if skip < 0 {
			skip = 0
		}
		tokens = tokens[skip:]
		curX, curY = box.X, box.Y
	}

	right := box.X + box.W
	bottom := box.Y + box.H
	dx := 0
	for _, tok := range tokens {
		switch opt.Mode {
		case WrapClamp:
			if curX+dx < right && curY < bottom-1 {
				g.putClipped(curX+dx, curY, tok, fg, bg)
			}
		default:
			if curX+dx >= right {
				dx -= box.W
				curY++
				if curY >= bottom {
					return nil
				}
			}
			g.putClipped(curX+dx, curY, tok, fg, bg)
		}
		dx++
	}
	return nil
}

func (g *Grid) putClipped(x, y int, glyph, fg, bg string) {
	if g.InBounds(x, y) {
		g.set(x, y, Cell{Glyph: glyph, Fg: fg, Bg: bg})
	}
}
