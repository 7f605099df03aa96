package render

import (
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Backdrop is what transparent frame pixels are flattened onto and what
// fills the terminal around the fitted frame.
var Backdrop = P(0, 0, 0)

var sentinel = TermCell{Ch: '\x00', Fg: P(255, 0, 0), Bg: P(0, 0, 255)}

// Engine is a per-session double-buffer diff renderer that shows frames
// as half-block characters in a truecolour terminal.
type Engine struct {
	width, height int
	current       [][]TermCell
	next          [][]TermCell
	firstFrame    bool
	scratch       *image.RGBA
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{}
	e.Resize(width, height)
	return e
}

// Resize adjusts the renderer for a new terminal size. The next frame is
// drawn in full.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(TermCell{})
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill TermCell) [][]TermCell {
	buf := make([][]TermCell, e.height)
	for y := range buf {
		buf[y] = make([]TermCell, e.width)
		for x := range buf[y] {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI output that turns the previous frame into
// frame. Only changed cells are emitted.
func (e *Engine) Render(frame image.Image, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	blank := TermCell{Ch: ' ', Bg: Backdrop}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = blank
		}
	}

	fb := frame.Bounds()
	vp := FitViewport(fb.Dx(), fb.Dy(), termW, termH)
	if vp.ViewW > 0 && vp.ViewH > 0 {
		e.stampFrame(frame, vp)
	}

	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// consecutive cells need no cursor move
				if y != lastRow || x != lastCol {
					MoveTo(&sb, y+1, x+1)
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// stampFrame downsamples frame into the viewport, two pixel rows per cell.
func (e *Engine) stampFrame(frame image.Image, vp Viewport) {
	pw, ph := vp.ViewW, vp.ViewH*2
	if e.scratch == nil || e.scratch.Bounds().Dx() != pw || e.scratch.Bounds().Dy() != ph {
		e.scratch = image.NewRGBA(image.Rect(0, 0, pw, ph))
	}
	xdraw.ApproxBiLinear.Scale(e.scratch, e.scratch.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	for row := 0; row < vp.ViewH; row++ {
		sy := vp.OffsetY + row
		if sy < 0 || sy >= e.height {
			continue
		}
		for col := 0; col < vp.ViewW; col++ {
			sx := vp.OffsetX + col
			if sx < 0 || sx >= e.width {
				continue
			}
			top := PixelOver(e.scratch.At(col, row*2), Backdrop)
			bottom := PixelOver(e.scratch.At(col, row*2+1), Backdrop)
			e.next[sy][sx] = halfBlockCell(top, bottom)
		}
	}
}
