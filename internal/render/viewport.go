package render

// Viewport is the block of terminal cells a frame is drawn into.
type Viewport struct {
	OffsetX, OffsetY int // top-left cell, 0-based
	ViewW, ViewH     int // size in cells; each cell holds two pixel rows
}

// FitViewport scales a frameW x frameH image into a termW x termH terminal
// keeping its aspect ratio, with one pixel per column and two per row, and
// centres the result.
func FitViewport(frameW, frameH, termW, termH int) Viewport {
	if frameW <= 0 || frameH <= 0 || termW <= 0 || termH <= 0 {
		return Viewport{}
	}
	pixW, pixH := termW, termH*2

	// pick the limiting axis
	viewW := pixW
	viewPixH := frameH * pixW / frameW
	if viewPixH > pixH {
		viewPixH = pixH
		viewW = frameW * pixH / frameH
	}
	viewH := (viewPixH + 1) / 2
	if viewW < 1 {
		viewW = 1
	}
	if viewH < 1 {
		viewH = 1
	}
	if viewH > termH {
		viewH = termH
	}

	return Viewport{
		OffsetX: (termW - viewW) / 2,
		OffsetY: (termH - viewH) / 2,
		ViewW:   viewW,
		ViewH:   viewH,
	}
}
