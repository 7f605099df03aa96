package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"tile-curses/internal/glyph"
)

// SheetTile is the tile size of sheets produced by GenerateSheet.
const SheetTile = 16

var (
	sheetFg = color.NRGBA{255, 255, 255, 255}
	sheetBg = color.NRGBA{0, 0, 0, 255}
)

// GenerateSheet draws a complete 16x16 sheet for table: white glyphs on
// black, SheetTile pixels per tile. Box-drawing and block glyphs are drawn
// as primitives, everything else through the 7x13 bitmap face.
func GenerateSheet(table *glyph.Table) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, glyph.Cols*SheetTile, glyph.Rows*SheetTile))
	Fill(img, sheetBg)
	face := basicfont.Face7x13

	for r := 0; r < glyph.Rows; r++ {
		for c := 0; c < glyph.Cols; c++ {
			e, _ := table.EntryAt(r, c)
			if e.Glyph == "" || e.Glyph == " " || e.Glyph == "\u00a0" {
				continue
			}
			cx, cy := c*SheetTile, r*SheetTile
			ch := []rune(e.Glyph)[0]
			if arms, ok := boxArms[ch]; ok {
				drawBoxGlyph(img, cx, cy, arms)
				continue
			}
			if drawBlockGlyph(img, cx, cy, ch) {
				continue
			}
			drawFontGlyph(img, face, cx, cy, e.Glyph)
		}
	}
	return img
}

// drawFontGlyph centres a 7x13 glyph in the tile.
func drawFontGlyph(img *image.NRGBA, face *basicfont.Face, cellX, cellY int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(sheetFg),
		Face: face,
		Dot:  fixed.P(cellX+(SheetTile-face.Advance)/2, cellY+(SheetTile-face.Height)/2+face.Ascent),
	}
	d.DrawString(s)
}

// boxArms gives the line weight (0 none, 1 single, 2 double) of each arm
// of a box-drawing glyph: left, right, up, down.
var boxArms = map[rune][4]int{
	'│': {0, 0, 1, 1}, '┤': {1, 0, 1, 1}, '╡': {2, 0, 1, 1}, '╢': {1, 0, 2, 2},
	'╖': {1, 0, 0, 2}, '╕': {2, 0, 0, 1}, '╣': {2, 0, 2, 2}, '║': {0, 0, 2, 2},
	'╗': {2, 0, 0, 2}, '╝': {2, 0, 2, 0}, '╜': {1, 0, 2, 0}, '╛': {2, 0, 1, 0},
	'┐': {1, 0, 0, 1}, '└': {0, 1, 1, 0}, '┴': {1, 1, 1, 0}, '┬': {1, 1, 0, 1},
	'├': {0, 1, 1, 1}, '─': {1, 1, 0, 0}, '┼': {1, 1, 1, 1}, '╞': {0, 2, 1, 1},
	'╟': {0, 1, 2, 2}, '╚': {0, 2, 2, 0}, '╔': {0, 2, 0, 2}, '╩': {2, 2, 2, 0},
	'╦': {2, 2, 0, 2}, '╠': {0, 2, 2, 2}, '═': {2, 2, 0, 0}, '╬': {2, 2, 2, 2},
	'╧': {2, 2, 1, 0}, '╨': {1, 1, 2, 0}, '╤': {2, 2, 0, 1}, '╥': {1, 1, 0, 2},
	'╙': {0, 1, 2, 0}, '╘': {0, 2, 1, 0}, '╒': {0, 2, 0, 1}, '╓': {0, 1, 0, 2},
	'╫': {1, 1, 2, 2}, '╪': {2, 2, 1, 1}, '┘': {1, 0, 1, 0}, '┌': {0, 1, 0, 1},
}

// strokes returns the offsets, relative to the tile, of the pixel rows (or
// columns) that make up a line of the given weight.
func strokes(weight int) []int {
	const mid = SheetTile/2 - 1
	switch weight {
	case 1:
		return []int{mid, mid + 1}
	case 2:
		return []int{mid - 2, mid + 3}
	}
	return nil
}

func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, arms [4]int) {
	const mid = SheetTile/2 - 1
	hline := func(x0, x1 int, weight int) {
		for _, dy := range strokes(weight) {
			for x := x0; x <= x1; x++ {
				img.SetNRGBA(cellX+x, cellY+dy, sheetFg)
			}
		}
	}
	vline := func(y0, y1 int, weight int) {
		for _, dx := range strokes(weight) {
			for y := y0; y <= y1; y++ {
				img.SetNRGBA(cellX+dx, cellY+y, sheetFg)
			}
		}
	}
	hline(0, mid+1, arms[0])
	hline(mid, SheetTile-1, arms[1])
	vline(0, mid+1, arms[2])
	vline(mid, SheetTile-1, arms[3])
}

// drawBlockGlyph draws shading and block elements. It reports false for
// runes it does not know.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, ch rune) bool {
	var on func(x, y int) bool
	switch ch {
	case '░':
		on = func(x, y int) bool { return (x+y)%4 == 0 }
	case '▒':
		on = func(x, y int) bool { return (x+y)%2 == 0 }
	case '▓':
		on = func(x, y int) bool { return (x+y)%4 != 0 }
	case '█':
		on = func(x, y int) bool { return true }
	case '▄':
		on = func(x, y int) bool { return y >= SheetTile/2 }
	case '▀':
		on = func(x, y int) bool { return y < SheetTile/2 }
	case '▌':
		on = func(x, y int) bool { return x < SheetTile/2 }
	case '▐':
		on = func(x, y int) bool { return x >= SheetTile/2 }
	case '■':
		on = func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 }
	case '▬':
		on = func(x, y int) bool { return y >= 10 && y < 14 }
	default:
		return false
	}
	for y := 0; y < SheetTile; y++ {
		for x := 0; x < SheetTile; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, sheetFg)
			}
		}
	}
	return true
}
