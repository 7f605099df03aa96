// Package termview draws a grid's symbolic cells on a tcell screen, one
// terminal cell per grid cell. It is a preview: glyphs come from the
// glyph table, not the atlas.
package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tile-curses/internal/colors"
	"tile-curses/internal/glyph"
	"tile-curses/internal/grid"
)

// Replacement stands in for glyphs that do not fit in one terminal column.
const Replacement = '?'

// View draws grids with a fixed table and palette.
type View struct {
	table   *glyph.Table
	palette *colors.Palette
}

// New creates a view.
func New(table *glyph.Table, palette *colors.Palette) *View {
	return &View{table: table, palette: palette}
}

// Draw copies g onto screen with its top-left cell at (ox, oy). Cells off
// the screen are skipped. Draw does not call Show.
func (v *View) Draw(screen tcell.Screen, g *grid.Grid, ox, oy int) error {
	sw, sh := screen.Size()
	var firstErr error
	g.Each(func(x, y int, c grid.Cell) {
		sx, sy := ox+x, oy+y
		if sx < 0 || sy < 0 || sx >= sw || sy >= sh {
			return
		}
		style, err := v.Style(c)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		mainc, combc := v.runes(c.Glyph)
		screen.SetContent(sx, sy, mainc, combc, style)
	})
	return firstErr
}

// Style converts a cell's colours. Transparent maps to the terminal
// default colour.
func (v *View) Style(c grid.Cell) (tcell.Style, error) {
	fg, err := v.color(c.Fg)
	if err != nil {
		return tcell.StyleDefault, err
	}
	bg, err := v.color(c.Bg)
	if err != nil {
		return tcell.StyleDefault, err
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg), nil
}

func (v *View) color(name string) (tcell.Color, error) {
	c, err := v.palette.Resolve(name)
	if err != nil {
		return tcell.ColorDefault, err
	}
	if c.A == 0 {
		return tcell.ColorDefault, nil
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)), nil
}

// runes picks what to print for a token: the table glyph for escapes,
// otherwise the token's own grapheme cluster.
func (v *View) runes(token string) (rune, []rune) {
	var rs []rune
	if _, _, ok := v.table.GlyphAt(token); ok {
		rs = []rune{v.table.Rune(token)}
	} else {
		rs = []rune(token)
	}
	if len(rs) == 0 {
		return ' ', nil
	}
	if runewidth.RuneWidth(rs[0]) != 1 {
		return Replacement, nil
	}
	return rs[0], rs[1:]
}
