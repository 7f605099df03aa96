// Package grid holds the symbolic state of a tile display: a fixed-size
// array of cells, text layout into it and simple box drawing.
package grid

const (
	// DefaultGlyph is the glyph of a cleared cell.
	DefaultGlyph = " "
	// DefaultFg is the foreground colour of a cleared cell.
	DefaultFg = "white"
	// DefaultBg is the background colour of a cleared cell.
	DefaultBg = "transparent"
)

// Cell is one character position: a glyph token and two colour names.
type Cell struct {
	Glyph string `json:"glyph"`
	Fg    string `json:"fg"`
	Bg    string `json:"bg"`
}

// Blank returns the cell every position holds after Clear.
func Blank() Cell {
	return Cell{Glyph: DefaultGlyph, Fg: DefaultFg, Bg: DefaultBg}
}

// Swapped returns the cell with foreground and background exchanged.
func (c Cell) Swapped() Cell {
	return Cell{Glyph: c.Glyph, Fg: c.Bg, Bg: c.Fg}
}
