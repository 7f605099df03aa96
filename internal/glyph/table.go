// Package glyph maps display tokens to positions in a 16x16 tile atlas.
package glyph

import (
	"sort"
	"unicode/utf8"
)

const (
	// Rows is the number of rows in the glyph table.
	Rows = 16
	// Cols is the number of columns in the glyph table.
	Cols = 16

	// EscapePrefix starts every multi-character glyph name.
	EscapePrefix = "/"
)

// Coord is a (row, col) position in the atlas.
type Coord struct {
	Row, Col int
}

// Entry is one slot of the table. Glyph is the visible character drawn by
// the tile; Escape is an optional name that reaches the same tile.
type Entry struct {
	Glyph  string
	Escape string
}

// Token returns the canonical token for the entry.
func (e Entry) Token() string {
	if e.Glyph != "" {
		return e.Glyph
	}
	return e.Escape
}

// Table is an immutable bidirectional mapping between tokens and atlas
// coordinates.
type Table struct {
	entries [Rows][Cols]Entry
	index   map[string]Coord
	escapes []string // longest first
}

// cp437 is the code page 437 layout of the atlas sheet. (0,0) has no
// visible glyph and (15,15) is a non-breaking space.
var cp437 = [Rows][Cols]string{
	{"", "☺", "☻", "♥", "♦", "♣", "♠", "●", "◘", "○", "◙", "♂", "♀", "♪", "♫", "☼"},
	{"▶", "◀", "↕", "‼", "¶", "§", "▬", "↨", "↑", "↓", "→", "←", "∟", "↔", "▲", "▼"},
	{" ", "!", "\"", "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-", ".", "/"},
	{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ":", ";", "<", "=", ">", "?"},
	{"@", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O"},
	{"P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "[", "\\", "]", "^", "_"},
	{"`", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o"},
	{"p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z", "{", "|", "}", "~", "⌂"},
	{"Ç", "ü", "é", "â", "ä", "à", "å", "ç", "ê", "ë", "è", "ï", "î", "ì", "Ä", "Å"},
	{"É", "æ", "Æ", "ô", "ö", "ò", "û", "ù", "ÿ", "Ö", "Ü", "¢", "£", "¥", "₧", "ƒ"},
	{"á", "í", "ó", "ú", "ñ", "Ñ", "ª", "º", "¿", "⌐", "¬", "½", "¼", "¡", "«", "»"},
	{"░", "▒", "▓", "│", "┤", "╡", "╢", "╖", "╕", "╣", "║", "╗", "╝", "╜", "╛", "┐"},
	{"└", "┴", "┬", "├", "─", "┼", "╞", "╟", "╚", "╔", "╩", "╦", "╠", "═", "╬", "╧"},
	{"╨", "╤", "╥", "╙", "╘", "╒", "╓", "╫", "╪", "┘", "┌", "█", "▄", "▌", "▐", "▀"},
	{"α", "ß", "Γ", "π", "Σ", "σ", "µ", "τ", "Φ", "Θ", "Ω", "δ", "∞", "φ", "ε", "∩"},
	{"≡", "±", "≥", "≤", "⌠", "⌡", "÷", "≈", "°", "∙", "·", "√", "ⁿ", "²", "■", "\u00a0"},
}

// escapeNames gives selected tiles a name that can be embedded in messages,
// e.g. "/URcorner" for the single-line upper right corner.
var escapeNames = map[Coord]string{
	{0, 0}: "/null",
	{0, 1}: "/Smile",
	{0, 2}: "/InvSmile",
	{0, 3}: "/Heart",
	{0, 4}: "/Diamond",
	{0, 5}: "/Club",
	{0, 6}: "/Spade",
	{0, 7}: "/Bullet",

	{1, 0}:  "/Rtriangle",
	{1, 1}:  "/Ltriangle",
	{1, 2}:  "/UDarrow",
	{1, 8}:  "/Uarrow",
	{1, 9}:  "/Darrow",
	{1, 10}: "/Rarrow",
	{1, 11}: "/Larrow",
	{1, 13}: "/LRarrow",
	{1, 14}: "/Utriangle",
	{1, 15}: "/Dtriangle",

	{11, 0}:  "/Lshade",
	{11, 1}:  "/Mshade",
	{11, 2}:  "/Dshade",
	{11, 3}:  "/Vbar",
	{11, 4}:  "/Rjoint",
	{11, 9}:  "/2Rjoint",
	{11, 10}: "/2Vbar",
	{11, 11}: "/2U2Rcorner",
	{11, 12}: "/2D2Rcorner",
	{11, 15}: "/URcorner",

	{12, 0}:  "/DLcorner",
	{12, 1}:  "/Djoint",
	{12, 2}:  "/Ujoint",
	{12, 3}:  "/Ljoint",
	{12, 4}:  "/Hbar",
	{12, 5}:  "/Cross",
	{12, 8}:  "/2D2Lcorner",
	{12, 9}:  "/2U2Lcorner",
	{12, 10}: "/2Djoint",
	{12, 11}: "/2Ujoint",
	{12, 12}: "/2Ljoint",
	{12, 13}: "/2Hbar",
	{12, 14}: "/2Cross",

	{13, 9}:  "/DRcorner",
	{13, 10}: "/ULcorner",
	{13, 11}: "/Block",
	{13, 12}: "/Dhalf",
	{13, 13}: "/Lhalf",
	{13, 14}: "/Rhalf",
	{13, 15}: "/Uhalf",

	{15, 14}: "/Square",
	{15, 15}: "/nbsp",
}

// aliases are alternative spellings that reach a tile whose canonical
// glyph is a look-alike character, e.g. Greek beta for the sharp s.
var aliases = map[string]Coord{
	"¦": {7, 12},
	"β": {14, 1},
	"Π": {14, 3},
	"μ": {14, 6},
	"˚": {15, 8},
	"•": {15, 9},
}

var standard = newTable(cp437, escapeNames, aliases)

// Standard returns the built-in CP437 table.
func Standard() *Table {
	return standard
}

func newTable(glyphs [Rows][Cols]string, names map[Coord]string, alias map[string]Coord) *Table {
	t := &Table{index: make(map[string]Coord, Rows*Cols+len(names)+len(alias))}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			e := Entry{Glyph: glyphs[r][c], Escape: names[Coord{r, c}]}
			t.entries[r][c] = e
			// first occurrence wins for duplicated glyphs
			if e.Glyph != "" {
				if _, dup := t.index[e.Glyph]; !dup {
					t.index[e.Glyph] = Coord{r, c}
				}
			}
			if e.Escape != "" {
				t.index[e.Escape] = Coord{r, c}
				t.escapes = append(t.escapes, e.Escape)
			}
		}
	}
	for tok, c := range alias {
		if _, taken := t.index[tok]; !taken {
			t.index[tok] = c
		}
	}
	sort.Slice(t.escapes, func(i, j int) bool {
		if len(t.escapes[i]) != len(t.escapes[j]) {
			return len(t.escapes[i]) > len(t.escapes[j])
		}
		return t.escapes[i] < t.escapes[j]
	})
	return t
}

// GlyphAt returns the atlas coordinate of a token. ok is false when the
// token has no tile.
func (t *Table) GlyphAt(token string) (row, col int, ok bool) {
	c, ok := t.index[token]
	if !ok {
		return 0, 0, false
	}
	return c.Row, c.Col, true
}

// TokenAt returns the canonical token stored at (row, col), or "" when the
// coordinate is outside the table.
func (t *Table) TokenAt(row, col int) string {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return ""
	}
	return t.entries[row][col].Token()
}

// EntryAt returns the full entry at (row, col).
func (t *Table) EntryAt(row, col int) (Entry, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Entry{}, false
	}
	return t.entries[row][col], true
}

// Escapes returns the escape names, longest first.
func (t *Table) Escapes() []string {
	out := make([]string, len(t.escapes))
	copy(out, t.escapes)
	return out
}

// Rune returns a single printable rune for a token. Escape names resolve to
// the glyph of their tile; the empty (0,0) glyph prints as a space.
func (t *Table) Rune(token string) rune {
	if c, ok := t.index[token]; ok {
		g := t.entries[c.Row][c.Col].Glyph
		if g == "" {
			return ' '
		}
		r, _ := utf8.DecodeRuneInString(g)
		return r
	}
	if token == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(token)
	return r
}
