package render

import (
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	ClearScreen      = CSI + "2J"
	HideCursor       = CSI + "?25l"
	ShowCursor       = CSI + "?25h"
	EnableAltScreen  = CSI + "?1049h"
	DisableAltScreen = CSI + "?1049l"

	// HalfBlock shows the top pixel of a cell as foreground and the bottom
	// pixel as background.
	HalfBlock = '▀'
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(sb *strings.Builder, row, col int) {
	sb.WriteString(CSI)
	sb.WriteString(strconv.Itoa(row))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(col))
	sb.WriteByte('H')
}

// WriteCellSGR writes a cell's truecolour SGR followed by its rune. Every
// cell resets attributes first so no state leaks between cells.
func WriteCellSGR(sb *strings.Builder, c TermCell) {
	sb.WriteString(CSI + "0;38;2;")
	writeRGB(sb, c.Fg)
	sb.WriteString(";48;2;")
	writeRGB(sb, c.Bg)
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

func writeRGB(sb *strings.Builder, p Pixel) {
	sb.WriteString(strconv.Itoa(int(p.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(p.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(p.B)))
}
