package render

import "image/color"

// Pixel is an opaque RGB colour as sent to a truecolour terminal.
type Pixel struct {
	R, G, B uint8
}

// P is a shorthand to create a pixel.
func P(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// PixelOver flattens c onto an opaque backdrop.
func PixelOver(c color.Color, backdrop Pixel) Pixel {
	r, g, b, a := c.RGBA() // premultiplied, 16 bit
	inv := 0xffff - a
	blend := func(v uint32, bd uint8) uint8 {
		return uint8((v + uint32(bd)*0x101*inv/0xffff) >> 8)
	}
	return Pixel{R: blend(r, backdrop.R), G: blend(g, backdrop.G), B: blend(b, backdrop.B)}
}

// TermCell is one terminal character cell with truecolour attributes.
type TermCell struct {
	Ch rune
	Fg Pixel
	Bg Pixel
}

// halfBlockCell packs two vertically stacked pixels into one cell.
func halfBlockCell(top, bottom Pixel) TermCell {
	return TermCell{Ch: HalfBlock, Fg: top, Bg: bottom}
}
