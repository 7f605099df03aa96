package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontFallback draws tokens that have no tile in the atlas.
type FontFallback interface {
	// RenderGlyph draws token in fg on bg and returns a w x h image.
	RenderGlyph(token string, fg, bg color.NRGBA, w, h int) *image.NRGBA
}

// BasicFontFallback renders with the built-in 7x13 bitmap face. Its glyph
// masks are fully on or off, so the result only holds fg and bg pixels.
type BasicFontFallback struct{}

// RenderGlyph implements FontFallback.
func (BasicFontFallback) RenderGlyph(token string, fg, bg color.NRGBA, w, h int) *image.NRGBA {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, token).Ceil()
	if adv < face.Advance {
		adv = face.Advance
	}
	img := image.NewNRGBA(image.Rect(0, 0, adv, face.Height))
	Fill(img, bg)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(token)
	return Scale(img, w, h)
}
