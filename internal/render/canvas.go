package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ToNRGBA returns img as an *image.NRGBA whose bounds start at (0,0). The
// result never aliases img.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// SubImage copies the w x h rectangle at (x, y) out of img.
func SubImage(img *image.NRGBA, x, y, w, h int) *image.NRGBA {
	b := img.Bounds()
	r := image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+w, b.Min.Y+y+h)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

// Scale resizes img to w x h with nearest-neighbour sampling, so the result
// only contains colours present in img.
func Scale(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return ToNRGBA(img)
	}
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}

// PixelAt returns the non-premultiplied colour at (x, y) relative to the
// image origin.
func PixelAt(img *image.NRGBA, x, y int) color.NRGBA {
	b := img.Bounds()
	return img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
}

// NewSurface returns a fully transparent w x h surface.
func NewSurface(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Fill paints the whole surface with c.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit composites src over dst with its top-left corner at (x, y).
func Blit(dst draw.Image, src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

// GridCoord converts a pixel position on the display to the cell under it.
func GridCoord(px, py, cellW, cellH int) (x, y int) {
	return floorDiv(px, cellW), floorDiv(py, cellH)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
