package render

import (
	"fmt"
	"image"
	"image/color"

	"tile-curses/internal/colors"
	"tile-curses/internal/glyph"
)

// UnknownGlyphError reports a token with no atlas tile when no font
// fallback is configured.
type UnknownGlyphError struct {
	Token string
}

func (e *UnknownGlyphError) Error() string {
	return fmt.Sprintf("no tile for glyph %q", e.Token)
}

// Recolor returns a copy of tile where every refFg pixel becomes fg and
// every refBg pixel becomes bg. Each output pixel is decided from the
// original pixel only, so a new foreground equal to refBg is not replaced
// a second time.
func Recolor(tile *image.NRGBA, refFg, refBg, fg, bg color.NRGBA) *image.NRGBA {
	src := ToNRGBA(tile)
	out := image.NewNRGBA(src.Bounds())
	for i := 0; i+3 < len(src.Pix); i += 4 {
		p := color.NRGBA{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: src.Pix[i+3]}
		switch p {
		case refFg:
			p = fg
		case refBg:
			p = bg
		}
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = p.R, p.G, p.B, p.A
	}
	return out
}

type cacheKey struct {
	glyph, fg, bg string
}

func (k cacheKey) String() string {
	return k.glyph + "-" + k.fg + "-" + k.bg
}

// CacheStats counts cache traffic.
type CacheStats struct {
	Hits, Misses, Entries int
}

// GlyphCache memoizes recoloured tiles per (glyph, fg, bg). Entries are
// never evicted; the cache is bounded by the distinct combinations drawn.
// Not safe for concurrent use.
type GlyphCache struct {
	atlas    *Atlas
	table    *glyph.Table
	palette  *colors.Palette
	fallback FontFallback

	entries map[cacheKey]*image.NRGBA
	hits    int
	misses  int
}

// NewGlyphCache creates an empty cache. A nil fallback makes unknown tokens
// fail with *UnknownGlyphError.
func NewGlyphCache(atlas *Atlas, table *glyph.Table, palette *colors.Palette, fallback FontFallback) *GlyphCache {
	return &GlyphCache{
		atlas:    atlas,
		table:    table,
		palette:  palette,
		fallback: fallback,
		entries:  make(map[cacheKey]*image.NRGBA),
	}
}

// Get returns the tile for token drawn in the named colours. Repeated calls
// with the same arguments return the same image; callers must not modify it.
func (c *GlyphCache) Get(token, fg, bg string) (*image.NRGBA, error) {
	key := cacheKey{glyph: token, fg: fg, bg: bg}
	if img, ok := c.entries[key]; ok {
		c.hits++
		return img, nil
	}

	fgc, err := c.palette.Resolve(fg)
	if err != nil {
		return nil, err
	}
	bgc, err := c.palette.Resolve(bg)
	if err != nil {
		return nil, err
	}
	src, err := c.source(token)
	if err != nil {
		return nil, err
	}

	refFg, refBg := c.atlas.ReferenceColors()
	img := Recolor(src, refFg, refBg, fgc, bgc)
	c.entries[key] = img
	c.misses++
	return img, nil
}

// source returns the uncoloured tile for token.
func (c *GlyphCache) source(token string) (*image.NRGBA, error) {
	if row, col, ok := c.table.GlyphAt(token); ok {
		if tile := c.atlas.Tile(row, col); tile != nil {
			return tile, nil
		}
	}
	if c.fallback == nil {
		return nil, &UnknownGlyphError{Token: token}
	}
	refFg, refBg := c.atlas.ReferenceColors()
	w, h := c.atlas.CellSize()
	return c.fallback.RenderGlyph(token, refFg, refBg, w, h), nil
}

// Stats reports hit and miss counts.
func (c *GlyphCache) Stats() CacheStats {
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}

// Keys lists the cached keys in their printable glyph-fg-bg form.
func (c *GlyphCache) Keys() []string {
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k.String())
	}
	return out
}
