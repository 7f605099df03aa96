package render

import (
	"fmt"
	"image"

	"tile-curses/internal/colors"
	"tile-curses/internal/glyph"
	"tile-curses/internal/grid"
)

// Compositor turns a grid's symbolic cells into pixels by blitting one
// recoloured tile per cell.
type Compositor struct {
	cache        *GlyphCache
	palette      *colors.Palette
	cellW, cellH int
}

// NewCompositor creates a compositor with its own glyph cache.
func NewCompositor(atlas *Atlas, table *glyph.Table, palette *colors.Palette, fallback FontFallback) *Compositor {
	w, h := atlas.CellSize()
	return &Compositor{
		cache:   NewGlyphCache(atlas, table, palette, fallback),
		palette: palette,
		cellW:   w,
		cellH:   h,
	}
}

// CellSize returns the pixel size of one cell.
func (c *Compositor) CellSize() (w, h int) { return c.cellW, c.cellH }

// Cache exposes the glyph cache, mainly for statistics.
func (c *Compositor) Cache() *GlyphCache { return c.cache }

// CellImage returns the recoloured tile for one cell.
func (c *Compositor) CellImage(cell grid.Cell) (*image.NRGBA, error) {
	return c.cache.Get(cell.Glyph, cell.Fg, cell.Bg)
}

// Surface draws every cell of g onto a new transparent surface sized
// width*cellW x height*cellH.
func (c *Compositor) Surface(g *grid.Grid) (*image.RGBA, error) {
	surface := NewSurface(g.Width()*c.cellW, g.Height()*c.cellH)
	if err := c.drawCells(surface, g); err != nil {
		return nil, err
	}
	return surface, nil
}

// Frame draws the grid over a background filled with the named colour.
func (c *Compositor) Frame(g *grid.Grid, background string) (*image.RGBA, error) {
	bg, err := c.palette.Resolve(background)
	if err != nil {
		return nil, fmt.Errorf("frame background: %w", err)
	}
	frame := NewSurface(g.Width()*c.cellW, g.Height()*c.cellH)
	Fill(frame, bg)
	if err := c.drawCells(frame, g); err != nil {
		return nil, err
	}
	return frame, nil
}

func (c *Compositor) drawCells(dst *image.RGBA, g *grid.Grid) error {
	var firstErr error
	g.Each(func(x, y int, cell grid.Cell) {
		if firstErr != nil {
			return
		}
		img, err := c.CellImage(cell)
		if err != nil {
			firstErr = fmt.Errorf("cell (%d,%d): %w", x, y, err)
			return
		}
		Blit(dst, img, x*c.cellW, y*c.cellH)
	})
	return firstErr
}
