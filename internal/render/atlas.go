package render

import (
	"fmt"
	"image"
	"image/color"

	"tile-curses/internal/grid"
)

// Atlas is a tile sheet sliced into equally sized tiles, each scaled to
// the on-screen cell size.
type Atlas struct {
	tiles        [][]*image.NRGBA // [row][col]
	cellW, cellH int
	refFg, refBg color.NRGBA
}

// BuildAtlas slices sheet into tileW x tileH tiles, row-major, and scales
// each one to cellW x cellH. The sheet dimensions must be exact multiples
// of the tile size.
func BuildAtlas(sheet *image.NRGBA, tileW, tileH, cellW, cellH int) (*Atlas, error) {
	b := sheet.Bounds()
	cols, err := grid.Divide("atlas width", b.Dx(), tileW)
	if err != nil {
		return nil, err
	}
	rows, err := grid.Divide("atlas height", b.Dy(), tileH)
	if err != nil {
		return nil, err
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("build atlas: invalid cell size %dx%d", cellW, cellH)
	}

	a := &Atlas{
		tiles: make([][]*image.NRGBA, rows),
		cellW: cellW,
		cellH: cellH,
	}
	for r := 0; r < rows; r++ {
		a.tiles[r] = make([]*image.NRGBA, cols)
		for c := 0; c < cols; c++ {
			tile := SubImage(sheet, c*tileW, r*tileH, tileW, tileH)
			a.tiles[r][c] = Scale(tile, cellW, cellH)
		}
	}

	// The blank tile at (0,0) defines the background colour and the solid
	// block three rows from the bottom and five columns from the right
	// defines the foreground colour.
	if rows < 3 || cols < 5 {
		return nil, fmt.Errorf("build atlas: %dx%d tiles is too small to sample reference colours", cols, rows)
	}
	a.refBg = PixelAt(a.tiles[0][0], 0, 0)
	a.refFg = PixelAt(a.tiles[rows-3][cols-5], 0, 0)
	return a, nil
}

// Rows returns the number of tile rows.
func (a *Atlas) Rows() int { return len(a.tiles) }

// Cols returns the number of tile columns.
func (a *Atlas) Cols() int {
	if len(a.tiles) == 0 {
		return 0
	}
	return len(a.tiles[0])
}

// CellSize returns the size every tile was scaled to.
func (a *Atlas) CellSize() (w, h int) { return a.cellW, a.cellH }

// Tile returns the tile at (row, col), or nil outside the atlas. Callers
// must not modify the returned image.
func (a *Atlas) Tile(row, col int) *image.NRGBA {
	if row < 0 || row >= a.Rows() || col < 0 || col >= a.Cols() {
		return nil
	}
	return a.tiles[row][col]
}

// ReferenceColors returns the two colours every tile is drawn in.
func (a *Atlas) ReferenceColors() (fg, bg color.NRGBA) {
	return a.refFg, a.refBg
}
