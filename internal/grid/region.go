package grid

import "fmt"

// Region is a detached rectangle of cells, indexed [row][col].
type Region [][]Cell

// Width returns the number of columns in the region.
func (r Region) Width() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// Height returns the number of rows in the region.
func (r Region) Height() int { return len(r) }

// ExtractRegion copies the w x h rectangle whose top-left cell is (x, y).
// The whole rectangle must lie inside the grid.
func (g *Grid) ExtractRegion(x, y, w, h int) (Region, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("extract region: negative size %dx%d", w, h)
	}
	if w > 0 && h > 0 {
		if err := g.check(x, y); err != nil {
			return nil, err
		}
		if err := g.check(x+w-1, y+h-1); err != nil {
			return nil, err
		}
	}
	r := make(Region, h)
	for i := 0; i < h; i++ {
		r[i] = make([]Cell, w)
		copy(r[i], g.cells[y+i][x:x+w])
	}
	return r, nil
}

// ApplyRegion writes r back with its top-left cell at (x, y). Nothing is
// written unless the whole region fits.
func (g *Grid) ApplyRegion(x, y int, r Region) error {
	w, h := r.Width(), r.Height()
	if w == 0 || h == 0 {
		return nil
	}
	if err := g.check(x, y); err != nil {
		return err
	}
	if err := g.check(x+w-1, y+h-1); err != nil {
		return err
	}
	for i, row := range r {
		if len(row) != w {
			return fmt.Errorf("apply region: row %d has %d cells, want %d", i, len(row), w)
		}
	}
	for i, row := range r {
		for j, c := range row {
			g.set(x+j, y+i, c)
		}
	}
	return nil
}
