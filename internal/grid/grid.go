package grid

// Grid is a fixed-size array of cells addressed in cell units. It is not
// safe for concurrent use; the owner serialises all access.
type Grid struct {
	width, height int
	cells         [][]Cell // [y][x]

	// version counts writes; versions[y][x] is the count at the last
	// write to that cell
	version  uint64
	versions [][]uint64
}

// New creates a cleared grid of width x height cells.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height}
	g.cells = make([][]Cell, height)
	g.versions = make([][]uint64, height)
	for y := 0; y < height; y++ {
		g.cells[y] = make([]Cell, width)
		g.versions[y] = make([]uint64, width)
	}
	g.Clear()
	return g
}

// NewForScreen sizes a grid so that cellW x cellH cells exactly cover a
// screenW x screenH pixel surface.
func NewForScreen(screenW, screenH, cellW, cellH int) (*Grid, error) {
	w, err := Divide("screen width", screenW, cellW)
	if err != nil {
		return nil, err
	}
	h, err := Divide("screen height", screenH, cellH)
	if err != nil {
		return nil, err
	}
	return New(w, h), nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) check(x, y int) error {
	if !g.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return nil
}

// PutChar overwrites the cell at (x, y).
func (g *Grid) PutChar(x, y int, glyph, fg, bg string) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	g.set(x, y, Cell{Glyph: glyph, Fg: fg, Bg: bg})
	return nil
}

// Put writes glyph at (x, y) in the default colours.
func (g *Grid) Put(x, y int, glyph string) error {
	return g.PutChar(x, y, glyph, DefaultFg, DefaultBg)
}

// Cell returns a copy of the cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, error) {
	if err := g.check(x, y); err != nil {
		return Cell{}, err
	}
	return g.cells[y][x], nil
}

// SetCell replaces the cell at (x, y).
func (g *Grid) SetCell(x, y int, c Cell) error {
	if err := g.check(x, y); err != nil {
		return err
	}
	g.set(x, y, c)
	return nil
}

// set writes a cell that is known to be in bounds.
func (g *Grid) set(x, y int, c Cell) {
	g.version++
	g.cells[y][x] = c
	g.versions[y][x] = g.version
}

// Version returns a stamp that changes every time the cell at (x, y) is
// written, even when the new value equals the old one.
func (g *Grid) Version(x, y int) (uint64, error) {
	if err := g.check(x, y); err != nil {
		return 0, err
	}
	return g.versions[y][x], nil
}

// Clear resets every cell to Blank.
func (g *Grid) Clear() {
	blank := Blank()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.set(x, y, blank)
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Snapshot returns a deep copy of the whole grid.
func (g *Grid) Snapshot() Region {
	r, _ := g.ExtractRegion(0, 0, g.width, g.height)
	return r
}
