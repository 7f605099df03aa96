package game

import (
	"fmt"
	"strings"

	"tile-curses/internal/colors"
	"tile-curses/internal/grid"
)

// BlinkMode selects the alternate state of a blinking cell.
type BlinkMode int

const (
	// BlinkTransparent alternates with an empty, fully transparent cell.
	BlinkTransparent BlinkMode = iota
	// BlinkSwap alternates with the cell's colours exchanged.
	BlinkSwap
)

func (m BlinkMode) String() string {
	switch m {
	case BlinkTransparent:
		return "transparent"
	case BlinkSwap:
		return "swap"
	}
	return fmt.Sprintf("BlinkMode(%d)", int(m))
}

// ParseBlinkMode accepts "transparent" (or "0") and "swap" (or "1").
func ParseBlinkMode(s string) (BlinkMode, error) {
	switch strings.ToLower(s) {
	case "", "0", "transparent", "trans":
		return BlinkTransparent, nil
	case "1", "swap":
		return BlinkSwap, nil
	}
	return 0, fmt.Errorf("unknown blink mode %q", s)
}

// BlinkConfig configures a Blinker.
type BlinkConfig struct {
	Mode           BlinkMode
	IntervalMillis int
	FPS            int
}

// Blinker toggles a grid cell between its original state and an alternate
// state every IntervalMillis of frames.
type Blinker struct {
	g         *grid.Grid
	mode      BlinkMode
	threshold int

	tick     int
	selected int
	states   [2]grid.Cell

	// position and grid version of the last Refresh write, so the blinker
	// does not mistake its own alternate state for a new original
	wrote        bool
	wroteAt      [2]int
	wroteVersion uint64
}

// NewBlinker creates a blinker over g.
func NewBlinker(g *grid.Grid, cfg BlinkConfig) (*Blinker, error) {
	if cfg.Mode != BlinkTransparent && cfg.Mode != BlinkSwap {
		return nil, fmt.Errorf("new blinker: unknown mode %d", int(cfg.Mode))
	}
	if cfg.IntervalMillis <= 0 {
		return nil, fmt.Errorf("new blinker: interval must be positive, got %d", cfg.IntervalMillis)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("new blinker: fps must be positive, got %d", cfg.FPS)
	}
	return &Blinker{
		g:         g,
		mode:      cfg.Mode,
		threshold: FramesFor(cfg.IntervalMillis, cfg.FPS),
	}, nil
}

// Update advances the blinker by one frame.
func (b *Blinker) Update() {
	b.tick++
	if b.tick >= b.threshold {
		b.selected = (b.selected + 1) % len(b.states)
		b.tick = 0
	}
}

// Selected returns 0 while the original state shows and 1 for the
// alternate state.
func (b *Blinker) Selected() int { return b.selected }

// Refresh recomputes both states from the cell at (x, y) and writes the
// selected one back. A cell nobody has written since the last Refresh
// keeps its remembered original; any other write becomes the new original.
func (b *Blinker) Refresh(x, y int) error {
	cur, err := b.g.Cell(x, y)
	if err != nil {
		return err
	}
	ver, err := b.g.Version(x, y)
	if err != nil {
		return err
	}
	orig := cur
	if b.wrote && b.wroteAt == [2]int{x, y} && ver == b.wroteVersion {
		orig = b.states[0]
	}

	b.states[0] = orig
	b.states[1] = b.alternate(orig)
	next := b.states[b.selected]
	if err := b.g.SetCell(x, y, next); err != nil {
		return err
	}
	b.wrote = true
	b.wroteAt = [2]int{x, y}
	b.wroteVersion, _ = b.g.Version(x, y)
	return nil
}

func (b *Blinker) alternate(c grid.Cell) grid.Cell {
	if b.mode == BlinkSwap {
		return c.Swapped()
	}
	return grid.Cell{Glyph: " ", Fg: colors.TransparentName, Bg: colors.TransparentName}
}
