package grid

import "fmt"

// DivisibilityError reports a pixel dimension that is not a whole number of
// cells or tiles.
type DivisibilityError struct {
	What     string
	Dividend int
	Divisor  int
}

func (e *DivisibilityError) Error() string {
	return fmt.Sprintf("%s: %d is not divisible by %d", e.What, e.Dividend, e.Divisor)
}

// OutOfBoundsError reports a cell coordinate outside the grid.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// InvalidAlignmentError reports an alignment other than left, mid or right.
type InvalidAlignmentError struct {
	Align Align
}

func (e *InvalidAlignmentError) Error() string {
	return fmt.Sprintf("invalid alignment %q", string(e.Align))
}

// Divide returns dividend/divisor, failing when the division is inexact.
func Divide(what string, dividend, divisor int) (int, error) {
	if divisor <= 0 || dividend%divisor != 0 {
		return 0, &DivisibilityError{What: what, Dividend: dividend, Divisor: divisor}
	}
	return dividend / divisor, nil
}
