package grid

import (
	"errors"
	"testing"
)

func TestNewForScreen(t *testing.T) {
	tests := []struct {
		name           string
		sw, sh, cw, ch int
		wantW, wantH   int
		wantErr        bool
	}{
		{"exact", 640, 480, 16, 16, 40, 30, false},
		{"non-square cells", 800, 600, 8, 12, 100, 50, false},
		{"width remainder", 650, 480, 16, 16, 0, 0, true},
		{"height remainder", 640, 481, 16, 16, 0, 0, true},
		{"zero cell", 640, 480, 0, 16, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewForScreen(tt.sw, tt.sh, tt.cw, tt.ch)
			if tt.wantErr {
				var de *DivisibilityError
				if !errors.As(err, &de) {
					t.Fatalf("expected DivisibilityError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Width() != tt.wantW || g.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", g.Width(), g.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNewGridIsCleared(t *testing.T) {
	g := New(3, 2)
	g.Each(func(x, y int, c Cell) {
		if c != Blank() {
			t.Errorf("cell (%d,%d) = %+v, want blank", x, y, c)
		}
	})
}

func TestPutCharAndBounds(t *testing.T) {
	g := New(4, 3)
	if err := g.PutChar(3, 2, "x", "red", "blue"); err != nil {
		t.Fatalf("PutChar: %v", err)
	}
	c, err := g.Cell(3, 2)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	if c != (Cell{Glyph: "x", Fg: "red", Bg: "blue"}) {
		t.Errorf("Cell = %+v", c)
	}

	for _, p := range [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		err := g.PutChar(p[0], p[1], "x", "red", "blue")
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Errorf("PutChar(%d,%d) = %v, want OutOfBoundsError", p[0], p[1], err)
		}
		if _, err := g.Cell(p[0], p[1]); !errors.As(err, &oob) {
			t.Errorf("Cell(%d,%d) = %v, want OutOfBoundsError", p[0], p[1], err)
		}
	}
}

func TestCellReturnsSnapshot(t *testing.T) {
	g := New(2, 2)
	c, _ := g.Cell(0, 0)
	c.Glyph = "z"
	got, _ := g.Cell(0, 0)
	if got.Glyph != DefaultGlyph {
		t.Errorf("mutating a returned cell changed the grid: %q", got.Glyph)
	}
}

func TestClear(t *testing.T) {
	g := New(3, 3)
	g.Put(1, 1, "#")
	g.SetCell(2, 2, Cell{Glyph: "@", Fg: "red", Bg: "black"})
	g.Clear()
	g.Each(func(x, y int, c Cell) {
		if c != Blank() {
			t.Errorf("cell (%d,%d) = %+v after Clear", x, y, c)
		}
	})
}

func TestExtractApplyIdentity(t *testing.T) {
	g := New(6, 4)
	g.Place(0, 0, "abcdefghijklmnopqrstuvwx", TextOptions{Fg: "red"})
	before := g.Snapshot()

	r, err := g.ExtractRegion(1, 1, 3, 2)
	if err != nil {
		t.Fatalf("ExtractRegion: %v", err)
	}
	if r.Width() != 3 || r.Height() != 2 {
		t.Fatalf("region size = %dx%d", r.Width(), r.Height())
	}
	if r[0][0].Glyph != "h" || r[1][2].Glyph != "p" {
		t.Errorf("region content = %q %q", r[0][0].Glyph, r[1][2].Glyph)
	}
	if err := g.ApplyRegion(1, 1, r); err != nil {
		t.Fatalf("ApplyRegion: %v", err)
	}
	after := g.Snapshot()
	for y := range before {
		for x := range before[y] {
			if before[y][x] != after[y][x] {
				t.Errorf("cell (%d,%d) changed: %+v -> %+v", x, y, before[y][x], after[y][x])
			}
		}
	}
}

func TestRegionSaveRestore(t *testing.T) {
	g := New(5, 5)
	g.Place(0, 0, "hello", TextOptions{})
	saved, err := g.ExtractRegion(0, 0, 5, 1)
	if err != nil {
		t.Fatalf("ExtractRegion: %v", err)
	}

	// the region is a deep copy
	g.Put(0, 0, "J")
	if saved[0][0].Glyph != "h" {
		t.Errorf("saved region aliased the grid: %q", saved[0][0].Glyph)
	}

	if err := g.ApplyRegion(0, 0, saved); err != nil {
		t.Fatalf("ApplyRegion: %v", err)
	}
	c, _ := g.Cell(0, 0)
	if c.Glyph != "h" {
		t.Errorf("restore failed, got %q", c.Glyph)
	}
}

func TestRegionBounds(t *testing.T) {
	g := New(4, 4)
	var oob *OutOfBoundsError
	if _, err := g.ExtractRegion(2, 2, 3, 1); !errors.As(err, &oob) {
		t.Errorf("ExtractRegion overflow = %v, want OutOfBoundsError", err)
	}
	r := Region{{Blank(), Blank()}}
	if err := g.ApplyRegion(3, 0, r); !errors.As(err, &oob) {
		t.Errorf("ApplyRegion overflow = %v, want OutOfBoundsError", err)
	}
	if err := g.ApplyRegion(0, 0, nil); err != nil {
		t.Errorf("ApplyRegion(nil) = %v", err)
	}
}

func TestVersionTracksWrites(t *testing.T) {
	g := New(3, 2)
	v0, err := g.Version(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	// rewriting the same value still counts as a write
	if err := g.SetCell(1, 1, Blank()); err != nil {
		t.Fatal(err)
	}
	v1, _ := g.Version(1, 1)
	if v1 == v0 {
		t.Error("SetCell did not change the version")
	}

	if err := g.Put(0, 0, "x"); err != nil {
		t.Fatal(err)
	}
	if v, _ := g.Version(1, 1); v != v1 {
		t.Error("a write to another cell changed the version")
	}

	writes := []struct {
		name string
		fn   func() error
	}{
		{"PutChar", func() error { return g.PutChar(1, 1, "a", "red", "blue") }},
		{"ApplyRegion", func() error { return g.ApplyRegion(1, 1, Region{{Blank()}}) }},
		{"Place", func() error { return g.Place(1, 1, "b", TextOptions{}) }},
		{"Clear", func() error { g.Clear(); return nil }},
	}
	for _, w := range writes {
		t.Run(w.name, func(t *testing.T) {
			before, _ := g.Version(1, 1)
			if err := w.fn(); err != nil {
				t.Fatal(err)
			}
			if after, _ := g.Version(1, 1); after == before {
				t.Errorf("%s did not change the version", w.name)
			}
		})
	}

	if _, err := g.Version(3, 0); err == nil {
		t.Error("expected an out of bounds error")
	}
}
