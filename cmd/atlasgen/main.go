package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tile-curses/internal/glyph"
	"tile-curses/internal/render"
)

func main() {
	out := flag.String("out", "assets/cp437.png", "output PNG file")
	tile := flag.String("tile", "16x16", "tile size as WxH; the sheet is scaled from 16x16")
	flag.Parse()

	w, h, err := parseSize(*tile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sheet := render.GenerateSheet(glyph.Standard())
	if w != render.SheetTile || h != render.SheetTile {
		sheet = render.Scale(sheet, w*glyph.Cols, h*glyph.Rows)
	}

	if err := render.SavePNG(*out, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d tiles of %dx%d)\n", *out, glyph.Cols, glyph.Rows, w, h)
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", w, h)
	}
	return w, h, nil
}
