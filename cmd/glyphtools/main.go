package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"tile-curses/internal/app"
	"tile-curses/internal/config"
	"tile-curses/internal/glyph"
	"tile-curses/internal/grid"
	"tile-curses/internal/render"
	"tile-curses/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "table":
		runTable()
	case "tokens":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: glyphtools tokens <message>")
			os.Exit(1)
		}
		runTokens(args[0])
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: glyphtools validate <scene-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: glyphtools stats <scene-file>")
			os.Exit(1)
		}
		runStats(args[0])
	case "render":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: glyphtools render <scene-file> <out.png>")
			os.Exit(1)
		}
		os.Exit(runRender(args[0], args[1]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: glyphtools <command> [args]

Commands:
  table                          Print the glyph table with escape names
  tokens   <message>             Show how a message is tokenized
  validate <scene-dir>           Load and apply every scene in a directory
  stats    <scene-file>          Show glyph and colour usage of a scene
  render   <scene-file> <out.png> Compose one frame of a scene to PNG`)
}

// --- table ---

func runTable() {
	t := glyph.Standard()
	fmt.Print("    ")
	for c := 0; c < glyph.Cols; c++ {
		fmt.Printf("%2X", c)
	}
	fmt.Println()
	for r := 0; r < glyph.Rows; r++ {
		fmt.Printf("%2X  ", r)
		for c := 0; c < glyph.Cols; c++ {
			fmt.Printf(" %c", t.Rune(t.TokenAt(r, c)))
		}
		fmt.Println()
	}

	fmt.Println("\nEscapes:")
	for _, name := range t.Escapes() {
		row, col, _ := t.GlyphAt(name)
		fmt.Printf("  %-12s (%2d,%2d) %c\n", name, row, col, t.Rune(name))
	}
}

// --- tokens ---

func runTokens(msg string) {
	t := glyph.Standard()
	tokens := t.Tokenize(msg)
	fmt.Printf("%d tokens\n", len(tokens))
	for i, tok := range tokens {
		if row, col, ok := t.GlyphAt(tok); ok {
			fmt.Printf("  %3d %-12q atlas (%d,%d)\n", i, tok, row, col)
		} else {
			fmt.Printf("  %3d %-12q no tile (font fallback)\n", i, tok)
		}
	}
}

// --- validate ---

func runValidate(dir string) int {
	all, err := scene.LoadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	w, h, _ := config.Default().GridSize()
	errors := 0
	for name, s := range all {
		fmt.Printf("Validating %q...\n", name)
		g := grid.New(w, h)
		blinkers, err := s.Apply(g)
		if err != nil {
			fmt.Printf("  ERROR: %v\n", err)
			errors++
			continue
		}
		for _, b := range blinkers {
			if !g.InBounds(b.X, b.Y) {
				fmt.Printf("  WARN: blinker at (%d,%d) is outside a %dx%d grid\n", b.X, b.Y, w, h)
			}
		}
		fmt.Printf("  OK (%d messages, %d blinkers)\n", len(s.Messages), len(blinkers))
	}

	if errors > 0 {
		fmt.Printf("\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Printf("\nAll %d scenes valid\n", len(all))
	return 0
}

// --- stats ---

func runStats(path string) {
	s, err := scene.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	w, h, _ := config.Default().GridSize()
	g := grid.New(w, h)
	if _, err := s.Apply(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%dx%d = %d cells)\n\n", s.Name, w, h, w*h)

	glyphs := map[string]int{}
	pairs := map[string]int{}
	blank := 0
	g.Each(func(x, y int, c grid.Cell) {
		if c == grid.Blank() {
			blank++
			return
		}
		glyphs[c.Glyph]++
		pairs[c.Fg+" on "+c.Bg]++
	})

	fmt.Printf("Blank cells: %d (%.1f%%)\n", blank, float64(blank)/float64(w*h)*100)
	printCounts("Glyphs", glyphs, w*h)
	printCounts("Colour pairs (distinct cache entries per glyph)", pairs, w*h)
}

func printCounts(title string, counts map[string]int, total int) {
	type entry struct {
		name  string
		count int
	}
	var sorted []entry
	for name, count := range counts {
		sorted = append(sorted, entry{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	fmt.Printf("\n%s:\n", title)
	for _, e := range sorted {
		pct := float64(e.count) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  %-24q %4d (%5.1f%%) %s\n", e.name, e.count, pct, bar)
	}
}

// --- render ---

func runRender(scenePath, out string) int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg.ScenePath = scenePath

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	f, err := a.Loop.Step()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := render.SavePNG(out, f.Image); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	st := a.Compositor.Cache().Stats()
	fmt.Printf("Wrote %s (%dx%d), %d glyph images cached, %d hits\n",
		out, f.Image.Bounds().Dx(), f.Image.Bounds().Dy(), st.Entries, st.Hits)
	return 0
}
