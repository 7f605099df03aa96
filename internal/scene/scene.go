// Package scene loads JSON descriptions of what to draw on a grid at
// startup: messages, lines, rectangles, frames and blinking cells.
package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tile-curses/internal/game"
	"tile-curses/internal/grid"
)

// Box is a clipping rectangle in cells. Zero width or height means the
// full grid.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Message is a string laid out with grid.Place.
type Message struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Text  string `json:"text"`
	Fg    string `json:"fg,omitempty"`
	Bg    string `json:"bg,omitempty"`
	Align string `json:"align,omitempty"` // left, mid or right
	Wrap  string `json:"wrap,omitempty"`  // auto or clamp
	Box   *Box   `json:"box,omitempty"`
}

// Style is the cell written by lines, rectangles and frame fills.
type Style struct {
	Glyph string `json:"glyph,omitempty"`
	Fg    string `json:"fg,omitempty"`
	Bg    string `json:"bg,omitempty"`
}

// Line is a horizontal ("h") or vertical ("v") run of cells from From to
// To inclusive, at column or row At.
type Line struct {
	Dir  string `json:"dir"`
	From int    `json:"from"`
	To   int    `json:"to"`
	At   int    `json:"at"`
	Style
}

// Rect is a filled or outlined rectangle.
type Rect struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	W      int  `json:"w"`
	H      int  `json:"h"`
	Filled bool `json:"filled,omitempty"`
	Style
}

// Frame is a box-drawing border, style 0 single or 1 double.
type Frame struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Style  int    `json:"style"`
	Filled bool   `json:"filled,omitempty"`
	Fill   Style  `json:"fill"`
	Fg     string `json:"fg,omitempty"`
	Bg     string `json:"bg,omitempty"`
}

// Blinker makes the cell at (X, Y) blink.
type Blinker struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Mode       string `json:"mode,omitempty"` // transparent or swap
	IntervalMS int    `json:"interval_ms,omitempty"`
}

// Scene is a complete startup drawing. Items are drawn in the order
// rects, frames, lines, messages so text ends up on top.
type Scene struct {
	Name       string    `json:"name"`
	Background string    `json:"background,omitempty"`
	Rects      []Rect    `json:"rects,omitempty"`
	Frames     []Frame   `json:"frames,omitempty"`
	Lines      []Line    `json:"lines,omitempty"`
	Messages   []Message `json:"messages,omitempty"`
	Blinkers   []Blinker `json:"blinkers,omitempty"`
}

// Load reads a JSON scene file from disk.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene JSON: %w", err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return &s, nil
}

// LoadDir loads every *.json file in dir, indexed by scene name.
func LoadDir(dir string) (map[string]*Scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scene directory: %w", err)
	}

	all := make(map[string]*Scene)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		s, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := all[s.Name]; exists {
			return nil, fmt.Errorf("duplicate scene name %q in %s", s.Name, entry.Name())
		}
		all[s.Name] = s
	}
	return all, nil
}

// Validate checks the values that would otherwise only fail while
// drawing.
func (s *Scene) Validate() error {
	for i, m := range s.Messages {
		if _, err := wrapMode(m.Wrap); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		switch grid.Align(m.Align) {
		case "", grid.AlignLeft, grid.AlignMid, grid.AlignRight:
		default:
			return fmt.Errorf("message %d: %w", i, &grid.InvalidAlignmentError{Align: grid.Align(m.Align)})
		}
	}
	for i, l := range s.Lines {
		if l.Dir != "h" && l.Dir != "v" {
			return fmt.Errorf("line %d: direction %q is not h or v", i, l.Dir)
		}
	}
	for i, f := range s.Frames {
		if f.Style != grid.FrameSingle && f.Style != grid.FrameDouble {
			return fmt.Errorf("frame %d: unknown style %d", i, f.Style)
		}
	}
	for i, b := range s.Blinkers {
		if _, err := game.ParseBlinkMode(b.Mode); err != nil {
			return fmt.Errorf("blinker %d: %w", i, err)
		}
		if b.IntervalMS < 0 {
			return fmt.Errorf("blinker %d: negative interval", i)
		}
	}
	return nil
}

func wrapMode(s string) (grid.WrapMode, error) {
	switch s {
	case "", "auto":
		return grid.WrapAuto, nil
	case "clamp":
		return grid.WrapClamp, nil
	}
	return 0, fmt.Errorf("unknown wrap mode %q", s)
}

func (st Style) shape() grid.ShapeStyle {
	return grid.ShapeStyle{Glyph: st.Glyph, Fg: st.Fg, Bg: st.Bg}
}

// Apply draws the scene onto g. Blinkers are returned for the caller to
// start; their cells are not touched.
func (s *Scene) Apply(g *grid.Grid) ([]Blinker, error) {
	for _, r := range s.Rects {
		grid.DrawRect(g, r.X, r.Y, r.W, r.H, r.Filled, r.Style.shape())
	}
	for i, f := range s.Frames {
		err := grid.DrawFrame(g, f.X, f.Y, f.W, f.H, grid.FrameOptions{
			Style:  f.Style,
			Filled: f.Filled,
			Fill:   f.Fill.shape(),
			Fg:     f.Fg,
			Bg:     f.Bg,
		})
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	for _, l := range s.Lines {
		if l.Dir == "v" {
			grid.DrawVLine(g, l.At, l.From, l.To, l.Style.shape())
		} else {
			grid.DrawHLine(g, l.From, l.To, l.At, l.Style.shape())
		}
	}
	for i, m := range s.Messages {
		mode, err := wrapMode(m.Wrap)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		opt := grid.TextOptions{Fg: m.Fg, Bg: m.Bg, Mode: mode, Align: grid.Align(m.Align)}
		if m.Box != nil {
			opt.Box = grid.Box{X: m.Box.X, Y: m.Box.Y, W: m.Box.W, H: m.Box.H}
		}
		if err := g.Place(m.X, m.Y, m.Text, opt); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return s.Blinkers, nil
}

// Default returns a built-in demo scene laid out for an 80x45 grid. It
// clips cleanly on smaller grids.
func Default() *Scene {
	return &Scene{
		Name:       "Default",
		Background: "black",
		Frames: []Frame{
			{X: 0, Y: 0, W: 80, H: 45, Style: grid.FrameDouble, Fg: "gray", Bg: "transparent"},
			{X: 4, Y: 6, W: 36, H: 12, Style: grid.FrameSingle, Filled: true,
				Fill: Style{Glyph: " ", Bg: "navy"}, Fg: "skyblue", Bg: "navy"},
		},
		Rects: []Rect{
			{X: 44, Y: 6, W: 32, H: 12, Filled: true, Style: Style{Glyph: "/Lshade", Fg: "darkgray", Bg: "transparent"}},
		},
		Lines: []Line{
			{Dir: "h", From: 1, To: 78, At: 3, Style: Style{Glyph: "/Hbar", Fg: "gray"}},
		},
		Messages: []Message{
			{X: 40, Y: 1, Text: "tile-curses", Fg: "yellow", Align: "mid"},
			{X: 5, Y: 7, Fg: "white", Bg: "navy",
				Text: "Text wraps inside its box and anything past the last row is dropped.",
				Box:  &Box{X: 5, Y: 7, W: 34, H: 4}},
			{X: 5, Y: 12, Fg: "lightgreen", Bg: "navy", Wrap: "clamp",
				Text: "Clamped text stops at the right edge of its box without wrapping.",
				Box:  &Box{X: 5, Y: 12, W: 34, H: 3}},
			{X: 75, Y: 20, Text: "/Smile /Heart /Uarrow /Block", Fg: "orange", Align: "right"},
			{X: 4, Y: 22, Text: "> /Block", Fg: "lime"},
		},
		Blinkers: []Blinker{
			{X: 6, Y: 22, Mode: "transparent", IntervalMS: 500},
			{X: 40, Y: 1, Mode: "swap", IntervalMS: 1000},
		},
	}
}

// Start applies the scene to the loop's grid and registers its blinkers.
// Blinkers without an interval use defaultInterval; blinkers off the grid
// are skipped like any other clipped item.
func (s *Scene) Start(fl *game.FrameLoop, defaultInterval int) error {
	blinkers, err := s.Apply(fl.Grid())
	if err != nil {
		return err
	}
	for i, b := range blinkers {
		mode, err := game.ParseBlinkMode(b.Mode)
		if err != nil {
			return fmt.Errorf("blinker %d: %w", i, err)
		}
		if !fl.Grid().InBounds(b.X, b.Y) {
			continue
		}
		interval := b.IntervalMS
		if interval == 0 {
			interval = defaultInterval
		}
		if err := fl.AddBlinker(b.X, b.Y, mode, interval); err != nil {
			return fmt.Errorf("blinker %d: %w", i, err)
		}
	}
	return nil
}
