package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tile-curses/internal/app"
	"tile-curses/internal/config"
	"tile-curses/internal/render"
)

// window shows the frame loop's output in a desktop window. Ebiten drives
// the loop: one Step per tick at the configured FPS.
type window struct {
	app    *app.App
	screen *ebiten.Image
}

func (w *window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		cw, ch := w.app.Compositor.CellSize()
		x, y := render.GridCoord(px, py, cw, ch)
		if c, err := w.app.Grid.Cell(x, y); err == nil {
			log.Printf("cell (%d,%d): %q %s on %s", x, y, c.Glyph, c.Fg, c.Bg)
		}
	}

	if _, err := w.app.Loop.Step(); err != nil {
		log.Printf("frame: %v", err)
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	f := w.app.Loop.Latest()
	if f.Image == nil {
		return
	}
	w.screen.WritePixels(f.Image.Pix)
	screen.DrawImage(w.screen, nil)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.app.Config.ScreenWidth, w.app.Config.ScreenHeight
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	envFile := flag.String("env", ".env", "optional .env file")
	scenePath := flag.String("scene", "", "scene JSON file (overrides CURSES_SCENE)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *scenePath != "" {
		cfg.ScenePath = *scenePath
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Startup error: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("tile-curses: " + a.Scene.Name)
	ebiten.SetTPS(cfg.FPS)

	w := &window{app: a, screen: ebiten.NewImage(cfg.ScreenWidth, cfg.ScreenHeight)}
	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		log.Fatalf("Window error: %v", err)
	}
}
