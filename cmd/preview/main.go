package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"tile-curses/internal/app"
	"tile-curses/internal/config"
	"tile-curses/internal/game"
	"tile-curses/internal/termview"
)

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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Terminal error: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Terminal error: %v", err)
	}
	defer screen.Fini()

	view := termview.New(a.Table, a.Palette)
	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	// Step still composes pixels; the terminal shows the symbolic grid.
	ticker := time.NewTicker(game.FrameInterval(cfg.FPS))
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			if _, err := a.Loop.Step(); err != nil {
				log.Printf("frame: %v", err)
			}
			screen.Clear()
			if err := view.Draw(screen, a.Grid, 0, 0); err != nil {
				log.Printf("draw: %v", err)
			}
			screen.Show()
		}
	}
}
