// Package app wires configuration, atlas, compositor, grid, scene and
// frame loop together for the commands.
package app

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"tile-curses/internal/colors"
	"tile-curses/internal/config"
	"tile-curses/internal/game"
	"tile-curses/internal/glyph"
	"tile-curses/internal/grid"
	"tile-curses/internal/render"
	"tile-curses/internal/scene"
)

// App is a ready to run display.
type App struct {
	Config     config.Config
	Table      *glyph.Table
	Palette    *colors.Palette
	Atlas      *render.Atlas
	Compositor *render.Compositor
	Grid       *grid.Grid
	Scene      *scene.Scene
	Loop       *game.FrameLoop
}

// LoadAtlasSheet reads the sheet at path. A missing file falls back to
// the generated sheet, in which case the tile size must be SheetTile.
func LoadAtlasSheet(cfg config.Config, table *glyph.Table) (*image.NRGBA, error) {
	sheet, err := render.LoadSheet(cfg.AtlasPath)
	if err == nil {
		return sheet, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if cfg.TileWidth != render.SheetTile || cfg.TileHeight != render.SheetTile {
		return nil, fmt.Errorf("atlas %s not found and tile size %dx%d does not match the built-in sheet", cfg.AtlasPath, cfg.TileWidth, cfg.TileHeight)
	}
	log.Printf("Atlas %s not found, using the built-in sheet", cfg.AtlasPath)
	return render.GenerateSheet(table), nil
}

// LoadScene reads the configured scene, or the default one when no path
// is set.
func LoadScene(cfg config.Config) (*scene.Scene, error) {
	if cfg.ScenePath == "" {
		return scene.Default(), nil
	}
	return scene.Load(cfg.ScenePath)
}

// New validates cfg and builds every component. The scene is drawn and
// its blinkers registered; the loop is not started.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &App{
		Config:  cfg,
		Table:   glyph.Standard(),
		Palette: colors.Standard(),
	}

	sheet, err := LoadAtlasSheet(cfg, a.Table)
	if err != nil {
		return nil, err
	}
	a.Atlas, err = render.BuildAtlas(sheet, cfg.TileWidth, cfg.TileHeight, cfg.CellWidth, cfg.CellHeight)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}

	var fallback render.FontFallback
	if cfg.FontFallback {
		fallback = render.BasicFontFallback{}
	}
	a.Compositor = render.NewCompositor(a.Atlas, a.Table, a.Palette, fallback)

	a.Grid, err = grid.NewForScreen(cfg.ScreenWidth, cfg.ScreenHeight, cfg.CellWidth, cfg.CellHeight)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	a.Scene, err = LoadScene(cfg)
	if err != nil {
		return nil, err
	}
	background := cfg.Background
	if a.Scene.Background != "" {
		background = a.Scene.Background
	}
	a.Loop = game.NewFrameLoop(a.Grid, a.Compositor, background, cfg.FPS)
	if err := a.Scene.Start(a.Loop, cfg.BlinkMillis); err != nil {
		return nil, fmt.Errorf("scene %s: %w", a.Scene.Name, err)
	}

	log.Printf("Display ready: %dx%d cells of %dx%d px, scene %q, %d fps",
		a.Grid.Width(), a.Grid.Height(), cfg.CellWidth, cfg.CellHeight, a.Scene.Name, cfg.FPS)
	return a, nil
}
