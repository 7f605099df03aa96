// Package config resolves startup settings from defaults, optional .env
// files and CURSES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tile-curses/internal/colors"
	"tile-curses/internal/grid"
)

// EnvPrefix starts every environment variable read by Load.
const EnvPrefix = "CURSES_"

// Config is the fully resolved configuration handed to constructors.
type Config struct {
	CellWidth, CellHeight     int // on-screen pixel size of one cell
	TileWidth, TileHeight     int // pixel size of one tile in the atlas sheet
	AtlasPath                 string
	ScreenWidth, ScreenHeight int
	FPS                       int
	Background                string
	FontFallback              bool
	ScenePath                 string
	BlinkMillis               int
	ListenAddr                string
	HostKeyPath               string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CellWidth:    16,
		CellHeight:   16,
		TileWidth:    16,
		TileHeight:   16,
		AtlasPath:    "assets/cp437.png",
		ScreenWidth:  1280,
		ScreenHeight: 720,
		FPS:          30,
		Background:   "black",
		FontFallback: true,
		BlinkMillis:  500,
		ListenAddr:   ":2222",
		HostKeyPath:  "host_key",
	}
}

// Load starts from Default, applies the given .env files and then the
// process environment. Missing files are skipped; earlier files win over
// later ones and the environment wins over all files.
func Load(files ...string) (Config, error) {
	vars := map[string]string{}
	for i := len(files) - 1; i >= 0; i-- {
		if _, err := os.Stat(files[i]); errors.Is(err, os.ErrNotExist) {
			continue
		}
		m, err := godotenv.Read(files[i])
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", files[i], err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	c := Default()
	var errs []error
	intVar := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	strVar := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	intVar("CELL_WIDTH", &c.CellWidth)
	intVar("CELL_HEIGHT", &c.CellHeight)
	intVar("TILE_WIDTH", &c.TileWidth)
	intVar("TILE_HEIGHT", &c.TileHeight)
	strVar("ATLAS", &c.AtlasPath)
	intVar("SCREEN_WIDTH", &c.ScreenWidth)
	intVar("SCREEN_HEIGHT", &c.ScreenHeight)
	intVar("FPS", &c.FPS)
	strVar("BACKGROUND", &c.Background)
	strVar("SCENE", &c.ScenePath)
	intVar("BLINK_MS", &c.BlinkMillis)
	strVar("LISTEN", &c.ListenAddr)
	strVar("HOST_KEY", &c.HostKeyPath)
	if v, ok := lookup(EnvPrefix + "FONT_FALLBACK"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sFONT_FALLBACK: %w", EnvPrefix, err))
		} else {
			c.FontFallback = b
		}
	}
	if port, ok := lookup("PORT"); ok && port != "" {
		c.ListenAddr = ":" + port
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks sizes and names before anything is built from them.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"cell width", c.CellWidth},
		{"cell height", c.CellHeight},
		{"tile width", c.TileWidth},
		{"tile height", c.TileHeight},
		{"screen width", c.ScreenWidth},
		{"screen height", c.ScreenHeight},
		{"fps", c.FPS},
		{"blink interval", c.BlinkMillis},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", f.name, f.v)
		}
	}
	if _, _, err := c.GridSize(); err != nil {
		return err
	}
	if !colors.Standard().Has(c.Background) {
		return &colors.UnknownColorError{Name: c.Background}
	}
	return nil
}

// GridSize is the number of cells that fit on the screen.
func (c Config) GridSize() (w, h int, err error) {
	w, err = grid.Divide("screen width", c.ScreenWidth, c.CellWidth)
	if err != nil {
		return 0, 0, err
	}
	h, err = grid.Divide("screen height", c.ScreenHeight, c.CellHeight)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
