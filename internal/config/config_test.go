package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tile-curses/internal/colors"
	"tile-curses/internal/grid"
)

// clearEnv hides every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) || k == "PORT" {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	w, h, err := c.GridSize()
	if err != nil || w != 80 || h != 45 {
		t.Errorf("GridSize = %d, %d, %v; want 80, 45", w, h, err)
	}
}

func TestLoadWithoutSources(t *testing.T) {
	clearEnv(t)
	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want defaults", c)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	base := filepath.Join(dir, ".env")
	if err := os.WriteFile(local, []byte("CURSES_FPS=60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	content := "CURSES_FPS=24\nCURSES_CELL_WIDTH=8\nCURSES_BACKGROUND=navy\nCURSES_FONT_FALLBACK=false\n"
	if err := os.WriteFile(base, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CURSES_BACKGROUND", "#102030")
	t.Setenv("PORT", "2022")

	c, err := Load(local, base)
	if err != nil {
		t.Fatal(err)
	}
	if c.FPS != 60 {
		t.Errorf("FPS = %d, want 60 from the first file", c.FPS)
	}
	if c.CellWidth != 8 {
		t.Errorf("CellWidth = %d, want 8", c.CellWidth)
	}
	if c.Background != "#102030" {
		t.Errorf("Background = %q, want the environment value", c.Background)
	}
	if c.FontFallback {
		t.Error("FontFallback = true, want false")
	}
	if c.ListenAddr != ":2022" {
		t.Errorf("ListenAddr = %q, want :2022", c.ListenAddr)
	}
}

func TestLoadBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CURSES_FPS", "fast")
	t.Setenv("CURSES_FONT_FALLBACK", "maybe")
	_, err := Load()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"CURSES_FPS", "CURSES_FONT_FALLBACK"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(c *Config)
		check func(t *testing.T, err error)
	}{
		{"indivisible screen", func(c *Config) { c.ScreenWidth = 1000; c.CellWidth = 24 }, func(t *testing.T, err error) {
			var de *grid.DivisibilityError
			if !errors.As(err, &de) {
				t.Errorf("expected DivisibilityError, got %v", err)
			}
		}},
		{"unknown background", func(c *Config) { c.Background = "plaid" }, func(t *testing.T, err error) {
			var ce *colors.UnknownColorError
			if !errors.As(err, &ce) {
				t.Errorf("expected UnknownColorError, got %v", err)
			}
		}},
		{"zero fps", func(c *Config) { c.FPS = 0 }, func(t *testing.T, err error) {
			if err == nil || !strings.Contains(err.Error(), "fps") {
				t.Errorf("err = %v", err)
			}
		}},
		{"negative cell", func(c *Config) { c.CellHeight = -16 }, func(t *testing.T, err error) {
			if err == nil {
				t.Error("expected an error")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.edit(&c)
			tt.check(t, c.Validate())
		})
	}
}
