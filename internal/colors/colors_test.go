package colors

import (
	"errors"
	"image/color"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"White", color.NRGBA{255, 255, 255, 255}},
		{"transparent", Transparent},
		{"trans", Transparent},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, name := range []string{"blurple", "#zzzzzz", "", "#12"} {
		_, err := Resolve(name)
		var ue *UnknownColorError
		if !errors.As(err, &ue) {
			t.Errorf("Resolve(%q) = %v, want UnknownColorError", name, err)
			continue
		}
		if ue.Name != name {
			t.Errorf("error name = %q, want %q", ue.Name, name)
		}
	}
}

func TestNewPalette(t *testing.T) {
	p := NewPalette(map[string]color.NRGBA{
		"Amber":       {255, 191, 0, 255},
		"transparent": {1, 2, 3, 255},
	})
	if c, err := p.Resolve("amber"); err != nil || c != (color.NRGBA{255, 191, 0, 255}) {
		t.Errorf("Resolve(amber) = %v, %v", c, err)
	}
	if c, _ := p.Resolve("transparent"); c != Transparent {
		t.Errorf("transparent was overridden: %v", c)
	}
	if !p.Has("white") {
		t.Errorf("built-in names missing from extended palette")
	}
	if Standard().Has("amber") {
		t.Errorf("extending a palette leaked into the standard one")
	}
}
