// Package colors resolves colour names used by grid cells to RGBA values.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// TransparentName is the canonical reserved name for a see-through colour.
const TransparentName = "transparent"

// Transparent is the value of the reserved "transparent" and "trans" names.
var Transparent = color.NRGBA{}

// UnknownColorError reports a colour name missing from the table.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %q", e.Name)
}

// standardNames is the built-in name table. Names are matched
// case-insensitively.
var standardNames = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"gray":        {190, 190, 190, 255},
	"grey":        {190, 190, 190, 255},
	"darkgray":    {169, 169, 169, 255},
	"darkgrey":    {169, 169, 169, 255},
	"lightgray":   {211, 211, 211, 255},
	"lightgrey":   {211, 211, 211, 255},
	"dimgray":     {105, 105, 105, 255},
	"silver":      {192, 192, 192, 255},
	"maroon":      {176, 48, 96, 255},
	"darkred":     {139, 0, 0, 255},
	"orange":      {255, 165, 0, 255},
	"gold":        {255, 215, 0, 255},
	"brown":       {165, 42, 42, 255},
	"pink":        {255, 192, 203, 255},
	"purple":      {160, 32, 240, 255},
	"violet":      {238, 130, 238, 255},
	"navy":        {0, 0, 128, 255},
	"darkblue":    {0, 0, 139, 255},
	"skyblue":     {135, 206, 235, 255},
	"lightblue":   {173, 216, 230, 255},
	"teal":        {0, 128, 128, 255},
	"darkgreen":   {0, 100, 0, 255},
	"lightgreen":  {144, 238, 144, 255},
	"lime":        {50, 205, 50, 255},
	"olive":       {128, 128, 0, 255},
	"darkcyan":    {0, 139, 139, 255},
	"darkmagenta": {139, 0, 139, 255},
	"beige":       {245, 245, 220, 255},
	"transparent": Transparent,
	"trans":       Transparent,
}

// Palette is an immutable name -> RGBA table.
type Palette struct {
	names map[string]color.NRGBA
}

var standard = &Palette{names: standardNames}

// Standard returns the built-in palette.
func Standard() *Palette {
	return standard
}

// NewPalette returns the built-in palette extended with extra names.
// Extra entries override built-in ones, except the reserved transparent
// names.
func NewPalette(extra map[string]color.NRGBA) *Palette {
	names := make(map[string]color.NRGBA, len(standardNames)+len(extra))
	for k, v := range standardNames {
		names[k] = v
	}
	for k, v := range extra {
		names[strings.ToLower(k)] = v
	}
	names["transparent"] = Transparent
	names["trans"] = Transparent
	return &Palette{names: names}
}

// Resolve returns the RGBA value of a colour reference: a table name or a
// "#rrggbb" hex literal.
func (p *Palette) Resolve(name string) (color.NRGBA, error) {
	if c, ok := p.names[strings.ToLower(name)]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		hc, err := colorful.Hex(name)
		if err != nil {
			return color.NRGBA{}, &UnknownColorError{Name: name}
		}
		r, g, b := hc.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	return color.NRGBA{}, &UnknownColorError{Name: name}
}

// Resolve looks name up in the standard palette.
func Resolve(name string) (color.NRGBA, error) {
	return standard.Resolve(name)
}

// Has reports whether name resolves.
func (p *Palette) Has(name string) bool {
	_, err := p.Resolve(name)
	return err == nil
}
