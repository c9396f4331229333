// Package palette provides chart color palettes and the per-render
// color resolver that assigns palette entries to category titles.
//
// Colors are plain hex strings ("#rrggbb"). User-supplied colors are
// validated and normalized through go-colorful so that downstream
// consumers (the SVG encoder and the PNG rasterizer) never see a paint
// value they cannot parse.
package palette

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pillarchart/pillar/pkg/errors"
)

// Palette is an ordered list of category colors.
type Palette []string

// defaultColors is the built-in ten-color cycle.
var defaultColors = Palette{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// Default returns a copy of the built-in palette. Callers may mutate the
// returned slice freely.
func Default() Palette {
	p := make(Palette, len(defaultColors))
	copy(p, defaultColors)
	return p
}

// At returns the color for index i, cycling modulo the palette length.
// An empty palette yields "".
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// Parse validates and normalizes a list of user-supplied colors into a
// Palette. Every entry must parse through [ParseColor]; an empty list is
// a configuration error.
func Parse(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "palette cannot be empty")
	}
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		norm, err := ParseColor(c)
		if err != nil {
			return nil, err
		}
		p = append(p, norm)
	}
	return p, nil
}

// names maps the few CSS color keywords the charts use to hex values.
// Anything else must be given in hex form.
var names = map[string]string{
	"white": "#ffffff",
	"black": "#000000",
	"grey":  "#808080",
	"gray":  "#808080",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
}

// ParseColor normalizes a single color to lowercase "#rrggbb" form.
// Accepted inputs: "#rgb", "#rrggbb", and the keywords in the names table.
// "none" passes through unchanged (it is a valid SVG paint, not a color).
func ParseColor(s string) (string, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "none" {
		return "none", nil
	}
	if hex, ok := names[in]; ok {
		return hex, nil
	}
	c, err := colorful.Hex(in)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigInvalid, err, "invalid color %q", s)
	}
	return c.Hex(), nil
}

// RGB converts a normalized color to a colorful.Color for raster use.
// "none" and unparseable values come back as opaque white with ok=false.
func RGB(s string) (colorful.Color, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}, false
	}
	return c, true
}
