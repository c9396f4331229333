package barchart

import (
	"fmt"

	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/palette"
)

// Kind identifies this chart type in pipelines, hooks and the server.
const Kind = "bar"

// Spacing modes.
const (
	SpacingVariable = "variable"
	SpacingFixed    = "fixed"
)

// Padding is the inset between the container edge and the plot, in
// pixels per side.
type Padding struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Spacing selects the gap between bars. In variable mode the gap is
// computed from the available width with MinSpacing as the floor; in
// fixed mode the configured gap is used verbatim.
type Spacing struct {
	Mode  string  `toml:"mode"`
	Fixed float64 `toml:"fixed"`
}

// ScaleConfig configures the numeric value scale: gridlines every
// Interval values with labels in a reserved column.
type ScaleConfig struct {
	Visible  bool    `toml:"visible"`
	Interval float64 `toml:"interval"`
	Color    string  `toml:"color"`
}

// HoverConfig configures the segment tooltip. Format renders the tip
// text for a segment; nil uses "<title>: <value>".
type HoverConfig struct {
	Visible bool                                     `toml:"visible"`
	Format  func(title string, value float64) string `toml:"-"`
}

// Config is the bar chart configuration. Start from DefaultConfig and
// override fields; New validates and fills unset values exactly once,
// nothing merges after construction.
type Config struct {
	Padding      Padding         `toml:"padding"`
	Palette      palette.Palette `toml:"palette"`
	ColorByTitle bool            `toml:"color_by_title"`
	Vertical     bool            `toml:"vertical"`
	FontFamily   string          `toml:"font_family"`
	FontSize     float64         `toml:"font_size"`
	Hover        HoverConfig     `toml:"hover"`

	// BarWidth is the bar thickness in px; cap radii follow from it.
	BarWidth   float64 `toml:"bar_width"`
	Spacing    Spacing `toml:"spacing"`
	MinSpacing float64 `toml:"min_spacing"`

	// AutoSize grows the emitted canvas along the category axis until
	// all bars fit, instead of letting content overflow the plot.
	AutoSize bool `toml:"auto_size"`

	Scale ScaleConfig `toml:"scale"`

	// Max fixes the value scale; non-positive means relative (largest
	// bar total).
	Max float64 `toml:"max"`

	// Draggable pans overflowing content by pointer drag.
	Draggable bool `toml:"draggable"`

	// WheelEvent names the CustomEvent re-dispatched for wheel input.
	WheelEvent string `toml:"wheel_event"`

	// LensSteepness shapes bars too short for both cap arcs.
	LensSteepness float64 `toml:"lens_steepness"`
}

// DefaultConfig returns the configuration all charts start from.
func DefaultConfig() Config {
	return Config{
		Padding:       Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Palette:       palette.Default(),
		ColorByTitle:  true,
		Vertical:      true,
		FontFamily:    "sans-serif",
		FontSize:      12,
		Hover:         HoverConfig{Visible: true},
		BarWidth:      28,
		Spacing:       Spacing{Mode: SpacingVariable, Fixed: 12},
		MinSpacing:    8,
		Scale:         ScaleConfig{Color: "#e0e0e0"},
		WheelEvent:    "pillarwheel",
		LensSteepness: 1,
	}
}

// normalize validates the configuration and fills unset values.
func (c *Config) normalize() error {
	if c.Padding.Top < 0 || c.Padding.Right < 0 || c.Padding.Bottom < 0 || c.Padding.Left < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "padding cannot be negative")
	}
	if c.FontSize <= 0 {
		c.FontSize = 12
	}
	if c.FontFamily == "" {
		c.FontFamily = "sans-serif"
	}
	if c.BarWidth == 0 {
		c.BarWidth = 28
	}
	if c.BarWidth < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "bar width must be positive, got %v", c.BarWidth)
	}
	if c.MinSpacing < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "min spacing cannot be negative, got %v", c.MinSpacing)
	}

	switch c.Spacing.Mode {
	case "":
		c.Spacing.Mode = SpacingVariable
	case SpacingVariable:
	case SpacingFixed:
		if c.Spacing.Fixed < 0 {
			return errors.New(errors.ErrCodeConfigInvalid, "fixed spacing cannot be negative, got %v", c.Spacing.Fixed)
		}
	default:
		return errors.New(errors.ErrCodeConfigInvalid, "unknown spacing mode %q", c.Spacing.Mode)
	}

	if c.Scale.Visible && c.Scale.Interval <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "scale interval must be positive when the scale is visible, got %v", c.Scale.Interval)
	}
	if c.Scale.Color == "" {
		c.Scale.Color = "#e0e0e0"
	} else {
		color, err := palette.ParseColor(c.Scale.Color)
		if err != nil {
			return err
		}
		c.Scale.Color = color
	}

	if len(c.Palette) == 0 {
		c.Palette = palette.Default()
	} else {
		parsed, err := palette.Parse(c.Palette)
		if err != nil {
			return err
		}
		c.Palette = parsed
	}

	if c.Max < 0 {
		c.Max = 0
	}
	if c.WheelEvent == "" {
		c.WheelEvent = "pillarwheel"
	}
	if c.LensSteepness <= 0 {
		c.LensSteepness = 1
	}
	if c.Hover.Format == nil {
		c.Hover.Format = func(title string, value float64) string {
			return fmt.Sprintf("%s: %v", title, value)
		}
	}
	return nil
}
