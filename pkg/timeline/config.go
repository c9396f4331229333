package timeline

import (
	"fmt"

	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/palette"
	"github.com/pillarchart/pillar/pkg/timefmt"
)

// Kind identifies this chart type in pipelines, hooks and the server.
const Kind = "timeline"

// Padding is the inset between the container edge and the chart, in
// pixels per side.
type Padding struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// ScaleConfig is the time window in minutes. Labels appear every
// Interval minutes starting at IntervalStart.
type ScaleConfig struct {
	From          float64 `toml:"from"`
	To            float64 `toml:"to"`
	Interval      float64 `toml:"interval"`
	IntervalStart float64 `toml:"interval_start"`
}

// LegendConfig configures the category legend under the tracks. Width,
// when positive, overrides the computed track label column width.
type LegendConfig struct {
	Visible   bool    `toml:"visible"`
	Spacing   float64 `toml:"spacing"`
	TextColor string  `toml:"text_color"`
	Width     float64 `toml:"width"`
}

// HoverConfig configures the interval tooltip. Format renders the tip
// text; nil uses "<title>: <start> - <end>" with clock formatting.
type HoverConfig struct {
	Visible bool                                          `toml:"visible"`
	Format  func(title string, start, end float64) string `toml:"-"`
}

// Config is the timeline configuration. Start from DefaultConfig and
// override fields; New validates and fills unset values exactly once.
type Config struct {
	Padding    Padding         `toml:"padding"`
	Palette    palette.Palette `toml:"palette"`
	FontFamily string          `toml:"font_family"`
	FontSize   float64         `toml:"font_size"`
	Hover      HoverConfig     `toml:"hover"`

	// TrackHeight is the pill thickness in px, TrackGap the vertical
	// air between tracks.
	TrackHeight float64 `toml:"track_height"`
	TrackGap    float64 `toml:"track_gap"`

	Scale  ScaleConfig  `toml:"scale"`
	Legend LegendConfig `toml:"legend"`

	// WheelEvent names the CustomEvent re-dispatched for wheel input.
	WheelEvent string `toml:"wheel_event"`

	// LensSteepness shapes intervals too short for both cap arcs.
	LensSteepness float64 `toml:"lens_steepness"`
}

// DefaultConfig returns the configuration all charts start from: a
// full day window with three-hour labels.
func DefaultConfig() Config {
	return Config{
		Padding:       Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Palette:       palette.Default(),
		FontFamily:    "sans-serif",
		FontSize:      12,
		Hover:         HoverConfig{Visible: true},
		TrackHeight:   18,
		TrackGap:      10,
		Scale:         ScaleConfig{From: 0, To: 1440, Interval: 180, IntervalStart: 0},
		Legend:        LegendConfig{Visible: true, Spacing: 14, TextColor: "#333333"},
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
	if c.TrackHeight == 0 {
		c.TrackHeight = 18
	}
	if c.TrackHeight < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "track height must be positive, got %v", c.TrackHeight)
	}
	if c.TrackGap == 0 {
		c.TrackGap = 10
	}
	if c.TrackGap < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "track gap cannot be negative, got %v", c.TrackGap)
	}

	if c.Scale == (ScaleConfig{}) {
		c.Scale = DefaultConfig().Scale
	}
	if c.Scale.To <= c.Scale.From {
		return errors.New(errors.ErrCodeConfigInvalid,
			"time scale end %v must be after start %v", c.Scale.To, c.Scale.From)
	}
	if c.Scale.Interval <= 0 {
		return errors.New(errors.ErrCodeConfigInvalid,
			"time scale interval must be positive, got %v", c.Scale.Interval)
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

	if c.Legend.Spacing == 0 {
		c.Legend.Spacing = 14
	}
	if c.Legend.Spacing < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "legend spacing cannot be negative, got %v", c.Legend.Spacing)
	}
	if c.Legend.TextColor == "" {
		c.Legend.TextColor = "#333333"
	} else {
		color, err := palette.ParseColor(c.Legend.TextColor)
		if err != nil {
			return err
		}
		c.Legend.TextColor = color
	}
	if c.Legend.Width < 0 {
		c.Legend.Width = 0
	}

	if c.WheelEvent == "" {
		c.WheelEvent = "pillarwheel"
	}
	if c.LensSteepness <= 0 {
		c.LensSteepness = 1
	}
	if c.Hover.Format == nil {
		c.Hover.Format = func(title string, start, end float64) string {
			return fmt.Sprintf("%s: %s - %s", title, timefmt.Clock(start), timefmt.Clock(end))
		}
	}
	return nil
}
