package timeline

import (
	"testing"

	"github.com/pillarchart/pillar/pkg/errors"
)

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantCode errors.Code
	}{
		{name: "defaults pass", mutate: func(c *Config) {}},
		{
			name:     "negative padding",
			mutate:   func(c *Config) { c.Padding.Top = -2 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "scale end before start",
			mutate:   func(c *Config) { c.Scale.From = 600; c.Scale.To = 480 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "scale end equals start",
			mutate:   func(c *Config) { c.Scale.From = 600; c.Scale.To = 600 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "zero interval",
			mutate:   func(c *Config) { c.Scale.Interval = 0; c.Scale.IntervalStart = 1 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "negative track height",
			mutate:   func(c *Config) { c.TrackHeight = -1 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "negative track gap",
			mutate:   func(c *Config) { c.TrackGap = -1 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "bad palette color",
			mutate:   func(c *Config) { c.Palette = []string{"nope"} },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "bad legend text color",
			mutate:   func(c *Config) { c.Legend.TextColor = "zzz" },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:   "narrow window",
			mutate: func(c *Config) { c.Scale = ScaleConfig{From: 540, To: 720, Interval: 60} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.normalize()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("got %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestConfigNormalizeFillsZeroValues(t *testing.T) {
	var cfg Config
	if err := cfg.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TrackHeight != 18 {
		t.Errorf("TrackHeight = %v, want 18", cfg.TrackHeight)
	}
	if cfg.TrackGap != 10 {
		t.Errorf("TrackGap = %v, want 10", cfg.TrackGap)
	}
	if cfg.Scale.To != 1440 || cfg.Scale.Interval != 180 {
		t.Errorf("Scale = %+v, want full-day default", cfg.Scale)
	}
	if cfg.Legend.Spacing != 14 {
		t.Errorf("Legend.Spacing = %v, want 14", cfg.Legend.Spacing)
	}
	if cfg.Legend.TextColor != "#333333" {
		t.Errorf("Legend.TextColor = %q, want #333333", cfg.Legend.TextColor)
	}
	if cfg.WheelEvent != "pillarwheel" {
		t.Errorf("WheelEvent = %q, want pillarwheel", cfg.WheelEvent)
	}
	if cfg.Hover.Format == nil {
		t.Fatal("Hover.Format should default")
	}
	if got := cfg.Hover.Format("lunch", 720, 765); got != "lunch: 0 pm - 0:45 pm" {
		t.Errorf("default tip = %q, want %q", got, "lunch: 0 pm - 0:45 pm")
	}
}

func TestValidateTracks(t *testing.T) {
	tests := []struct {
		name     string
		tracks   []Track
		wantCode errors.Code
	}{
		{
			name: "clean",
			tracks: []Track{{Label: "Mon", Intervals: []Interval{
				{Title: "deep work", Start: 540, Length: 90},
			}}},
		},
		{
			name: "zero length is legal",
			tracks: []Track{{Label: "Mon", Intervals: []Interval{
				{Title: "ping", Start: 600, Length: 0},
			}}},
		},
		{
			name: "negative length",
			tracks: []Track{{Intervals: []Interval{
				{Title: "x", Start: 10, Length: -5},
			}}},
			wantCode: errors.ErrCodeDataInvalid,
		},
		{
			name: "negative start",
			tracks: []Track{{Intervals: []Interval{
				{Title: "x", Start: -10, Length: 5},
			}}},
			wantCode: errors.ErrCodeDataInvalid,
		},
		{
			name:     "bad palette override",
			tracks:   []Track{{Palette: []string{"#zzz"}}},
			wantCode: errors.ErrCodeDataInvalid,
		},
		{
			name: "control characters in title",
			tracks: []Track{{Intervals: []Interval{
				{Title: "a\x00b", Start: 0, Length: 5},
			}}},
			wantCode: errors.ErrCodeDataInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.tracks)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("got %v, want code %s", err, tt.wantCode)
			}
		})
	}
}
