package barchart

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
			mutate:   func(c *Config) { c.Padding.Left = -1 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "negative bar width",
			mutate:   func(c *Config) { c.BarWidth = -5 },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "unknown spacing mode",
			mutate:   func(c *Config) { c.Spacing.Mode = "elastic" },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "visible scale without interval",
			mutate:   func(c *Config) { c.Scale.Visible = true },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "bad palette color",
			mutate:   func(c *Config) { c.Palette = []string{"#1f77b4", "soup"} },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:     "bad scale color",
			mutate:   func(c *Config) { c.Scale.Color = "zzz" },
			wantCode: errors.ErrCodeConfigInvalid,
		},
		{
			name:   "visible scale with interval",
			mutate: func(c *Config) { c.Scale.Visible = true; c.Scale.Interval = 25 },
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
	cfg.Vertical = true
	if err := cfg.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", cfg.FontSize)
	}
	if cfg.BarWidth != 28 {
		t.Errorf("BarWidth = %v, want 28", cfg.BarWidth)
	}
	if cfg.Spacing.Mode != SpacingVariable {
		t.Errorf("Spacing.Mode = %q, want %q", cfg.Spacing.Mode, SpacingVariable)
	}
	if len(cfg.Palette) == 0 {
		t.Error("empty palette should fall back to the default")
	}
	if cfg.WheelEvent != "pillarwheel" {
		t.Errorf("WheelEvent = %q, want pillarwheel", cfg.WheelEvent)
	}
	if cfg.Hover.Format == nil {
		t.Error("Hover.Format should default")
	}
	if got := cfg.Hover.Format("cpu", 12.5); got != "cpu: 12.5" {
		t.Errorf("default tip = %q, want %q", got, "cpu: 12.5")
	}
}

func TestConfigNormalizesColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = []string{"#ABC"}
	cfg.Scale.Color = "#EEE"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Palette[0] != "#aabbcc" {
		t.Errorf("palette color = %q, want #aabbcc", cfg.Palette[0])
	}
	if cfg.Scale.Color != "#eeeeee" {
		t.Errorf("scale color = %q, want #eeeeee", cfg.Scale.Color)
	}
}
