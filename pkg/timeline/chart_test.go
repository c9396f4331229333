package timeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/vector"
)

// chartConfig keeps the geometry easy to verify on a 200x100 canvas:
// no padding, a fixed 20 px label column, a three-hour window so one
// minute is half a unit.
func chartConfig() Config {
	cfg := DefaultConfig()
	cfg.Padding = Padding{}
	cfg.Legend.Width = 20
	cfg.Legend.Visible = false
	cfg.Scale = ScaleConfig{From: 0, To: 180, Interval: 90}
	cfg.Hover.Visible = false
	return cfg
}

func renderSVG(t *testing.T, cfg Config, tracks []Track) string {
	t.Helper()
	chart, err := New(vector.Fixed{W: 200, H: 100}, cfg, WithRenderID("t"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := chart.SetData(tracks); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	svg, err := chart.SVG()
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	return string(svg)
}

func TestIntervalPill(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "deep work", Start: 0, Length: 120}}},
	})

	contains := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="200" height="100" preserveAspectRatio="none" font-family="sans-serif">`,
		`id="tracks-t"`,
		// 120 minutes spanning units 10..70 on the first track: cap
		// arcs at both ends, straight flanks between.
		`d="M 10 29 A 4.5 9 0 0 0 14.5 38 L 65.5 38 A 4.5 9 0 0 0 70 29 A 4.5 9 0 0 0 65.5 20 L 14.5 20 A 4.5 9 0 0 0 10 29 Z" fill="#1f77b4" class="interval"`,
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in:\n%s", want, svg)
		}
	}
}

func TestIntervalClampedToWindow(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "late", Start: 120, Length: 120}}},
	})

	// Only the first hour is inside the window; the pill ends exactly
	// at the lane edge, unit 100.
	want := `d="M 70 29 A 4.5 9 0 0 0 74.5 38 L 95.5 38 A 4.5 9 0 0 0 100 29 A 4.5 9 0 0 0 95.5 20 L 74.5 20 A 4.5 9 0 0 0 70 29 Z"`
	if !strings.Contains(svg, want) {
		t.Errorf("missing clamped pill %q in:\n%s", want, svg)
	}
}

func TestShortIntervalBecomesLens(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "ping", Start: 60, Length: 5}}},
	})

	// Five minutes is 5 px, far under the 18 px cap pair, so the
	// interval renders as a symmetric lens between its tips.
	want := `d="M 40 29 A 1.25 2.5 0 0 0 42.5 29 A 1.25 2.5 0 0 0 40 29 Z"`
	if !strings.Contains(svg, want) {
		t.Errorf("missing lens %q in:\n%s", want, svg)
	}
}

func TestSameTitleSharesColor(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{
			{Title: "a", Start: 0, Length: 30},
			{Title: "b", Start: 40, Length: 30},
			{Title: "a", Start: 80, Length: 30},
		}},
	})

	if got := strings.Count(svg, `fill="#1f77b4"`); got != 2 {
		t.Errorf("first title painted %d times, want 2", got)
	}
	if got := strings.Count(svg, `fill="#ff7f0e"`); got != 1 {
		t.Errorf("second title painted %d times, want 1", got)
	}
}

func TestResolverIsPerTrack(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "x", Start: 0, Length: 30}}},
		{Intervals: []Interval{{Title: "y", Start: 0, Length: 30}}},
	})

	// Different titles, but each is the first on its own track, so
	// both take the first palette entry.
	if got := strings.Count(svg, `fill="#1f77b4"`); got != 2 {
		t.Errorf("first-slot color used %d times, want 2", got)
	}
}

func TestTrackPaletteOverride(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "x", Start: 0, Length: 30}}},
		{
			Intervals: []Interval{{Title: "y", Start: 0, Length: 30}},
			Palette:   []string{"#123456"},
		},
	})

	if !strings.Contains(svg, `fill="#123456"`) {
		t.Errorf("palette override ignored:\n%s", svg)
	}
}

func TestHourStripes(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "a", Start: 0, Length: 180}}},
	})

	contains := []string{
		`<rect x="39.5" y="20" width="1" height="18" fill="#ffffff" class="stripe"/>`,
		`<rect x="69.5" y="20" width="1" height="18" fill="#ffffff" class="stripe"/>`,
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in:\n%s", want, svg)
		}
	}
	// Hours on the window edges draw nothing.
	if got := strings.Count(svg, `class="stripe"`); got != 2 {
		t.Errorf("stripe count = %d, want 2", got)
	}
}

func TestClockAxis(t *testing.T) {
	svg := renderSVG(t, chartConfig(), []Track{
		{Intervals: []Interval{{Title: "a", Start: 0, Length: 30}}},
	})

	contains := []string{
		`id="axis-t"`,
		`>0 am</text>`,
		`>1:30 am</text>`,
		`>3 am</text>`,
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in:\n%s", want, svg)
		}
	}
}

func TestLegendEntries(t *testing.T) {
	cfg := chartConfig()
	cfg.Legend.Visible = true
	svg := renderSVG(t, cfg, []Track{
		{Label: "Mon", Intervals: []Interval{
			{Title: "a", Start: 0, Length: 60},
			{Title: "a", Start: 60, Length: 30},
		}},
	})

	contains := []string{
		`id="legend-t"`,
		// Swatch: a 10 px circle built from the same capsule geometry.
		`<path d="M 0 59 A 2.5 5 0 0 0 2.5 64 A 2.5 5 0 0 0 5 59 A 2.5 5 0 0 0 2.5 54 A 2.5 5 0 0 0 0 59 Z" fill="#1f77b4"/>`,
		`<text x="14" y="59" font-size="12" dominant-baseline="middle" fill="#333333" class="legend-label" transform="scale(0.500000,1.000000)">a - 1h 30m</text>`,
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in:\n%s", want, svg)
		}
	}
}

func TestLegendWraps(t *testing.T) {
	cfg := chartConfig()
	cfg.Legend.Visible = true
	svg := renderSVG(t, cfg, []Track{
		{Intervals: []Interval{
			{Title: "aaaaaaaaaa", Start: 0, Length: 60},
			{Title: "bbbbbbbbbb", Start: 60, Length: 60},
			{Title: "cccccccccc", Start: 120, Length: 60},
		}},
	})

	// Each entry estimates to 109 px on a 200 px canvas, so every
	// entry after the first starts a new row 20 px further down.
	if got := strings.Count(svg, `class="legend-label"`); got != 3 {
		t.Fatalf("legend entries = %d, want 3", got)
	}
	for _, want := range []string{`y="59"`, `y="79"`, `y="99"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing wrapped row at %s in:\n%s", want, svg)
		}
	}
}

func TestZeroLengthClaimsLegendSlot(t *testing.T) {
	cfg := chartConfig()
	cfg.Legend.Visible = true
	svg := renderSVG(t, cfg, []Track{
		{Intervals: []Interval{
			{Title: "z", Start: 0, Length: 0},
			{Title: "a", Start: 10, Length: 50},
		}},
	})

	if got := strings.Count(svg, `class="interval"`); got != 1 {
		t.Errorf("pill count = %d, want 1", got)
	}
	// The zero-length interval claimed the first palette slot and a
	// title-only legend entry.
	if !strings.Contains(svg, `fill="#ff7f0e" class="interval"`) {
		t.Errorf("drawn interval should take the second slot:\n%s", svg)
	}
	if !strings.Contains(svg, `>z</text>`) {
		t.Errorf("missing title-only legend entry in:\n%s", svg)
	}
	if !strings.Contains(svg, `>a - 50m</text>`) {
		t.Errorf("missing accumulated legend entry in:\n%s", svg)
	}
}

func TestTooltipAttributes(t *testing.T) {
	cfg := chartConfig()
	cfg.Hover.Visible = true
	svg := renderSVG(t, cfg, []Track{
		{Intervals: []Interval{{Title: "lunch", Start: 60, Length: 30}}},
	})

	contains := []string{
		`data-tip="lunch: 1 am - 1:30 am"`,
		`class="tip"`,
	}
	for _, want := range contains {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in:\n%s", want, svg)
		}
	}
}

func TestWheelForwarding(t *testing.T) {
	cfg := chartConfig()
	cfg.WheelEvent = "daywheel"
	svg := renderSVG(t, cfg, []Track{
		{Intervals: []Interval{{Title: "a", Start: 0, Length: 30}}},
	})

	if !strings.Contains(svg, `new CustomEvent('daywheel'`) {
		t.Errorf("wheel event not forwarded in:\n%s", svg)
	}
}

func TestErrorCodes(t *testing.T) {
	t.Run("nil container", func(t *testing.T) {
		_, err := New(nil, DefaultConfig())
		if !errors.Is(err, errors.ErrCodeContainerMissing) {
			t.Errorf("got %v, want CONTAINER_MISSING", err)
		}
	})

	t.Run("degenerate window", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Scale = ScaleConfig{From: 300, To: 300, Interval: 60}
		_, err := New(vector.Fixed{W: 200, H: 100}, cfg)
		if !errors.Is(err, errors.ErrCodeConfigInvalid) {
			t.Errorf("got %v, want CONFIG_INVALID", err)
		}
	})

	t.Run("unmeasurable container", func(t *testing.T) {
		chart, err := New(vector.Fixed{}, DefaultConfig())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := chart.Render(); !errors.Is(err, errors.ErrCodeNotMeasurable) {
			t.Errorf("got %v, want NOT_MEASURABLE", err)
		}
	})

	t.Run("start before scale origin", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Scale = ScaleConfig{From: 480, To: 1020, Interval: 60}
		chart, err := New(vector.Fixed{W: 200, H: 100}, cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		err = chart.SetData([]Track{{Intervals: []Interval{
			{Title: "early", Start: 300, Length: 60},
		}}})
		if !errors.Is(err, errors.ErrCodeDataInvalid) {
			t.Errorf("got %v, want DATA_INVALID", err)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		chart, err := New(vector.Fixed{W: 200, H: 100}, DefaultConfig())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		err = chart.SetData([]Track{{Intervals: []Interval{
			{Title: "x", Start: 10, Length: -1},
		}}})
		if !errors.Is(err, errors.ErrCodeDataInvalid) {
			t.Errorf("got %v, want DATA_INVALID", err)
		}
	})
}

func TestDeterministicOutput(t *testing.T) {
	tracks := []Track{
		{Label: "Mon", Intervals: []Interval{
			{Title: "work", Start: 540, Length: 180},
			{Title: "lunch", Start: 720, Length: 45},
		}},
	}

	render := func() []byte {
		chart, err := New(vector.Fixed{W: 640, H: 220}, DefaultConfig(), WithRenderID("fixed"))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := chart.SetData(tracks); err != nil {
			t.Fatalf("SetData: %v", err)
		}
		svg, err := chart.SVG()
		if err != nil {
			t.Fatalf("SVG: %v", err)
		}
		return svg
	}

	if !bytes.Equal(render(), render()) {
		t.Error("identical input should render identical bytes")
	}
}
