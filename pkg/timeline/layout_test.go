package timeline

import (
	"math"
	"testing"

	"github.com/pillarchart/pillar/pkg/geometry"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testLayout(t *testing.T, cfg Config, tracks []Track) layout {
	t.Helper()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := geometry.NewScale(200, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return computeLayout(cfg, tracks, s)
}

func TestLabelColumnWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = Padding{}

	// "Mon" at size 12 estimates to 19.8 px; its total readout
	// "1h 30m" at size 10 estimates to 33 px and wins.
	tracks := []Track{{Label: "Mon", Intervals: []Interval{
		{Title: "a", Start: 0, Length: 90},
	}}}
	l := testLayout(t, cfg, tracks)
	if !near(l.labelColPx, 33+labelColGapPx) {
		t.Errorf("label column = %v, want %v", l.labelColPx, 33+labelColGapPx)
	}

	cfg.Legend.Width = 20
	l = testLayout(t, cfg, tracks)
	if l.labelColPx != 20 {
		t.Errorf("label column = %v, want the 20 px override", l.labelColPx)
	}
}

func TestMinuteMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = Padding{}
	cfg.Legend.Width = 20
	cfg.Scale = ScaleConfig{From: 0, To: 180, Interval: 60}

	// 200 px wide: the lane spans units 10..100, so 90 units cover
	// 180 minutes.
	l := testLayout(t, cfg, nil)
	if !near(l.upm, 0.5) {
		t.Fatalf("upm = %v, want 0.5", l.upm)
	}
	if !near(l.x(0), 10) || !near(l.x(60), 40) || !near(l.x(180), 100) {
		t.Errorf("x mapping off: x(0)=%v x(60)=%v x(180)=%v", l.x(0), l.x(60), l.x(180))
	}
}

func TestTrackCenters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = Padding{}
	cfg.Legend.Width = 20
	tracks := []Track{{Label: "a"}, {Label: "b"}}

	l := testLayout(t, cfg, tracks)
	// Header band is FontSize+8 = 20 px; tracks are 18 px with a
	// 10 px gap, and the canvas is 100 px tall so px equal units.
	if !near(l.trackCenter(0), 29) {
		t.Errorf("first center = %v, want 29", l.trackCenter(0))
	}
	if !near(l.trackCenter(1), 57) {
		t.Errorf("second center = %v, want 57", l.trackCenter(1))
	}
	if !near(l.tracksBottom, 66) {
		t.Errorf("tracks bottom = %v, want 66", l.tracksBottom)
	}
	if !near(l.legendTop, 66+legendGapPx) {
		t.Errorf("legend top = %v, want %v", l.legendTop, 66+legendGapPx)
	}
}

func TestHourStripePositions(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     []float64
	}{
		{name: "window edges excluded", from: 0, to: 180, want: []float64{60, 120}},
		{name: "offset start", from: 30, to: 200, want: []float64{60, 120, 180}},
		{name: "start on the hour", from: 60, to: 181, want: []float64{120, 180}},
		{name: "under an hour", from: 0, to: 59, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Scale = ScaleConfig{From: tt.from, To: tt.to, Interval: 60}
			l := testLayout(t, cfg, nil)
			got := l.hours()
			if len(got) != len(tt.want) {
				t.Fatalf("hours = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("hours = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAxisTicks(t *testing.T) {
	tests := []struct {
		name            string
		from, to        float64
		interval, start float64
		want            []float64
	}{
		{name: "aligned", from: 0, to: 180, interval: 90, start: 0, want: []float64{0, 90, 180}},
		{name: "offset grid", from: 0, to: 180, interval: 60, start: 30, want: []float64{30, 90, 150}},
		{name: "start before window", from: 120, to: 300, interval: 90, start: 0, want: []float64{180, 270}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Scale = ScaleConfig{
				From: tt.from, To: tt.to,
				Interval: tt.interval, IntervalStart: tt.start,
			}
			l := testLayout(t, cfg, nil)
			got := l.axisTicks(tt.interval, tt.start)
			if len(got) != len(tt.want) {
				t.Fatalf("ticks = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("ticks = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
