package timeline

import (
	"math"

	"github.com/pillarchart/pillar/pkg/fonts"
	"github.com/pillarchart/pillar/pkg/geometry"
	"github.com/pillarchart/pillar/pkg/timefmt"
)

const (
	// labelColGapPx separates the track label column from the lane.
	labelColGapPx = 12
	// headerGapPx is the air between the time axis labels and the first
	// track.
	headerGapPx = 8
	// legendGapPx separates the last track from the legend.
	legendGapPx = 16
	// swatchRadiusPx sizes the legend swatch pills.
	swatchRadiusPx = 5
	// stripeWidthPx is the width of the whole-hour marker stripes.
	stripeWidthPx = 2
)

// layout holds the measured frame of one timeline render. Horizontal
// positions inside the lane are unit coordinates; vertical bands are
// kept in px because track heights and gaps are px quantities.
type layout struct {
	s geometry.Scale

	from, to float64

	labelColPx float64 // track label column width including its gap, px
	laneX0     float64 // units
	laneX1     float64 // units
	upm        float64 // units per minute along the lane

	headerY      float64 // axis label baseline, units
	tracksTop    float64 // top edge of the first track, px
	tracksBottom float64 // bottom edge of the last track, px
	stepPx       float64 // track pitch, px
	trackPx      float64 // track thickness, px
	legendTop    float64 // legend origin, px

	availPx float64 // horizontal room for legend wrapping, px
}

func computeLayout(cfg Config, tracks []Track, s geometry.Scale) layout {
	l := layout{
		s:       s,
		from:    cfg.Scale.From,
		to:      cfg.Scale.To,
		stepPx:  cfg.TrackHeight + cfg.TrackGap,
		trackPx: cfg.TrackHeight,
	}

	l.labelColPx = cfg.Legend.Width
	if l.labelColPx <= 0 {
		var widest float64
		for _, t := range tracks {
			if w := fonts.Estimate(t.Label, cfg.FontSize); w > widest {
				widest = w
			}
			if w := fonts.Estimate(timefmt.Minutes(t.Total()), cfg.FontSize-2); w > widest {
				widest = w
			}
		}
		l.labelColPx = widest + labelColGapPx
	}

	l.laneX0 = s.UnitsX(cfg.Padding.Left + l.labelColPx)
	l.laneX1 = geometry.Units - s.UnitsX(cfg.Padding.Right)
	l.upm = (l.laneX1 - l.laneX0) / (cfg.Scale.To - cfg.Scale.From)

	l.headerY = s.UnitsY(cfg.Padding.Top + cfg.FontSize)
	l.tracksTop = cfg.Padding.Top + cfg.FontSize + headerGapPx
	l.tracksBottom = l.tracksTop
	if n := len(tracks); n > 0 {
		l.tracksBottom += float64(n)*cfg.TrackHeight + float64(n-1)*cfg.TrackGap
	}
	l.legendTop = l.tracksBottom + legendGapPx

	l.availPx = s.PxX(geometry.Units) - cfg.Padding.Left - cfg.Padding.Right
	return l
}

// x maps a minute to a horizontal unit coordinate on the lane.
func (l layout) x(t float64) float64 {
	return l.laneX0 + (t-l.from)*l.upm
}

// trackCenter returns the vertical center of track i, in units.
func (l layout) trackCenter(i int) float64 {
	return l.s.UnitsY(l.tracksTop + float64(i)*l.stepPx + l.trackPx/2)
}

// hours returns every whole hour strictly inside the time window, for
// the hour marker stripes.
func (l layout) hours() []float64 {
	h := math.Floor(l.from/60) * 60
	if h <= l.from {
		h += 60
	}
	var out []float64
	for ; h < l.to-1e-9; h += 60 {
		out = append(out, h)
	}
	return out
}

// axisTicks returns the minutes carrying a clock label, every Interval
// from IntervalStart, clipped to the window.
func (l layout) axisTicks(interval, start float64) []float64 {
	t := start
	if t < l.from {
		t += math.Ceil((l.from-t)/interval) * interval
	}
	var out []float64
	for ; t <= l.to+1e-9; t += interval {
		out = append(out, t)
	}
	return out
}
