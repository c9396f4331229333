package barchart

import (
	"math"
	"strconv"

	"github.com/pillarchart/pillar/pkg/geometry"
)

// Pixel reserves around the plot.
const (
	scaleBandPx = 34.0 // numeric label column beside the value axis
	labelGapPx  = 8.0  // air between the plot and the bar labels
)

// layout is the resolved geometry of one render pass. The category
// axis runs across the bars (x when vertical), the value axis along
// them.
type layout struct {
	s        geometry.Scale
	vertical bool

	// insets around the plot, px
	left, right, top, bottom float64

	max float64 // value-space maximum
	upv float64 // units per value along the value axis

	valBase   float64 // canvas coordinate of the zero line, units
	valExtent float64 // plot size along the value axis, units

	catStart float64 // canvas coordinate where the bar region begins, units
	catEnd   float64 // and where it ends

	barPx     float64 // bar thickness, px
	gapPx     float64 // gap between bars, px
	stepPx    float64 // thickness plus gap, px
	availPx   float64 // plot size along the category axis, px
	contentPx float64 // px required to fit all bars
	overflow  bool
}

func computeLayout(cfg Config, bars []Bar, s geometry.Scale, w, h float64) layout {
	l := layout{s: s, vertical: cfg.Vertical, barPx: cfg.BarWidth}

	l.max = cfg.Max
	if l.max <= 0 {
		l.max = relativeMax(bars)
	}

	scaleBand := 0.0
	if cfg.Scale.Visible {
		scaleBand = scaleBandPx
	}
	labelBand := cfg.FontSize + labelGapPx

	l.left, l.right = cfg.Padding.Left, cfg.Padding.Right
	l.top, l.bottom = cfg.Padding.Top, cfg.Padding.Bottom
	if cfg.Vertical {
		l.left += scaleBand
		l.bottom += labelBand
	} else {
		l.left += labelBand
		l.bottom += scaleBand
	}

	x0 := s.UnitsX(l.left)
	x1 := geometry.Units - s.UnitsX(l.right)
	y0 := s.UnitsY(l.top)
	y1 := geometry.Units - s.UnitsY(l.bottom)

	if cfg.Vertical {
		l.catStart, l.catEnd = x0, x1
		l.valBase = y1
		l.valExtent = y1 - y0
		l.availPx = w - l.left - l.right
	} else {
		l.catStart, l.catEnd = y0, y1
		l.valBase = x0
		l.valExtent = x1 - x0
		l.availPx = h - l.top - l.bottom
	}

	if l.max > 0 && l.valExtent > 0 {
		l.upv = l.valExtent / l.max
	}

	if n := len(bars); n > 0 {
		switch cfg.Spacing.Mode {
		case SpacingFixed:
			l.gapPx = cfg.Spacing.Fixed
		default:
			l.gapPx = math.Max(cfg.MinSpacing, l.availPx/float64(n)-cfg.BarWidth)
		}
		l.stepPx = cfg.BarWidth + l.gapPx
		l.contentPx = float64(n) * l.stepPx
		l.overflow = l.contentPx > l.availPx+0.5
	}
	return l
}

// catUnits converts category-axis px to units.
func (l layout) catUnits(px float64) float64 {
	if l.vertical {
		return l.s.UnitsX(px)
	}
	return l.s.UnitsY(px)
}

// barCenter returns the canvas coordinate (units) of bar i's center
// on the category axis.
func (l layout) barCenter(i int) float64 {
	return l.catStart + l.catUnits(l.gapPx/2+l.barPx/2+float64(i)*l.stepPx)
}

// frame returns the capsule frame for bar i: vertical bars grow up
// from the zero line, horizontal bars grow right.
func (l layout) frame(i int) geometry.Frame {
	c := l.barCenter(i)
	if l.vertical {
		return geometry.Frame{OX: c, OY: l.valBase, Vertical: true}
	}
	return geometry.Frame{OX: l.valBase, OY: c}
}

// valCoord maps a value to its canvas coordinate on the value axis.
func (l layout) valCoord(v float64) float64 {
	if l.vertical {
		return l.valBase - v*l.upv
	}
	return l.valBase + v*l.upv
}

// ticks returns the gridline positions in value space: every interval
// up to the maximum, zero line omitted.
func (l layout) ticks(interval float64) []float64 {
	if interval <= 0 || l.max <= 0 {
		return nil
	}
	var out []float64
	for v := interval; v <= l.max+1e-9; v += interval {
		out = append(out, v)
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
