// Package barchart renders stacked bar charts with rounded capsule
// bars into a responsive SVG canvas.
//
// Bars live in a logical 100x100 viewbox stretched to the container,
// so all cap geometry is computed per axis against the measured size;
// see pkg/geometry. Rendering is wholesale: every Render measures the
// container fresh and rebuilds the entire element tree.
package barchart

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/geometry"
	"github.com/pillarchart/pillar/pkg/observability"
	"github.com/pillarchart/pillar/pkg/palette"
	"github.com/pillarchart/pillar/pkg/vector"
)

// Chart renders stacked bars with rounded caps into a container.
//
// A chart is not safe for concurrent use; callers serialize SetData
// and Render.
type Chart struct {
	container vector.Container
	cfg       Config
	data      []Bar

	logger   *log.Logger
	hooks    observability.RenderHooks
	renderID string

	canvas *vector.Canvas
}

// Option configures a Chart at construction.
type Option func(*Chart)

// WithLogger sets the chart's logger. Nil keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(c *Chart) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHooks overrides the observability hooks for this chart; the
// default is the process-wide registration.
func WithHooks(h observability.RenderHooks) Option {
	return func(c *Chart) { c.hooks = h }
}

// WithRenderID pins the element-ID namespace instead of drawing a
// fresh one per render, making output byte-stable for identical input.
func WithRenderID(id string) Option {
	return func(c *Chart) { c.renderID = id }
}

// New creates a bar chart over the given container. The configuration
// is validated and defaulted exactly once; a nil container or an
// invalid configuration aborts construction with a coded error.
func New(container vector.Container, cfg Config, opts ...Option) (*Chart, error) {
	c := &Chart{
		container: container,
		cfg:       cfg,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if container == nil {
		err := errors.New(errors.ErrCodeContainerMissing, "no container to render into")
		c.logger.Error("bar chart construction failed", "err", err)
		return nil, err
	}
	if err := c.cfg.normalize(); err != nil {
		c.logger.Error("bar chart construction failed", "err", err)
		return nil, err
	}
	return c, nil
}

// SetData validates and stores the data set, then renders immediately.
func (c *Chart) SetData(bars []Bar) error {
	if err := Validate(bars); err != nil {
		return err
	}
	c.data = bars
	return c.Render()
}

// Render measures the container and rebuilds the canvas wholesale.
func (c *Chart) Render() error {
	ctx := context.Background()
	hooks := c.hooks
	if hooks == nil {
		hooks = observability.Render()
	}

	start := time.Now()
	w, h := c.container.Size()
	hooks.OnRenderStart(ctx, Kind, w, h)

	canvas, err := c.build(w, h)
	if err != nil {
		hooks.OnRenderComplete(ctx, Kind, 0, time.Since(start), err)
		return err
	}
	c.canvas = canvas

	hooks.OnRenderComplete(ctx, Kind, canvas.ElementCount(), time.Since(start), nil)
	c.logger.Debug("bar chart rendered",
		"width", w, "height", h,
		"bars", len(c.data),
		"elements", canvas.ElementCount(),
		"duration", time.Since(start))
	return nil
}

// Canvas returns the last rendered canvas, rendering on first use.
func (c *Chart) Canvas() (*vector.Canvas, error) {
	if c.canvas == nil {
		if err := c.Render(); err != nil {
			return nil, err
		}
	}
	return c.canvas, nil
}

// SVG encodes the last rendered canvas, rendering on first use.
func (c *Chart) SVG() ([]byte, error) {
	canvas, err := c.Canvas()
	if err != nil {
		return nil, err
	}
	return canvas.SVG(), nil
}

func (c *Chart) build(w, h float64) (*vector.Canvas, error) {
	s, err := geometry.NewScale(w, h)
	if err != nil {
		return nil, err
	}

	l := computeLayout(c.cfg, c.data, s, w, h)
	if l.overflow && c.cfg.AutoSize {
		// Grow the canvas along the category axis until content fits;
		// the container measurement only pins the other axis.
		if c.cfg.Vertical {
			w = l.contentPx + l.left + l.right
		} else {
			h = l.contentPx + l.top + l.bottom
		}
		if s, err = geometry.NewScale(w, h); err != nil {
			return nil, err
		}
		l = computeLayout(c.cfg, c.data, s, w, h)
	}

	rid := c.renderID
	if rid == "" {
		rid = uuid.NewString()[:8]
	}

	canvas := vector.NewCanvas(w, h, geometry.Units, geometry.Units)
	canvas.FontFamily = c.cfg.FontFamily

	if c.cfg.Scale.Visible {
		canvas.Append(c.buildScale(l, rid))
	}

	content := c.buildBars(l, rid)
	panning := l.overflow && c.cfg.Draggable && !c.cfg.AutoSize
	if panning {
		content.Class = "pan"
	}
	canvas.Append(content)

	if c.cfg.Hover.Visible && len(c.data) > 0 {
		vector.AttachTooltip(canvas, c.cfg.FontFamily)
	}
	if panning {
		vector.AttachDrag(canvas, l.contentPx-l.availPx)
	}
	vector.AttachWheel(canvas, c.cfg.WheelEvent)
	return canvas, nil
}

// buildScale emits the numeric gridlines and their labels.
func (c *Chart) buildScale(l layout, rid string) *vector.Group {
	g := &vector.Group{ID: "grid-" + rid, Class: "grid"}
	for _, v := range l.ticks(c.cfg.Scale.Interval) {
		coord := l.valCoord(v)
		label := &vector.Text{
			Content: formatValue(v),
			Size:    c.cfg.FontSize - 2,
			Fill:    "#888888",
		}
		if c.cfg.Vertical {
			g.Append(&vector.Line{
				X1: l.catStart, Y1: coord, X2: l.catEnd, Y2: coord,
				Stroke: c.cfg.Scale.Color, Width: 1,
			})
			label.X = l.catStart - l.s.UnitsX(6)
			label.Y = coord
			label.Anchor = "end"
			label.Baseline = "middle"
		} else {
			g.Append(&vector.Line{
				X1: coord, Y1: l.catStart, X2: coord, Y2: l.catEnd,
				Stroke: c.cfg.Scale.Color, Width: 1,
			})
			label.X = coord
			label.Y = l.catEnd + l.s.UnitsY(6+c.cfg.FontSize-2)
			label.Anchor = "middle"
		}
		g.Append(label)
	}
	return g
}

// buildBars emits one capsule band per segment plus the bar labels.
func (c *Chart) buildBars(l layout, rid string) *vector.Group {
	g := &vector.Group{ID: "bars-" + rid}
	res := palette.NewResolver(c.cfg.Palette)

	caps := geometry.NewCapsule(c.cfg.BarWidth, l.valExtent, l.s, c.cfg.Vertical)
	caps.Steepness = c.cfg.LensSteepness

	for i, bar := range c.data {
		frame := l.frame(i)

		cum := 0.0
		for si, seg := range bar.Segments {
			// Resolve before any skip so zero and clipped segments
			// still claim their color slot in data order.
			color := c.cfg.Palette.At(si)
			if c.cfg.ColorByTitle {
				color = res.Resolve(seg.Title)
			}

			from, to := cum, cum+seg.Value
			cum = to
			if from >= l.max {
				continue
			}
			if to > l.max {
				to = l.max
			}

			band := caps.Band(frame, from*l.upv, to*l.upv)
			if band.Empty() {
				continue
			}
			band.Fill = color
			band.Class = "segment"
			if c.cfg.Hover.Visible {
				band.Attrs = vector.Attr{"data-tip": c.cfg.Hover.Format(seg.Title, seg.Value)}
			}
			g.Append(band)
		}

		if bar.Label == "" {
			continue
		}
		label := &vector.Text{
			Content: bar.Label,
			Size:    c.cfg.FontSize,
			Class:   "bar-label",
		}
		if c.cfg.Vertical {
			label.X = frame.OX
			label.Y = l.valBase + l.s.UnitsY(labelGapPx/2+c.cfg.FontSize)
			label.Anchor = "middle"
		} else {
			label.X = l.valBase - l.s.UnitsX(6)
			label.Y = frame.OY
			label.Anchor = "end"
			label.Baseline = "middle"
		}
		g.Append(label)
	}
	return g
}
