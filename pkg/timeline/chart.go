// Package timeline renders multi-track timelines into a responsive
// SVG canvas: one horizontal lane of capsule-shaped intervals per
// track, with a clock axis above and a category legend below.
//
// The same logical-viewbox model as pkg/barchart applies: every Render
// measures the container fresh, computes per-axis pixel scales and
// rebuilds the whole element tree; see pkg/geometry.
package timeline

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/fonts"
	"github.com/pillarchart/pillar/pkg/geometry"
	"github.com/pillarchart/pillar/pkg/observability"
	"github.com/pillarchart/pillar/pkg/palette"
	"github.com/pillarchart/pillar/pkg/timefmt"
	"github.com/pillarchart/pillar/pkg/vector"
)

// Chart renders tracks of rounded intervals into a container.
//
// A chart is not safe for concurrent use; callers serialize SetData
// and Render.
type Chart struct {
	container vector.Container
	cfg       Config
	data      []Track

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

// New creates a timeline over the given container. The configuration
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
		c.logger.Error("timeline construction failed", "err", err)
		return nil, err
	}
	if err := c.cfg.normalize(); err != nil {
		c.logger.Error("timeline construction failed", "err", err)
		return nil, err
	}
	return c, nil
}

// SetData validates and stores the data set, then renders immediately.
// Intervals must not start before the scale origin; ones that run past
// its end are clamped at render time instead.
func (c *Chart) SetData(tracks []Track) error {
	if err := Validate(tracks); err != nil {
		return err
	}
	for i, track := range tracks {
		for j, iv := range track.Intervals {
			if iv.Start < c.cfg.Scale.From {
				return errors.New(errors.ErrCodeDataInvalid,
					"track %d interval %d starts at %v, before the scale start %v",
					i, j, iv.Start, c.cfg.Scale.From)
			}
		}
	}
	c.data = tracks
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
	c.logger.Debug("timeline rendered",
		"width", w, "height", h,
		"tracks", len(c.data),
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
	l := computeLayout(c.cfg, c.data, s)

	rid := c.renderID
	if rid == "" {
		rid = uuid.NewString()[:8]
	}

	canvas := vector.NewCanvas(w, h, geometry.Units, geometry.Units)
	canvas.FontFamily = c.cfg.FontFamily

	canvas.Append(c.buildAxis(l, rid))

	tracks, categories := c.buildTracks(l, rid)
	canvas.Append(tracks)
	if len(c.data) > 0 {
		// Stripes sit on top of the pills so the hour grid stays
		// visible through long intervals.
		canvas.Append(c.buildStripes(l, rid))
	}
	if c.cfg.Legend.Visible && len(c.data) > 0 {
		canvas.Append(c.buildLegend(l, rid, categories))
	}

	if c.cfg.Hover.Visible && len(c.data) > 0 {
		vector.AttachTooltip(canvas, c.cfg.FontFamily)
	}
	vector.AttachWheel(canvas, c.cfg.WheelEvent)
	return canvas, nil
}

// buildAxis emits the clock labels across the header row.
func (c *Chart) buildAxis(l layout, rid string) *vector.Group {
	g := &vector.Group{ID: "axis-" + rid, Class: "axis"}
	for _, t := range l.axisTicks(c.cfg.Scale.Interval, c.cfg.Scale.IntervalStart) {
		g.Append(&vector.Text{
			X:       l.x(t),
			Y:       l.headerY,
			Content: timefmt.Clock(t),
			Size:    c.cfg.FontSize - 2,
			Anchor:  "middle",
			Fill:    "#888888",
		})
	}
	return g
}

// trackPalette returns the palette for one track, honoring its
// override. Overrides were validated in SetData.
func (c *Chart) trackPalette(track Track) palette.Palette {
	if len(track.Palette) == 0 {
		return c.cfg.Palette
	}
	p, err := palette.Parse(track.Palette)
	if err != nil {
		return c.cfg.Palette
	}
	return p
}

// buildTracks emits the interval pills and the label column, one
// fresh resolver per track. It returns the per-track categories in
// resolver order for the legend.
func (c *Chart) buildTracks(l layout, rid string) (*vector.Group, [][]palette.Category) {
	g := &vector.Group{ID: "tracks-" + rid}
	categories := make([][]palette.Category, 0, len(c.data))

	for i, track := range c.data {
		center := l.trackCenter(i)
		res := palette.NewResolver(c.trackPalette(track))

		for _, iv := range track.Intervals {
			// Accumulate before any skip so zero-length and
			// out-of-window intervals still claim their color slot
			// and legend entry in data order.
			res.Accumulate(iv.Title, iv.Length)
			color := res.Resolve(iv.Title)

			start := math.Max(iv.Start, l.from)
			end := math.Min(iv.End(), l.to)
			if end-start <= 0 {
				continue
			}

			caps := geometry.NewCapsule(c.cfg.TrackHeight, (end-start)*l.upm, l.s, false)
			caps.Steepness = c.cfg.LensSteepness
			pill := caps.Outline(geometry.Frame{OX: l.x(start), OY: center})
			if pill.Empty() {
				continue
			}
			pill.Fill = color
			pill.Class = "interval"
			if c.cfg.Hover.Visible {
				pill.Attrs = vector.Attr{"data-tip": c.cfg.Hover.Format(iv.Title, iv.Start, iv.End())}
			}
			g.Append(pill)
		}

		if track.Label != "" {
			g.Append(&vector.Text{
				X:       l.s.UnitsX(c.cfg.Padding.Left),
				Y:       center - l.s.UnitsY(2),
				Content: track.Label,
				Size:    c.cfg.FontSize,
				Class:   "track-label",
			})
		}
		if total := timefmt.Minutes(track.Total()); total != "" {
			g.Append(&vector.Text{
				X:       l.s.UnitsX(c.cfg.Padding.Left),
				Y:       center + l.s.UnitsY(c.cfg.FontSize-2),
				Content: total,
				Size:    c.cfg.FontSize - 2,
				Fill:    "#888888",
				Class:   "track-total",
			})
		}

		categories = append(categories, res.Categories())
	}
	return g, categories
}

// buildStripes emits a thin white marker across the track band at
// every whole hour inside the window.
func (c *Chart) buildStripes(l layout, rid string) *vector.Group {
	g := &vector.Group{ID: "stripes-" + rid}
	y := l.s.UnitsY(l.tracksTop)
	height := l.s.UnitsY(l.tracksBottom - l.tracksTop)
	for _, hr := range l.hours() {
		g.Append(&vector.Rect{
			X:     l.x(hr) - l.s.UnitsX(stripeWidthPx)/2,
			Y:     y,
			W:     l.s.UnitsX(stripeWidthPx),
			H:     height,
			Fill:  "#ffffff",
			Class: "stripe",
		})
	}
	return g
}

// buildLegend emits one swatch and label per resolved category, track
// by track, flowing left to right and wrapping at the right padding
// edge.
func (c *Chart) buildLegend(l layout, rid string, categories [][]palette.Category) *vector.Group {
	g := &vector.Group{ID: "legend-" + rid, Class: "legend"}
	swatch := geometry.NewCapsule(2*swatchRadiusPx, l.s.UnitsX(2*swatchRadiusPx), l.s, false)

	offset, row := 0.0, 0
	for _, cats := range categories {
		for _, cat := range cats {
			label := cat.Title
			if total := timefmt.Minutes(cat.Total); total != "" {
				label += " - " + total
			}

			entry := 2*swatchRadiusPx + fonts.Estimate(label, c.cfg.FontSize)
			if offset > 0 && offset+entry > l.availPx {
				offset, row = 0, row+1
			}
			x := c.cfg.Padding.Left + offset
			y := l.legendTop + float64(row)*(c.cfg.FontSize+8) + swatchRadiusPx

			pill := swatch.Outline(geometry.Frame{OX: l.s.UnitsX(x), OY: l.s.UnitsY(y)})
			pill.Fill = cat.Color
			g.Append(pill)
			g.Append(&vector.Text{
				X:        l.s.UnitsX(x + 2*swatchRadiusPx + 4),
				Y:        l.s.UnitsY(y),
				Content:  label,
				Size:     c.cfg.FontSize,
				Baseline: "middle",
				Fill:     c.cfg.Legend.TextColor,
				Class:    "legend-label",
			})

			offset += entry + c.cfg.Legend.Spacing
		}
	}
	return g
}
