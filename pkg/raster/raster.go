// Package raster renders a vector canvas to PNG in process.
//
// The rasterizer replays the element tree onto a gg context at a
// supersampled pixel size. Geometry converts from logical units to
// device pixels per axis, arcs included, so the output matches what a
// browser shows for the SVG encoding of the same canvas. Scripted
// overlays (the hover tooltip) are skipped: a static image has no
// pointer.
package raster

import (
	"bytes"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/fonts"
	"github.com/pillarchart/pillar/pkg/vector"
)

// Option configures rasterization.
type Option func(*rasterizer)

// WithScale sets the supersampling factor. The default of 2 renders at
// twice the canvas pixel size.
func WithScale(s float64) Option {
	return func(r *rasterizer) {
		if s > 0 {
			r.scale = s
		}
	}
}

type rasterizer struct {
	dc    *gg.Context
	sx    float64 // device px per unit, horizontal
	sy    float64 // device px per unit, vertical
	scale float64
	faces map[float64]font.Face
}

// ToPNG renders the canvas to an in-memory PNG.
func ToPNG(c *vector.Canvas, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(c, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode renders the canvas and writes PNG bytes to w.
func Encode(c *vector.Canvas, w io.Writer, opts ...Option) error {
	r := &rasterizer{scale: 2, faces: make(map[float64]font.Face)}
	for _, opt := range opts {
		opt(r)
	}

	wpx := int(math.Round(c.Width * r.scale))
	hpx := int(math.Round(c.Height * r.scale))
	if wpx <= 0 || hpx <= 0 {
		return errors.New(errors.ErrCodeRenderFailed,
			"canvas size %vx%v is not rasterizable", c.Width, c.Height)
	}

	r.dc = gg.NewContext(wpx, hpx)
	r.sx = c.Width / c.ViewW * r.scale
	r.sy = c.Height / c.ViewH * r.scale

	r.dc.SetHexColor("#ffffff")
	r.dc.Clear()

	if err := r.nodes(c.Nodes); err != nil {
		return err
	}
	if err := r.dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "encoding png")
	}
	return nil
}

func (r *rasterizer) nodes(nodes []vector.Node) error {
	for _, n := range nodes {
		if err := r.node(n); err != nil {
			return err
		}
	}
	return nil
}

func (r *rasterizer) node(n vector.Node) error {
	switch v := n.(type) {
	case *vector.Group:
		if v.Px || v.Attrs["visibility"] == "hidden" {
			return nil
		}
		return r.nodes(v.Nodes)
	case *vector.Rect:
		r.rect(v)
	case *vector.Line:
		r.line(v)
	case *vector.Path:
		r.path(v)
	case *vector.Text:
		return r.text(v)
	}
	return nil
}

func (r *rasterizer) rect(v *vector.Rect) {
	if v.Fill == "" || v.Fill == "none" {
		return
	}
	x, y := v.X*r.sx, v.Y*r.sy
	w, h := v.W*r.sx, v.H*r.sy
	if v.Rx > 0 {
		r.dc.DrawRoundedRectangle(x, y, w, h, v.Rx*math.Sqrt(r.sx*r.sy))
	} else {
		r.dc.DrawRectangle(x, y, w, h)
	}
	r.dc.SetHexColor(v.Fill)
	r.dc.Fill()
}

func (r *rasterizer) line(v *vector.Line) {
	if v.Stroke == "" || v.Stroke == "none" || v.Width <= 0 {
		return
	}
	r.dc.DrawLine(v.X1*r.sx, v.Y1*r.sy, v.X2*r.sx, v.Y2*r.sy)
	r.dc.SetHexColor(v.Stroke)
	r.dc.SetLineWidth(v.Width * r.scale)
	r.dc.Stroke()
}

func (r *rasterizer) text(v *vector.Text) error {
	if v.Content == "" {
		return nil
	}
	size := v.Size
	if size <= 0 {
		size = 12
	}
	face, err := r.face(size * r.scale)
	if err != nil {
		return err
	}
	r.dc.SetFontFace(face)

	fill := v.Fill
	if fill == "" {
		fill = "#000000"
	}
	r.dc.SetHexColor(fill)

	ax := 0.0
	switch v.Anchor {
	case "middle":
		ax = 0.5
	case "end":
		ax = 1
	}
	ay := 0.0
	if v.Baseline == "middle" {
		// gg anchors at the baseline when ay is zero; 0.35 of the
		// line height lands the optical center on the y coordinate.
		ay = 0.35
	}
	r.dc.DrawStringAnchored(v.Content, v.X*r.sx, v.Y*r.sy, ax, ay)
	return nil
}

func (r *rasterizer) face(size float64) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	f, err := fonts.Face(size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "loading font face")
	}
	r.faces[size] = f
	return f, nil
}

func (r *rasterizer) path(v *vector.Path) {
	if v.Empty() {
		return
	}

	var cx, cy float64 // current point
	var ox, oy float64 // subpath origin
	for _, cmd := range v.Cmds {
		x, y := cmd.X*r.sx, cmd.Y*r.sy
		switch cmd.Op {
		case vector.OpMove:
			r.dc.MoveTo(x, y)
			cx, cy = x, y
			ox, oy = x, y
		case vector.OpLine:
			r.dc.LineTo(x, y)
			cx, cy = x, y
		case vector.OpArc:
			r.arc(cx, cy, x, y, cmd.RX*r.sx, cmd.RY*r.sy, cmd.Large, cmd.Sweep)
			cx, cy = x, y
		case vector.OpClose:
			r.dc.ClosePath()
			cx, cy = ox, oy
		}
	}

	filled := v.Fill != "" && v.Fill != "none"
	stroked := v.Stroke != "" && v.Stroke != "none" && v.StrokeWidth > 0
	switch {
	case filled && stroked:
		r.dc.SetHexColor(v.Fill)
		r.dc.FillPreserve()
		r.dc.SetHexColor(v.Stroke)
		r.dc.SetLineWidth(v.StrokeWidth * r.scale)
		r.dc.Stroke()
	case filled:
		r.dc.SetHexColor(v.Fill)
		r.dc.Fill()
	case stroked:
		r.dc.SetHexColor(v.Stroke)
		r.dc.SetLineWidth(v.StrokeWidth * r.scale)
		r.dc.Stroke()
	default:
		r.dc.ClearPath()
	}
}

// arc appends an SVG endpoint-parameterized elliptical arc running
// from the current point (x1, y1) to (x2, y2), converting to center
// parameterization first. Rotation is always zero here; the charts
// only emit axis-aligned ellipses.
func (r *rasterizer) arc(x1, y1, x2, y2, rx, ry float64, large, sweep bool) {
	if rx <= 0 || ry <= 0 || (x1 == x2 && y1 == y2) {
		r.dc.LineTo(x2, y2)
		return
	}
	dx := (x1 - x2) / 2
	dy := (y1 - y2) / 2

	// Radii too small to span the endpoints scale up uniformly.
	if lambda := dx*dx/(rx*rx) + dy*dy/(ry*ry); lambda > 1 {
		k := math.Sqrt(lambda)
		rx *= k
		ry *= k
	}

	den := rx*rx*dy*dy + ry*ry*dx*dx
	if den == 0 {
		r.dc.LineTo(x2, y2)
		return
	}
	sq := math.Sqrt(math.Max(0, rx*rx*ry*ry-den) / den)
	if large == sweep {
		sq = -sq
	}
	cxp := sq * rx * dy / ry
	cyp := -sq * ry * dx / rx
	cx := cxp + (x1+x2)/2
	cy := cyp + (y1+y2)/2

	theta1 := angleBetween(1, 0, (dx-cxp)/rx, (dy-cyp)/ry)
	dTheta := angleBetween((dx-cxp)/rx, (dy-cyp)/ry, (-dx-cxp)/rx, (-dy-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	r.dc.DrawEllipticalArc(cx, cy, rx, ry, theta1, theta1+dTheta)
}

// angleBetween returns the signed angle from vector u to vector v.
func angleBetween(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lu := math.Hypot(ux, uy)
	lv := math.Hypot(vx, vy)
	if lu == 0 || lv == 0 {
		return 0
	}
	cos := math.Max(-1, math.Min(1, dot/(lu*lv)))
	a := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}
