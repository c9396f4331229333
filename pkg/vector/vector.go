// Package vector is the drawing surface the chart renderers emit into:
// a small retained tree of primitives (groups, paths, rects, lines,
// text) that encodes to SVG, plus the container abstraction that
// supplies the measured pixel box a chart renders at.
//
// The surface works in the charts' logical viewbox coordinates. The
// encoder owns the two responsive tricks the logical space requires:
// the root element stretches with preserveAspectRatio="none", and text
// is emitted inside a counter-scaling transform so configured pixel
// font sizes survive anisotropic stretching (see [Canvas.SVG]).
package vector

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
)

// Container supplies the measured pixel box a chart renders into.
// Measurements are taken fresh on every render; implementations backed
// by live layouts (a terminal, an HTTP query) simply return the current
// size.
type Container interface {
	// Size returns the current width and height in pixels.
	Size() (width, height float64)
}

// Fixed is a Container with a constant size.
type Fixed struct {
	W, H float64
}

// Size implements Container.
func (f Fixed) Size() (float64, float64) { return f.W, f.H }

// Attr is an open-ended attribute bag rendered onto an element.
// Interaction scripts address elements through data-* entries placed
// here; keys are emitted in sorted order so output stays deterministic.
type Attr map[string]string

// Node is one element of the vector tree.
type Node interface {
	encode(buf *bytes.Buffer, env encodeEnv)
	count() int
}

// Group groups child nodes, optionally with an id, class and transform.
// When Px is set the children are authored in pixel coordinates and the
// group's transform is expected to bridge the two spaces; the encoder
// then leaves text inside untransformed.
type Group struct {
	ID        string
	Class     string
	Transform string
	Px        bool
	Attrs     Attr
	Nodes     []Node
}

// Append adds child nodes.
func (g *Group) Append(nodes ...Node) {
	g.Nodes = append(g.Nodes, nodes...)
}

// Rect is an axis-aligned rectangle. Rx rounds the corners, in the
// same coordinate space as the rectangle itself.
type Rect struct {
	X, Y, W, H float64
	Rx         float64
	Fill       string
	Class      string
	Attrs      Attr
}

// Line is an axis-aligned line. Width is the stroke width in pixels;
// the encoder converts it to logical units along the axis perpendicular
// to the line so the stroke renders at constant thickness.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	Width          float64
	Class          string
	Attrs          Attr
}

// Text is a text node. Size is the font size in pixels. Anchor is the
// SVG text-anchor (start, middle, end); Baseline, when set, is emitted
// as dominant-baseline.
type Text struct {
	X, Y     float64
	Content  string
	Size     float64
	Anchor   string
	Baseline string
	Fill     string
	Family   string
	Class    string
	Attrs    Attr
}

func (g *Group) count() int {
	n := 1
	for _, c := range g.Nodes {
		n += c.count()
	}
	return n
}

func (r *Rect) count() int { return 1 }
func (l *Line) count() int { return 1 }
func (t *Text) count() int { return 1 }

// EscapeXML escapes text for safe embedding in SVG content and
// attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// fmtNum prints a coordinate with at most two decimals and no trailing
// zeros, keeping output compact and byte-stable.
func fmtNum(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
