package vector

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// Canvas is the root of a vector tree: a logical viewbox of ViewW by
// ViewH units displayed at Width by Height pixels.
type Canvas struct {
	Width, Height float64 // display size, px
	ViewW, ViewH  float64 // logical viewbox, units
	FontFamily    string

	Nodes   []Node
	styles  []string
	scripts []string
}

// NewCanvas creates a canvas for the given pixel size and logical
// viewbox.
func NewCanvas(width, height, viewW, viewH float64) *Canvas {
	return &Canvas{Width: width, Height: height, ViewW: viewW, ViewH: viewH}
}

// Append adds top-level nodes.
func (c *Canvas) Append(nodes ...Node) {
	c.Nodes = append(c.Nodes, nodes...)
}

// AddStyle appends a CSS block emitted before the content.
func (c *Canvas) AddStyle(css string) {
	c.styles = append(c.styles, css)
}

// AddScript appends a script block emitted after the content.
func (c *Canvas) AddScript(js string) {
	c.scripts = append(c.scripts, js)
}

// ElementCount returns the number of elements in the tree, groups
// included.
func (c *Canvas) ElementCount() int {
	n := 0
	for _, nd := range c.Nodes {
		n += nd.count()
	}
	return n
}

// UnitsPerPx returns the two logical-units-per-pixel factors. Scripts
// and the rasterizer need them to move between the spaces.
func (c *Canvas) UnitsPerPx() (x, y float64) {
	return c.ViewW / c.Width, c.ViewH / c.Height
}

// encodeEnv carries the conversion factors down the tree.
type encodeEnv struct {
	upxX, upxY float64 // units per px
	px         bool    // inside a pixel-coordinate group
}

// SVG encodes the canvas.
//
// The root element stretches the viewbox to the display size with
// preserveAspectRatio="none", which makes a logical unit anisotropic.
// Text is therefore emitted in pixel coordinates inside a
// scale(ViewW/Width, ViewH/Height) transform, so font sizes hold their
// configured pixel value on screen; stroke widths on lines are
// converted to units along the axis perpendicular to the line for the
// same reason.
func (c *Canvas) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" preserveAspectRatio="none" font-family="%s">`+"\n",
		fmtNum(c.ViewW), fmtNum(c.ViewH), fmtNum(c.Width), fmtNum(c.Height), EscapeXML(c.FontFamily))

	for _, css := range c.styles {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", css)
	}

	env := encodeEnv{upxX: c.ViewW / c.Width, upxY: c.ViewH / c.Height}
	for _, n := range c.Nodes {
		n.encode(&buf, env)
	}

	for _, js := range c.scripts {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", js)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (g *Group) encode(buf *bytes.Buffer, env encodeEnv) {
	buf.WriteString("  <g")
	if g.ID != "" {
		fmt.Fprintf(buf, ` id="%s"`, EscapeXML(g.ID))
	}
	if g.Class != "" {
		fmt.Fprintf(buf, ` class="%s"`, EscapeXML(g.Class))
	}
	if g.Transform != "" {
		fmt.Fprintf(buf, ` transform="%s"`, EscapeXML(g.Transform))
	}
	writeAttrs(buf, g.Attrs)
	buf.WriteString(">\n")

	child := env
	if g.Px {
		child.px = true
	}
	for _, n := range g.Nodes {
		n.encode(buf, child)
	}

	buf.WriteString("  </g>\n")
}

func (r *Rect) encode(buf *bytes.Buffer, env encodeEnv) {
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s"`,
		fmtNum(r.X), fmtNum(r.Y), fmtNum(r.W), fmtNum(r.H))
	if r.Rx > 0 {
		fmt.Fprintf(buf, ` rx="%s"`, fmtNum(r.Rx))
	}
	if r.Fill != "" {
		fmt.Fprintf(buf, ` fill="%s"`, EscapeXML(r.Fill))
	}
	if r.Class != "" {
		fmt.Fprintf(buf, ` class="%s"`, EscapeXML(r.Class))
	}
	writeAttrs(buf, r.Attrs)
	buf.WriteString("/>\n")
}

func (l *Line) encode(buf *bytes.Buffer, env encodeEnv) {
	fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s"`,
		fmtNum(l.X1), fmtNum(l.Y1), fmtNum(l.X2), fmtNum(l.Y2))
	if l.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s"`, EscapeXML(l.Stroke))
	}
	if l.Width > 0 {
		fmt.Fprintf(buf, ` stroke-width="%s"`, fmtNum(l.Width*l.widthFactor(env)))
	}
	if l.Class != "" {
		fmt.Fprintf(buf, ` class="%s"`, EscapeXML(l.Class))
	}
	writeAttrs(buf, l.Attrs)
	buf.WriteString("/>\n")
}

// widthFactor converts the px stroke width into the node's coordinate
// space: units along the perpendicular axis, or px verbatim inside a
// pixel-coordinate group.
func (l *Line) widthFactor(env encodeEnv) float64 {
	if env.px {
		return 1
	}
	switch {
	case l.Y1 == l.Y2:
		return env.upxY
	case l.X1 == l.X2:
		return env.upxX
	default:
		return geoMean(env.upxX, env.upxY)
	}
}

func (p *Path) encode(buf *bytes.Buffer, env encodeEnv) {
	fmt.Fprintf(buf, `  <path d="%s"`, p.D())
	if p.Fill != "" {
		fmt.Fprintf(buf, ` fill="%s"`, EscapeXML(p.Fill))
	}
	if p.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s"`, EscapeXML(p.Stroke))
	}
	if p.StrokeWidth > 0 {
		w := p.StrokeWidth
		if !env.px {
			w *= geoMean(env.upxX, env.upxY)
		}
		fmt.Fprintf(buf, ` stroke-width="%s"`, fmtNum(w))
	}
	if p.Class != "" {
		fmt.Fprintf(buf, ` class="%s"`, EscapeXML(p.Class))
	}
	writeAttrs(buf, p.Attrs)
	buf.WriteString("/>\n")
}

func (t *Text) encode(buf *bytes.Buffer, env encodeEnv) {
	x, y := t.X, t.Y
	transform := ""
	if !env.px {
		// Position in px inside a counter-scale so the font size
		// survives the anisotropic stretch 1:1.
		x = t.X / env.upxX
		y = t.Y / env.upxY
		transform = fmt.Sprintf("scale(%.6f,%.6f)", env.upxX, env.upxY)
	}

	fmt.Fprintf(buf, `  <text x="%s" y="%s"`, fmtNum(x), fmtNum(y))
	if t.Size > 0 {
		fmt.Fprintf(buf, ` font-size="%s"`, fmtNum(t.Size))
	}
	if t.Anchor != "" {
		fmt.Fprintf(buf, ` text-anchor="%s"`, EscapeXML(t.Anchor))
	}
	if t.Baseline != "" {
		fmt.Fprintf(buf, ` dominant-baseline="%s"`, EscapeXML(t.Baseline))
	}
	if t.Fill != "" {
		fmt.Fprintf(buf, ` fill="%s"`, EscapeXML(t.Fill))
	}
	if t.Family != "" {
		fmt.Fprintf(buf, ` font-family="%s"`, EscapeXML(t.Family))
	}
	if t.Class != "" {
		fmt.Fprintf(buf, ` class="%s"`, EscapeXML(t.Class))
	}
	if transform != "" {
		fmt.Fprintf(buf, ` transform="%s"`, transform)
	}
	writeAttrs(buf, t.Attrs)
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(t.Content))
}

// writeAttrs emits the attribute bag in sorted key order so encoding is
// deterministic.
func writeAttrs(buf *bytes.Buffer, attrs Attr) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, ` %s="%s"`, k, EscapeXML(attrs[k]))
	}
}

func geoMean(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 1
	}
	return math.Sqrt(a * b)
}
