package vector

import "strings"

// Path op codes, matching the SVG commands they encode to.
const (
	OpMove  = 'M'
	OpLine  = 'L'
	OpArc   = 'A'
	OpClose = 'Z'
)

// PathCmd is one command of a path. Arc commands use the SVG endpoint
// parameterization: radii plus end point plus the two flags. Axis
// rotation is always zero; the charts only emit axis-aligned ellipses.
type PathCmd struct {
	Op     byte
	X, Y   float64
	RX, RY float64
	Large  bool
	Sweep  bool
}

// Path is a filled (and optionally stroked) outline. StrokeWidth is in
// pixels and converted by the encoder like Line widths, using the
// geometric mean of the two axes since an outline has no single
// direction.
type Path struct {
	Cmds        []PathCmd
	Fill        string
	Stroke      string
	StrokeWidth float64
	Class       string
	Attrs       Attr
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.Cmds = append(p.Cmds, PathCmd{Op: OpMove, X: x, Y: y})
	return p
}

// LineTo draws a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.Cmds = append(p.Cmds, PathCmd{Op: OpLine, X: x, Y: y})
	return p
}

// ArcTo draws an elliptical arc to (x, y) with radii rx, ry. large
// selects the sweep exceeding 180 degrees; sweep selects the
// positive-angle (clockwise on screen) direction.
func (p *Path) ArcTo(x, y, rx, ry float64, large, sweep bool) *Path {
	p.Cmds = append(p.Cmds, PathCmd{Op: OpArc, X: x, Y: y, RX: rx, RY: ry, Large: large, Sweep: sweep})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Cmds = append(p.Cmds, PathCmd{Op: OpClose})
	return p
}

// Empty reports whether the path has no drawable commands.
func (p *Path) Empty() bool {
	return p == nil || len(p.Cmds) == 0
}

func (p *Path) count() int { return 1 }

// D returns the encoded d attribute.
func (p *Path) D() string {
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMove, OpLine:
			b.WriteByte(c.Op)
			b.WriteByte(' ')
			b.WriteString(fmtNum(c.X))
			b.WriteByte(' ')
			b.WriteString(fmtNum(c.Y))
		case OpArc:
			b.WriteByte('A')
			b.WriteByte(' ')
			b.WriteString(fmtNum(c.RX))
			b.WriteByte(' ')
			b.WriteString(fmtNum(c.RY))
			b.WriteString(" 0 ")
			b.WriteString(flag(c.Large))
			b.WriteByte(' ')
			b.WriteString(flag(c.Sweep))
			b.WriteByte(' ')
			b.WriteString(fmtNum(c.X))
			b.WriteByte(' ')
			b.WriteString(fmtNum(c.Y))
		case OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
