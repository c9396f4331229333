package geometry

import (
	"math"

	"github.com/pillarchart/pillar/pkg/vector"
)

// Frame places a capsule's local coordinates on the canvas. The local
// frame runs u across the capsule and v along it starting at the base
// cap; a vertical frame grows upward from (OX, OY), a horizontal one
// grows rightward.
type Frame struct {
	OX, OY   float64
	Vertical bool
}

func (f Frame) point(u, v float64) (x, y float64) {
	if f.Vertical {
		return f.OX + u, f.OY - v
	}
	return f.OX + v, f.OY + u
}

// radii maps local arc radii (across, along) onto canvas axes.
func (f Frame) radii(ru, rv float64) (rx, ry float64) {
	if f.Vertical {
		return ru, rv
	}
	return rv, ru
}

// capSweep is the sweep flag shared by every boundary arc. Both frame
// mappings flip orientation exactly once, so a boundary walked
// counterclockwise in local coordinates needs the same flag on screen
// regardless of frame.
const capSweep = false

// Capsule is a rounded bar in local frame coordinates: Width units
// across, Extent units along, cap arcs spanning Rx across and Ry
// along. Capsules sized through NewCapsule have circular caps on
// screen because Rx and Ry resolve to the same pixel radius.
type Capsule struct {
	Width  float64
	Extent float64
	Rx     float64
	Ry     float64

	// Steepness shapes the lens fallback; 1 lets the shortest fills
	// degenerate toward circular dots, lower values sharpen the tips.
	Steepness float64

	// CrossPx and AlongPx are the pixel factors of the local axes.
	CrossPx float64
	AlongPx float64
}

// NewCapsule sizes a capsule thicknessPx pixels across and extent
// units along. vertical selects which canvas axis the extent runs on.
func NewCapsule(thicknessPx, extent float64, s Scale, vertical bool) Capsule {
	c := Capsule{Extent: extent, Steepness: 1}
	if vertical {
		c.CrossPx, c.AlongPx = s.X, s.Y
	} else {
		c.CrossPx, c.AlongPx = s.Y, s.X
	}
	c.Width = thicknessPx / c.CrossPx
	c.Rx = c.Width / 2
	c.Ry = thicknessPx / 2 / c.AlongPx
	return c
}

// Degenerate reports whether the capsule is too short to fit both
// caps, in which case bands collapse to the lens fallback.
func (c Capsule) Degenerate() bool {
	return c.Extent < 2*c.Ry
}

// halfWidth is the boundary's distance from the axis at position v
// along the capsule.
func (c Capsule) halfWidth(v float64) float64 {
	if c.Ry <= 0 {
		return c.Rx
	}
	var t float64
	switch {
	case v < c.Ry:
		t = (c.Ry - v) / c.Ry
	case v > c.Extent-c.Ry:
		t = (v - (c.Extent - c.Ry)) / c.Ry
	default:
		return c.Rx
	}
	if t >= 1 {
		return 0
	}
	return c.Rx * math.Sqrt(1-t*t)
}

// Outline returns the full capsule boundary.
func (c Capsule) Outline(f Frame) *vector.Path {
	return c.Band(f, 0, c.Extent)
}

// Band returns the outline of the capsule slice between from and to
// units along the axis, or nil when the slice has no extent. Slice
// edges are straight chords; boundary portions falling on a cap are
// emitted as elliptical arcs so stacked slices share the cap curvature
// exactly.
func (c Capsule) Band(f Frame, from, to float64) *vector.Path {
	from = math.Max(0, from)
	to = math.Min(c.Extent, to)
	if to-from <= eps {
		return nil
	}
	if c.Degenerate() {
		return c.lensBand(f, from, to)
	}

	p := &vector.Path{}
	hwA := c.halfWidth(from)
	hwB := c.halfWidth(to)

	p.MoveTo(f.point(-hwA, from))
	if hwA > eps {
		p.LineTo(f.point(hwA, from))
	}
	c.side(p, f, 1, from, to)
	if hwB > eps {
		p.LineTo(f.point(-hwB, to))
	}
	c.side(p, f, -1, to, from)
	p.Close()
	return p
}

// side emits the boundary pieces on one side of the axis, walking from
// a to b. dir is +1 for the right side in local coordinates, -1 for
// the left; cap portions become arcs, the straight flank a line.
func (c Capsule) side(p *vector.Path, f Frame, dir, a, b float64) {
	stops := [2]float64{c.Ry, c.Extent - c.Ry}
	if a > b {
		stops[0], stops[1] = stops[1], stops[0]
	}
	cuts := []float64{a}
	for _, s := range stops {
		if (a < s && s < b) || (b < s && s < a) {
			cuts = append(cuts, s)
		}
	}
	cuts = append(cuts, b)

	rx, ry := f.radii(c.Rx, c.Ry)
	for i := 1; i < len(cuts); i++ {
		v := cuts[i]
		if math.Abs(v-cuts[i-1]) <= eps {
			continue
		}
		mid := (cuts[i-1] + v) / 2
		x, y := f.point(dir*c.halfWidth(v), v)
		if mid < c.Ry || mid > c.Extent-c.Ry {
			p.ArcTo(x, y, rx, ry, false, capSweep)
		} else {
			p.LineTo(x, y)
		}
	}
}

// lensBand draws a slice of a capsule too short for two full caps.
// The outline becomes a lens: two arcs meeting at the tips, with the
// bulge capped at the capsule's own half thickness. Radii are computed
// in pixel space and converted back per axis so the curve stays
// circular on screen under anisotropic stretch.
func (c Capsule) lensBand(f Frame, from, to float64) *vector.Path {
	length := c.Extent * c.AlongPx
	if length <= eps {
		return nil
	}
	steep := c.Steepness
	if steep <= 0 {
		steep = 1
	}
	halfT := c.Rx * c.CrossPx
	bulge := math.Min(halfT, steep*length/2)
	if bulge <= eps {
		return nil
	}

	p := &vector.Path{}
	if from <= eps && to >= c.Extent-eps {
		radius := (length*length/4 + bulge*bulge) / (2 * bulge)
		rx, ry := f.radii(radius/c.CrossPx, radius/c.AlongPx)
		large := bulge > length/2+eps
		p.MoveTo(f.point(0, 0))
		x, y := f.point(0, c.Extent)
		p.ArcTo(x, y, rx, ry, large, capSweep)
		x, y = f.point(0, 0)
		p.ArcTo(x, y, rx, ry, large, capSweep)
		p.Close()
		return p
	}

	// Partial slices keep the bulge within a semicircle so the chord
	// cut stays single valued along the axis.
	b := math.Min(bulge, length/2)
	radius := (length*length/4 + b*b) / (2 * b)
	center := b - radius
	hw := func(v float64) float64 {
		t := v*c.AlongPx - length/2
		d := radius*radius - t*t
		if d <= 0 {
			return 0
		}
		return math.Max(0, center+math.Sqrt(d)) / c.CrossPx
	}
	rx, ry := f.radii(radius/c.CrossPx, radius/c.AlongPx)

	hwA, hwB := hw(from), hw(to)
	p.MoveTo(f.point(-hwA, from))
	if hwA > eps {
		p.LineTo(f.point(hwA, from))
	}
	x, y := f.point(hwB, to)
	p.ArcTo(x, y, rx, ry, false, capSweep)
	if hwB > eps {
		p.LineTo(f.point(-hwB, to))
	}
	x, y = f.point(-hwA, from)
	p.ArcTo(x, y, rx, ry, false, capSweep)
	p.Close()
	return p
}
