package geometry

import "math"

// ArcPoint returns the point on an axis-aligned ellipse centered at
// (cx, cy) with radii rx and ry, at the given angle in degrees. Angles
// follow the chart convention: zero points up on screen and positive
// angles advance clockwise, so the angle is rotated by -90 degrees
// before the trig evaluation in SVG's y-down frame.
func ArcPoint(cx, cy, rx, ry, deg float64) (x, y float64) {
	rad := (deg - 90) * math.Pi / 180
	return cx + rx*math.Cos(rad), cy + ry*math.Sin(rad)
}

// LargeArc reports whether the sweep between two angles in degrees
// exceeds a half turn, which is when SVG's large-arc flag must be set
// to keep the intended side of the ellipse.
func LargeArc(fromDeg, toDeg float64) bool {
	return math.Abs(toDeg-fromDeg) > 180
}
