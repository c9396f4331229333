// Package geometry computes chart shapes in the logical viewbox space.
//
// Charts render into a fixed 100x100-unit viewbox stretched to the
// container with preserveAspectRatio="none", so a logical unit is wider
// than it is tall (or vice versa) whenever the container is not square.
// The Scale type carries the per-axis pixel factors; the capsule
// builder uses them to keep rounded caps circular on screen, which is
// why its arcs are elliptical in unit space.
package geometry

import (
	"github.com/pillarchart/pillar/pkg/errors"
)

// Units is the logical viewbox extent along each axis.
const Units = 100.0

// eps guards float comparisons in band construction.
const eps = 1e-9

// Scale holds the pixels-per-unit factor for each axis of the logical
// viewbox. Scales are recomputed from a fresh container measurement on
// every render; nothing retains one across renders.
type Scale struct {
	X, Y float64
}

// NewScale derives the scale from a measured container. Dimensions
// must be positive finite pixels; anything else (including a container
// that has not been laid out yet) is not renderable.
func NewScale(width, height float64) (Scale, error) {
	if !(width > 0) || !(height > 0) || width > 1e9 || height > 1e9 {
		return Scale{}, errors.New(errors.ErrCodeNotMeasurable,
			"container size %vx%v is not renderable", width, height)
	}
	return Scale{X: width / Units, Y: height / Units}, nil
}

// PxX converts units to pixels along x.
func (s Scale) PxX(u float64) float64 { return u * s.X }

// PxY converts units to pixels along y.
func (s Scale) PxY(u float64) float64 { return u * s.Y }

// UnitsX converts pixels to units along x.
func (s Scale) UnitsX(px float64) float64 { return px / s.X }

// UnitsY converts pixels to units along y.
func (s Scale) UnitsY(px float64) float64 { return px / s.Y }
