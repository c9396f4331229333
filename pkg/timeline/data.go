package timeline

import (
	"github.com/pillarchart/pillar/pkg/errors"
	"github.com/pillarchart/pillar/pkg/palette"
)

// Interval is one occupied span on a track, in minutes from the scale
// origin. Zero-length intervals are legal: they claim a legend slot
// and a color but draw nothing.
type Interval struct {
	Title  string  `json:"title"`
	Start  float64 `json:"start"`
	Length float64 `json:"length"`
}

// End returns the minute the interval finishes.
func (iv Interval) End() float64 {
	return iv.Start + iv.Length
}

// Track is one horizontal lane of intervals. Palette, when set,
// overrides the chart palette for this track only.
type Track struct {
	Label     string     `json:"label"`
	Intervals []Interval `json:"intervals"`
	Palette   []string   `json:"palette,omitempty"`
}

// Total returns the sum of the track's interval lengths.
func (t Track) Total() float64 {
	var sum float64
	for _, iv := range t.Intervals {
		sum += iv.Length
	}
	return sum
}

// Validate checks tracks for structural problems: oversized or control
// labels, non-finite or negative times, unparseable palette overrides.
// Scale-dependent checks happen in SetData.
func Validate(tracks []Track) error {
	for i, track := range tracks {
		if err := errors.ValidateLabel(track.Label); err != nil {
			return errors.Wrap(errors.ErrCodeDataInvalid, err, "track %d", i)
		}
		if len(track.Palette) > 0 {
			if _, err := palette.Parse(track.Palette); err != nil {
				return errors.Wrap(errors.ErrCodeDataInvalid, err, "track %d palette", i)
			}
		}
		for j, iv := range track.Intervals {
			if err := errors.ValidateLabel(iv.Title); err != nil {
				return errors.Wrap(errors.ErrCodeDataInvalid, err, "track %d interval %d", i, j)
			}
			if err := errors.ValidateFiniteNonNegative("start", iv.Start); err != nil {
				return errors.Wrap(errors.ErrCodeDataInvalid, err, "track %d interval %d", i, j)
			}
			if err := errors.ValidateFiniteNonNegative("length", iv.Length); err != nil {
				return errors.Wrap(errors.ErrCodeDataInvalid, err, "track %d interval %d", i, j)
			}
		}
	}
	return nil
}
