package barchart

import (
	"github.com/pillarchart/pillar/pkg/errors"
)

// Segment is one stacked dataset entry of a bar. Title is the category
// key the color resolver assigns colors by.
type Segment struct {
	Title string  `json:"title"`
	Value float64 `json:"value"`
}

// Bar is one labeled stack of segments.
type Bar struct {
	Label    string    `json:"label"`
	Segments []Segment `json:"segments"`
}

// Validate checks a data set before it is accepted for rendering.
// Negative, NaN and infinite segment values are data errors; zero
// values are legal and simply draw nothing.
func Validate(bars []Bar) error {
	for i, b := range bars {
		if err := errors.ValidateLabel(b.Label); err != nil {
			return errors.Wrap(errors.ErrCodeDataInvalid, err, "bar %d", i)
		}
		for j, s := range b.Segments {
			if err := errors.ValidateLabel(s.Title); err != nil {
				return errors.Wrap(errors.ErrCodeDataInvalid, err, "bar %d segment %d", i, j)
			}
			if err := errors.ValidateFiniteNonNegative("value", s.Value); err != nil {
				return errors.Wrap(errors.ErrCodeDataInvalid, err, "bar %d segment %d", i, j)
			}
		}
	}
	return nil
}

// relativeMax returns the largest per-bar segment sum.
func relativeMax(bars []Bar) float64 {
	max := 0.0
	for _, b := range bars {
		sum := 0.0
		for _, s := range b.Segments {
			sum += s.Value
		}
		if sum > max {
			max = sum
		}
	}
	return max
}
