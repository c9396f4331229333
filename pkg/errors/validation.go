package errors

import (
	"unicode"
)

// ValidateLabel validates a user-supplied label or category title.
// Labels end up inside SVG text nodes and data attributes, so the rules
// are intentionally conservative:
//   - No control characters
//   - Maximum length of 256 characters
//
// Empty labels are allowed; charts render them as blank.
func ValidateLabel(label string) error {
	if len(label) > 256 {
		return New(ErrCodeDataInvalid, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeDataInvalid, "label contains control characters")
		}
	}

	return nil
}

// ValidateFiniteNonNegative validates a numeric input that must be a finite
// number greater than or equal to zero (segment values, interval lengths).
// The name argument identifies the field in the error message.
func ValidateFiniteNonNegative(name string, v float64) error {
	if v != v || v > maxFinite || v < -maxFinite {
		return New(ErrCodeDataInvalid, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeDataInvalid, "%s cannot be negative, got %v", name, v)
	}
	return nil
}

// maxFinite bounds accepted magnitudes well below math.MaxFloat64 so later
// unit conversions cannot overflow to Inf.
const maxFinite = 1e15
