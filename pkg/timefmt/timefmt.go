// Package timefmt formats minute quantities for chart labels.
//
// Two formats are provided: [Minutes] renders a duration ("2h 5m"), and
// [Clock] renders a position on a 12-hour clock ("1:30 am"). Both take
// minutes as float64 because interval data may carry fractional minutes;
// values are rounded to whole minutes before formatting.
package timefmt

import (
	"fmt"
	"math"
)

// Minutes formats a duration given in minutes.
//
//	Minutes(125) = "2h 5m"
//	Minutes(60)  = "1h"
//	Minutes(45)  = "45m"
//	Minutes(0)   = ""
//
// Negative input is treated as zero.
func Minutes(m float64) string {
	total := int(math.Round(m))
	if total <= 0 {
		return ""
	}

	h := total / 60
	r := total % 60

	switch {
	case h > 0 && r > 0:
		return fmt.Sprintf("%dh %dm", h, r)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", r)
	}
}

// Clock formats a minute-of-day position on a 12-hour clock.
//
//	Clock(90)  = "1:30 am"
//	Clock(780) = "1 pm"
//
// The hour is reduced modulo 12 with no midnight/noon adjustment, so hour
// zero renders as "0 am" and noon as "0 pm". Minutes are omitted when zero.
// Values beyond one day wrap; negative input is treated as zero.
func Clock(m float64) string {
	total := int(math.Round(m))
	if total < 0 {
		total = 0
	}

	h := total / 60
	r := total % 60

	suffix := "am"
	if h%24 >= 12 {
		suffix = "pm"
	}
	hour := h % 12

	if r == 0 {
		return fmt.Sprintf("%d %s", hour, suffix)
	}
	return fmt.Sprintf("%d:%02d %s", hour, r, suffix)
}
