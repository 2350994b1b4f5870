// Package survival models the non-negotiable daily hours (sleep, device
// time, leisure) that come off the top of every day before any activity
// can be logged against it.
package survival

import (
	"fmt"
	"strconv"
)

// Budget holds hours per baseline category. The model only requires
// non-negative values; it does not stop the three from summing past 24.
type Budget struct {
	Sleep  float64 `json:"sleep"`
	Mobile float64 `json:"mobile"`
	Pass   float64 `json:"pass"`
}

// Default matches the out-of-the-box configuration.
func Default() Budget {
	return Budget{Sleep: 8, Mobile: 2, Pass: 2}
}

// ParseHours coerces input to non-negative hours, clamping parse failures
// and negatives to 0.
func ParseHours(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Set assigns hours to the named category, clamping negatives to 0.
func (b *Budget) Set(category string, hours float64) error {
	if hours < 0 {
		hours = 0
	}
	switch category {
	case "sleep":
		b.Sleep = hours
	case "mobile":
		b.Mobile = hours
	case "pass":
		b.Pass = hours
	default:
		return fmt.Errorf("survival: unknown category %q", category)
	}
	return nil
}

// Total is the sum of all baseline categories.
func (b Budget) Total() float64 {
	return b.Sleep + b.Mobile + b.Pass
}

// Available is the discretionary ceiling for a day. When the baseline
// categories sum past 24 this clamps to 0 so downstream loss can never go
// negative.
func (b Budget) Available() float64 {
	avail := 24 - b.Total()
	if avail < 0 {
		return 0
	}
	return avail
}
