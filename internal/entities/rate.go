package entities

import "math"

// RateTable maps a currency or metal code to its numeric rate. Tables are
// built fresh on every request and never outlive it.
type RateTable map[string]float64

// Round8 rounds half away from zero to 8 decimal places. Both the page
// parsers and the revenue totals go through it so the whole service carries
// one rounding policy.
func Round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
