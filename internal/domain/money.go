package domain

import "math"

// Round2 rounds an amount in JOD to two decimals. Booking totals are rounded
// once, not per unit.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
