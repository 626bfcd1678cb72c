package utils

import "math"

// RoundHalfUp rounds to the nearest integer, sending exact halves toward
// positive infinity (-2.5 rounds to -2, 2.5 rounds to 3)
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundTo rounds x half-up to the given number of decimal places
func RoundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return RoundHalfUp(x*scale) / scale
}

// ClampMax returns x capped at limit. There is no lower bound.
func ClampMax(x, limit float64) float64 {
	if x > limit {
		return limit
	}
	return x
}
