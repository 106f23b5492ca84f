package utils

import "math"

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 rounds x to 1 decimal place. Used for labor-hour estimates.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// RoundHalfUp rounds x to the nearest whole unit, halves rounding up.
// Zone and panel areas are rounded with this before they are summed.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Clamp0 floors x at zero. Negative numeric inputs are clamped before
// use, never propagated.
func Clamp0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
