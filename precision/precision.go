// Package precision implements decimal rounding and the invariant checks
// that every other package in this module routes its numeric results
// through.
package precision

import "math"

// Max is the highest decimal precision the core understands. Round
// short-circuits at this value.
const Max = 12

// Default is the precision new values use when none is given explicitly.
const Default = 12

// Round rounds value to places decimal digits using half-away-from-zero.
//
// When places >= Max, value is returned unchanged: callers at the ceiling
// precision get the unrounded float, including any floating-point error
// left by the computation that produced it (for example
// 29.999999999999996 rather than 30).
func Round(value float64, places int) float64 {
	if places >= Max {
		return value
	}
	if places < 0 {
		places = 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	scale := math.Pow(10, float64(places))
	if value >= 0 {
		return math.Floor(value*scale+0.5) / scale
	}
	return math.Ceil(value*scale-0.5) / scale
}

// Combine returns the precision a value derived from two operands should
// use, absent an explicit override: the coarser (smaller) of the two.
func Combine(a, b int) int {
	return min(a, b)
}

// AssertFinite panics if any of vs is NaN or ±Inf. Every constructor in
// this module calls it on its scalar inputs: per spec.md §7, non-finite
// inputs are a programmer error, not a recoverable failure.
func AssertFinite(label string, vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(label + ": non-finite value")
		}
	}
}
