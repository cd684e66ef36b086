//go:build tgdebug

// Package assert holds checks that only run in builds tagged tgdebug.
// Release builds keep the raw IEEE 754 behavior: NaN and Inf propagate.
package assert

import "math"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// That panics with msg when cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic("typedgeo: assertion failed: " + msg)
	}
}

// Normalized panics when len2 is not within tolerance of 1.
func Normalized(len2 float64, what string) {
	That(math.Abs(len2-1) < 1e-4, what+": direction is not normalized")
}

// NonSingular panics when det is zero.
func NonSingular(det float64, what string) {
	That(det != 0, what+": matrix is singular")
}
