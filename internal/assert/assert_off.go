//go:build !tgdebug

// Package assert holds checks that only run in builds tagged tgdebug.
// Release builds keep the raw IEEE 754 behavior: NaN and Inf propagate.
package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// That is a no-op without the tgdebug tag.
func That(bool, string) {}

// Normalized is a no-op without the tgdebug tag.
func Normalized(float64, string) {}

// NonSingular is a no-op without the tgdebug tag.
func NonSingular(float64, string) {}
