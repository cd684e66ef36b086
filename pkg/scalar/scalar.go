// Package scalar defines the numeric kinds every typedgeo container is
// generic over, the promotion rules used when a result needs more range or
// a fractional part, and the elementary functions per floating kind.
package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any scalar kind a vector, position, size or matrix may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is a scalar kind that can represent fractions. Shapes that divide,
// normalize or take roots are constrained to it.
type Float interface {
	constraints.Float
}

// Squared is the kind that holds x*x for any Number without overflow.
type Squared = float64

// Fractional is the kind that holds quotients, roots and trigonometric
// results of any Number.
type Fractional = float64

// Sq returns x*x promoted to Squared.
func Sq[T Number](x T) Squared {
	f := Squared(x)
	return f * f
}

// Frac promotes x to Fractional.
func Frac[T Number](x T) Fractional {
	return Fractional(x)
}

// Is32 reports whether T is a 32-bit float kind.
func Is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi].
func Clamp[T Number](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Sign returns -1, 0 or 1.
func Sign[T Number](x T) T {
	switch {
	case x < 0:
		return T(0) - 1
	case x > 0:
		return 1
	}
	return 0
}

// Lerp interpolates between a and b.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}
