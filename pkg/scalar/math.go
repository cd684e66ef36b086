package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of x. Negative inputs yield NaN.
func Sqrt[T Float](x T) T {
	if Is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	if Is32[T]() {
		return T(math32.Pow(float32(x), float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[T Float](x, y T) T {
	if Is32[T]() {
		return T(math32.Copysign(float32(x), float32(y)))
	}
	return T(math.Copysign(float64(x), float64(y)))
}

// Floor rounds x down.
func Floor[T Float](x T) T {
	if Is32[T]() {
		return T(math32.Floor(float32(x)))
	}
	return T(math.Floor(float64(x)))
}

// IsNaN reports whether x is not a number.
func IsNaN[T Float](x T) bool {
	return x != x
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if Is32[T]() {
		return T(1.1920929e-07)
	}
	return T(2.220446049250313e-16)
}

func sin[T Float](x T) T {
	if Is32[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

func cos[T Float](x T) T {
	if Is32[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

func tan[T Float](x T) T {
	if Is32[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

func acos[T Float](x T) T {
	if Is32[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

func atan2[T Float](y, x T) T {
	if Is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}
