package scalar

import "math"

// Angle is an angle stored in radians.
type Angle[T Float] struct {
	rad T
}

// Radians creates an angle from radians.
func Radians[T Float](r T) Angle[T] {
	return Angle[T]{rad: r}
}

// Degrees creates an angle from degrees.
func Degrees[T Float](d T) Angle[T] {
	return Angle[T]{rad: d * T(math.Pi) / 180}
}

// Acos returns the angle whose cosine is x.
func Acos[T Float](x T) Angle[T] {
	return Angle[T]{rad: acos(x)}
}

// Atan2 returns the angle of the point (x, y).
func Atan2[T Float](y, x T) Angle[T] {
	return Angle[T]{rad: atan2(y, x)}
}

// Radians returns the angle in radians.
func (a Angle[T]) Radians() T { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle[T]) Degrees() T { return a.rad * 180 / T(math.Pi) }

// Add returns a + b.
func (a Angle[T]) Add(b Angle[T]) Angle[T] { return Angle[T]{rad: a.rad + b.rad} }

// Sub returns a - b.
func (a Angle[T]) Sub(b Angle[T]) Angle[T] { return Angle[T]{rad: a.rad - b.rad} }

// Scale returns a * s.
func (a Angle[T]) Scale(s T) Angle[T] { return Angle[T]{rad: a.rad * s} }

// Sin returns the sine of the angle.
func (a Angle[T]) Sin() T { return sin(a.rad) }

// Cos returns the cosine of the angle.
func (a Angle[T]) Cos() T { return cos(a.rad) }

// Tan returns the tangent of the angle.
func (a Angle[T]) Tan() T { return tan(a.rad) }

// SinCos returns both sine and cosine.
func (a Angle[T]) SinCos() (T, T) { return sin(a.rad), cos(a.rad) }
