package linalg

import (
	"fmt"

	"github.com/taigrr/typedgeo/internal/assert"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Dir2 is a 2D unit vector. Converting an un-normalized Vec2 with Dir2[T](v)
// is the caller's responsibility; Normalize2 always yields a valid Dir2.
type Dir2[T scalar.Float] Vec2[T]

// Dir3 is a 3D unit vector. Converting an un-normalized Vec3 with Dir3[T](v)
// is the caller's responsibility; Normalize3 always yields a valid Dir3.
type Dir3[T scalar.Float] Vec3[T]

// D2 creates a Dir2 from components that must already have unit length.
func D2[T scalar.Float](x, y T) Dir2[T] {
	d := Dir2[T]{x, y}
	assert.Normalized(float64(d.Vec().Length2()), "D2")
	return d
}

// D3 creates a Dir3 from components that must already have unit length.
func D3[T scalar.Float](x, y, z T) Dir3[T] {
	d := Dir3[T]{x, y, z}
	assert.Normalized(float64(d.Vec().Length2()), "D3")
	return d
}

// Vec returns d as a free vector.
func (d Dir2[T]) Vec() Vec2[T] { return Vec2[T](d) }

// Neg returns the opposite direction.
func (d Dir2[T]) Neg() Dir2[T] { return Dir2[T]{-d.X, -d.Y} }

// Dot returns d · v.
func (d Dir2[T]) Dot(v Vec2[T]) T { return d.X*v.X + d.Y*v.Y }

// Scale returns d * s.
func (d Dir2[T]) Scale(s T) Vec2[T] { return Vec2[T]{d.X * s, d.Y * s} }

func (d Dir2[T]) String() string { return fmt.Sprintf("dir2(%v, %v)", d.X, d.Y) }

// Vec returns d as a free vector.
func (d Dir3[T]) Vec() Vec3[T] { return Vec3[T](d) }

// Neg returns the opposite direction.
func (d Dir3[T]) Neg() Dir3[T] { return Dir3[T]{-d.X, -d.Y, -d.Z} }

// Dot returns d · v.
func (d Dir3[T]) Dot(v Vec3[T]) T { return d.X*v.X + d.Y*v.Y + d.Z*v.Z }

// Scale returns d * s.
func (d Dir3[T]) Scale(s T) Vec3[T] { return Vec3[T]{d.X * s, d.Y * s, d.Z * s} }

// Cross returns d × v.
func (d Dir3[T]) Cross(v Vec3[T]) Vec3[T] { return d.Vec().Cross(v) }

func (d Dir3[T]) String() string { return fmt.Sprintf("dir3(%v, %v, %v)", d.X, d.Y, d.Z) }

// Norm2 returns |v| in v's own kind. Vec2.Length promotes instead.
func Norm2[T scalar.Float](v Vec2[T]) T { return scalar.Sqrt(v.Dot(v)) }

// Norm3 returns |v| in v's own kind. Vec3.Length promotes instead.
func Norm3[T scalar.Float](v Vec3[T]) T { return scalar.Sqrt(v.Dot(v)) }

// Normalize2 returns v / |v|. A zero vector produces NaN components.
func Normalize2[T scalar.Float](v Vec2[T]) Dir2[T] {
	return Dir2[T](v.Div(scalar.Sqrt(v.Dot(v))))
}

// Normalize3 returns v / |v|. A zero vector produces NaN components.
func Normalize3[T scalar.Float](v Vec3[T]) Dir3[T] {
	return Dir3[T](v.Div(scalar.Sqrt(v.Dot(v))))
}

// Normalize4 returns v / |v|. A zero vector produces NaN components.
func Normalize4[T scalar.Float](v Vec4[T]) Vec4[T] {
	return v.Div(scalar.Sqrt(v.Dot(v)))
}

// NormalizeSafe2 returns v / |v|, or the zero vector when |v| <= eps.
func NormalizeSafe2[T scalar.Float](v Vec2[T], eps T) Vec2[T] {
	l := scalar.Sqrt(v.Dot(v))
	if l <= eps {
		return Vec2[T]{}
	}
	return v.Div(l)
}

// NormalizeSafe3 returns v / |v|, or the zero vector when |v| <= eps.
func NormalizeSafe3[T scalar.Float](v Vec3[T], eps T) Vec3[T] {
	l := scalar.Sqrt(v.Dot(v))
	if l <= eps {
		return Vec3[T]{}
	}
	return v.Div(l)
}

// NormalizeSafe4 returns v / |v|, or the zero vector when |v| <= eps.
func NormalizeSafe4[T scalar.Float](v Vec4[T], eps T) Vec4[T] {
	l := scalar.Sqrt(v.Dot(v))
	if l <= eps {
		return Vec4[T]{}
	}
	return v.Div(l)
}

// AnyNormal3 returns a unit vector perpendicular to d.
func AnyNormal3[T scalar.Float](d Dir3[T]) Dir3[T] {
	if scalar.Abs(d.X) < 0.9 {
		return Normalize3(d.Cross(Vec3[T]{1, 0, 0}))
	}
	return Normalize3(d.Cross(Vec3[T]{0, 1, 0}))
}
