// Package linalg provides the vector, position, size, direction and matrix
// types every typedgeo shape is built from.
//
// Vectors are free (translation invariant), positions are affine points:
// Pos - Pos = Vec and Pos + Vec = Pos, but positions cannot be added to each
// other or scaled. Methods that square or divide return the promoted
// scalar.Squared / scalar.Fractional kinds so integer vectors never truncate.
package linalg

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Vec2 is a free 2D vector.
type Vec2[T scalar.Number] struct {
	X, Y T
}

// Vec3 is a free 3D vector.
type Vec3[T scalar.Number] struct {
	X, Y, Z T
}

// Vec4 is a free 4D vector (or homogeneous 3D vector).
type Vec4[T scalar.Number] struct {
	X, Y, Z, W T
}

// V2 creates a new Vec2.
func V2[T scalar.Number](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// V3 creates a new Vec3.
func V3[T scalar.Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// V4 creates a new Vec4.
func V4[T scalar.Number](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }

// Mul returns the component-wise product a * b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X * b.X, a.Y * b.Y} }

// DivComp returns the component-wise quotient a / b.
func (a Vec2[T]) DivComp(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X / b.X, a.Y / b.Y} }

// Scale returns the scalar product a * s.
func (a Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{a.X * s, a.Y * s} }

// Div returns the scalar division a / s.
func (a Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{a.X / s, a.Y / s} }

// Neg returns -a.
func (a Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-a.X, -a.Y} }

// Dot returns the dot product a · b.
func (a Vec2[T]) Dot(b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2[T]) Cross(b Vec2[T]) T { return a.X*b.Y - a.Y*b.X }

// Perp returns a rotated by 90 degrees counter-clockwise.
func (a Vec2[T]) Perp() Vec2[T] { return Vec2[T]{-a.Y, a.X} }

// Length2 returns the squared length.
func (a Vec2[T]) Length2() scalar.Squared { return scalar.Sq(a.X) + scalar.Sq(a.Y) }

// Length returns the length.
func (a Vec2[T]) Length() scalar.Fractional { return scalar.Sqrt(a.Length2()) }

// Min returns the component-wise minimum.
func (a Vec2[T]) Min(b Vec2[T]) Vec2[T] { return Vec2[T]{min(a.X, b.X), min(a.Y, b.Y)} }

// Max returns the component-wise maximum.
func (a Vec2[T]) Max(b Vec2[T]) Vec2[T] { return Vec2[T]{max(a.X, b.X), max(a.Y, b.Y)} }

// Abs returns the component-wise absolute value.
func (a Vec2[T]) Abs() Vec2[T] { return Vec2[T]{scalar.Abs(a.X), scalar.Abs(a.Y)} }

// Comp returns component i.
func (a Vec2[T]) Comp(i int) T {
	if i == 0 {
		return a.X
	}
	return a.Y
}

// IsZero reports whether every component is zero.
func (a Vec2[T]) IsZero() bool { return a == Vec2[T]{} }

func (a Vec2[T]) String() string { return fmt.Sprintf("vec2(%v, %v)", a.X, a.Y) }

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Mul returns the component-wise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// DivComp returns the component-wise quotient a / b.
func (a Vec3[T]) DivComp(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{a.X * s, a.Y * s, a.Z * s} }

// Div returns the scalar division a / s.
func (a Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{a.X / s, a.Y / s, a.Z / s} }

// Neg returns -a.
func (a Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-a.X, -a.Y, -a.Z} }

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length2 returns the squared length.
func (a Vec3[T]) Length2() scalar.Squared {
	return scalar.Sq(a.X) + scalar.Sq(a.Y) + scalar.Sq(a.Z)
}

// Length returns the length.
func (a Vec3[T]) Length() scalar.Fractional { return scalar.Sqrt(a.Length2()) }

// Min returns the component-wise minimum.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Abs returns the component-wise absolute value.
func (a Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{scalar.Abs(a.X), scalar.Abs(a.Y), scalar.Abs(a.Z)}
}

// Comp returns component i.
func (a Vec3[T]) Comp(i int) T {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	}
	return a.Z
}

// XY drops the Z component.
func (a Vec3[T]) XY() Vec2[T] { return Vec2[T]{a.X, a.Y} }

// IsZero reports whether every component is zero.
func (a Vec3[T]) IsZero() bool { return a == Vec3[T]{} }

func (a Vec3[T]) String() string { return fmt.Sprintf("vec3(%v, %v, %v)", a.X, a.Y, a.Z) }

// Add returns the vector sum.
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the component-wise product.
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Scale returns the scalar product.
func (a Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{a.X * s, a.Y * s, a.Z * s, a.W * s} }

// Div returns the scalar division.
func (a Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{a.X / s, a.Y / s, a.Z / s, a.W / s} }

// Neg returns -a.
func (a Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-a.X, -a.Y, -a.Z, -a.W} }

// Dot returns the dot product.
func (a Vec4[T]) Dot(b Vec4[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

// Length2 returns the squared length.
func (a Vec4[T]) Length2() scalar.Squared {
	return scalar.Sq(a.X) + scalar.Sq(a.Y) + scalar.Sq(a.Z) + scalar.Sq(a.W)
}

// Length returns the length.
func (a Vec4[T]) Length() scalar.Fractional { return scalar.Sqrt(a.Length2()) }

// Min returns the component-wise minimum.
func (a Vec4[T]) Min(b Vec4[T]) Vec4[T] {
	return Vec4[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z), min(a.W, b.W)}
}

// Max returns the component-wise maximum.
func (a Vec4[T]) Max(b Vec4[T]) Vec4[T] {
	return Vec4[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z), max(a.W, b.W)}
}

// Comp returns component i.
func (a Vec4[T]) Comp(i int) T {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	return a.W
}

// XYZ returns the Vec3 portion (ignoring W).
func (a Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{a.X, a.Y, a.Z} }

// IsZero reports whether every component is zero.
func (a Vec4[T]) IsZero() bool { return a == Vec4[T]{} }

func (a Vec4[T]) String() string {
	return fmt.Sprintf("vec4(%v, %v, %v, %v)", a.X, a.Y, a.Z, a.W)
}
