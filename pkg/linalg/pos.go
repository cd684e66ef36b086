package linalg

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Pos2 is a 2D affine point.
type Pos2[T scalar.Number] struct {
	X, Y T
}

// Pos3 is a 3D affine point.
type Pos3[T scalar.Number] struct {
	X, Y, Z T
}

// Pos4 is a 4D affine point.
type Pos4[T scalar.Number] struct {
	X, Y, Z, W T
}

// P2 creates a new Pos2.
func P2[T scalar.Number](x, y T) Pos2[T] { return Pos2[T]{x, y} }

// P3 creates a new Pos3.
func P3[T scalar.Number](x, y, z T) Pos3[T] { return Pos3[T]{x, y, z} }

// P4 creates a new Pos4.
func P4[T scalar.Number](x, y, z, w T) Pos4[T] { return Pos4[T]{x, y, z, w} }

// Add translates p by v.
func (p Pos2[T]) Add(v Vec2[T]) Pos2[T] { return Pos2[T]{p.X + v.X, p.Y + v.Y} }

// SubVec translates p by -v.
func (p Pos2[T]) SubVec(v Vec2[T]) Pos2[T] { return Pos2[T]{p.X - v.X, p.Y - v.Y} }

// Sub returns the vector from q to p.
func (p Pos2[T]) Sub(q Pos2[T]) Vec2[T] { return Vec2[T]{p.X - q.X, p.Y - q.Y} }

// Vec returns the vector from the origin to p.
func (p Pos2[T]) Vec() Vec2[T] { return Vec2[T](p) }

// Distance2To returns the squared distance between p and q.
func (p Pos2[T]) Distance2To(q Pos2[T]) scalar.Squared { return p.Sub(q).Length2() }

// DistanceTo returns the distance between p and q.
func (p Pos2[T]) DistanceTo(q Pos2[T]) scalar.Fractional { return p.Sub(q).Length() }

// Min returns the component-wise minimum.
func (p Pos2[T]) Min(q Pos2[T]) Pos2[T] { return Pos2[T]{min(p.X, q.X), min(p.Y, q.Y)} }

// Max returns the component-wise maximum.
func (p Pos2[T]) Max(q Pos2[T]) Pos2[T] { return Pos2[T]{max(p.X, q.X), max(p.Y, q.Y)} }

// Comp returns component i.
func (p Pos2[T]) Comp(i int) T { return p.Vec().Comp(i) }

func (p Pos2[T]) String() string { return fmt.Sprintf("pos2(%v, %v)", p.X, p.Y) }

// Add translates p by v.
func (p Pos3[T]) Add(v Vec3[T]) Pos3[T] { return Pos3[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// SubVec translates p by -v.
func (p Pos3[T]) SubVec(v Vec3[T]) Pos3[T] { return Pos3[T]{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

// Sub returns the vector from q to p.
func (p Pos3[T]) Sub(q Pos3[T]) Vec3[T] { return Vec3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Vec returns the vector from the origin to p.
func (p Pos3[T]) Vec() Vec3[T] { return Vec3[T](p) }

// Distance2To returns the squared distance between p and q.
func (p Pos3[T]) Distance2To(q Pos3[T]) scalar.Squared { return p.Sub(q).Length2() }

// DistanceTo returns the distance between p and q.
func (p Pos3[T]) DistanceTo(q Pos3[T]) scalar.Fractional { return p.Sub(q).Length() }

// Min returns the component-wise minimum.
func (p Pos3[T]) Min(q Pos3[T]) Pos3[T] { return Pos3[T]{min(p.X, q.X), min(p.Y, q.Y), min(p.Z, q.Z)} }

// Max returns the component-wise maximum.
func (p Pos3[T]) Max(q Pos3[T]) Pos3[T] { return Pos3[T]{max(p.X, q.X), max(p.Y, q.Y), max(p.Z, q.Z)} }

// Comp returns component i.
func (p Pos3[T]) Comp(i int) T { return p.Vec().Comp(i) }

// XY drops the Z component.
func (p Pos3[T]) XY() Pos2[T] { return Pos2[T]{p.X, p.Y} }

func (p Pos3[T]) String() string { return fmt.Sprintf("pos3(%v, %v, %v)", p.X, p.Y, p.Z) }

// Add translates p by v.
func (p Pos4[T]) Add(v Vec4[T]) Pos4[T] { return Pos4[T](p.Vec().Add(v)) }

// SubVec translates p by -v.
func (p Pos4[T]) SubVec(v Vec4[T]) Pos4[T] { return Pos4[T](p.Vec().Sub(v)) }

// Sub returns the vector from q to p.
func (p Pos4[T]) Sub(q Pos4[T]) Vec4[T] { return p.Vec().Sub(q.Vec()) }

// Vec returns the vector from the origin to p.
func (p Pos4[T]) Vec() Vec4[T] { return Vec4[T](p) }

// Distance2To returns the squared distance between p and q.
func (p Pos4[T]) Distance2To(q Pos4[T]) scalar.Squared { return p.Sub(q).Length2() }

// DistanceTo returns the distance between p and q.
func (p Pos4[T]) DistanceTo(q Pos4[T]) scalar.Fractional { return p.Sub(q).Length() }

// Comp returns component i.
func (p Pos4[T]) Comp(i int) T { return p.Vec().Comp(i) }

func (p Pos4[T]) String() string {
	return fmt.Sprintf("pos4(%v, %v, %v, %v)", p.X, p.Y, p.Z, p.W)
}

// Lerp2 interpolates between a and b. t = 0 yields a, t = 1 yields b.
func Lerp2[T scalar.Float](a, b Pos2[T], t T) Pos2[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Lerp3 interpolates between a and b. t = 0 yields a, t = 1 yields b.
func Lerp3[T scalar.Float](a, b Pos3[T], t T) Pos3[T] {
	return a.Add(b.Sub(a).Scale(t))
}

// Mid2 returns the midpoint of a and b.
func Mid2[T scalar.Float](a, b Pos2[T]) Pos2[T] { return Lerp2(a, b, 0.5) }

// Mid3 returns the midpoint of a and b.
func Mid3[T scalar.Float](a, b Pos3[T]) Pos3[T] { return Lerp3(a, b, 0.5) }
