package linalg

import (
	"fmt"

	"github.com/taigrr/typedgeo/internal/assert"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Mat4 is a 4x4 matrix stored as four column vectors.
// The zero value is the zero matrix, not the identity.
//
// For a transform matrix:
// | Xx Yx Zx Tx |   X,Y,Z = basis vectors (rotation/scale)
// | Xy Yy Zy Ty |   T = translation
// | Xz Yz Zz Tz |
// | 0  0  0  1  |
type Mat4[T scalar.Number] [4]Vec4[T]

// Identity4 returns the 4x4 identity matrix.
func Identity4[T scalar.Number]() Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation creates a translation matrix.
func Translation[T scalar.Number](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{v.X, v.Y, v.Z, 1},
	}
}

// Scaling creates a scaling matrix.
func Scaling[T scalar.Number](s Size3[T]) Mat4[T] {
	return Mat4[T]{
		{s.Width, 0, 0, 0},
		{0, s.Height, 0, 0},
		{0, 0, s.Depth, 0},
		{0, 0, 0, 1},
	}
}

// RotationX creates a rotation matrix around the X axis.
func RotationX[T scalar.Float](a scalar.Angle[T]) Mat4[T] {
	s, c := a.SinCos()
	return Mat4[T]{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY creates a rotation matrix around the Y axis.
func RotationY[T scalar.Float](a scalar.Angle[T]) Mat4[T] {
	s, c := a.SinCos()
	return Mat4[T]{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ creates a rotation matrix around the Z axis.
func RotationZ[T scalar.Float](a scalar.Angle[T]) Mat4[T] {
	s, c := a.SinCos()
	return Mat4[T]{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Rotation creates a rotation matrix around an arbitrary axis.
func Rotation[T scalar.Float](axis Dir3[T], a scalar.Angle[T]) Mat4[T] {
	s, c := a.SinCos()
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4[T]{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

// LookAt creates a right-handed view matrix with the camera at eye looking
// toward target.
func LookAt[T scalar.Float](eye, target Pos3[T], up Vec3[T]) Mat4[T] {
	f := Normalize3(target.Sub(eye))
	s := Normalize3(f.Cross(up))
	u := s.Cross(f.Vec())
	e := eye.Vec()

	return Mat4[T]{
		{s.X, u.X, -f.X, 0},
		{s.Y, u.Y, -f.Y, 0},
		{s.Z, u.Z, -f.Z, 0},
		{-s.Dot(e), -u.Dot(e), f.Dot(e), 1},
	}
}

// Perspective creates an OpenGL-style projection matrix. aspect is
// width/height; near and far are the clip distances.
func Perspective[T scalar.Float](fovy scalar.Angle[T], aspect, near, far T) Mat4[T] {
	f := 1 / fovy.Scale(0.5).Tan()
	nf := 1 / (near - far)

	return Mat4[T]{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}

// At returns the element at (row, col).
func (m Mat4[T]) At(row, col int) T { return m[col].Comp(row) }

// Col returns column i.
func (m Mat4[T]) Col(i int) Vec4[T] { return m[i] }

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{m[0].Comp(i), m[1].Comp(i), m[2].Comp(i), m[3].Comp(i)}
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

// MulVec returns m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return m[0].Scale(v.X).Add(m[1].Scale(v.Y)).Add(m[2].Scale(v.Z)).Add(m[3].Scale(v.W))
}

// Mul multiplies two matrices: m * b.
func (m Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(b[0]), m.MulVec(b[1]), m.MulVec(b[2]), m.MulVec(b[3])}
}

// MulPos3 transforms p as a homogeneous point (w=1), dividing by the
// resulting w when it is non-zero.
func (m Mat4[T]) MulPos3(p Pos3[T]) Pos3[T] {
	r := m.MulVec(Vec4[T]{p.X, p.Y, p.Z, 1})
	if r.W == 0 || r.W == 1 {
		return Pos3[T]{r.X, r.Y, r.Z}
	}
	return Pos3[T]{r.X / r.W, r.Y / r.W, r.Z / r.W}
}

// MulVec3 transforms v as a direction (w=0, no translation).
func (m Mat4[T]) MulVec3(v Vec3[T]) Vec3[T] {
	return m.MulVec(Vec4[T]{v.X, v.Y, v.Z, 0}).XYZ()
}

// Transpose returns the transposed matrix.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T { return m[0].X + m[1].Y + m[2].Z + m[3].W }

// flat returns the elements in column-major order: element (row, col) is at
// index row+col*4.
func (m Mat4[T]) flat() [16]T {
	return [16]T{
		m[0].X, m[0].Y, m[0].Z, m[0].W,
		m[1].X, m[1].Y, m[1].Z, m[1].W,
		m[2].X, m[2].Y, m[2].Z, m[2].W,
		m[3].X, m[3].Y, m[3].Z, m[3].W,
	}
}

func unflat[T scalar.Number](a [16]T) Mat4[T] {
	return Mat4[T]{
		{a[0], a[1], a[2], a[3]},
		{a[4], a[5], a[6], a[7]},
		{a[8], a[9], a[10], a[11]},
		{a[12], a[13], a[14], a[15]},
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat4[T]) Determinant() T {
	a := m.flat()
	return a[0]*(a[5]*(a[10]*a[15]-a[14]*a[11])-a[9]*(a[6]*a[15]-a[14]*a[7])+a[13]*(a[6]*a[11]-a[10]*a[7])) -
		a[4]*(a[1]*(a[10]*a[15]-a[14]*a[11])-a[9]*(a[2]*a[15]-a[14]*a[3])+a[13]*(a[2]*a[11]-a[10]*a[3])) +
		a[8]*(a[1]*(a[6]*a[15]-a[14]*a[7])-a[5]*(a[2]*a[15]-a[14]*a[3])+a[13]*(a[2]*a[7]-a[6]*a[3])) -
		a[12]*(a[1]*(a[6]*a[11]-a[10]*a[7])-a[5]*(a[2]*a[11]-a[10]*a[3])+a[9]*(a[2]*a[7]-a[6]*a[3]))
}

func (m Mat4[T]) String() string {
	return fmt.Sprintf("mat4(%v, %v, %v, %v)", m[0], m[1], m[2], m[3])
}

// Inverse4 returns the inverse of m via its adjugate. A singular m yields
// Inf/NaN elements.
func Inverse4[T scalar.Float](m Mat4[T]) Mat4[T] {
	det := m.Determinant()
	assert.NonSingular(float64(det), "Inverse4")

	a := m.flat()
	invDet := 1 / det
	var inv [16]T

	inv[0] = (a[5]*(a[10]*a[15]-a[14]*a[11]) - a[9]*(a[6]*a[15]-a[14]*a[7]) + a[13]*(a[6]*a[11]-a[10]*a[7])) * invDet
	inv[1] = -(a[1]*(a[10]*a[15]-a[14]*a[11]) - a[9]*(a[2]*a[15]-a[14]*a[3]) + a[13]*(a[2]*a[11]-a[10]*a[3])) * invDet
	inv[2] = (a[1]*(a[6]*a[15]-a[14]*a[7]) - a[5]*(a[2]*a[15]-a[14]*a[3]) + a[13]*(a[2]*a[7]-a[6]*a[3])) * invDet
	inv[3] = -(a[1]*(a[6]*a[11]-a[10]*a[7]) - a[5]*(a[2]*a[11]-a[10]*a[3]) + a[9]*(a[2]*a[7]-a[6]*a[3])) * invDet

	inv[4] = -(a[4]*(a[10]*a[15]-a[14]*a[11]) - a[8]*(a[6]*a[15]-a[14]*a[7]) + a[12]*(a[6]*a[11]-a[10]*a[7])) * invDet
	inv[5] = (a[0]*(a[10]*a[15]-a[14]*a[11]) - a[8]*(a[2]*a[15]-a[14]*a[3]) + a[12]*(a[2]*a[11]-a[10]*a[3])) * invDet
	inv[6] = -(a[0]*(a[6]*a[15]-a[14]*a[7]) - a[4]*(a[2]*a[15]-a[14]*a[3]) + a[12]*(a[2]*a[7]-a[6]*a[3])) * invDet
	inv[7] = (a[0]*(a[6]*a[11]-a[10]*a[7]) - a[4]*(a[2]*a[11]-a[10]*a[3]) + a[8]*(a[2]*a[7]-a[6]*a[3])) * invDet

	inv[8] = (a[4]*(a[9]*a[15]-a[13]*a[11]) - a[8]*(a[5]*a[15]-a[13]*a[7]) + a[12]*(a[5]*a[11]-a[9]*a[7])) * invDet
	inv[9] = -(a[0]*(a[9]*a[15]-a[13]*a[11]) - a[8]*(a[1]*a[15]-a[13]*a[3]) + a[12]*(a[1]*a[11]-a[9]*a[3])) * invDet
	inv[10] = (a[0]*(a[5]*a[15]-a[13]*a[7]) - a[4]*(a[1]*a[15]-a[13]*a[3]) + a[12]*(a[1]*a[7]-a[5]*a[3])) * invDet
	inv[11] = -(a[0]*(a[5]*a[11]-a[9]*a[7]) - a[4]*(a[1]*a[11]-a[9]*a[3]) + a[8]*(a[1]*a[7]-a[5]*a[3])) * invDet

	inv[12] = -(a[4]*(a[9]*a[14]-a[13]*a[10]) - a[8]*(a[5]*a[14]-a[13]*a[6]) + a[12]*(a[5]*a[10]-a[9]*a[6])) * invDet
	inv[13] = (a[0]*(a[9]*a[14]-a[13]*a[10]) - a[8]*(a[1]*a[14]-a[13]*a[2]) + a[12]*(a[1]*a[10]-a[9]*a[2])) * invDet
	inv[14] = -(a[0]*(a[5]*a[14]-a[13]*a[6]) - a[4]*(a[1]*a[14]-a[13]*a[2]) + a[12]*(a[1]*a[6]-a[5]*a[2])) * invDet
	inv[15] = (a[0]*(a[5]*a[10]-a[9]*a[6]) - a[4]*(a[1]*a[10]-a[9]*a[2]) + a[8]*(a[1]*a[6]-a[5]*a[2])) * invDet

	return unflat(inv)
}
