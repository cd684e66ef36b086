package linalg

import (
	"fmt"

	"github.com/taigrr/typedgeo/internal/assert"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Mat2 is a 2x2 matrix stored as two column vectors.
// The zero value is the zero matrix, not the identity.
type Mat2[T scalar.Number] [2]Vec2[T]

// Mat3 is a 3x3 matrix stored as three column vectors.
// The zero value is the zero matrix, not the identity.
type Mat3[T scalar.Number] [3]Vec3[T]

// Identity2 returns the 2x2 identity matrix.
func Identity2[T scalar.Number]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T scalar.Number]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag3 returns the matrix with d on its diagonal.
func Diag3[T scalar.Number](d Vec3[T]) Mat3[T] {
	return Mat3[T]{{d.X, 0, 0}, {0, d.Y, 0}, {0, 0, d.Z}}
}

// At returns the element at (row, col).
func (m Mat2[T]) At(row, col int) T { return m[col].Comp(row) }

// Col returns column i.
func (m Mat2[T]) Col(i int) Vec2[T] { return m[i] }

// Row returns row i.
func (m Mat2[T]) Row(i int) Vec2[T] { return Vec2[T]{m[0].Comp(i), m[1].Comp(i)} }

// Transpose returns the transposed matrix.
func (m Mat2[T]) Transpose() Mat2[T] { return Mat2[T]{m.Row(0), m.Row(1)} }

// MulVec returns m * v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] { return m[0].Scale(v.X).Add(m[1].Scale(v.Y)) }

// MulPos applies m to the coordinates of p.
func (m Mat2[T]) MulPos(p Pos2[T]) Pos2[T] { return Pos2[T](m.MulVec(p.Vec())) }

// Mul multiplies two matrices: m * b.
func (m Mat2[T]) Mul(b Mat2[T]) Mat2[T] { return Mat2[T]{m.MulVec(b[0]), m.MulVec(b[1])} }

// Add returns the element-wise sum.
func (m Mat2[T]) Add(b Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Add(b[0]), m[1].Add(b[1])} }

// Sub returns the element-wise difference.
func (m Mat2[T]) Sub(b Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Sub(b[0]), m[1].Sub(b[1])} }

// Scale returns m * s.
func (m Mat2[T]) Scale(s T) Mat2[T] { return Mat2[T]{m[0].Scale(s), m[1].Scale(s)} }

// Trace returns the sum of the diagonal.
func (m Mat2[T]) Trace() T { return m[0].X + m[1].Y }

// Determinant returns the determinant of the matrix.
func (m Mat2[T]) Determinant() T { return m[0].X*m[1].Y - m[1].X*m[0].Y }

func (m Mat2[T]) String() string {
	return fmt.Sprintf("mat2(%v, %v)", m[0], m[1])
}

// At returns the element at (row, col).
func (m Mat3[T]) At(row, col int) T { return m[col].Comp(row) }

// Col returns column i.
func (m Mat3[T]) Col(i int) Vec3[T] { return m[i] }

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m[0].Comp(i), m[1].Comp(i), m[2].Comp(i)}
}

// Transpose returns the transposed matrix.
func (m Mat3[T]) Transpose() Mat3[T] { return Mat3[T]{m.Row(0), m.Row(1), m.Row(2)} }

// MulVec returns m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return m[0].Scale(v.X).Add(m[1].Scale(v.Y)).Add(m[2].Scale(v.Z))
}

// MulPos applies m to the coordinates of p.
func (m Mat3[T]) MulPos(p Pos3[T]) Pos3[T] { return Pos3[T](m.MulVec(p.Vec())) }

// Mul multiplies two matrices: m * b.
func (m Mat3[T]) Mul(b Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(b[0]), m.MulVec(b[1]), m.MulVec(b[2])}
}

// Add returns the element-wise sum.
func (m Mat3[T]) Add(b Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(b[0]), m[1].Add(b[1]), m[2].Add(b[2])}
}

// Sub returns the element-wise difference.
func (m Mat3[T]) Sub(b Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(b[0]), m[1].Sub(b[1]), m[2].Sub(b[2])}
}

// Scale returns m * s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	return Mat3[T]{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// Trace returns the sum of the diagonal.
func (m Mat3[T]) Trace() T { return m[0].X + m[1].Y + m[2].Z }

// Determinant returns the determinant of the matrix (the triple product of
// its columns).
func (m Mat3[T]) Determinant() T { return m[0].Dot(m[1].Cross(m[2])) }

func (m Mat3[T]) String() string {
	return fmt.Sprintf("mat3(%v, %v, %v)", m[0], m[1], m[2])
}

// Inverse2 returns the inverse of m. A singular m yields Inf/NaN elements.
func Inverse2[T scalar.Float](m Mat2[T]) Mat2[T] {
	det := m.Determinant()
	assert.NonSingular(float64(det), "Inverse2")
	invDet := 1 / det
	return Mat2[T]{
		{m[1].Y * invDet, -m[0].Y * invDet},
		{-m[1].X * invDet, m[0].X * invDet},
	}
}

// Inverse3 returns the inverse of m. A singular m yields Inf/NaN elements.
func Inverse3[T scalar.Float](m Mat3[T]) Mat3[T] {
	det := m.Determinant()
	assert.NonSingular(float64(det), "Inverse3")
	invDet := 1 / det
	// Rows of the inverse are the pairwise cross products of the columns.
	adj := Mat3[T]{m[1].Cross(m[2]), m[2].Cross(m[0]), m[0].Cross(m[1])}
	return adj.Transpose().Scale(invDet)
}
