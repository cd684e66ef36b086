package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Box is an oriented box. Each column of HalfExtents is a half-extent axis;
// the axes are expected to be mutually orthogonal but need not be unit.
type Box[T scalar.Float] struct {
	Center      linalg.Pos3[T]
	HalfExtents linalg.Mat3[T]
}

// BoxFromAabb returns the oriented box covering b.
func BoxFromAabb[T scalar.Float](b Aabb[T]) Box[T] {
	half := b.Max.Sub(b.Min).Scale(0.5)
	return Box[T]{
		Center:      linalg.Mid3(b.Min, b.Max),
		HalfExtents: linalg.Diag3(half),
	}
}

// Contains reports whether p lies inside the box. p - Center is projected
// onto every (non-normalized) half-extent axis a and compared against |a|².
func (b Box[T]) Contains(p linalg.Pos3[T], eps T) bool {
	r := p.Sub(b.Center)
	for i := range 3 {
		a := b.HalfExtents[i]
		if scalar.Abs(a.Dot(r)) > a.Dot(a)+eps {
			return false
		}
	}
	return true
}

// Project returns the point of the solid box closest to p.
func (b Box[T]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	r := p.Sub(b.Center)
	q := b.Center
	for i := range 3 {
		a := b.HalfExtents[i]
		t := scalar.Clamp(a.Dot(r)/a.Dot(a), -1, 1)
		q = q.Add(a.Scale(t))
	}
	return q
}

// At maps box-local coordinates in [-1, 1]³ to world space.
func (b Box[T]) At(c linalg.Vec3[T]) linalg.Pos3[T] {
	return b.Center.Add(b.HalfExtents.MulVec(c))
}

// Corners returns the eight corners of the box.
func (b Box[T]) Corners() [8]linalg.Pos3[T] {
	var out [8]linalg.Pos3[T]
	for i := range out {
		c := linalg.Vec3[T]{-1, -1, -1}
		if i&1 != 0 {
			c.X = 1
		}
		if i&2 != 0 {
			c.Y = 1
		}
		if i&4 != 0 {
			c.Z = 1
		}
		out[i] = b.At(c)
	}
	return out
}

// Bounds returns the axis-aligned box enclosing b.
func (b Box[T]) Bounds() Aabb[T] {
	e := b.HalfExtents[0].Abs().Add(b.HalfExtents[1].Abs()).Add(b.HalfExtents[2].Abs())
	return Aabb[T]{b.Center.SubVec(e), b.Center.Add(e)}
}

// Centroid returns the center of the box.
func (b Box[T]) Centroid() linalg.Pos3[T] { return b.Center }

// Volume returns the volume of the box.
func (b Box[T]) Volume() T { return 8 * scalar.Abs(b.HalfExtents.Determinant()) }

func (b Box[T]) String() string { return fmt.Sprintf("box3(%v, %v)", b.Center, b.HalfExtents) }
