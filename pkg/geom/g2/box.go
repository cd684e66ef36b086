package g2

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Box is an oriented rectangle. The columns of HalfExtents are orthogonal
// half-extent axes.
type Box[T scalar.Float] struct {
	Center      linalg.Pos2[T]
	HalfExtents linalg.Mat2[T]
}

// Contains reports whether p lies in the box: |a·r| <= |a|² + eps for both
// axes a, with r = p - Center.
func (b Box[T]) Contains(p linalg.Pos2[T], eps T) bool {
	r := p.Sub(b.Center)
	for _, a := range b.HalfExtents {
		if scalar.Abs(a.Dot(r)) > a.Dot(a)+eps {
			return false
		}
	}
	return true
}

// Project returns the point of the box closest to p.
func (b Box[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] {
	r := p.Sub(b.Center)
	q := b.Center
	for _, a := range b.HalfExtents {
		q = q.Add(a.Scale(scalar.Clamp(a.Dot(r)/a.Dot(a), -1, 1)))
	}
	return q
}

// Bounds returns the axis-aligned rectangle enclosing b.
func (b Box[T]) Bounds() Aabb[T] {
	e := b.HalfExtents[0].Abs().Add(b.HalfExtents[1].Abs())
	return Aabb[T]{b.Center.SubVec(e), b.Center.Add(e)}
}

// Centroid returns the center.
func (b Box[T]) Centroid() linalg.Pos2[T] { return b.Center }

func (b Box[T]) String() string { return fmt.Sprintf("box2(%v, %v)", b.Center, b.HalfExtents) }
