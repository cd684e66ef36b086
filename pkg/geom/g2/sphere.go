package g2

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Sphere is a 2D sphere: a disk or, with a boundary tag, a circle.
type Sphere[T scalar.Float, K geom.Tag] struct {
	Center linalg.Pos2[T]
	Radius T
}

// Disk is the filled circle.
type Disk[T scalar.Float] = Sphere[T, geom.Solid]

// Circle is the circle line.
type Circle[T scalar.Float] = Sphere[T, geom.Boundary]

// Contains reports whether p lies in the disk, or on the circle within a
// two-sided band of eps.
func (s Sphere[T, K]) Contains(p linalg.Pos2[T], eps T) bool {
	d2 := s.Center.Distance2To(p)
	if geom.KindOf[K]() == geom.KindSolid {
		return d2 <= scalar.Sq(s.Radius+eps)
	}
	return scalar.Abs(d2-scalar.Sq(s.Radius)) <= scalar.Sq(eps)
}

// Project returns the point of s closest to p.
func (s Sphere[T, K]) Project(p linalg.Pos2[T]) linalg.Pos2[T] {
	v := p.Sub(s.Center)
	l := linalg.Norm2(v)
	if geom.KindOf[K]() == geom.KindSolid && l <= s.Radius {
		return p
	}
	if l == 0 {
		return s.Center.Add(linalg.Vec2[T]{X: s.Radius})
	}
	return s.Center.Add(v.Scale(s.Radius / l))
}

// Bounds returns the axis-aligned rectangle enclosing s.
func (s Sphere[T, K]) Bounds() Aabb[T] {
	r := linalg.Vec2[T]{s.Radius, s.Radius}
	return Aabb[T]{s.Center.SubVec(r), s.Center.Add(r)}
}

// Centroid returns the center.
func (s Sphere[T, K]) Centroid() linalg.Pos2[T] { return s.Center }

func (s Sphere[T, K]) String() string {
	return fmt.Sprintf("sphere2<%v>(%v, %v)", geom.KindOf[K](), s.Center, s.Radius)
}
