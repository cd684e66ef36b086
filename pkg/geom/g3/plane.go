package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Plane is a plane in Hesse normal form: every p on it satisfies
// Normal·p == Dis.
type Plane[T scalar.Float] struct {
	Normal linalg.Dir3[T]
	Dis    T
}

// Halfspace is the solid region behind a plane: Normal·p <= Dis.
type Halfspace[T scalar.Float] struct {
	Normal linalg.Dir3[T]
	Dis    T
}

// PlaneThrough returns the plane with normal n passing through p.
func PlaneThrough[T scalar.Float](n linalg.Dir3[T], p linalg.Pos3[T]) Plane[T] {
	return Plane[T]{n, n.Dot(p.Vec())}
}

// PlaneFromPoints returns the plane through a, b and c, oriented by the
// right-hand rule.
func PlaneFromPoints[T scalar.Float](a, b, c linalg.Pos3[T]) Plane[T] {
	return Tri(a, b, c).Plane()
}

// SignedDistance returns the distance from the plane to p, positive on the
// side the normal points to.
func (pl Plane[T]) SignedDistance(p linalg.Pos3[T]) T { return pl.Normal.Dot(p.Vec()) - pl.Dis }

// Contains reports whether p lies within eps of the plane.
func (pl Plane[T]) Contains(p linalg.Pos3[T], eps T) bool {
	return scalar.Abs(pl.SignedDistance(p)) <= eps
}

// Project returns the orthogonal projection of p onto the plane.
func (pl Plane[T]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	return p.SubVec(pl.Normal.Scale(pl.SignedDistance(p)))
}

// Flip returns the same plane with the opposite orientation.
func (pl Plane[T]) Flip() Plane[T] { return Plane[T]{pl.Normal.Neg(), -pl.Dis} }

// Halfspace returns the region behind the plane.
func (pl Plane[T]) Halfspace() Halfspace[T] { return Halfspace[T](pl) }

func (pl Plane[T]) String() string { return fmt.Sprintf("plane3(%v, %v)", pl.Normal, pl.Dis) }

// SignedDistance returns the distance from the boundary plane to p,
// negative inside.
func (h Halfspace[T]) SignedDistance(p linalg.Pos3[T]) T { return h.Normal.Dot(p.Vec()) - h.Dis }

// Contains reports whether p lies inside the halfspace or within eps of it.
func (h Halfspace[T]) Contains(p linalg.Pos3[T], eps T) bool { return h.SignedDistance(p) <= eps }

// Project returns p if it is inside, else its projection onto the boundary.
func (h Halfspace[T]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	d := h.SignedDistance(p)
	if d <= 0 {
		return p
	}
	return p.SubVec(h.Normal.Scale(d))
}

// Boundary returns the plane bounding the halfspace.
func (h Halfspace[T]) Boundary() Plane[T] { return Plane[T](h) }

func (h Halfspace[T]) String() string { return fmt.Sprintf("halfspace3(%v, %v)", h.Normal, h.Dis) }
