package g2

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Triangle is a solid 2D triangle in either winding.
type Triangle[T scalar.Float] struct {
	Pos0, Pos1, Pos2 linalg.Pos2[T]
}

// Tri creates a Triangle.
func Tri[T scalar.Float](a, b, c linalg.Pos2[T]) Triangle[T] { return Triangle[T]{a, b, c} }

// SignedArea returns the area, positive for counter-clockwise winding.
func (t Triangle[T]) SignedArea() T {
	return t.Pos1.Sub(t.Pos0).Cross(t.Pos2.Sub(t.Pos0)) / 2
}

// Area returns the unsigned area.
func (t Triangle[T]) Area() T { return scalar.Abs(t.SignedArea()) }

// subAreas returns twice the signed areas of the sub-triangles p forms with
// each edge; index i is the one opposite vertex i.
func (t Triangle[T]) subAreas(p linalg.Pos2[T]) [3]T {
	a, b, c := t.Pos0.Sub(p), t.Pos1.Sub(p), t.Pos2.Sub(p)
	return [3]T{b.Cross(c), c.Cross(a), a.Cross(b)}
}

// Contains reports whether p lies in the triangle: all three sub-areas must
// share the triangle's sign, allowing each to cross zero by eps. Degenerate
// triangles give an unspecified answer.
func (t Triangle[T]) Contains(p linalg.Pos2[T], eps T) bool {
	a := t.subAreas(p)
	s := scalar.Copysign(1, a[0]+a[1]+a[2])
	return a[0]*s >= -eps && a[1]*s >= -eps && a[2]*s >= -eps
}

// Coordinates returns the barycentric weights of p: each sub-area divided by
// the total.
func (t Triangle[T]) Coordinates(p linalg.Pos2[T]) [3]T {
	a := t.subAreas(p)
	total := a[0] + a[1] + a[2]
	return [3]T{a[0] / total, a[1] / total, a[2] / total}
}

// At returns the point with barycentric weights w.
func (t Triangle[T]) At(w [3]T) linalg.Pos2[T] {
	return t.Pos0.
		Add(t.Pos1.Sub(t.Pos0).Scale(w[1])).
		Add(t.Pos2.Sub(t.Pos0).Scale(w[2]))
}

// Project returns the point of the triangle closest to p.
func (t Triangle[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] {
	if t.Contains(p, 0) {
		return p
	}
	best := t.Edge(0).Project(p)
	for i := 1; i < 3; i++ {
		if q := t.Edge(i).Project(p); q.Distance2To(p) < best.Distance2To(p) {
			best = q
		}
	}
	return best
}

// Edge returns the edge starting at vertex i.
func (t Triangle[T]) Edge(i int) Segment[T] {
	v := [3]linalg.Pos2[T]{t.Pos0, t.Pos1, t.Pos2}
	return Segment[T]{v[i%3], v[(i+1)%3]}
}

// Bounds returns the axis-aligned rectangle enclosing t.
func (t Triangle[T]) Bounds() Aabb[T] { return AabbOf(t.Pos0, t.Pos1, t.Pos2) }

// Centroid returns the mean of the vertices.
func (t Triangle[T]) Centroid() linalg.Pos2[T] { return t.At([3]T{1.0 / 3, 1.0 / 3, 1.0 / 3}) }

func (t Triangle[T]) String() string {
	return fmt.Sprintf("triangle2(%v, %v, %v)", t.Pos0, t.Pos1, t.Pos2)
}
