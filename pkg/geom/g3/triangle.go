package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Triangle is a solid triangle. Its normal follows the right-hand rule over
// Pos0, Pos1, Pos2.
type Triangle[T scalar.Float] struct {
	Pos0, Pos1, Pos2 linalg.Pos3[T]
}

// Tri creates a Triangle.
func Tri[T scalar.Float](a, b, c linalg.Pos3[T]) Triangle[T] { return Triangle[T]{a, b, c} }

// Vertex returns vertex i.
func (t Triangle[T]) Vertex(i int) linalg.Pos3[T] {
	switch i {
	case 0:
		return t.Pos0
	case 1:
		return t.Pos1
	}
	return t.Pos2
}

// Cross returns (Pos1-Pos0) × (Pos2-Pos0), whose length is twice the area.
func (t Triangle[T]) Cross() linalg.Vec3[T] {
	return t.Pos1.Sub(t.Pos0).Cross(t.Pos2.Sub(t.Pos0))
}

// Normal returns the unit normal. Degenerate triangles yield NaN.
func (t Triangle[T]) Normal() linalg.Dir3[T] { return linalg.Normalize3(t.Cross()) }

// Area returns the area of the triangle.
func (t Triangle[T]) Area() T { return linalg.Norm3(t.Cross()) / 2 }

// Plane returns the supporting plane.
func (t Triangle[T]) Plane() Plane[T] { return PlaneThrough(t.Normal(), t.Pos0) }

// At returns the point with barycentric weights w. The weights are expected
// to sum to one.
func (t Triangle[T]) At(w [3]T) linalg.Pos3[T] {
	return t.Pos0.
		Add(t.Pos1.Sub(t.Pos0).Scale(w[1])).
		Add(t.Pos2.Sub(t.Pos0).Scale(w[2]))
}

// Coordinates returns the barycentric weights of p, which must lie in the
// triangle's plane. Each weight is a signed sub-triangle area measured along
// the normal.
func (t Triangle[T]) Coordinates(p linalg.Pos3[T]) [3]T {
	n := t.Cross()
	nn := n.Dot(n)
	a, b, c := t.Pos0.Sub(p), t.Pos1.Sub(p), t.Pos2.Sub(p)
	return [3]T{
		b.Cross(c).Dot(n) / nn,
		c.Cross(a).Dot(n) / nn,
		a.Cross(b).Dot(n) / nn,
	}
}

// insideEdges reports whether p is on the inner side of all three edge
// planes, or within distance eps of them. It does not check the distance to
// the triangle's plane.
func (t Triangle[T]) insideEdges(p linalg.Pos3[T], eps T) bool {
	n := t.Cross()
	nl := n.Length()
	for i := range 3 {
		s, e := t.Vertex(i), t.Vertex((i+1)%3)
		edge := e.Sub(s)
		// n·(edge×(p-s)) is the signed edge-plane distance scaled by |n||edge|.
		if scalar.Frac(n.Dot(edge.Cross(p.Sub(s)))) < -scalar.Frac(eps)*nl*edge.Length() {
			return false
		}
	}
	return true
}

// Contains reports whether p lies within eps of the triangle's plane and on
// the inner side of every edge.
func (t Triangle[T]) Contains(p linalg.Pos3[T], eps T) bool {
	if scalar.Abs(t.Plane().SignedDistance(p)) > eps {
		return false
	}
	return t.insideEdges(p, eps)
}

// Project returns the point of the triangle closest to p by classifying p
// against the vertex, edge and face regions.
func (t Triangle[T]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	a, b, c := t.Pos0, t.Pos1, t.Pos2
	ab, ac := b.Sub(a), c.Sub(a)

	ap := p.Sub(a)
	d1, d2 := ab.Dot(ap), ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3, d4 := ab.Dot(bp), ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Scale(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5, d6 := ab.Dot(cp), ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Scale(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		return b.Add(c.Sub(b).Scale((d4 - d3) / ((d4 - d3) + (d5 - d6))))
	}

	denom := 1 / (va + vb + vc)
	return a.Add(ab.Scale(vb * denom)).Add(ac.Scale(vc * denom))
}

// Bounds returns the axis-aligned box enclosing t.
func (t Triangle[T]) Bounds() Aabb[T] { return AabbOf(t.Pos0, t.Pos1, t.Pos2) }

// Centroid returns the mean of the three vertices.
func (t Triangle[T]) Centroid() linalg.Pos3[T] { return t.At([3]T{1.0 / 3, 1.0 / 3, 1.0 / 3}) }

func (t Triangle[T]) String() string {
	return fmt.Sprintf("triangle3(%v, %v, %v)", t.Pos0, t.Pos1, t.Pos2)
}
