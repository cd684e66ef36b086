package g3

import (
	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// IntersectionPlane returns the point where r crosses pl. The result is
// empty if r is parallel to pl or pl lies behind the origin.
func (r Ray[T]) IntersectionPlane(pl Plane[T]) geom.Result[linalg.Pos3[T]] {
	denom := pl.Normal.Dot(r.Dir.Vec())
	if denom == 0 {
		return geom.Miss[linalg.Pos3[T]]()
	}
	t := -pl.SignedDistance(r.Origin) / denom
	if t < 0 {
		return geom.Miss[linalg.Pos3[T]]()
	}
	return geom.Hit(r.At(t))
}

// IntersectsPlane reports whether r crosses pl.
func (r Ray[T]) IntersectsPlane(pl Plane[T]) bool { return geom.Intersects(r.IntersectionPlane(pl)) }

// IntersectionTriangle returns the point where r hits tri: the hit with the
// supporting plane, kept only if it lies inside every edge.
func (r Ray[T]) IntersectionTriangle(tri Triangle[T]) geom.Result[linalg.Pos3[T]] {
	res := r.IntersectionPlane(tri.Plane())
	if res.Empty || !tri.insideEdges(res.Value, 0) {
		return geom.Miss[linalg.Pos3[T]]()
	}
	return res
}

// IntersectsTriangle reports whether r hits tri.
func (r Ray[T]) IntersectsTriangle(tri Triangle[T]) bool {
	return geom.Intersects(r.IntersectionTriangle(tri))
}

// sphereRoots solves |Origin + t*Dir - center|² = radius² for t and returns
// the roots in ascending order.
func (r Ray[T]) sphereRoots(center linalg.Pos3[T], radius T) (t0, t1 T, ok bool) {
	d := r.Dir.Vec()
	oc := r.Origin.Sub(center)
	a := d.Dot(d)
	b := 2 * d.Dot(oc)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return 0, 0, false
	case disc == 0:
		t := -b / (2 * a)
		return t, t, true
	}
	sq := scalar.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}

// IntersectionSphere returns the points where r pierces the shell s, nearest
// first. A tangent ray yields the same point twice, as does a ray starting
// inside s, which only reaches the far side.
func (r Ray[T]) IntersectionSphere(s SphereBoundary[T]) geom.Result[[2]linalg.Pos3[T]] {
	t0, t1, ok := r.sphereRoots(s.Center, s.Radius)
	if !ok || t1 < 0 {
		return geom.Miss[[2]linalg.Pos3[T]]()
	}
	if t0 < 0 {
		t0 = t1
	}
	return geom.Hit([2]linalg.Pos3[T]{r.At(t0), r.At(t1)})
}

// IntersectsSphere reports whether r pierces the shell s.
func (r Ray[T]) IntersectsSphere(s SphereBoundary[T]) bool {
	return geom.Intersects(r.IntersectionSphere(s))
}

// IntersectionBall returns the part of r inside b. A ray starting inside b
// yields the segment from its origin to the exit point.
func (r Ray[T]) IntersectionBall(b Ball[T]) geom.Result[Segment[T]] {
	t0, t1, ok := r.sphereRoots(b.Center, b.Radius)
	if !ok || t1 < 0 {
		return geom.Miss[Segment[T]]()
	}
	return geom.Hit(Segment[T]{r.At(max(t0, 0)), r.At(t1)})
}

// IntersectsBall reports whether r passes through b.
func (r Ray[T]) IntersectsBall(b Ball[T]) bool { return geom.Intersects(r.IntersectionBall(b)) }

// IntersectionAabb returns the part of r inside b, found by clipping the ray
// against the three slabs of the box.
func (r Ray[T]) IntersectionAabb(b Aabb[T]) geom.Result[Segment[T]] {
	tNear, tFar := T(0), T(0)
	first := true
	for i := range 3 {
		d, o := r.Dir.Vec().Comp(i), r.Origin.Comp(i)
		bmin, bmax := b.Min.Comp(i), b.Max.Comp(i)
		// A ray parallel to a slab never crosses its faces.
		if d == 0 {
			if o < bmin || o > bmax {
				return geom.Miss[Segment[T]]()
			}
			continue
		}
		ta, tb := (bmin-o)/d, (bmax-o)/d
		lo, hi := min(ta, tb), max(ta, tb)
		if first {
			tNear, tFar, first = lo, hi, false
			continue
		}
		tNear, tFar = max(tNear, lo), min(tFar, hi)
	}
	tNear = max(tNear, 0)
	if tFar < tNear {
		return geom.Miss[Segment[T]]()
	}
	return geom.Hit(Segment[T]{r.At(tNear), r.At(tFar)})
}

// IntersectsAabb reports whether r passes through b.
func (r Ray[T]) IntersectsAabb(b Aabb[T]) bool { return geom.Intersects(r.IntersectionAabb(b)) }

// IntersectionSpheres returns the circle where two sphere shells meet. It is
// empty when the spheres are apart, when one lies strictly inside the other,
// and when both are identical. Touching spheres yield a circle of radius 0.
func IntersectionSpheres[T scalar.Float](a, b SphereBoundary[T]) geom.Result[CircleBoundary[T]] {
	if a == b {
		return geom.Miss[CircleBoundary[T]]()
	}
	d2 := a.Center.Sub(b.Center).Dot(a.Center.Sub(b.Center))
	d := scalar.Sqrt(d2)
	if d > a.Radius+b.Radius {
		return geom.Miss[CircleBoundary[T]]()
	}
	small, large := min(a.Radius, b.Radius), max(a.Radius, b.Radius)
	if d+small < large {
		return geom.Miss[CircleBoundary[T]]()
	}

	t := 0.5 + (a.Radius*a.Radius-b.Radius*b.Radius)/(2*d2)
	ab := b.Center.Sub(a.Center)
	return geom.Hit(CircleBoundary[T]{
		Center: a.Center.Add(ab.Scale(t)),
		Radius: scalar.Sqrt(max(0, a.Radius*a.Radius-t*t*d2)),
		Normal: linalg.Normalize3(ab),
	})
}

// IntersectsSpheres reports whether two sphere shells meet.
func IntersectsSpheres[T scalar.Float](a, b SphereBoundary[T]) bool {
	return geom.Intersects(IntersectionSpheres(a, b))
}
