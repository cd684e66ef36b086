package g2

import (
	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// IntersectionCircles returns the points where two circles cross, built from
// the chord between them. Tangent circles give the same point twice. The
// result is empty for separated circles, for one strictly inside the other,
// and for identical circles.
func IntersectionCircles[T scalar.Float](a, b Circle[T]) geom.Result[[2]linalg.Pos2[T]] {
	if a == b {
		return geom.Miss[[2]linalg.Pos2[T]]()
	}
	ab := b.Center.Sub(a.Center)
	d2 := ab.Dot(ab)
	d := scalar.Sqrt(d2)
	if d > a.Radius+b.Radius {
		return geom.Miss[[2]linalg.Pos2[T]]()
	}
	if d+min(a.Radius, b.Radius) < max(a.Radius, b.Radius) {
		return geom.Miss[[2]linalg.Pos2[T]]()
	}

	t := 0.5 + (a.Radius*a.Radius-b.Radius*b.Radius)/(2*d2)
	mid := a.Center.Add(ab.Scale(t))
	h := scalar.Sqrt(max(0, a.Radius*a.Radius-t*t*d2))
	off := ab.Perp().Scale(h / d)
	return geom.Hit([2]linalg.Pos2[T]{mid.Add(off), mid.SubVec(off)})
}

// IntersectsCircles reports whether two circles cross or touch.
func IntersectsCircles[T scalar.Float](a, b Circle[T]) bool {
	return geom.Intersects(IntersectionCircles(a, b))
}

// IntersectionSegment returns the crossing point of two segments. Parallel
// and collinear segments are reported as empty.
func (s Segment[T]) IntersectionSegment(o Segment[T]) geom.Result[linalg.Pos2[T]] {
	r, q := s.Delta(), o.Delta()
	denom := r.Cross(q)
	if denom == 0 {
		return geom.Miss[linalg.Pos2[T]]()
	}
	w := o.Pos0.Sub(s.Pos0)
	t := w.Cross(q) / denom
	u := w.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return geom.Miss[linalg.Pos2[T]]()
	}
	return geom.Hit(s.At(t))
}

// IntersectsSegment reports whether two segments cross.
func (s Segment[T]) IntersectsSegment(o Segment[T]) bool {
	return geom.Intersects(s.IntersectionSegment(o))
}

func (r Ray[T]) circleRoots(c linalg.Pos2[T], radius T) (t0, t1 T, ok bool) {
	d := r.Dir.Vec()
	oc := r.Origin.Sub(c)
	a := d.Dot(d)
	b := 2 * d.Dot(oc)
	cc := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*cc
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

// IntersectionCircle returns where r crosses c, nearest first, with the same
// tie-breaks as the 3D ray/sphere test.
func (r Ray[T]) IntersectionCircle(c Circle[T]) geom.Result[[2]linalg.Pos2[T]] {
	t0, t1, ok := r.circleRoots(c.Center, c.Radius)
	if !ok || t1 < 0 {
		return geom.Miss[[2]linalg.Pos2[T]]()
	}
	if t0 < 0 {
		t0 = t1
	}
	return geom.Hit([2]linalg.Pos2[T]{r.At(t0), r.At(t1)})
}

// IntersectsCircle reports whether r crosses c.
func (r Ray[T]) IntersectsCircle(c Circle[T]) bool { return geom.Intersects(r.IntersectionCircle(c)) }

// IntersectionDisk returns the part of r inside d.
func (r Ray[T]) IntersectionDisk(d Disk[T]) geom.Result[Segment[T]] {
	t0, t1, ok := r.circleRoots(d.Center, d.Radius)
	if !ok || t1 < 0 {
		return geom.Miss[Segment[T]]()
	}
	return geom.Hit(Segment[T]{r.At(max(t0, 0)), r.At(t1)})
}

// IntersectsDisk reports whether r passes through d.
func (r Ray[T]) IntersectsDisk(d Disk[T]) bool { return geom.Intersects(r.IntersectionDisk(d)) }
