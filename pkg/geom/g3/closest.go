package g3

import (
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// ClosestPointsSegments returns the closest pair of points between two
// segments, A on a and B on b. Parallel segments pick the pair anchored at
// a.Pos0. A degenerate segment is treated as a point.
func ClosestPointsSegments[T scalar.Float](a, b Segment[T]) PointPair[T] {
	d1, d2 := a.Delta(), b.Delta()
	r := a.Pos0.Sub(b.Pos0)
	aa, ee, f := d1.Dot(d1), d2.Dot(d2), d2.Dot(r)

	var s, t T
	switch {
	case aa == 0 && ee == 0:
		return PointPair[T]{a.Pos0, b.Pos0}
	case aa == 0:
		t = scalar.Clamp(f/ee, 0, 1)
	default:
		c := d1.Dot(r)
		if ee == 0 {
			s = scalar.Clamp(-c/aa, 0, 1)
			break
		}
		bb := d1.Dot(d2)
		denom := aa*ee - bb*bb
		if denom != 0 {
			s = scalar.Clamp((bb*f-c*ee)/denom, 0, 1)
		}
		t = (bb*s + f) / ee
		if t < 0 {
			t, s = 0, scalar.Clamp(-c/aa, 0, 1)
		} else if t > 1 {
			t, s = 1, scalar.Clamp((bb-c)/aa, 0, 1)
		}
	}
	return PointPair[T]{a.At(s), b.At(t)}
}

// ClosestPointsLines returns the closest pair of points between two lines.
// Parallel lines pick the pair anchored at a.Pos.
func ClosestPointsLines[T scalar.Float](a, b Line[T]) PointPair[T] {
	r := a.Pos.Sub(b.Pos)
	bb := a.Dir.Dot(b.Dir.Vec())
	c, f := a.Dir.Dot(r), b.Dir.Dot(r)
	denom := 1 - bb*bb
	if denom == 0 {
		return PointPair[T]{a.Pos, b.Project(a.Pos)}
	}
	s := (bb*f - c) / denom
	t := (f - bb*c) / denom
	return PointPair[T]{a.At(s), b.At(t)}
}

// ClosestPointsSegmentLine returns the closest pair between a segment and a
// line.
func ClosestPointsSegmentLine[T scalar.Float](s Segment[T], l Line[T]) PointPair[T] {
	pp := ClosestPointsLines(s.Line(), l)
	a := s.Project(pp.A)
	return PointPair[T]{a, l.Project(a)}
}

// ClosestPointsPos returns p paired with the point of s closest to it, the
// mirror of ClosestPoints.
func ClosestPointsPos[T scalar.Float](p linalg.Pos3[T], s Shape[T]) PointPair[T] {
	return ClosestPoints(s, p).Swap()
}
