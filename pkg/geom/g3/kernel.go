// Package g3 implements the 3D primitives and the geometric kernel over
// them: containment, projection, closest points, distances, barycentric
// coordinates and intersections.
//
// Every shape implements Project. ClosestPoints, Distance and Distance2 are
// derived from it and are the only distance code in the package, so a new
// shape only has to know how to project a point onto itself.
package g3

import (
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Shape is any primitive that can map a point to its nearest point on
// itself.
type Shape[T scalar.Float] interface {
	Project(p linalg.Pos3[T]) linalg.Pos3[T]
}

// PointPair is a witness pair returned by closest-point queries: A lies on
// the first argument, B on the second.
type PointPair[T scalar.Float] struct {
	A, B linalg.Pos3[T]
}

// Distance2 returns the squared distance between the two points.
func (pp PointPair[T]) Distance2() scalar.Squared { return pp.A.Distance2To(pp.B) }

// Distance returns the distance between the two points.
func (pp PointPair[T]) Distance() scalar.Fractional { return pp.A.DistanceTo(pp.B) }

// Swap returns the pair with A and B exchanged.
func (pp PointPair[T]) Swap() PointPair[T] { return PointPair[T]{pp.B, pp.A} }

// ClosestPoints returns the point of s closest to p, paired with p.
func ClosestPoints[T scalar.Float](s Shape[T], p linalg.Pos3[T]) PointPair[T] {
	return PointPair[T]{s.Project(p), p}
}

// Distance2 returns the squared distance from s to p.
func Distance2[T scalar.Float](s Shape[T], p linalg.Pos3[T]) scalar.Squared {
	return ClosestPoints(s, p).Distance2()
}

// Distance returns the distance from s to p.
func Distance[T scalar.Float](s Shape[T], p linalg.Pos3[T]) scalar.Fractional {
	return ClosestPoints(s, p).Distance()
}

// ContainsPos reports whether p coincides with a. A positive eps turns the
// test into distance2(a, p) < eps².
func ContainsPos[T scalar.Number](a, p linalg.Pos3[T], eps T) bool {
	if eps > 0 {
		return a.Distance2To(p) < scalar.Sq(eps)
	}
	return a == p
}

// containsByDistance is the default containment test for shapes without a
// closed-form one.
func containsByDistance[T scalar.Float](s Shape[T], p linalg.Pos3[T], eps T) bool {
	return Distance(s, p) <= scalar.Frac(eps)
}
