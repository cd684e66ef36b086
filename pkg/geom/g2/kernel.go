// Package g2 implements the 2D primitives and the geometric kernel over
// them. It mirrors g3: every shape implements Project and all distances are
// derived from it.
package g2

import (
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Shape is any primitive that can map a point to its nearest point on
// itself.
type Shape[T scalar.Float] interface {
	Project(p linalg.Pos2[T]) linalg.Pos2[T]
}

// PointPair is a witness pair returned by closest-point queries.
type PointPair[T scalar.Float] struct {
	A, B linalg.Pos2[T]
}

// Distance2 returns the squared distance between the two points.
func (pp PointPair[T]) Distance2() scalar.Squared { return pp.A.Distance2To(pp.B) }

// Distance returns the distance between the two points.
func (pp PointPair[T]) Distance() scalar.Fractional { return pp.A.DistanceTo(pp.B) }

// Swap returns the pair with A and B exchanged.
func (pp PointPair[T]) Swap() PointPair[T] { return PointPair[T]{pp.B, pp.A} }

// ClosestPoints returns the point of s closest to p, paired with p.
func ClosestPoints[T scalar.Float](s Shape[T], p linalg.Pos2[T]) PointPair[T] {
	return PointPair[T]{s.Project(p), p}
}

// Distance2 returns the squared distance from s to p.
func Distance2[T scalar.Float](s Shape[T], p linalg.Pos2[T]) scalar.Squared {
	return ClosestPoints(s, p).Distance2()
}

// Distance returns the distance from s to p.
func Distance[T scalar.Float](s Shape[T], p linalg.Pos2[T]) scalar.Fractional {
	return ClosestPoints(s, p).Distance()
}

// ContainsPos reports whether p coincides with a, or lies closer than eps
// when eps is positive.
func ContainsPos[T scalar.Number](a, p linalg.Pos2[T], eps T) bool {
	if eps > 0 {
		return a.Distance2To(p) < scalar.Sq(eps)
	}
	return a == p
}

func containsByDistance[T scalar.Float](s Shape[T], p linalg.Pos2[T], eps T) bool {
	return Distance(s, p) <= scalar.Frac(eps)
}
