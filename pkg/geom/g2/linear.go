package g2

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Segment is the straight path from Pos0 to Pos1.
type Segment[T scalar.Float] struct {
	Pos0, Pos1 linalg.Pos2[T]
}

// Line is the infinite line through Pos along Dir.
type Line[T scalar.Float] struct {
	Pos linalg.Pos2[T]
	Dir linalg.Dir2[T]
}

// Ray is the half line starting at Origin going along Dir.
type Ray[T scalar.Float] struct {
	Origin linalg.Pos2[T]
	Dir    linalg.Dir2[T]
}

// Delta returns Pos1 - Pos0.
func (s Segment[T]) Delta() linalg.Vec2[T] { return s.Pos1.Sub(s.Pos0) }

// Length returns the length of the segment.
func (s Segment[T]) Length() T { return linalg.Norm2(s.Delta()) }

// At returns Pos0 + t*(Pos1-Pos0).
func (s Segment[T]) At(t T) linalg.Pos2[T] { return linalg.Lerp2(s.Pos0, s.Pos1, t) }

// Coordinates returns the unclamped projection parameter of p.
func (s Segment[T]) Coordinates(p linalg.Pos2[T]) T {
	d := s.Delta()
	return p.Sub(s.Pos0).Dot(d) / d.Dot(d)
}

// Project returns the point of the segment closest to p.
func (s Segment[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] {
	return s.At(scalar.Clamp(s.Coordinates(p), 0, 1))
}

// Contains reports whether p is within eps of the segment.
func (s Segment[T]) Contains(p linalg.Pos2[T], eps T) bool { return containsByDistance(s, p, eps) }

// Bounds returns the axis-aligned rectangle enclosing s.
func (s Segment[T]) Bounds() Aabb[T] { return NewAabb(s.Pos0, s.Pos1) }

// Centroid returns the midpoint.
func (s Segment[T]) Centroid() linalg.Pos2[T] { return linalg.Mid2(s.Pos0, s.Pos1) }

func (s Segment[T]) String() string { return fmt.Sprintf("segment2(%v, %v)", s.Pos0, s.Pos1) }

// At returns Pos + t*Dir.
func (l Line[T]) At(t T) linalg.Pos2[T] { return l.Pos.Add(l.Dir.Scale(t)) }

// Coordinates returns the signed distance along the line to p's projection.
func (l Line[T]) Coordinates(p linalg.Pos2[T]) T { return l.Dir.Dot(p.Sub(l.Pos)) }

// Project returns the orthogonal projection of p onto the line.
func (l Line[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] { return l.At(l.Coordinates(p)) }

// Contains reports whether p is within eps of the line.
func (l Line[T]) Contains(p linalg.Pos2[T], eps T) bool { return containsByDistance(l, p, eps) }

func (l Line[T]) String() string { return fmt.Sprintf("line2(%v, %v)", l.Pos, l.Dir) }

// At returns Origin + t*Dir.
func (r Ray[T]) At(t T) linalg.Pos2[T] { return r.Origin.Add(r.Dir.Scale(t)) }

// Coordinates returns the signed distance along the ray to p's projection.
func (r Ray[T]) Coordinates(p linalg.Pos2[T]) T { return r.Dir.Dot(p.Sub(r.Origin)) }

// Project returns the point of the ray closest to p.
func (r Ray[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] { return r.At(max(0, r.Coordinates(p))) }

// Contains reports whether p is within eps of the ray.
func (r Ray[T]) Contains(p linalg.Pos2[T], eps T) bool { return containsByDistance(r, p, eps) }

func (r Ray[T]) String() string { return fmt.Sprintf("ray2(%v, %v)", r.Origin, r.Dir) }
