package g2

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Aabb is an axis-aligned rectangle with Min <= Max component-wise.
type Aabb[T scalar.Number] struct {
	Min, Max linalg.Pos2[T]
}

// NewAabb returns the rectangle spanned by two opposite corners.
func NewAabb[T scalar.Number](a, b linalg.Pos2[T]) Aabb[T] {
	return Aabb[T]{a.Min(b), a.Max(b)}
}

// AabbOf returns the smallest rectangle containing every point.
func AabbOf[T scalar.Number](pts ...linalg.Pos2[T]) Aabb[T] {
	if len(pts) == 0 {
		return Aabb[T]{}
	}
	b := Aabb[T]{pts[0], pts[0]}
	for _, p := range pts[1:] {
		b = b.Include(p)
	}
	return b
}

// Include returns the rectangle grown to contain p.
func (b Aabb[T]) Include(p linalg.Pos2[T]) Aabb[T] { return Aabb[T]{b.Min.Min(p), b.Max.Max(p)} }

// Union returns the smallest rectangle containing both.
func (b Aabb[T]) Union(o Aabb[T]) Aabb[T] { return Aabb[T]{b.Min.Min(o.Min), b.Max.Max(o.Max)} }

// Size returns the extents.
func (b Aabb[T]) Size() linalg.Size2[T] {
	d := b.Max.Sub(b.Min)
	return linalg.Size2[T]{Width: d.X, Height: d.Y}
}

// Area returns the area.
func (b Aabb[T]) Area() T { return b.Size().Area() }

// Centroid returns the center, promoted so integer rectangles keep their
// half units.
func (b Aabb[T]) Centroid() linalg.Pos2[scalar.Fractional] {
	return linalg.Mid2(linalg.ConvertPos2[scalar.Fractional](b.Min), linalg.ConvertPos2[scalar.Fractional](b.Max))
}

// Bounds returns b.
func (b Aabb[T]) Bounds() Aabb[T] { return b }

// Contains reports whether p lies in the rectangle grown by eps.
func (b Aabb[T]) Contains(p linalg.Pos2[T], eps T) bool {
	return within(p.X, b.Min.X, b.Max.X, eps) && within(p.Y, b.Min.Y, b.Max.Y, eps)
}

// within compares differences only, so unsigned kinds cannot wrap.
func within[T scalar.Number](c, lo, hi, eps T) bool {
	return !(c < lo && lo-c > eps) && !(c > hi && c-hi > eps)
}

// Project clamps p into the rectangle.
func (b Aabb[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] { return p.Max(b.Min).Min(b.Max) }

// IntersectionAabb returns the overlap of two rectangles.
func (b Aabb[T]) IntersectionAabb(o Aabb[T]) geom.Result[Aabb[T]] {
	lo, hi := b.Min.Max(o.Min), b.Max.Min(o.Max)
	if lo.X > hi.X || lo.Y > hi.Y {
		return geom.Miss[Aabb[T]]()
	}
	return geom.Hit(Aabb[T]{lo, hi})
}

// IntersectsAabb reports whether the rectangles overlap or touch.
func (b Aabb[T]) IntersectsAabb(o Aabb[T]) bool { return geom.Intersects(b.IntersectionAabb(o)) }

func (b Aabb[T]) String() string { return fmt.Sprintf("aabb2(%v, %v)", b.Min, b.Max) }
