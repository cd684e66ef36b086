package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/internal/assert"
	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Aabb is an axis-aligned box with Min <= Max component-wise. Unlike the
// other shapes it accepts integer scalar kinds.
type Aabb[T scalar.Number] struct {
	Min, Max linalg.Pos3[T]
}

// NewAabb returns the box spanned by two opposite corners in any order.
func NewAabb[T scalar.Number](a, b linalg.Pos3[T]) Aabb[T] {
	return Aabb[T]{Min: a.Min(b), Max: a.Max(b)}
}

// AabbOf returns the smallest box containing every point. With no points it
// returns the zero box.
func AabbOf[T scalar.Number](pts ...linalg.Pos3[T]) Aabb[T] {
	if len(pts) == 0 {
		return Aabb[T]{}
	}
	b := Aabb[T]{pts[0], pts[0]}
	for _, p := range pts[1:] {
		b = b.Include(p)
	}
	return b
}

// Include returns the box grown to contain p.
func (b Aabb[T]) Include(p linalg.Pos3[T]) Aabb[T] {
	return Aabb[T]{b.Min.Min(p), b.Max.Max(p)}
}

// Union returns the smallest box containing both boxes.
func (b Aabb[T]) Union(o Aabb[T]) Aabb[T] {
	return Aabb[T]{b.Min.Min(o.Min), b.Max.Max(o.Max)}
}

// Size returns the extents of the box.
func (b Aabb[T]) Size() linalg.Size3[T] {
	d := b.Max.Sub(b.Min)
	return linalg.Size3[T]{Width: d.X, Height: d.Y, Depth: d.Z}
}

// Volume returns the volume of the box.
func (b Aabb[T]) Volume() T { return b.Size().Volume() }

// Centroid returns the center of the box, promoted so integer boxes keep
// their half units.
func (b Aabb[T]) Centroid() linalg.Pos3[scalar.Fractional] {
	lo := linalg.ConvertPos3[scalar.Fractional](b.Min)
	hi := linalg.ConvertPos3[scalar.Fractional](b.Max)
	return linalg.Mid3(lo, hi)
}

// Bounds returns b.
func (b Aabb[T]) Bounds() Aabb[T] { return b }

// Corners returns the eight corners of the box.
func (b Aabb[T]) Corners() [8]linalg.Pos3[T] {
	lo, hi := b.Min, b.Max
	return [8]linalg.Pos3[T]{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
	}
}

// Transform returns the box bounding all eight corners of b after m.
func (b Aabb[T]) Transform(m linalg.Mat4[T]) Aabb[T] {
	corners := b.Corners()
	out := Aabb[T]{m.MulPos3(corners[0]), m.MulPos3(corners[0])}
	for _, c := range corners[1:] {
		out = out.Include(m.MulPos3(c))
	}
	return out
}

// Contains reports whether p lies in the box grown by eps on every side.
func (b Aabb[T]) Contains(p linalg.Pos3[T], eps T) bool {
	for i := range 3 {
		c, lo, hi := p.Comp(i), b.Min.Comp(i), b.Max.Comp(i)
		// Differences only, so unsigned kinds cannot wrap.
		if (c < lo && lo-c > eps) || (c > hi && c-hi > eps) {
			return false
		}
	}
	return true
}

// Project clamps p into the box.
func (b Aabb[T]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	assert.That(b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z, "Aabb: min > max")
	return p.Max(b.Min).Min(b.Max)
}

// IntersectionAabb returns the overlap of two boxes. Boxes that only touch
// yield a flat box.
func (b Aabb[T]) IntersectionAabb(o Aabb[T]) geom.Result[Aabb[T]] {
	lo, hi := b.Min.Max(o.Min), b.Max.Min(o.Max)
	if lo.X > hi.X || lo.Y > hi.Y || lo.Z > hi.Z {
		return geom.Miss[Aabb[T]]()
	}
	return geom.Hit(Aabb[T]{lo, hi})
}

// IntersectsAabb reports whether the boxes overlap or touch.
func (b Aabb[T]) IntersectsAabb(o Aabb[T]) bool { return geom.Intersects(b.IntersectionAabb(o)) }

func (b Aabb[T]) String() string { return fmt.Sprintf("aabb3(%v, %v)", b.Min, b.Max) }
