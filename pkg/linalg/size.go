package linalg

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Size2 holds non-negative 2D extents.
type Size2[T scalar.Number] struct {
	Width, Height T
}

// Size3 holds non-negative 3D extents.
type Size3[T scalar.Number] struct {
	Width, Height, Depth T
}

// Size4 holds non-negative 4D extents.
type Size4[T scalar.Number] struct {
	Width, Height, Depth, W T
}

// Vec returns the extents as a vector.
func (s Size2[T]) Vec() Vec2[T] { return Vec2[T]{s.Width, s.Height} }

// Scale returns s * k.
func (s Size2[T]) Scale(k T) Size2[T] { return Size2[T]{s.Width * k, s.Height * k} }

// Mul returns the component-wise product.
func (s Size2[T]) Mul(o Size2[T]) Size2[T] { return Size2[T]{s.Width * o.Width, s.Height * o.Height} }

// Add returns the component-wise sum.
func (s Size2[T]) Add(o Size2[T]) Size2[T] { return Size2[T]{s.Width + o.Width, s.Height + o.Height} }

// Area returns Width * Height.
func (s Size2[T]) Area() T { return s.Width * s.Height }

func (s Size2[T]) String() string { return fmt.Sprintf("size2(%v, %v)", s.Width, s.Height) }

// Vec returns the extents as a vector.
func (s Size3[T]) Vec() Vec3[T] { return Vec3[T]{s.Width, s.Height, s.Depth} }

// Scale returns s * k.
func (s Size3[T]) Scale(k T) Size3[T] { return Size3[T]{s.Width * k, s.Height * k, s.Depth * k} }

// Mul returns the component-wise product.
func (s Size3[T]) Mul(o Size3[T]) Size3[T] {
	return Size3[T]{s.Width * o.Width, s.Height * o.Height, s.Depth * o.Depth}
}

// Add returns the component-wise sum.
func (s Size3[T]) Add(o Size3[T]) Size3[T] {
	return Size3[T]{s.Width + o.Width, s.Height + o.Height, s.Depth + o.Depth}
}

// Volume returns Width * Height * Depth.
func (s Size3[T]) Volume() T { return s.Width * s.Height * s.Depth }

// MaxExtent returns the largest of the three extents.
func (s Size3[T]) MaxExtent() T { return max(s.Width, s.Height, s.Depth) }

func (s Size3[T]) String() string {
	return fmt.Sprintf("size3(%v, %v, %v)", s.Width, s.Height, s.Depth)
}

// Vec returns the extents as a vector.
func (s Size4[T]) Vec() Vec4[T] { return Vec4[T]{s.Width, s.Height, s.Depth, s.W} }

// Scale returns s * k.
func (s Size4[T]) Scale(k T) Size4[T] { return Size4[T]{s.Width * k, s.Height * k, s.Depth * k, s.W * k} }

func (s Size4[T]) String() string {
	return fmt.Sprintf("size4(%v, %v, %v, %v)", s.Width, s.Height, s.Depth, s.W)
}
