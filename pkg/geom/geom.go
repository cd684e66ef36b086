// Package geom holds what the 2D and 3D shape packages share: the object
// tags that select solid or boundary semantics, and the tagged result every
// intersection returns.
package geom

// Kind identifies which part of a shape a tag selects.
type Kind int

const (
	// KindSolid is the shape together with its interior.
	KindSolid Kind = iota
	// KindBoundary is the surface of the shape, including any end caps.
	KindBoundary
	// KindBoundaryNoCaps is the surface of the shape without its end caps.
	KindBoundaryNoCaps
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindBoundary:
		return "boundary"
	case KindBoundaryNoCaps:
		return "boundary-no-caps"
	}
	return "unknown"
}

// Solid selects the shape with its interior. It is the default tag.
type Solid struct{}

// Boundary selects only the surface of the shape.
type Boundary struct{}

// BoundaryNoCaps selects the surface of the shape minus its flat end caps.
type BoundaryNoCaps struct{}

func (Solid) Kind() Kind          { return KindSolid }
func (Boundary) Kind() Kind       { return KindBoundary }
func (BoundaryNoCaps) Kind() Kind { return KindBoundaryNoCaps }

// Tag is the closed set of object tags. Shapes that have both a solid and a
// boundary form take a Tag type parameter.
type Tag interface {
	Solid | Boundary | BoundaryNoCaps
	Kind() Kind
}

// KindOf returns the Kind selected by tag K.
func KindOf[K Tag]() Kind {
	var k K
	return k.Kind()
}

// Result is the outcome of an intersection. Value is only meaningful when
// Empty is false.
type Result[R any] struct {
	Empty bool
	Value R
}

// Hit returns a non-empty result holding v.
func Hit[R any](v R) Result[R] { return Result[R]{Value: v} }

// Miss returns an empty result.
func Miss[R any]() Result[R] { return Result[R]{Empty: true} }

// Get returns the value and whether the result is non-empty.
func (r Result[R]) Get() (R, bool) { return r.Value, !r.Empty }

// Intersects reports whether r is non-empty. Every IntersectsX method is
// defined through it so it can never disagree with IntersectionX.
func Intersects[R any](r Result[R]) bool { return !r.Empty }
