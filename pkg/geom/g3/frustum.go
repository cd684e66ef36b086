package g3

import (
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Frustum is a convex view volume: the intersection of six halfspaces whose
// normals point outward.
type Frustum[T scalar.Float] struct {
	Planes [6]Halfspace[T]
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// FrustumFromMatrix extracts the view volume of a view-projection matrix
// with the Gribb/Hartmann method: each clip plane is row 3 plus or minus
// one of rows 0..2.
func FrustumFromMatrix[T scalar.Float](m linalg.Mat4[T]) Frustum[T] {
	r3 := m.Row(3)
	var f Frustum[T]
	for i := range 3 {
		ri := m.Row(i)
		f.Planes[2*i] = clipHalfspace(r3.Add(ri))
		f.Planes[2*i+1] = clipHalfspace(r3.Sub(ri))
	}
	return f
}

// clipHalfspace turns an inward clip plane a·p + d >= 0 into the outward
// halfspace -â·p <= d/|a|.
func clipHalfspace[T scalar.Float](v linalg.Vec4[T]) Halfspace[T] {
	n := v.XYZ()
	l := linalg.Norm3(n)
	return Halfspace[T]{Normal: linalg.Dir3[T](n.Div(-l)), Dis: v.W / l}
}

// Contains reports whether p lies inside every plane, within eps.
func (f Frustum[T]) Contains(p linalg.Pos3[T], eps T) bool {
	for _, h := range f.Planes {
		if !h.Contains(p, eps) {
			return false
		}
	}
	return true
}

// IntersectsAabb reports whether any part of b may be inside the frustum.
// For each plane only the corner furthest inside is tested, so boxes near
// frustum corners can be reported as intersecting when they are not.
func (f Frustum[T]) IntersectsAabb(b Aabb[T]) bool {
	for _, h := range f.Planes {
		if h.SignedDistance(extremeCorner(b, h.Normal, false)) > 0 {
			return false
		}
	}
	return true
}

// ContainsAabb reports whether b lies entirely inside the frustum.
func (f Frustum[T]) ContainsAabb(b Aabb[T]) bool {
	for _, h := range f.Planes {
		if h.SignedDistance(extremeCorner(b, h.Normal, true)) > 0 {
			return false
		}
	}
	return true
}

// IntersectsBall reports whether s may touch the frustum.
func (f Frustum[T]) IntersectsBall(s Ball[T]) bool {
	for _, h := range f.Planes {
		if h.SignedDistance(s.Center) > s.Radius {
			return false
		}
	}
	return true
}

// extremeCorner returns the corner of b furthest along n, or against n when
// along is false.
func extremeCorner[T scalar.Float](b Aabb[T], n linalg.Dir3[T], along bool) linalg.Pos3[T] {
	pick := func(c, lo, hi T) T {
		if (c >= 0) == along {
			return hi
		}
		return lo
	}
	return linalg.Pos3[T]{
		X: pick(n.X, b.Min.X, b.Max.X),
		Y: pick(n.Y, b.Min.Y, b.Max.Y),
		Z: pick(n.Z, b.Min.Z, b.Max.Z),
	}
}
