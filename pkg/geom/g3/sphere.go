package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Sphere is a sphere around Center. K selects the solid ball or its
// surface; BoundaryNoCaps behaves like Boundary since a sphere has no caps.
type Sphere[T scalar.Float, K geom.Tag] struct {
	Center linalg.Pos3[T]
	Radius T
}

// Ball is the solid sphere.
type Ball[T scalar.Float] = Sphere[T, geom.Solid]

// SphereBoundary is the hollow sphere shell.
type SphereBoundary[T scalar.Float] = Sphere[T, geom.Boundary]

// Contains reports whether p lies in the ball, or on the shell within a
// two-sided band of eps.
func (s Sphere[T, K]) Contains(p linalg.Pos3[T], eps T) bool {
	d2 := s.Center.Distance2To(p)
	if geom.KindOf[K]() == geom.KindSolid {
		return d2 <= scalar.Sq(s.Radius+eps)
	}
	return scalar.Abs(d2-scalar.Sq(s.Radius)) <= scalar.Sq(eps)
}

// Project returns the point of s closest to p. Projecting the center onto
// the shell picks the +X pole.
func (s Sphere[T, K]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	v := p.Sub(s.Center)
	l := linalg.Norm3(v)
	if geom.KindOf[K]() == geom.KindSolid && l <= s.Radius {
		return p
	}
	if l == 0 {
		return s.Center.Add(linalg.Vec3[T]{X: s.Radius})
	}
	return s.Center.Add(v.Scale(s.Radius / l))
}

// Bounds returns the axis-aligned box enclosing s.
func (s Sphere[T, K]) Bounds() Aabb[T] {
	r := linalg.Vec3[T]{s.Radius, s.Radius, s.Radius}
	return Aabb[T]{s.Center.SubVec(r), s.Center.Add(r)}
}

// Centroid returns the center of the sphere.
func (s Sphere[T, K]) Centroid() linalg.Pos3[T] { return s.Center }

func (s Sphere[T, K]) String() string {
	return fmt.Sprintf("sphere3<%v>(%v, %v)", geom.KindOf[K](), s.Center, s.Radius)
}

// Circle is a flat circle in 3D: the disk of Radius around Center in the
// plane orthogonal to Normal, or its rim.
type Circle[T scalar.Float, K geom.Tag] struct {
	Center linalg.Pos3[T]
	Radius T
	Normal linalg.Dir3[T]
}

// Disk is the filled circle.
type Disk[T scalar.Float] = Circle[T, geom.Solid]

// CircleBoundary is the rim of the circle.
type CircleBoundary[T scalar.Float] = Circle[T, geom.Boundary]

// Contains reports whether p is within eps of the circle.
func (c Circle[T, K]) Contains(p linalg.Pos3[T], eps T) bool {
	return containsByDistance(c, p, eps)
}

// Project returns the point of c closest to p.
func (c Circle[T, K]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	v := p.Sub(c.Center)
	v = v.Sub(c.Normal.Scale(c.Normal.Dot(v)))
	l := linalg.Norm3(v)
	if geom.KindOf[K]() == geom.KindSolid && l <= c.Radius {
		return c.Center.Add(v)
	}
	if l == 0 {
		return c.Center.Add(linalg.AnyNormal3(c.Normal).Scale(c.Radius))
	}
	return c.Center.Add(v.Scale(c.Radius / l))
}

// Plane returns the supporting plane of c.
func (c Circle[T, K]) Plane() Plane[T] { return PlaneThrough(c.Normal, c.Center) }

// Bounds returns the axis-aligned box enclosing c.
func (c Circle[T, K]) Bounds() Aabb[T] {
	n := c.Normal
	e := linalg.Vec3[T]{
		c.Radius * scalar.Sqrt(max(0, 1-n.X*n.X)),
		c.Radius * scalar.Sqrt(max(0, 1-n.Y*n.Y)),
		c.Radius * scalar.Sqrt(max(0, 1-n.Z*n.Z)),
	}
	return Aabb[T]{c.Center.SubVec(e), c.Center.Add(e)}
}

// Centroid returns the center of the circle.
func (c Circle[T, K]) Centroid() linalg.Pos3[T] { return c.Center }

func (c Circle[T, K]) String() string {
	return fmt.Sprintf("circle3<%v>(%v, %v, %v)", geom.KindOf[K](), c.Center, c.Radius, c.Normal)
}
