package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/geom/g2"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Cylinder is a right circular cylinder of Radius around Axis. K selects the
// solid, its surface, or the surface without the two end caps.
type Cylinder[T scalar.Float, K geom.Tag] struct {
	Axis   Segment[T]
	Radius T
}

// Capsule is the set of points within Radius of Axis. BoundaryNoCaps
// behaves like Boundary.
type Capsule[T scalar.Float, K geom.Tag] struct {
	Axis   Segment[T]
	Radius T
}

// Contains reports whether p lies in the cylinder. The solid test projects p
// onto the axis, rejects it outside [0, |axis|²] in squared-length units, and
// compares the radial distance with Radius. Surfaces are tested by
// distance.
func (c Cylinder[T, K]) Contains(p linalg.Pos3[T], eps T) bool {
	if geom.KindOf[K]() != geom.KindSolid {
		return containsByDistance(c, p, eps)
	}
	d := c.Axis.Delta()
	l2 := d.Dot(d)
	t := p.Sub(c.Axis.Pos0).Dot(d)
	slack := eps * scalar.Sqrt(l2)
	if t < -slack || t > l2+slack {
		return false
	}
	onAxis := c.Axis.Pos0.Add(d.Scale(t / l2))
	return onAxis.Distance2To(p) <= scalar.Sq(c.Radius+eps)
}

// Project returns the point of the cylinder closest to p.
func (c Cylinder[T, K]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	s := sectionOf(c.Axis.Pos0, c.Axis.Dir(), p)
	r, h := c.Radius, c.Axis.Length()
	clamped := linalg.Pos2[T]{X: min(s.P.X, r), Y: scalar.Clamp(s.P.Y, 0, h)}

	switch geom.KindOf[K]() {
	case geom.KindSolid:
		return s.at(clamped)
	case geom.KindBoundaryNoCaps:
		return s.at(linalg.Pos2[T]{X: r, Y: clamped.Y})
	}
	if clamped != s.P {
		// outside: the clamped point already lies on the surface
		return s.at(clamped)
	}
	return s.at(s.nearest(
		g2.Segment[T]{Pos0: linalg.P2(r, 0), Pos1: linalg.P2(r, h)},
		g2.Segment[T]{Pos0: linalg.P2[T](0, 0), Pos1: linalg.P2(r, 0)},
		g2.Segment[T]{Pos0: linalg.P2(0, h), Pos1: linalg.P2(r, h)},
	))
}

// Cap0 returns the end cap at Axis.Pos0, facing away from the cylinder.
func (c Cylinder[T, K]) Cap0() Disk[T] {
	return Disk[T]{Center: c.Axis.Pos0, Radius: c.Radius, Normal: c.Axis.Dir().Neg()}
}

// Cap1 returns the end cap at Axis.Pos1, facing away from the cylinder.
func (c Cylinder[T, K]) Cap1() Disk[T] {
	return Disk[T]{Center: c.Axis.Pos1, Radius: c.Radius, Normal: c.Axis.Dir()}
}

// Bounds returns the axis-aligned box enclosing c.
func (c Cylinder[T, K]) Bounds() Aabb[T] { return c.Cap0().Bounds().Union(c.Cap1().Bounds()) }

// Centroid returns the midpoint of the axis.
func (c Cylinder[T, K]) Centroid() linalg.Pos3[T] { return c.Axis.Centroid() }

func (c Cylinder[T, K]) String() string {
	return fmt.Sprintf("cylinder3<%v>(%v, %v)", geom.KindOf[K](), c.Axis, c.Radius)
}

// Contains reports whether p lies in the capsule, or within eps of its
// surface.
func (c Capsule[T, K]) Contains(p linalg.Pos3[T], eps T) bool {
	if geom.KindOf[K]() == geom.KindSolid {
		return Distance2(c.Axis, p) <= scalar.Sq(c.Radius+eps)
	}
	return containsByDistance(c, p, eps)
}

// Project returns the point of the capsule closest to p.
func (c Capsule[T, K]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	q := c.Axis.Project(p)
	v := p.Sub(q)
	l := linalg.Norm3(v)
	if geom.KindOf[K]() == geom.KindSolid && l <= c.Radius {
		return p
	}
	if l == 0 {
		return q.Add(linalg.AnyNormal3(c.Axis.Dir()).Scale(c.Radius))
	}
	return q.Add(v.Scale(c.Radius / l))
}

// Bounds returns the axis-aligned box enclosing c.
func (c Capsule[T, K]) Bounds() Aabb[T] {
	r := linalg.Vec3[T]{c.Radius, c.Radius, c.Radius}
	b := c.Axis.Bounds()
	return Aabb[T]{b.Min.SubVec(r), b.Max.Add(r)}
}

// Centroid returns the midpoint of the axis.
func (c Capsule[T, K]) Centroid() linalg.Pos3[T] { return c.Axis.Centroid() }

func (c Capsule[T, K]) String() string {
	return fmt.Sprintf("capsule3<%v>(%v, %v)", geom.KindOf[K](), c.Axis, c.Radius)
}
