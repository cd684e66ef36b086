package g3

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/geom/g2"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Cone is a right circular cone standing on Base with its apex Height along
// the base normal. BoundaryNoCaps drops the base disk from the surface.
type Cone[T scalar.Float, K geom.Tag] struct {
	Base   Disk[T]
	Height T
}

// Apex returns the tip of the cone.
func (c Cone[T, K]) Apex() linalg.Pos3[T] {
	return c.Base.Center.Add(c.Base.Normal.Scale(c.Height))
}

// Contains reports whether p lies in the cone. The solid test rejects points
// behind the base plane or beyond the apex, then compares the radial
// distance with the radius interpolated toward the apex. Surfaces are tested
// by distance.
func (c Cone[T, K]) Contains(p linalg.Pos3[T], eps T) bool {
	if geom.KindOf[K]() != geom.KindSolid {
		return containsByDistance(c, p, eps)
	}
	v := p.Sub(c.Base.Center)
	h := c.Base.Normal.Dot(v)
	if h < -eps || h > c.Height+eps {
		return false
	}
	r := c.Base.Radius * max(0, 1-h/c.Height)
	radial := v.Sub(c.Base.Normal.Scale(h))
	return radial.Length2() <= scalar.Sq(r+eps)
}

// Project returns the point of the cone closest to p.
func (c Cone[T, K]) Project(p linalg.Pos3[T]) linalg.Pos3[T] {
	s := sectionOf(c.Base.Center, c.Base.Normal, p)
	r, h := c.Base.Radius, c.Height
	kind := geom.KindOf[K]()

	if kind == geom.KindSolid && s.P.Y >= 0 && s.P.Y <= h && s.P.X <= r*(1-s.P.Y/h) {
		return p
	}
	slant := g2.Segment[T]{Pos0: linalg.P2(r, 0), Pos1: linalg.P2(0, h)}
	if kind == geom.KindBoundaryNoCaps {
		return s.at(s.nearest(slant))
	}
	base := g2.Segment[T]{Pos0: linalg.P2[T](0, 0), Pos1: linalg.P2(r, 0)}
	return s.at(s.nearest(slant, base))
}

// Bounds returns the axis-aligned box enclosing c.
func (c Cone[T, K]) Bounds() Aabb[T] { return c.Base.Bounds().Include(c.Apex()) }

// Centroid returns the centroid of the solid cone, a quarter of the way from
// the base to the apex.
func (c Cone[T, K]) Centroid() linalg.Pos3[T] {
	return c.Base.Center.Add(c.Base.Normal.Scale(c.Height / 4))
}

func (c Cone[T, K]) String() string {
	return fmt.Sprintf("cone3<%v>(%v, %v)", geom.KindOf[K](), c.Base, c.Height)
}
