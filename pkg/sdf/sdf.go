// Package sdf turns solid typedgeo shapes into signed distance functions for
// the sdfx CAD library. Shapes can then be combined with sdfx booleans and
// tessellated back into triangles with marching cubes.
package sdf

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
)

var (
	// ErrUnsupportedShape is returned for shapes without an interior, or
	// types Of does not know.
	ErrUnsupportedShape = errors.New("unsupported shape")
	// ErrEmptyMesh is returned when tessellation produced no triangles.
	ErrEmptyMesh = errors.New("empty mesh")
)

// DefaultCells is the marching cubes resolution along the longest side of
// the bounding box.
const DefaultCells = 64

type pos3 = linalg.Pos3[float64]

// shape is a solid seen through its surface: the distance to surface gives
// the magnitude, inside gives the sign.
type shape struct {
	surface g3.Shape[float64]
	inside  func(pos3) bool
	bounds  g3.Aabb[float64]
}

var _ sdf.SDF3 = (*shape)(nil)

// Evaluate returns the signed distance from p to the surface, negative
// inside.
func (s *shape) Evaluate(p v3.Vec) float64 {
	q := fromVec(p)
	d := g3.Distance(s.surface, q)
	if s.inside(q) {
		return -d
	}
	return d
}

// BoundingBox returns the bounds of the solid.
func (s *shape) BoundingBox() sdf.Box3 {
	return sdf.Box3{Min: toVec(s.bounds.Min), Max: toVec(s.bounds.Max)}
}

// Of returns the signed distance function of a solid shape. Supported are
// Aabb, Box, Ball and the solid Cylinder, Capsule and Cone, all over
// float64.
func Of(s any) (sdf.SDF3, error) {
	switch s := s.(type) {
	case g3.Ball[float64]:
		return solid(g3.SphereBoundary[float64](s), s, s.Bounds()), nil
	case g3.Cylinder[float64, geom.Solid]:
		return solid(g3.Cylinder[float64, geom.Boundary](s), s, s.Bounds()), nil
	case g3.Capsule[float64, geom.Solid]:
		return solid(g3.Capsule[float64, geom.Boundary](s), s, s.Bounds()), nil
	case g3.Cone[float64, geom.Solid]:
		return solid(g3.Cone[float64, geom.Boundary](s), s, s.Bounds()), nil
	case g3.Box[float64]:
		return solid(boxSurface{s}, s, s.Bounds()), nil
	case g3.Aabb[float64]:
		b := g3.BoxFromAabb(s)
		return solid(boxSurface{b}, s, s), nil
	}
	return nil, fmt.Errorf("sdf of %T: %w", s, ErrUnsupportedShape)
}

// MustOf is like Of but panics on unsupported shapes.
func MustOf(s any) sdf.SDF3 {
	f, err := Of(s)
	if err != nil {
		panic(err)
	}
	return f
}

type container interface {
	Contains(p pos3, eps float64) bool
}

func solid(surface g3.Shape[float64], c container, bounds g3.Aabb[float64]) *shape {
	return &shape{
		surface: surface,
		inside:  func(p pos3) bool { return c.Contains(p, 0) },
		bounds:  bounds,
	}
}

// Union returns the union of the signed distance functions of shapes.
func Union(shapes ...any) (sdf.SDF3, error) {
	fs := make([]sdf.SDF3, 0, len(shapes))
	for _, s := range shapes {
		f, err := Of(s)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return sdf.Union3D(fs...), nil
}

// Tessellate samples s on a uniform grid of cells along its longest side
// and returns the surface triangles.
func Tessellate(s sdf.SDF3, cells int) ([]g3.Triangle[float64], error) {
	if cells <= 0 {
		return nil, fmt.Errorf("tessellate with %d cells: must be positive", cells)
	}
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(tris) == 0 {
		return nil, ErrEmptyMesh
	}

	out := make([]g3.Triangle[float64], 0, len(tris))
	for _, t := range tris {
		out = append(out, g3.Tri(fromVec(t[0]), fromVec(t[1]), fromVec(t[2])))
	}
	return out, nil
}

func fromVec(v v3.Vec) pos3 { return linalg.P3(v.X, v.Y, v.Z) }

func toVec(p pos3) v3.Vec { return v3.Vec{X: p.X, Y: p.Y, Z: p.Z} }
