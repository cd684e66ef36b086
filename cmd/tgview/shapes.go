package main

import (
	"fmt"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/models"
	"github.com/taigrr/typedgeo/pkg/sample"
	"github.com/taigrr/typedgeo/pkg/sdf"
)

// shapeNames lists the primitives accepted by -shape.
var shapeNames = []string{"sphere", "capsule", "cylinder", "cone", "box", "blobs"}

// primitives returns the solids making up the named shape. blobs draws
// random balls from rng.
func primitives(name string, rng *sample.Rand) ([]any, error) {
	axis := g3.Segment[float64]{Pos0: linalg.P3(0.0, -1, 0), Pos1: linalg.P3(0.0, 1, 0)}

	switch name {
	case "sphere":
		return []any{g3.Ball[float64]{Radius: 1}}, nil
	case "capsule":
		return []any{g3.Capsule[float64, geom.Solid]{Axis: axis, Radius: 0.5}}, nil
	case "cylinder":
		return []any{g3.Cylinder[float64, geom.Solid]{Axis: axis, Radius: 0.7}}, nil
	case "cone":
		base := g3.Disk[float64]{Center: axis.Pos0, Radius: 1, Normal: linalg.D3(0.0, 1, 0)}
		return []any{g3.Cone[float64, geom.Solid]{Base: base, Height: 2}}, nil
	case "box":
		return []any{g3.BoxFromAabb(g3.NewAabb(linalg.P3(-1, -0.6, -0.8), linalg.P3(1, 0.6, 0.8)))}, nil
	case "blobs":
		region := g3.NewAabb(linalg.P3(-1.0, -1, -1), linalg.P3(1.0, 1, 1))
		balls := make([]any, 6)
		for i := range balls {
			balls[i] = g3.Ball[float64]{
				Center: sample.InAabb3(rng, region),
				Radius: sample.Uniform(rng, 0.3, 0.6),
			}
		}
		return balls, nil
	}
	return nil, fmt.Errorf("unknown shape %q (want one of %v)", name, shapeNames)
}

// buildMesh tessellates the named shape with cells grid steps along its
// longest side.
func buildMesh(name string, cells int, rng *sample.Rand) (*models.Mesh, error) {
	parts, err := primitives(name, rng)
	if err != nil {
		return nil, err
	}
	f, err := sdf.Union(parts...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	tris, err := sdf.Tessellate(f, cells)
	if err != nil {
		return nil, fmt.Errorf("tessellate %s: %w", name, err)
	}
	return models.FromTriangles(name, tris)
}
