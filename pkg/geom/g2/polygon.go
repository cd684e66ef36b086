package g2

import (
	"errors"
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// ErrDegeneratePolygon is returned when a polygon has fewer than three
// vertices or no area to triangulate.
var ErrDegeneratePolygon = errors.New("degenerate polygon")

// Polygon is a simple solid polygon given by its outline in either winding.
// The last vertex connects back to the first.
type Polygon[T scalar.Float] struct {
	Vertices []linalg.Pos2[T]
}

// Poly creates a Polygon.
func Poly[T scalar.Float](pts ...linalg.Pos2[T]) Polygon[T] { return Polygon[T]{Vertices: pts} }

// Edge returns the edge starting at vertex i.
func (pg Polygon[T]) Edge(i int) Segment[T] {
	n := len(pg.Vertices)
	return Segment[T]{pg.Vertices[i%n], pg.Vertices[(i+1)%n]}
}

// SignedArea returns the shoelace area, positive for counter-clockwise
// outlines.
func (pg Polygon[T]) SignedArea() T {
	var sum T
	for i := range pg.Vertices {
		e := pg.Edge(i)
		sum += e.Pos0.Vec().Cross(e.Pos1.Vec())
	}
	return sum / 2
}

// Area returns the unsigned area.
func (pg Polygon[T]) Area() T { return scalar.Abs(pg.SignedArea()) }

// Centroid returns the area centroid. Polygons without area yield NaN.
func (pg Polygon[T]) Centroid() linalg.Pos2[T] {
	var cx, cy, a T
	for i := range pg.Vertices {
		e := pg.Edge(i)
		w := e.Pos0.Vec().Cross(e.Pos1.Vec())
		a += w
		cx += (e.Pos0.X + e.Pos1.X) * w
		cy += (e.Pos0.Y + e.Pos1.Y) * w
	}
	return linalg.Pos2[T]{X: cx / (3 * a), Y: cy / (3 * a)}
}

// Bounds returns the axis-aligned rectangle enclosing the outline.
func (pg Polygon[T]) Bounds() Aabb[T] { return AabbOf(pg.Vertices...) }

// Contains reports whether p lies inside the outline by the even-odd rule,
// or within eps of an edge.
func (pg Polygon[T]) Contains(p linalg.Pos2[T], eps T) bool {
	if len(pg.Vertices) == 0 {
		return false
	}
	inside := false
	for i := range pg.Vertices {
		e := pg.Edge(i)
		a, b := e.Pos0, e.Pos1
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	if inside || eps <= 0 {
		return inside
	}
	return pg.boundaryDistance2(p) <= scalar.Sq(eps)
}

func (pg Polygon[T]) boundaryDistance2(p linalg.Pos2[T]) scalar.Squared {
	best := Distance2(pg.Edge(0), p)
	for i := 1; i < len(pg.Vertices); i++ {
		best = min(best, Distance2(pg.Edge(i), p))
	}
	return best
}

// Project returns p if it is inside, else the nearest point on the outline.
// An empty polygon returns p.
func (pg Polygon[T]) Project(p linalg.Pos2[T]) linalg.Pos2[T] {
	if len(pg.Vertices) == 0 || pg.Contains(p, 0) {
		return p
	}
	best := pg.Edge(0).Project(p)
	for i := 1; i < len(pg.Vertices); i++ {
		if q := pg.Edge(i).Project(p); q.Distance2To(p) < best.Distance2To(p) {
			best = q
		}
	}
	return best
}

// Triangulate splits the polygon into triangles by ear clipping.
func (pg Polygon[T]) Triangulate() ([]Triangle[T], error) {
	if len(pg.Vertices) < 3 {
		return nil, fmt.Errorf("triangulate %d vertices: %w", len(pg.Vertices), ErrDegeneratePolygon)
	}

	coords := make([]float64, 0, len(pg.Vertices)*2)
	for _, v := range pg.Vertices {
		coords = append(coords, float64(v.X), float64(v.Y))
	}

	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate: %w", err)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangulate %d vertices: %w", len(pg.Vertices), ErrDegeneratePolygon)
	}

	tris := make([]Triangle[T], 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		tris = append(tris, Triangle[T]{
			pg.Vertices[indices[i]],
			pg.Vertices[indices[i+1]],
			pg.Vertices[indices[i+2]],
		})
	}
	return tris, nil
}

func (pg Polygon[T]) String() string { return fmt.Sprintf("polygon2%v", pg.Vertices) }
