package g3

import (
	"github.com/taigrr/typedgeo/pkg/geom/g2"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// section is a point expressed in the half plane through a rotationally
// symmetric shape's axis: P is (radial distance, axial height).
type section[T scalar.Float] struct {
	origin linalg.Pos3[T]
	axis   linalg.Dir3[T]
	radial linalg.Dir3[T]
	P      linalg.Pos2[T]
}

func sectionOf[T scalar.Float](origin linalg.Pos3[T], axis linalg.Dir3[T], p linalg.Pos3[T]) section[T] {
	v := p.Sub(origin)
	h := axis.Dot(v)
	w := v.Sub(axis.Scale(h))
	rho := linalg.Norm3(w)
	radial := linalg.AnyNormal3(axis)
	if rho > 0 {
		radial = linalg.Dir3[T](w.Div(rho))
	}
	return section[T]{origin, axis, radial, linalg.Pos2[T]{X: rho, Y: h}}
}

// at maps a section point back to 3D.
func (s section[T]) at(q linalg.Pos2[T]) linalg.Pos3[T] {
	return s.origin.Add(s.axis.Scale(q.Y)).Add(s.radial.Scale(q.X))
}

// nearest returns the point of the candidate segments closest to s.P.
func (s section[T]) nearest(edges ...g2.Segment[T]) linalg.Pos2[T] {
	best := edges[0].Project(s.P)
	bestD := best.Distance2To(s.P)
	for _, e := range edges[1:] {
		q := e.Project(s.P)
		if d := q.Distance2To(s.P); d < bestD {
			best, bestD = q, d
		}
	}
	return best
}
