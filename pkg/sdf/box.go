package sdf

import (
	"github.com/taigrr/typedgeo/internal/assert"
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// boxSurface is the boundary of an oriented box. Its half-extent axes must
// be pairwise orthogonal.
type boxSurface struct {
	g3.Box[float64]
}

// Project returns the point on the surface of the box closest to p. Points
// inside move out through the nearest face.
func (b boxSurface) Project(p pos3) pos3 {
	if !b.Contains(p, 0) {
		return b.Box.Project(p)
	}
	h := b.HalfExtents
	assert.That(scalar.Abs(h[0].Dot(h[1])) < 1e-9 && scalar.Abs(h[1].Dot(h[2])) < 1e-9 &&
		scalar.Abs(h[0].Dot(h[2])) < 1e-9, "boxSurface: axes not orthogonal")

	r := p.Sub(b.Center)
	var t [3]float64
	face, gap := 0, -1.0
	for i, a := range h {
		l2 := a.Dot(a)
		t[i] = a.Dot(r) / l2
		// distance to the face along axis i
		d := (1 - scalar.Abs(t[i])) * scalar.Sqrt(l2)
		if gap < 0 || d < gap {
			face, gap = i, d
		}
	}
	t[face] = scalar.Copysign(1, t[face])

	q := b.Center
	for i, a := range h {
		q = q.Add(a.Scale(t[i]))
	}
	return q
}
