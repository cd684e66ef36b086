package sample

import (
	"math"

	"github.com/taigrr/typedgeo/pkg/geom/g2"
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Uniform returns a value in [lo, hi).
func Uniform[T scalar.Float](s Source, lo, hi T) T {
	return lo + T(s.Float64())*(hi-lo)
}

// Dir2 returns a direction uniformly distributed on the unit circle.
func Dir2[T scalar.Float](s Source) linalg.Dir2[T] {
	sn, cs := scalar.Radians(Uniform[T](s, 0, 2*math.Pi)).SinCos()
	return linalg.Dir2[T]{X: cs, Y: sn}
}

// Dir3 returns a direction uniformly distributed on the unit sphere.
func Dir3[T scalar.Float](s Source) linalg.Dir3[T] {
	z := Uniform[T](s, -1, 1)
	sn, cs := scalar.Radians(Uniform[T](s, 0, 2*math.Pi)).SinCos()
	r := scalar.Sqrt(max(0, 1-z*z))
	return linalg.Dir3[T]{X: r * cs, Y: r * sn, Z: z}
}

// Barycentric returns weights uniformly distributed over a triangle.
func Barycentric[T scalar.Float](s Source) [3]T {
	u, v := Uniform[T](s, 0, 1), Uniform[T](s, 0, 1)
	if u+v > 1 {
		u, v = 1-u, 1-v
	}
	return [3]T{1 - u - v, u, v}
}

// InAabb3 returns a point inside b.
func InAabb3[T scalar.Float](s Source, b g3.Aabb[T]) linalg.Pos3[T] {
	return linalg.Pos3[T]{
		X: Uniform(s, b.Min.X, b.Max.X),
		Y: Uniform(s, b.Min.Y, b.Max.Y),
		Z: Uniform(s, b.Min.Z, b.Max.Z),
	}
}

// InBall returns a point inside b.
func InBall[T scalar.Float](s Source, b g3.Ball[T]) linalg.Pos3[T] {
	r := b.Radius * scalar.Pow(Uniform[T](s, 0, 1), 1.0/3)
	return b.Center.Add(Dir3[T](s).Scale(r))
}

// OnSphere returns a point on the shell of sp.
func OnSphere[T scalar.Float](s Source, sp g3.SphereBoundary[T]) linalg.Pos3[T] {
	return sp.Center.Add(Dir3[T](s).Scale(sp.Radius))
}

// OnSegment3 returns a point on seg.
func OnSegment3[T scalar.Float](s Source, seg g3.Segment[T]) linalg.Pos3[T] {
	return seg.At(Uniform[T](s, 0, 1))
}

// InTriangle3 returns a point inside t.
func InTriangle3[T scalar.Float](s Source, t g3.Triangle[T]) linalg.Pos3[T] {
	return t.At(Barycentric[T](s))
}

// InAabb2 returns a point inside b.
func InAabb2[T scalar.Float](s Source, b g2.Aabb[T]) linalg.Pos2[T] {
	return linalg.Pos2[T]{
		X: Uniform(s, b.Min.X, b.Max.X),
		Y: Uniform(s, b.Min.Y, b.Max.Y),
	}
}

// InDisk returns a point inside d.
func InDisk[T scalar.Float](s Source, d g2.Disk[T]) linalg.Pos2[T] {
	r := d.Radius * scalar.Sqrt(Uniform[T](s, 0, 1))
	return d.Center.Add(Dir2[T](s).Scale(r))
}

// OnCircle returns a point on c.
func OnCircle[T scalar.Float](s Source, c g2.Circle[T]) linalg.Pos2[T] {
	return c.Center.Add(Dir2[T](s).Scale(c.Radius))
}

// OnSegment2 returns a point on seg.
func OnSegment2[T scalar.Float](s Source, seg g2.Segment[T]) linalg.Pos2[T] {
	return seg.At(Uniform[T](s, 0, 1))
}

// InTriangle2 returns a point inside t.
func InTriangle2[T scalar.Float](s Source, t g2.Triangle[T]) linalg.Pos2[T] {
	return t.At(Barycentric[T](s))
}
