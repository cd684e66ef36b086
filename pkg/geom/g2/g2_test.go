package g2

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/typedgeo/pkg/linalg"
)

type p2 = linalg.Pos2[float64]

func pos(x, y float64) p2 { return linalg.P2(x, y) }

func nearPos(a, b p2, tol float64) bool { return a.DistanceTo(b) <= tol }

func TestAabbContains(t *testing.T) {
	box := NewAabb(pos(0, 0), pos(1, 1))

	tests := []struct {
		name     string
		point    p2
		eps      float64
		expected bool
	}{
		{"center", pos(0.5, 0.5), 0, true},
		{"corner", pos(1, 1), 0, true},
		{"outside", pos(1.5, 0.5), 0, false},
		{"outside within eps", pos(1.5, 0.5), 1.0, true},
		{"below", pos(0.5, -0.1), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.Contains(tc.point, tc.eps); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.point, tc.eps, got, tc.expected)
			}
		})
	}
}

func TestAabbIntegers(t *testing.T) {
	box := AabbOf(linalg.P2(4, 0), linalg.P2(0, 2), linalg.P2(1, 1))
	if box.Min != linalg.P2(0, 0) || box.Max != linalg.P2(4, 2) {
		t.Fatalf("AabbOf = %v", box)
	}
	if got := box.Area(); got != 8 {
		t.Errorf("Area = %v, want 8", got)
	}
	if got := box.Centroid(); got != linalg.P2(2.0, 1.0) {
		t.Errorf("Centroid = %v, want (2, 1)", got)
	}
	if res := box.IntersectionAabb(NewAabb(linalg.P2(3, 1), linalg.P2(9, 9))); res.Empty || res.Value != NewAabb(linalg.P2(3, 1), linalg.P2(4, 2)) {
		t.Errorf("IntersectionAabb = %v", res)
	}
	if box.IntersectsAabb(NewAabb(linalg.P2(5, 5), linalg.P2(6, 6))) {
		t.Error("disjoint boxes should not intersect")
	}
}

func TestAabbUnsigned(t *testing.T) {
	tests := []struct {
		name     string
		box      Aabb[uint8]
		point    linalg.Pos2[uint8]
		eps      uint8
		expected bool
	}{
		{"min corner with eps", NewAabb(linalg.P2[uint8](0, 0), linalg.P2[uint8](1, 1)), linalg.P2[uint8](0, 0), 1, true},
		{"outside within eps", NewAabb(linalg.P2[uint8](0, 0), linalg.P2[uint8](1, 1)), linalg.P2[uint8](2, 0), 1, true},
		{"outside beyond eps", NewAabb(linalg.P2[uint8](0, 0), linalg.P2[uint8](1, 1)), linalg.P2[uint8](3, 0), 1, false},
		{"max corner near overflow", NewAabb(linalg.P2[uint8](250, 250), linalg.P2[uint8](255, 255)), linalg.P2[uint8](255, 255), 10, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Contains(tc.point, tc.eps); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.point, tc.eps, got, tc.expected)
			}
		})
	}

	box := NewAabb(linalg.P2[uint32](0, 0), linalg.P2[uint32](5, 5))
	if !box.Contains(linalg.P2[uint32](0, 0), 3) || box.Contains(linalg.P2[uint32](9, 0), 3) {
		t.Error("uint32 rectangle containment wrong with eps")
	}
}

func TestBox(t *testing.T) {
	box := Box[float64]{Center: pos(0, 0), HalfExtents: linalg.Mat2[float64]{{2, 0}, {0, 1}}}

	if !box.Contains(pos(1.5, 0.5), 0) || box.Contains(pos(2.5, 0), 0) {
		t.Error("box containment wrong")
	}
	if got := box.Project(pos(5, 5)); !nearPos(got, pos(2, 1), 1e-12) {
		t.Errorf("Project = %v, want (2, 1)", got)
	}
	if got := box.Bounds(); got != NewAabb(pos(-2, -1), pos(2, 1)) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestTriangle(t *testing.T) {
	tri := Tri(pos(0, 0), pos(1, 0), pos(0, 1))
	cw := Tri(pos(0, 0), pos(0, 1), pos(1, 0))

	t.Run("contains", func(t *testing.T) {
		tests := []struct {
			name     string
			point    p2
			eps      float64
			expected bool
		}{
			{"inside", pos(0.25, 0.25), 0, true},
			{"vertex", pos(0, 0), 0, true},
			{"edge", pos(0.5, 0.5), 0, true},
			{"outside", pos(1, 1), 0, false},
			{"just outside", pos(0.5, -0.01), 0, false},
			{"just outside within eps", pos(0.5, -0.01), 0.05, true},
		}
		for _, tc := range tests {
			if got := tri.Contains(tc.point, tc.eps); got != tc.expected {
				t.Errorf("%s: Contains = %v, want %v", tc.name, got, tc.expected)
			}
			if got := cw.Contains(tc.point, tc.eps); got != tc.expected {
				t.Errorf("%s: clockwise Contains = %v, want %v", tc.name, got, tc.expected)
			}
		}
	})

	t.Run("coordinates", func(t *testing.T) {
		w := tri.Coordinates(pos(0.25, 0.25))
		want := [3]float64{0.5, 0.25, 0.25}
		sum := 0.0
		for i := range w {
			if math.Abs(w[i]-want[i]) > 1e-12 {
				t.Fatalf("Coordinates = %v, want %v", w, want)
			}
			if w[i] < 0 || w[i] > 1 {
				t.Errorf("weight %d = %v outside [0, 1]", i, w[i])
			}
			sum += w[i]
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("weights sum to %v", sum)
		}
		if got := tri.At(w); !nearPos(got, pos(0.25, 0.25), 1e-12) {
			t.Errorf("At(Coordinates(p)) = %v", got)
		}
	})

	if got := tri.SignedArea(); got != 0.5 {
		t.Errorf("SignedArea = %v, want 0.5", got)
	}
	if got := cw.SignedArea(); got != -0.5 {
		t.Errorf("clockwise SignedArea = %v, want -0.5", got)
	}
	if got := tri.Project(pos(1, 1)); !nearPos(got, pos(0.5, 0.5), 1e-12) {
		t.Errorf("Project = %v, want (0.5, 0.5)", got)
	}
}

func TestCircleAndDisk(t *testing.T) {
	disk := Disk[float64]{Center: pos(1, 1), Radius: 2}
	rim := Circle[float64]{Center: pos(1, 1), Radius: 2}

	if !disk.Contains(pos(2, 1), 0) || rim.Contains(pos(2, 1), 0) {
		t.Error("interior point containment wrong")
	}
	if !rim.Contains(pos(3, 1), 0) {
		t.Error("rim should contain (3, 1)")
	}
	if got := rim.Project(pos(2, 1)); !nearPos(got, pos(3, 1), 1e-12) {
		t.Errorf("rim.Project = %v, want (3, 1)", got)
	}
	if d := Distance(disk, pos(1, 6)); math.Abs(d-3) > 1e-12 {
		t.Errorf("Distance = %v, want 3", d)
	}
}

func TestIntersectionCircles(t *testing.T) {
	unit := func(x float64) Circle[float64] { return Circle[float64]{Center: pos(x, 0), Radius: 1} }

	t.Run("crossing", func(t *testing.T) {
		res := IntersectionCircles(unit(0), unit(1))
		if res.Empty {
			t.Fatal("expected two points")
		}
		h := math.Sqrt(0.75)
		if !nearPos(res.Value[0], pos(0.5, h), 1e-12) || !nearPos(res.Value[1], pos(0.5, -h), 1e-12) {
			t.Errorf("points = %v", res.Value)
		}
	})

	t.Run("tangent", func(t *testing.T) {
		res := IntersectionCircles(unit(0), unit(2))
		if res.Empty {
			t.Fatal("tangent circles should touch")
		}
		if !nearPos(res.Value[0], pos(1, 0), 1e-9) || !nearPos(res.Value[1], pos(1, 0), 1e-9) {
			t.Errorf("points = %v, want (1, 0) twice", res.Value)
		}
	})

	tests := []struct {
		name string
		a, b Circle[float64]
	}{
		{"apart", unit(0), unit(3)},
		{"nested", Circle[float64]{Center: pos(0, 0), Radius: 5}, unit(1)},
		{"identical", unit(4), unit(4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !IntersectionCircles(tc.a, tc.b).Empty || IntersectsCircles(tc.a, tc.b) {
				t.Error("expected an empty result")
			}
		})
	}
}

func TestIntersectionSegment(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Segment[float64]
		empty bool
		want  p2
	}{
		{"cross", Segment[float64]{pos(0, 0), pos(2, 2)}, Segment[float64]{pos(0, 2), pos(2, 0)}, false, pos(1, 1)},
		{"touch at end", Segment[float64]{pos(0, 0), pos(1, 0)}, Segment[float64]{pos(1, -1), pos(1, 1)}, false, pos(1, 0)},
		{"short", Segment[float64]{pos(0, 0), pos(1, 0)}, Segment[float64]{pos(2, -1), pos(2, 1)}, true, p2{}},
		{"parallel", Segment[float64]{pos(0, 0), pos(1, 0)}, Segment[float64]{pos(0, 1), pos(1, 1)}, true, p2{}},
		{"collinear", Segment[float64]{pos(0, 0), pos(2, 0)}, Segment[float64]{pos(1, 0), pos(3, 0)}, true, p2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.a.IntersectionSegment(tc.b)
			if res.Empty != tc.empty {
				t.Fatalf("Empty = %v, want %v", res.Empty, tc.empty)
			}
			if tc.a.IntersectsSegment(tc.b) == res.Empty {
				t.Error("IntersectsSegment disagrees with IntersectionSegment")
			}
			if !res.Empty && !nearPos(res.Value, tc.want, 1e-12) {
				t.Errorf("got %v, want %v", res.Value, tc.want)
			}
		})
	}
}

func TestRayCircle(t *testing.T) {
	ray := Ray[float64]{Origin: pos(-5, 0), Dir: linalg.D2(1.0, 0)}
	c := Circle[float64]{Center: pos(0, 0), Radius: 1}

	res := ray.IntersectionCircle(c)
	if res.Empty || !nearPos(res.Value[0], pos(-1, 0), 1e-12) || !nearPos(res.Value[1], pos(1, 0), 1e-12) {
		t.Errorf("IntersectionCircle = %v", res)
	}

	inside := Ray[float64]{Origin: pos(0, 0), Dir: linalg.D2(0, 1.0)}
	seg := inside.IntersectionDisk(Disk[float64](c))
	if seg.Empty || seg.Value.Pos0 != pos(0, 0) || !nearPos(seg.Value.Pos1, pos(0, 1), 1e-12) {
		t.Errorf("IntersectionDisk from inside = %v", seg)
	}

	away := Ray[float64]{Origin: pos(5, 0), Dir: linalg.D2(1.0, 0)}
	if away.IntersectsCircle(c) || away.IntersectsDisk(Disk[float64](c)) {
		t.Error("ray pointing away should miss")
	}
}

func TestSegmentAndLine(t *testing.T) {
	s := Segment[float64]{pos(0, 0), pos(4, 0)}
	if got := s.Project(pos(2, 3)); got != pos(2, 0) {
		t.Errorf("Project = %v, want (2, 0)", got)
	}
	if got := s.Coordinates(pos(6, 1)); got != 1.5 {
		t.Errorf("Coordinates = %v, want 1.5", got)
	}
	l := Line[float64]{Pos: pos(0, 1), Dir: linalg.D2(1.0, 0)}
	if d := Distance(l, pos(-100, 4)); math.Abs(d-3) > 1e-12 {
		t.Errorf("line Distance = %v, want 3", d)
	}
	if !ContainsPos(pos(1, 1), pos(1, 1), 0) || ContainsPos(pos(1, 1), pos(1, 1.5), 0.4) {
		t.Error("ContainsPos wrong")
	}
}

func TestPolygon(t *testing.T) {
	// L-shape: a 2x1 bar with a 1x1 block on its left end.
	l := Poly(pos(0, 0), pos(2, 0), pos(2, 1), pos(1, 1), pos(1, 2), pos(0, 2))

	if got := l.Area(); math.Abs(got-3) > 1e-12 {
		t.Errorf("Area = %v, want 3", got)
	}
	if got := l.Centroid(); !nearPos(got, pos(2.5/3, 2.5/3), 1e-12) {
		t.Errorf("Centroid = %v, want (5/6, 5/6)", got)
	}
	if got := l.Bounds(); got != NewAabb(pos(0, 0), pos(2, 2)) {
		t.Errorf("Bounds = %v", got)
	}

	tests := []struct {
		name     string
		point    p2
		eps      float64
		expected bool
	}{
		{"in bar", pos(1.5, 0.5), 0, true},
		{"in block", pos(0.5, 1.5), 0, true},
		{"notch", pos(1.5, 1.5), 0, false},
		{"far outside", pos(5, 5), 0, false},
		{"on right edge", pos(2, 0.5), 0, false},
		{"on right edge within eps", pos(2, 0.5), 0.01, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Contains(tc.point, tc.eps); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tc.point, tc.eps, got, tc.expected)
			}
		})
	}

	if got := l.Project(pos(3, 0.5)); !nearPos(got, pos(2, 0.5), 1e-12) {
		t.Errorf("Project = %v, want (2, 0.5)", got)
	}
	if got := l.Project(pos(1.6, 1.5)); !nearPos(got, pos(1.6, 1), 1e-12) {
		t.Errorf("Project into notch = %v, want (1.6, 1)", got)
	}

	t.Run("zero value", func(t *testing.T) {
		var empty Polygon[float64]
		if empty.Contains(pos(0, 0), 1) || empty.Contains(pos(0, 0), 0) {
			t.Error("empty polygon should contain nothing")
		}
		if got := empty.Project(pos(3, 4)); got != pos(3, 4) {
			t.Errorf("Project = %v, want the input point", got)
		}
		if got := empty.Area(); got != 0 {
			t.Errorf("Area = %v, want 0", got)
		}
	})
}

func TestPolygonTriangulate(t *testing.T) {
	l := Poly(pos(0, 0), pos(2, 0), pos(2, 1), pos(1, 1), pos(1, 2), pos(0, 2))

	tris, err := l.Triangulate()
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 4 {
		t.Fatalf("got %d triangles, want 4", len(tris))
	}
	area := 0.0
	for _, tri := range tris {
		area += tri.Area()
		if !l.Contains(tri.Centroid(), 1e-9) {
			t.Errorf("triangle %v lies outside the polygon", tri)
		}
	}
	if math.Abs(area-3) > 1e-9 {
		t.Errorf("triangles cover %v, want 3", area)
	}

	_, err = Poly(pos(0, 0), pos(1, 1)).Triangulate()
	if !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("two vertices: err = %v, want ErrDegeneratePolygon", err)
	}
}

func BenchmarkTriangleContains(b *testing.B) {
	tri := Tri(pos(0, 0), pos(1, 0), pos(0, 1))
	p := pos(0.25, 0.25)
	for b.Loop() {
		_ = tri.Contains(p, 0)
	}
}

func BenchmarkPolygonTriangulate(b *testing.B) {
	l := Poly(pos(0, 0), pos(2, 0), pos(2, 1), pos(1, 1), pos(1, 2), pos(0, 2))
	for b.Loop() {
		_, _ = l.Triangulate()
	}
}
