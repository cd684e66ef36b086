package main

import (
	"math"
	"testing"

	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/sample"
)

func TestBuildMesh(t *testing.T) {
	for _, name := range shapeNames {
		t.Run(name, func(t *testing.T) {
			m, err := buildMesh(name, 12, sample.New(7))
			if err != nil {
				t.Fatalf("buildMesh: %v", err)
			}
			if m.TriangleCount() == 0 {
				t.Fatal("mesh has no triangles")
			}
			if m.Name != name {
				t.Errorf("name = %q, want %q", m.Name, name)
			}
		})
	}
}

func TestBuildMeshUnknownShape(t *testing.T) {
	if _, err := buildMesh("teapot", 12, sample.New(1)); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestBuildMeshBadCells(t *testing.T) {
	if _, err := buildMesh("sphere", 0, sample.New(1)); err == nil {
		t.Error("expected error for zero cells")
	}
}

func TestBlobsFollowSeed(t *testing.T) {
	a, err := primitives("blobs", sample.New(42))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := primitives("blobs", sample.New(42))
	c, _ := primitives("blobs", sample.New(43))
	if len(a) != 6 {
		t.Fatalf("got %d blobs, want 6", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("blob %d differs for equal seeds", i)
		}
	}
	if a[0] == c[0] {
		t.Error("different seeds should move the blobs")
	}
}

func TestSpin(t *testing.T) {
	s := NewSpin(60)
	if s.Matrix() != linalg.Identity4[float64]() {
		t.Error("spin at rest should be the identity")
	}

	s.Impulse(0, 0.1, 0)
	for range 300 {
		s.Update()
	}
	if math.Abs(s.Yaw.Velocity) > 1e-3 {
		t.Errorf("velocity should decay, got %v", s.Yaw.Velocity)
	}
	if s.Yaw.Angle <= 0.1 {
		t.Errorf("angle = %v, want the spin to carry past the first step", s.Yaw.Angle)
	}

	s.Reset()
	if s.Yaw.Angle != 0 || s.Yaw.Velocity != 0 {
		t.Error("Reset should stop the spin")
	}
}
