package render

import (
	"math"
	"testing"

	"github.com/taigrr/typedgeo/pkg/linalg"
)

func testCamera(w, h int) *Camera {
	cam := NewCamera()
	cam.SetPosition(linalg.P3(0.0, 0, 5))
	cam.LookAt(linalg.P3(0.0, 0, 0))
	cam.SetAspectRatio(float64(w) / float64(h))
	return cam
}

func TestCameraBasis(t *testing.T) {
	cam := testCamera(40, 40)
	checks := []struct {
		name string
		got  dir3
		want vec3
	}{
		{"forward", cam.Forward(), linalg.V3(0.0, 0, -1)},
		{"right", cam.Right(), linalg.V3(1.0, 0, 0)},
		{"up", cam.ScreenUp(), linalg.V3(0.0, 1, 0)},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if c.got.Vec().Sub(c.want).Length() > 1e-9 {
				t.Errorf("got %v, want %v", c.got, c.want)
			}
		})
	}
}

func TestCameraCenterRay(t *testing.T) {
	cam := testCamera(40, 20)
	r := cam.Ray(20, 10, 40, 20)
	if r.Origin != cam.Position {
		t.Errorf("origin = %v, want %v", r.Origin, cam.Position)
	}
	if r.Dir.Vec().Sub(linalg.V3(0.0, 0, -1)).Length() > 1e-9 {
		t.Errorf("dir = %v, want straight ahead", r.Dir)
	}
}

func TestCameraRayRoundTrip(t *testing.T) {
	const w, h = 64, 48
	cam := testCamera(w, h)
	pixels := [][2]float64{{0.5, 0.5}, {10.5, 40.5}, {32, 24}, {63.5, 2.5}}
	for _, px := range pixels {
		r := cam.Ray(px[0], px[1], w, h)
		x, y, depth, ok := cam.WorldToScreen(r.At(3), w, h)
		if !ok {
			t.Errorf("point on ray through %v not visible", px)
			continue
		}
		if math.Abs(x-px[0]) > 1e-6 || math.Abs(y-px[1]) > 1e-6 {
			t.Errorf("WorldToScreen = (%v, %v), want %v", x, y, px)
		}
		if depth < -1 || depth > 1 {
			t.Errorf("depth %v outside NDC", depth)
		}
	}
}

func TestWorldToScreen(t *testing.T) {
	cam := testCamera(40, 20)
	tests := []struct {
		name    string
		p       pos3
		visible bool
	}{
		{"origin", linalg.P3(0.0, 0, 0), true},
		{"behind camera", linalg.P3(0.0, 0, 10), false},
		{"beyond far plane", linalg.P3(0.0, 0, -200), false},
		{"off to the side", linalg.P3(50.0, 0, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, _, ok := cam.WorldToScreen(tc.p, 40, 20)
			if ok != tc.visible {
				t.Fatalf("visible = %v, want %v", ok, tc.visible)
			}
			if ok && tc.name == "origin" && (math.Abs(x-20) > 1e-9 || math.Abs(y-10) > 1e-9) {
				t.Errorf("origin at (%v, %v), want screen center", x, y)
			}
		})
	}
}

func TestCameraFrustum(t *testing.T) {
	cam := testCamera(40, 40)
	f := cam.Frustum()
	if !f.Contains(linalg.P3(0.0, 0, 0), 0) {
		t.Error("frustum should contain the target")
	}
	if f.Contains(linalg.P3(0.0, 0, 6), 0) {
		t.Error("frustum should not contain points behind the camera")
	}
}

func TestCameraDolly(t *testing.T) {
	cam := testCamera(40, 40)
	cam.Dolly(2, 1)
	if math.Abs(cam.Position.Z-3) > 1e-9 {
		t.Errorf("after dolly z = %v, want 3", cam.Position.Z)
	}
	cam.Dolly(10, 1)
	if math.Abs(cam.Position.Z-1) > 1e-9 {
		t.Errorf("dolly should stop at min distance, z = %v", cam.Position.Z)
	}
	cam.Dolly(-4, 1)
	if math.Abs(cam.Position.Z-5) > 1e-9 {
		t.Errorf("dolly out z = %v, want 5", cam.Position.Z)
	}
}

func TestCameraCachesMatrices(t *testing.T) {
	cam := testCamera(40, 40)
	vp := cam.ViewProjectionMatrix()
	if vp != cam.ProjectionMatrix().Mul(cam.ViewMatrix()) {
		t.Error("view-projection should be projection * view")
	}
	cam.SetFOV(cam.FOV.Scale(0.5))
	if cam.ViewProjectionMatrix() == vp {
		t.Error("changing the FOV should rebuild the projection")
	}
}
