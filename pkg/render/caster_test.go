package render

import (
	"math"
	"testing"

	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/models"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// quad returns two triangles spanning [-1,1]² at height z, facing +Z.
func quad(z float64) []g3.Triangle[float64] {
	a, b := linalg.P3(-1, -1, z), linalg.P3(1, -1, z)
	c, d := linalg.P3(1, 1, z), linalg.P3(-1, 1, z)
	return []g3.Triangle[float64]{g3.Tri(a, b, c), g3.Tri(a, c, d)}
}

func quadMesh(t testing.TB, zs ...float64) *models.Mesh {
	t.Helper()
	var tris []g3.Triangle[float64]
	for _, z := range zs {
		tris = append(tris, quad(z)...)
	}
	m, err := models.FromTriangles("quad", tris)
	if err != nil {
		t.Fatalf("FromTriangles: %v", err)
	}
	return m
}

func newTestCaster(w, h int) (*Caster, *Framebuffer) {
	fb := NewFramebuffer(w, h)
	fb.Clear(ColorBlack)
	return NewCaster(testCamera(w, h)), fb
}

func TestCasterRendersQuad(t *testing.T) {
	c, fb := newTestCaster(40, 40)
	m := quadMesh(t, 0)
	c.Render(fb, m, linalg.Identity4[float64]())

	if c.Stats.Faces != 2 || c.Stats.Culled != 0 {
		t.Errorf("stats = %+v, want 2 faces and none culled", c.Stats)
	}
	if c.Stats.Hits == 0 || c.Stats.Rays < c.Stats.Hits {
		t.Errorf("stats = %+v", c.Stats)
	}
	if d := fb.DepthAt(20, 20); math.Abs(d-5) > 1e-3 {
		t.Errorf("center depth = %v, want 5", d)
	}
	if fb.GetPixel(0, 0) != ColorBlack {
		t.Error("corner pixel should stay background")
	}

	// Facing the viewer with the default light.
	n := linalg.V3(0.0, 0, 1)
	want := c.Palette.Shade(c.Ambient + (1-c.Ambient)*c.Light.Dot(n))
	if got := fb.GetPixel(20, 20); got != want {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func TestCasterDepthOrder(t *testing.T) {
	for _, zs := range [][]float64{{0, 1}, {1, 0}} {
		c, fb := newTestCaster(40, 40)
		c.Render(fb, quadMesh(t, zs...), linalg.Identity4[float64]())
		if d := fb.DepthAt(20, 20); math.Abs(d-4) > 1e-3 {
			t.Errorf("order %v: center depth = %v, want the nearer quad at 4", zs, d)
		}
	}
}

func TestCasterCulling(t *testing.T) {
	m := quadMesh(t, 0)

	t.Run("outside frustum", func(t *testing.T) {
		c, fb := newTestCaster(40, 40)
		c.Render(fb, m, linalg.Translation(linalg.V3(100.0, 0, 0)))
		if c.Stats.Culled != 2 || c.Stats.Rays != 0 {
			t.Errorf("stats = %+v, want whole mesh culled", c.Stats)
		}
		if countColor(fb, ColorBlack) != 40*40 {
			t.Error("culled mesh should draw nothing")
		}
	})

	flip := linalg.RotationY(scalar.Radians(math.Pi))

	t.Run("backfaces kept", func(t *testing.T) {
		c, fb := newTestCaster(40, 40)
		c.Render(fb, m, flip)
		if c.Stats.Hits == 0 {
			t.Error("two-sided rendering should draw the flipped quad")
		}
	})

	t.Run("backfaces culled", func(t *testing.T) {
		c, fb := newTestCaster(40, 40)
		c.CullBackfaces = true
		c.Render(fb, m, flip)
		if c.Stats.Culled != 2 || c.Stats.Hits != 0 {
			t.Errorf("stats = %+v, want both faces culled", c.Stats)
		}
	})
}

func TestCasterShadeNormals(t *testing.T) {
	c, fb := newTestCaster(40, 40)
	c.Mode = ShadeNormals
	c.Render(fb, quadMesh(t, 0), linalg.Identity4[float64]())
	if got, want := fb.GetPixel(20, 20), NormalColor(linalg.V3(0.0, 0, 1)); got != want {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

func TestCasterPick(t *testing.T) {
	m := quadMesh(t, 0)
	model := linalg.Translation(linalg.V3(0.0, 0, 1))
	c, fb := newTestCaster(40, 40)

	face, res := c.Pick(m, model, 20.5, 20.5, fb.Width, fb.Height)
	if res.Empty || face < 0 {
		t.Fatal("center pick should hit the quad")
	}
	if math.Abs(res.Value.Z-1) > 1e-9 {
		t.Errorf("world hit = %v, want z = 1", res.Value)
	}

	if face, res := c.Pick(m, model, 0.5, 0.5, fb.Width, fb.Height); !res.Empty || face != -1 {
		t.Errorf("corner pick = %d, %v; want a miss", face, res)
	}

	c.Render(fb, m, model)
	plain := fb.GetPixel(20, 20)

	fb.ClearDepth()
	c.Highlight = face
	c.Render(fb, m, model)
	if fb.GetPixel(20, 20) == plain {
		t.Error("picked face should be drawn with the accent color")
	}
}

func TestCasterEmptyMesh(t *testing.T) {
	c, fb := newTestCaster(8, 8)
	c.Render(fb, models.NewMesh("empty"), linalg.Identity4[float64]())
	if c.Stats != (Stats{}) {
		t.Errorf("stats = %+v, want zero", c.Stats)
	}
}

func BenchmarkCasterQuad(b *testing.B) {
	c, fb := newTestCaster(160, 90)
	m := quadMesh(b, 0, 0.5)
	model := linalg.Identity4[float64]()
	for b.Loop() {
		fb.ClearDepth()
		c.Render(fb, m, model)
	}
}
