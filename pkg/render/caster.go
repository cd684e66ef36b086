package render

import (
	"image/color"
	"math"

	"github.com/taigrr/typedgeo/pkg/geom"
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/models"
)

// ShadeMode selects how hit faces are colored.
type ShadeMode int

const (
	ShadeLambert ShadeMode = iota // Palette ramp by N·L
	ShadeNormals                  // Hue by face normal
)

// Stats counts the work done by the last Render call.
type Stats struct {
	Faces  int // Faces considered
	Culled int // Faces rejected by the frustum or backface test
	Rays   int // Primary rays cast
	Hits   int // Rays that hit their face and passed the depth test
}

// Caster draws meshes by casting one primary ray per covered pixel and
// intersecting it with the face that covers it.
type Caster struct {
	Camera        *Camera
	Palette       Palette
	Mode          ShadeMode
	Light         dir3 // Direction toward the light
	Ambient       float64
	CullBackfaces bool
	Highlight     int // Face drawn with the accent color, -1 for none

	Stats Stats
}

// NewCaster creates a caster with a light above and to the right of the
// viewer.
func NewCaster(cam *Camera) *Caster {
	return &Caster{
		Camera:    cam,
		Palette:   DefaultPalette(),
		Light:     linalg.Normalize3(linalg.V3(0.5, 1, 0.3)),
		Ambient:   0.15,
		Highlight: -1,
	}
}

// Render draws m, placed in the world by model, into fb. fb's depth buffer
// must be cleared by the caller between frames.
func (c *Caster) Render(fb *Framebuffer, m *models.Mesh, model linalg.Mat4[float64]) {
	c.Stats = Stats{}
	if m.TriangleCount() == 0 {
		return
	}
	c.Camera.SetAspectRatio(float64(fb.Width) / float64(fb.Height))
	frustum := c.Camera.Frustum()

	b := m.Bounds()
	world := g3.NewAabb(linalg.ConvertPos3[float64](b.Min), linalg.ConvertPos3[float64](b.Max)).Transform(model)
	if !frustum.IntersectsAabb(world) {
		c.Stats.Culled = m.TriangleCount()
		return
	}

	for i := range m.Faces {
		c.Stats.Faces++
		t := m.Triangle(i)
		t = g3.Tri(model.MulPos3(t.Pos0), model.MulPos3(t.Pos1), model.MulPos3(t.Pos2))
		if c.CullBackfaces && t.Cross().Dot(t.Pos0.Sub(c.Camera.Position)) >= 0 {
			c.Stats.Culled++
			continue
		}
		if !frustum.IntersectsAabb(t.Bounds()) {
			c.Stats.Culled++
			continue
		}
		c.castFace(fb, i, t)
	}
}

// castFace casts rays through every pixel of t's screen rectangle.
func (c *Caster) castFace(fb *Framebuffer, face int, t g3.Triangle[float64]) {
	x0, y0, x1, y1 := c.screenRect(t, fb.Width, fb.Height)
	if x0 > x1 || y0 > y1 {
		return
	}

	n := linalg.NormalizeSafe3(t.Cross(), 1e-12)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r := c.Camera.Ray(float64(x)+0.5, float64(y)+0.5, fb.Width, fb.Height)
			c.Stats.Rays++
			hit, ok := r.IntersectionTriangle(t).Get()
			if !ok {
				continue
			}
			if fb.Plot(x, y, r.Coordinates(hit), c.shade(face, n, r.Dir)) {
				c.Stats.Hits++
			}
		}
	}
}

// screenRect returns the pixel rectangle covering t, clamped to the
// viewport. A vertex behind the camera widens it to the whole viewport.
func (c *Caster) screenRect(t g3.Triangle[float64], w, h int) (x0, y0, x1, y1 int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range 3 {
		x, y, _, ok := c.Camera.clip(t.Vertex(i), w, h)
		if !ok {
			return 0, 0, w - 1, h - 1
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	x0 = max(0, int(math.Floor(minX)))
	y0 = max(0, int(math.Floor(minY)))
	x1 = min(w-1, int(math.Ceil(maxX)))
	y1 = min(h-1, int(math.Ceil(maxY)))
	return x0, y0, x1, y1
}

func (c *Caster) shade(face int, n vec3, view dir3) color.RGBA {
	// Light both sides: face the normal toward the viewer.
	if view.Dot(n) > 0 {
		n = n.Neg()
	}
	if c.Mode == ShadeNormals {
		return NormalColor(n)
	}
	i := c.Ambient + (1-c.Ambient)*max(0, c.Light.Dot(n))
	if face == c.Highlight {
		return c.Palette.Accent(i)
	}
	return c.Palette.Shade(i)
}

// Pick returns the face of m under the screen point (x, y) and the world
// hit point. The ray is taken into model space so the mesh stays
// untransformed.
func (c *Caster) Pick(m *models.Mesh, model linalg.Mat4[float64], x, y float64, width, height int) (int, geom.Result[pos3]) {
	r := c.Camera.Ray(x, y, width, height)
	inv := linalg.Inverse4(model)
	local := g3.Ray[float64]{
		Origin: inv.MulPos3(r.Origin),
		Dir:    linalg.Normalize3(inv.MulVec3(r.Dir.Vec())),
	}
	face, res := m.Pick(local)
	if res.Empty {
		return -1, res
	}
	return face, geom.Hit(model.MulPos3(res.Value))
}
