package render

import (
	"github.com/taigrr/typedgeo/pkg/geom/g3"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

type (
	pos3 = linalg.Pos3[float64]
	vec3 = linalg.Vec3[float64]
	dir3 = linalg.Dir3[float64]
)

// Camera is a perspective camera looking from Position toward Target.
type Camera struct {
	Position pos3
	Target   pos3
	Up       vec3

	// Projection parameters
	FOV         scalar.Angle[float64] // Vertical field of view
	AspectRatio float64               // Width / Height
	Near        float64
	Far         float64

	// Cached matrices, rebuilt when dirty
	view     linalg.Mat4[float64]
	proj     linalg.Mat4[float64]
	viewProj linalg.Mat4[float64]
	dirty    bool
}

// NewCamera creates a camera five units up the Z axis looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		Position:    linalg.P3(0.0, 0, 5),
		Up:          linalg.V3(0.0, 1, 0),
		FOV:         scalar.Degrees(60.0),
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         100,
		dirty:       true,
	}
}

// SetPosition moves the camera without changing its target.
func (c *Camera) SetPosition(p pos3) {
	c.Position = p
	c.dirty = true
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target pos3) {
	c.Target = target
	c.dirty = true
}

// SetFOV sets the vertical field of view.
func (c *Camera) SetFOV(fov scalar.Angle[float64]) {
	c.FOV = fov
	c.dirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.dirty = true
}

// SetClipPlanes sets the near and far clipping distances.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.dirty = true
}

// Forward returns the viewing direction.
func (c *Camera) Forward() dir3 { return linalg.Normalize3(c.Target.Sub(c.Position)) }

// Right returns the screen-right direction.
func (c *Camera) Right() dir3 { return linalg.Normalize3(c.Forward().Cross(c.Up)) }

// ScreenUp returns the screen-up direction, orthogonal to Forward and Right.
func (c *Camera) ScreenUp() dir3 { return dir3(c.Right().Cross(c.Forward().Vec())) }

// Dolly moves the camera along its viewing direction, stopping at least
// minDist short of the target.
func (c *Camera) Dolly(distance, minDist float64) {
	to := c.Target.Sub(c.Position)
	d := max(linalg.Norm3(to)-distance, minDist)
	c.SetPosition(c.Target.SubVec(c.Forward().Scale(d)))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() linalg.Mat4[float64] {
	c.update()
	return c.view
}

// ProjectionMatrix returns the camera-to-clip transform.
func (c *Camera) ProjectionMatrix() linalg.Mat4[float64] {
	c.update()
	return c.proj
}

// ViewProjectionMatrix returns the combined world-to-clip transform.
func (c *Camera) ViewProjectionMatrix() linalg.Mat4[float64] {
	c.update()
	return c.viewProj
}

func (c *Camera) update() {
	if !c.dirty {
		return
	}
	c.view = linalg.LookAt(c.Position, c.Target, c.Up)
	c.proj = linalg.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
	c.viewProj = c.proj.Mul(c.view)
	c.dirty = false
}

// Frustum returns the world-space view volume.
func (c *Camera) Frustum() g3.Frustum[float64] {
	return g3.FrustumFromMatrix(c.ViewProjectionMatrix())
}

// Ray returns the primary ray through the screen point (x, y) of a
// width×height viewport. Pixel centers sit at half-integer coordinates.
func (c *Camera) Ray(x, y float64, width, height int) g3.Ray[float64] {
	ndcX := 2*x/float64(width) - 1
	ndcY := 1 - 2*y/float64(height)
	t := c.FOV.Scale(0.5).Tan()

	d := c.Forward().Vec().
		Add(c.Right().Scale(ndcX * t * c.AspectRatio)).
		Add(c.ScreenUp().Scale(ndcY * t))
	return g3.Ray[float64]{Origin: c.Position, Dir: linalg.Normalize3(d)}
}

// clip maps p to screen coordinates without rejecting points outside the
// viewport. ok is false for points behind the camera.
func (c *Camera) clip(p pos3, width, height int) (x, y, depth float64, ok bool) {
	v := c.ViewProjectionMatrix().MulVec(linalg.V4(p.X, p.Y, p.Z, 1))
	if v.W <= 0 {
		return 0, 0, 0, false
	}
	ndc := v.XYZ().Div(v.W)
	x = (ndc.X + 1) * 0.5 * float64(width)
	y = (1 - ndc.Y) * 0.5 * float64(height)
	return x, y, ndc.Z, true
}

// WorldToScreen transforms a world point to screen coordinates.
// visible is false for points outside the view volume.
func (c *Camera) WorldToScreen(p pos3, width, height int) (x, y, depth float64, visible bool) {
	x, y, depth, ok := c.clip(p, width, height)
	if !ok || depth < -1 || depth > 1 {
		return 0, 0, 0, false
	}
	if x < 0 || x > float64(width) || y < 0 || y > float64(height) {
		return 0, 0, 0, false
	}
	return x, y, depth, true
}
