package render

import (
	"image/color"
	"math"

	"github.com/taigrr/typedgeo/pkg/geom/g2"
	"github.com/taigrr/typedgeo/pkg/linalg"
)

// Region is a 2D shape that can be filled: disks, boxes, rectangles,
// triangles and polygons all qualify.
type Region interface {
	Contains(p linalg.Pos2[float64], eps float64) bool
	Bounds() g2.Aabb[float64]
}

// Outline is a 2D shape that can be stroked along its nearest points.
type Outline interface {
	g2.Shape[float64]
	Bounds() g2.Aabb[float64]
}

// Fill paints every pixel whose center lies in r and returns the number of
// pixels written. Shapes are given in pixel coordinates with y down.
func (fb *Framebuffer) Fill(r Region, c color.RGBA) int {
	return fb.scan(r.Bounds(), 0, func(p linalg.Pos2[float64]) bool {
		return r.Contains(p, 0)
	}, c)
}

// Stroke paints every pixel whose center is within width/2 of s. A solid
// shape is covered entirely; pass its boundary to draw an outline.
func (fb *Framebuffer) Stroke(s Outline, width float64, c color.RGBA) int {
	half := width / 2
	return fb.scan(s.Bounds(), half, func(p linalg.Pos2[float64]) bool {
		return g2.Distance(s, p) <= half
	}, c)
}

func (fb *Framebuffer) scan(b g2.Aabb[float64], pad float64, inside func(linalg.Pos2[float64]) bool, c color.RGBA) int {
	x0 := max(0, int(math.Floor(b.Min.X-pad)))
	y0 := max(0, int(math.Floor(b.Min.Y-pad)))
	x1 := min(fb.Width-1, int(math.Ceil(b.Max.X+pad)))
	y1 := min(fb.Height-1, int(math.Ceil(b.Max.Y+pad)))

	n := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(linalg.P2(float64(x)+0.5, float64(y)+0.5)) {
				fb.Pixels[y*fb.Width+x] = c
				n++
			}
		}
	}
	return n
}
