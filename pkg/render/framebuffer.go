// Package render draws geometry into a framebuffer and shows it in a
// terminal. 2D shapes are filled through their containment tests; meshes
// are ray cast through the ray×triangle kernel.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is a 2D array of pixels with a depth buffer.
// Terminal output packs two rows per cell with half-block characters, so
// Height is usually twice the terminal height.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
	Depth  []float64    // Distance along the primary ray, +Inf when empty
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.ClearDepth()
	return fb
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// ClearDepth resets every depth sample to +Inf.
func (fb *Framebuffer) ClearDepth() {
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
}

func (fb *Framebuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0, false
	}
	return y*fb.Width + x, true
}

// SetPixel sets the pixel at (x, y). Out-of-range writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if i, ok := fb.index(x, y); ok {
		fb.Pixels[i] = c
	}
}

// GetPixel returns the color at (x, y), or transparent black when out of
// range.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if i, ok := fb.index(x, y); ok {
		return fb.Pixels[i]
	}
	return color.RGBA{}
}

// DepthAt returns the depth sample at (x, y), or +Inf when out of range.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if i, ok := fb.index(x, y); ok {
		return fb.Depth[i]
	}
	return math.Inf(1)
}

// Plot writes c at (x, y) if depth is nearer than the stored sample.
func (fb *Framebuffer) Plot(x, y int, depth float64, c color.RGBA) bool {
	i, ok := fb.index(x, y)
	if !ok || depth >= fb.Depth[i] {
		return false
	}
	fb.Depth[i] = depth
	fb.Pixels[i] = c
	return true
}

// ToImage converts the framebuffer to an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG writes the framebuffer to path as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
