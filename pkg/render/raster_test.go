package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/typedgeo/pkg/geom/g2"
	"github.com/taigrr/typedgeo/pkg/linalg"
)

func p2(x, y float64) linalg.Pos2[float64] { return linalg.P2(x, y) }

func countColor(fb *Framebuffer, c color.RGBA) int {
	n := 0
	for _, px := range fb.Pixels {
		if px == c {
			n++
		}
	}
	return n
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(4, 0, ColorRed)
	fb.SetPixel(0, 3, ColorRed)
	if countColor(fb, ColorRed) != 0 {
		t.Error("out-of-range writes should be dropped")
	}
	if got := fb.GetPixel(10, 10); got != (color.RGBA{}) {
		t.Errorf("out-of-range read = %v, want transparent", got)
	}
	if !math.IsInf(fb.DepthAt(-1, 0), 1) {
		t.Error("out-of-range depth should be +Inf")
	}

	fb.SetPixel(3, 2, ColorGreen)
	if got := fb.ToImage().RGBAAt(3, 2); got != ColorGreen {
		t.Errorf("ToImage pixel = %v, want green", got)
	}
}

func TestFramebufferPlot(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	if !fb.Plot(0, 0, 5, ColorRed) {
		t.Fatal("first plot should pass the depth test")
	}
	if fb.Plot(0, 0, 7, ColorBlue) {
		t.Error("farther sample should be rejected")
	}
	if !fb.Plot(0, 0, 3, ColorGreen) {
		t.Error("nearer sample should win")
	}
	if fb.GetPixel(0, 0) != ColorGreen || fb.DepthAt(0, 0) != 3 {
		t.Errorf("pixel = %v depth = %v", fb.GetPixel(0, 0), fb.DepthAt(0, 0))
	}
	if fb.Plot(5, 5, 0, ColorRed) {
		t.Error("out-of-range plot should fail")
	}

	fb.ClearDepth()
	if !math.IsInf(fb.DepthAt(0, 0), 1) {
		t.Error("ClearDepth should reset to +Inf")
	}
	fb.Clear(ColorBlack)
	if countColor(fb, ColorBlack) != 4 {
		t.Error("Clear should fill every pixel")
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		want   int
	}{
		{"disk", g2.Disk[float64]{Center: p2(10, 10), Radius: 3}, 32},
		{"rectangle", g2.NewAabb(p2(2, 2), p2(6, 5)), 12},
		{"triangle", g2.Tri(p2(0, 0), p2(8, 0), p2(0, 8)), 36},
		{"clockwise triangle", g2.Tri(p2(0, 0), p2(0, 8), p2(8, 0)), 36},
		{"polygon", g2.Poly(p2(0, 0), p2(4, 0), p2(4, 2), p2(2, 2), p2(2, 4), p2(0, 4)), 12},
		{"box", g2.Box[float64]{Center: p2(10, 10), HalfExtents: linalg.Mat2[float64]{{2, 0}, {0, 1}}}, 8},
		{"clipped", g2.Disk[float64]{Center: p2(0, 0), Radius: 3}, 8},
		{"off screen", g2.Disk[float64]{Center: p2(-50, -50), Radius: 3}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(20, 20)
			n := fb.Fill(tc.region, ColorWhite)
			if n != tc.want {
				t.Errorf("Fill wrote %d pixels, want %d", n, tc.want)
			}
			if got := countColor(fb, ColorWhite); got != n {
				t.Errorf("framebuffer holds %d pixels, Fill reported %d", got, n)
			}
		})
	}
}

func TestStroke(t *testing.T) {
	t.Run("segment", func(t *testing.T) {
		fb := NewFramebuffer(20, 20)
		n := fb.Stroke(g2.Segment[float64]{Pos0: p2(2, 2), Pos1: p2(12, 2)}, 1, ColorRed)
		if n != 20 {
			t.Errorf("Stroke wrote %d pixels, want 20", n)
		}
	})

	t.Run("circle", func(t *testing.T) {
		fb := NewFramebuffer(20, 20)
		c := g2.Circle[float64]{Center: p2(10, 10), Radius: 5}
		if fb.Stroke(c, 1, ColorRed) == 0 {
			t.Fatal("circle outline drew nothing")
		}
		for y := range fb.Height {
			for x := range fb.Width {
				if fb.GetPixel(x, y) != ColorRed {
					continue
				}
				d := p2(float64(x)+0.5, float64(y)+0.5).DistanceTo(c.Center)
				if math.Abs(d-5) > 0.5 {
					t.Errorf("pixel (%d, %d) is %v from the center", x, y, d)
				}
			}
		}
		if fb.GetPixel(10, 10) == ColorRed {
			t.Error("circle outline should leave the center empty")
		}
	})
}

func TestPaletteShade(t *testing.T) {
	p := DefaultPalette()
	near := func(a, b color.RGBA) bool {
		d := func(x, y uint8) int { return max(int(x)-int(y), int(y)-int(x)) }
		return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1 && a.A == b.A
	}
	if got := p.Shade(0); !near(got, toRGBA(p.Shadow)) {
		t.Errorf("Shade(0) = %v, want shadow", got)
	}
	if got := p.Shade(1); !near(got, toRGBA(p.Lit)) {
		t.Errorf("Shade(1) = %v, want lit", got)
	}
	if p.Shade(2) != p.Shade(1) || p.Shade(-1) != p.Shade(0) {
		t.Error("Shade should clamp its input")
	}
	lum := func(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }
	if lum(p.Shade(0.25)) >= lum(p.Shade(0.75)) {
		t.Error("Shade should brighten with intensity")
	}
	if got := p.Accent(1); !near(got, toRGBA(p.Highlight)) {
		t.Errorf("Accent(1) = %v, want highlight", got)
	}
	if lum(NormalColor(linalg.V3(0.0, 1, 0))) <= lum(NormalColor(linalg.V3(0.0, -1, 0))) {
		t.Error("upward normals should be brighter")
	}
}

func TestNewPalette(t *testing.T) {
	p, err := NewPalette("#ffffff", "#000000", "#ff8000")
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	if got := p.Shade(1); got != ColorWhite {
		t.Errorf("Shade(1) = %v, want white", got)
	}
	if _, err := NewPalette("#fff", "nope", "#000"); err == nil {
		t.Error("expected error for bad shadow color")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"30,30,40", RGB(30, 30, 40), false},
		{"#ff8000", RGB(255, 128, 0), false},
		{"1,2", color.RGBA{}, true},
		{"300,0,0", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func BenchmarkFillDisk(b *testing.B) {
	fb := NewFramebuffer(200, 100)
	d := g2.Disk[float64]{Center: p2(100, 50), Radius: 40}
	for b.Loop() {
		fb.Fill(d, ColorWhite)
	}
}
