package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/typedgeo/pkg/scalar"
)

// Palette maps light intensity to colors. Blends run in CIE L*a*b* so the
// ramp from Shadow to Lit stays perceptually even.
type Palette struct {
	Lit       colorful.Color
	Shadow    colorful.Color
	Highlight colorful.Color
}

// DefaultPalette is a warm gray ramp with an orange highlight.
func DefaultPalette() Palette {
	return Palette{
		Lit:       colorful.Color{R: 0.92, G: 0.90, B: 0.85},
		Shadow:    colorful.Color{R: 0.10, G: 0.10, B: 0.14},
		Highlight: colorful.Color{R: 1, G: 0.55, B: 0.1},
	}
}

// NewPalette builds a palette from hex colors such as "#e8e4d8".
func NewPalette(lit, shadow, highlight string) (Palette, error) {
	var p Palette
	var err error
	if p.Lit, err = colorful.Hex(lit); err != nil {
		return Palette{}, fmt.Errorf("lit color: %w", err)
	}
	if p.Shadow, err = colorful.Hex(shadow); err != nil {
		return Palette{}, fmt.Errorf("shadow color: %w", err)
	}
	if p.Highlight, err = colorful.Hex(highlight); err != nil {
		return Palette{}, fmt.Errorf("highlight color: %w", err)
	}
	return p, nil
}

// Shade returns the color for an intensity in [0, 1]; values outside are
// clamped.
func (p Palette) Shade(intensity float64) color.RGBA {
	return toRGBA(p.Shadow.BlendLab(p.Lit, scalar.Clamp(intensity, 0, 1)))
}

// Accent returns the highlight color dimmed by intensity.
func (p Palette) Accent(intensity float64) color.RGBA {
	return toRGBA(p.Shadow.BlendLab(p.Highlight, scalar.Clamp(intensity, 0, 1)))
}

// NormalColor maps a unit normal to a hue around the color wheel, with
// brightness following the vertical component.
func NormalColor(n vec3) color.RGBA {
	hue := math.Atan2(n.Z, n.X)*180/math.Pi + 180
	v := 0.55 + 0.4*scalar.Clamp(n.Y, -1, 1)
	return toRGBA(colorful.Hsv(hue, 0.6, v))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// ParseColor accepts "R,G,B" with 0..255 components or a hex color.
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return toRGBA(c), nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}
