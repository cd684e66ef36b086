package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"
)

// FramebufferSize returns the framebuffer dimensions that fill a terminal
// of cols×rows cells.
func FramebufferSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Draw converts the framebuffer to terminal cells within area.
// Each cell shows two pixels: ▀ with fg=top and bg=bottom.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top, bot := row*2, row*2+1
		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(fb.GetPixel(col, top)),
					Bg: rgbaToColor(fb.GetPixel(col, bot)),
				},
			})
		}
	}
}

// DrawText writes s on one terminal row starting at column x, clipped to
// the screen width. It returns the column after the last cell written.
func DrawText(scr uv.Screen, x, y int, s string, fg, bg color.Color) int {
	w := scr.Bounds().Max.X
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		scr.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   rw,
			Style:   uv.Style{Fg: fg, Bg: bg},
		})
		x += rw
	}
	return x
}

// rgbaToColor maps transparent pixels to the terminal default color.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// Common colors.
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
