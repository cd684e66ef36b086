// tgview - terminal viewer for typedgeo meshes.
// Shows a glTF model, or a primitive tessellated from its signed distance
// function, ray cast into the terminal.
//
// Controls:
//
//	W/S, A/D    - Pitch and yaw
//	Q/E         - Roll
//	Space       - Random spin
//	Click       - Highlight the face under the cursor
//	N           - Toggle normal coloring
//	B           - Toggle backface culling
//	R           - Reset view
//	+/-         - Zoom
//	?           - Toggle HUD
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/typedgeo/pkg/linalg"
	"github.com/taigrr/typedgeo/pkg/models"
	"github.com/taigrr/typedgeo/pkg/render"
	"github.com/taigrr/typedgeo/pkg/sample"
)

var (
	targetFPS = flag.Int("fps", 30, "Target FPS")
	bgColor   = flag.String("bg", "30,30,40", "Background color (R,G,B or #hex)")
	shapeName = flag.String("shape", "sphere", "Primitive to show when no model is given")
	cells     = flag.Int("cells", 32, "Tessellation grid steps along the longest side")
	seed      = flag.Uint64("seed", 1, "Seed for random shapes and spins")
)

const (
	cameraDist = 4.0
	minDist    = 1.5
	torque     = 0.02
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tgview - terminal viewer for typedgeo meshes\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tgview [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nShapes: %v\n", shapeNames)
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  Click       - Highlight face\n")
		fmt.Fprintf(os.Stderr, "  N           - Toggle normal coloring\n")
		fmt.Fprintf(os.Stderr, "  B           - Toggle backface culling\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if *targetFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -fps must be positive\n")
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadMesh(path string, rng *sample.Rand) (*models.Mesh, error) {
	if path == "" {
		return buildMesh(*shapeName, *cells, rng)
	}
	mesh, err := models.LoadGLB(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return mesh, nil
}

// HUD shows frame rate and mesh info on the top and bottom rows.
type HUD struct {
	name      string
	triangles int
	fps       float64
	frames    int
	since     time.Time
	Visible   bool
}

// NewHUD creates a visible HUD.
func NewHUD(name string, triangles int) *HUD {
	return &HUD{name: name, triangles: triangles, since: time.Now(), Visible: true}
}

// Tick counts a frame.
func (h *HUD) Tick() {
	h.frames++
	if elapsed := time.Since(h.since); elapsed >= time.Second {
		h.fps = float64(h.frames) / elapsed.Seconds()
		h.frames = 0
		h.since = time.Now()
	}
}

// Draw writes the HUD over the frame.
func (h *HUD) Draw(scr uv.Screen, width, height int, c *render.Caster) {
	if !h.Visible {
		return
	}
	fg := color.RGBA{230, 230, 230, 255}
	bg := color.RGBA{0, 0, 0, 255}

	render.DrawText(scr, 0, 0, fmt.Sprintf(" %.0f FPS ", h.fps), color.RGBA{120, 230, 120, 255}, bg)
	title := fmt.Sprintf(" %s ", h.name)
	render.DrawText(scr, max((width-len(title))/2, 0), 0, title, fg, bg)
	tris := fmt.Sprintf(" %d tris ", h.triangles)
	render.DrawText(scr, max(width-len(tris), 0), 0, tris, color.RGBA{120, 220, 230, 255}, bg)

	mode := "lambert"
	if c.Mode == render.ShadeNormals {
		mode = "normals"
	}
	status := fmt.Sprintf(" shade: %s  cull: %v  rays: %d  culled: %d ", mode, c.CullBackfaces, c.Stats.Rays, c.Stats.Culled)
	if c.Highlight >= 0 {
		status += fmt.Sprintf(" face: %d ", c.Highlight)
	}
	render.DrawText(scr, 0, height-1, status, fg, bg)
}

func run(modelPath string) error {
	bg, err := render.ParseColor(*bgColor)
	if err != nil {
		return err
	}

	rng := sample.New(*seed)
	mesh, err := loadMesh(modelPath, rng)
	if err != nil {
		return err
	}
	mesh.Normalize(2)

	name := mesh.Name
	if modelPath != "" {
		name = filepath.Base(modelPath)
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", name, mesh.VertexCount(), mesh.TriangleCount())

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Mouse clicks with SGR coordinates
	fmt.Fprint(os.Stdout, "\x1b[?1000h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1000l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	fb := render.NewFramebuffer(render.FramebufferSize(width, height))

	camera := render.NewCamera()
	camera.SetPosition(linalg.P3(0.0, 0, cameraDist))
	camera.LookAt(linalg.P3(0.0, 0, 0))
	camera.SetClipPlanes(0.1, 100)

	caster := render.NewCaster(camera)
	spin := NewSpin(*targetFPS)
	hud := NewHUD(name, mesh.TriangleCount())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	randomImpulse := func() float64 { return (rng.Float64() - 0.5) * 0.3 }

	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			fb = render.NewFramebuffer(render.FramebufferSize(width, height))

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape", "ctrl+c"):
				cancel()
			case ev.MatchString("w", "up"):
				spin.Impulse(-torque, 0, 0)
			case ev.MatchString("s", "down"):
				spin.Impulse(torque, 0, 0)
			case ev.MatchString("a", "left"):
				spin.Impulse(0, -torque, 0)
			case ev.MatchString("d", "right"):
				spin.Impulse(0, torque, 0)
			case ev.MatchString("q"):
				spin.Impulse(0, 0, -torque)
			case ev.MatchString("e"):
				spin.Impulse(0, 0, torque)
			case ev.MatchString("space"):
				spin.Impulse(randomImpulse(), randomImpulse(), randomImpulse())
			case ev.MatchString("r"):
				spin.Reset()
				caster.Highlight = -1
				camera.SetPosition(linalg.P3(0.0, 0, cameraDist))
			case ev.MatchString("+", "="):
				camera.Dolly(0.5, minDist)
			case ev.MatchString("-", "_"):
				camera.Dolly(-0.5, minDist)
			case ev.MatchString("n"):
				if caster.Mode == render.ShadeNormals {
					caster.Mode = render.ShadeLambert
				} else {
					caster.Mode = render.ShadeNormals
				}
			case ev.MatchString("b"):
				caster.CullBackfaces = !caster.CullBackfaces
			case ev.MatchString("?", "shift+/"):
				hud.Visible = !hud.Visible
			}

		case uv.MouseClickEvent:
			// A cell covers two framebuffer rows; aim at the lower one.
			x, y := float64(ev.X)+0.5, float64(ev.Y*2+1)+0.5
			face, _ := caster.Pick(mesh, spin.Matrix(), x, y, fb.Width, fb.Height)
			caster.Highlight = face
		}
	}

	events := term.Events()
	frame := time.Second / time.Duration(*targetFPS)

	for {
		start := time.Now()

	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				handle(ev)
			default:
				break drain
			}
		}

		spin.Update()

		fb.Clear(bg)
		fb.ClearDepth()
		caster.Render(fb, mesh, spin.Matrix())

		fb.Draw(term, uv.Rect(0, 0, width, height))
		hud.Tick()
		hud.Draw(term, width, height, caster)
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(start); elapsed < frame {
			time.Sleep(frame - elapsed)
		}
	}
}
