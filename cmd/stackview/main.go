// stackview - terminal viewer for a push/pop transform stack.
// Draws a grid of wireframe objects, each placed with a push/translate/
// rotate/scale/pop sequence on top of a perspective and lookAt camera.
//
// Controls:
//
//	Mouse drag  - Spin the objects (yaw/pitch)
//	W/S/A/D     - Pitch and yaw
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	+/-         - Move the camera in/out
//	R           - Reset rotation and camera
//	P           - Save a snapshot (stackview.webp)
//	Esc         - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/libmatrix/internal/config"
	"github.com/taigrr/libmatrix/pkg/math3d"
	"github.com/taigrr/libmatrix/pkg/models"
	"github.com/taigrr/libmatrix/pkg/motion"
	"github.com/taigrr/libmatrix/pkg/render"
	"github.com/taigrr/libmatrix/pkg/stack"
)

var (
	configPath = flag.String("config", "", "Path to JSON scene config")
	targetFPS  = flag.Int("fps", 0, "Target FPS (default 60)")
	fov        = flag.Float64("fov", 0, "Vertical field of view in degrees (default 60)")
	bgColor    = flag.String("bg", "", "Background color (R,G,B)")
	snapshot   = flag.String("snapshot", "", "Render one frame to a .png or .webp file and exit")
	scale      = flag.Int("scale", 0, "Snapshot upscaling factor (default 4)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stackview - transform stack viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: stackview [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Spin objects\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Camera in/out\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  P           - Save snapshot\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	cfg.Resolve(config.Flags{
		Model:    flag.Arg(0),
		FPS:      *targetFPS,
		FOV:      float32(*fov),
		Bg:       *bgColor,
		Snapshot: *snapshot,
		Scale:    *scale,
	})
	return cfg, nil
}

// scene is everything a frame needs.
type scene struct {
	cfg      config.Config
	mesh     *models.Mesh
	rotation *motion.State
	distance float32 // camera distance multiplier
	bg       render.Color
	wire     render.Color
}

func newScene(cfg config.Config) (*scene, error) {
	s := &scene{
		cfg:      cfg,
		rotation: motion.NewState(cfg.FPS),
		distance: 1,
	}

	r, g, b, err := config.ParseRGB(cfg.Background)
	if err != nil {
		return nil, err
	}
	s.bg = render.RGB(r, g, b)
	if r, g, b, err = config.ParseRGB(cfg.Wire); err != nil {
		return nil, err
	}
	s.wire = render.RGB(r, g, b)

	switch ext := strings.ToLower(filepath.Ext(cfg.Model)); ext {
	case "":
		s.mesh = models.NewCube(1)
	case ".glb", ".gltf":
		if s.mesh, err = models.LoadGLB(cfg.Model); err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		s.mesh.Transform(s.mesh.Fit(1.2))
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb)", ext)
	}
	return s, nil
}

// draw renders one frame. The projection and camera sit at the bottom of
// the stack; each object pushes its own placement and pops it afterwards.
func (s *scene) draw(fb *render.Framebuffer, elapsed float64) {
	fb.Clear(s.bg)
	w := render.NewWireframe(fb)

	eye := math3d.V3(s.cfg.Eye[0], s.cfg.Eye[1], s.cfg.Eye[2]).Scale(s.distance)
	st := stack.New4()
	st.Perspective(s.cfg.FOV, float32(fb.Width)/float32(fb.Height), s.cfg.Near, s.cfg.Far)
	st.LookAt(eye.X, eye.Y, eye.Z, s.cfg.Center[0], s.cfg.Center[1], s.cfg.Center[2], 0, 1, 0)

	w.SetTransform(st.Current())
	w.DrawGrid(float32(s.cfg.Objects)*2, 0.5, render.ColorGray)

	n := s.cfg.Objects
	spacing := float32(2)
	offset := spacing * float32(n-1) / 2
	for i := range n {
		for j := range n {
			st.Push()
			st.Translate(float32(i)*spacing-offset, 0.6, float32(j)*spacing-offset)
			s.rotation.Apply(st)
			st.Rotate(float32(elapsed*20)*float32(i*n+j+1), 0, 1, 0)
			st.Scale(0.8, 0.8, 0.8)
			w.SetTransform(st.Current())
			w.DrawMesh(s.mesh, s.wire)
			st.Pop()
		}
	}

	w.SetTransform(st.Current())
	w.DrawAxes(1)
}

// saveFrame renders one frame at the configured snapshot size and writes it
// to path.
func (s *scene) saveFrame(path string, elapsed float64) error {
	fb := render.NewFramebuffer(s.cfg.Width, s.cfg.Height)
	s.draw(fb, elapsed)
	if err := fb.Save(path, s.cfg.SnapshotScale); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func run(cfg config.Config) error {
	sc, err := newScene(cfg)
	if err != nil {
		return err
	}

	if cfg.Snapshot != "" {
		sc.rotation.ApplyImpulse(1.5, 2.5, 0)
		for range cfg.FPS {
			sc.rotation.Update()
		}
		if err := sc.saveFrame(cfg.Snapshot, 1); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%dx%d)\n", cfg.Snapshot, cfg.Width*cfg.SnapshotScale, cfg.Height*cfg.SnapshotScale)
		return nil
	}

	return runTerminal(sc)
}

// action is a state change requested by the event goroutine and applied by
// the frame loop.
type action func(sc *scene, torque *[3]float64)

func runTerminal(sc *scene) error {
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

	// Any-event mouse tracking in SGR mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Only the frame loop runs actions, so saveErrs needs no lock
	var saveErrs []error
	const torqueStrength = 3.0
	actions := make(chan action, 64)
	resized := make(chan [2]int, 1)
	send := func(a action) {
		select {
		case actions <- a:
		default:
		}
	}

	go func() {
		var mouseDown bool
		var lastX, lastY int
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-resized:
				default:
				}
				resized <- [2]int{ev.Width, ev.Height}

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					send(func(_ *scene, t *[3]float64) { t[0] = -torqueStrength })
				case ev.MatchString("s", "down"):
					send(func(_ *scene, t *[3]float64) { t[0] = torqueStrength })
				case ev.MatchString("a", "left"):
					send(func(_ *scene, t *[3]float64) { t[1] = -torqueStrength })
				case ev.MatchString("d", "right"):
					send(func(_ *scene, t *[3]float64) { t[1] = torqueStrength })
				case ev.MatchString("q"):
					send(func(_ *scene, t *[3]float64) { t[2] = -torqueStrength })
				case ev.MatchString("e"):
					send(func(_ *scene, t *[3]float64) { t[2] = torqueStrength })
				case ev.MatchString("space"):
					p, y, r := (rand.Float64()-0.5)*15, (rand.Float64()-0.5)*15, (rand.Float64()-0.5)*15
					send(func(sc *scene, _ *[3]float64) { sc.rotation.ApplyImpulse(p, y, r) })
				case ev.MatchString("+", "="):
					send(func(sc *scene, _ *[3]float64) { sc.distance = max(0.3, sc.distance-0.1) })
				case ev.MatchString("-", "_"):
					send(func(sc *scene, _ *[3]float64) { sc.distance = min(4, sc.distance+0.1) })
				case ev.MatchString("r"):
					send(func(sc *scene, _ *[3]float64) {
						sc.rotation.Reset()
						sc.distance = 1
					})
				case ev.MatchString("p"):
					send(func(sc *scene, _ *[3]float64) {
						if err := sc.saveFrame("stackview.webp", 0); err != nil {
							saveErrs = append(saveErrs, err)
						}
					})
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastX, lastY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx, dy := float64(ev.X-lastX), float64(ev.Y-lastY)
					send(func(sc *scene, _ *[3]float64) { sc.rotation.ApplyImpulse(dy*0.5, dx*0.5, 0) })
					lastX, lastY = ev.X, ev.Y
				}
			}
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	fb := render.NewFramebuffer(width, height*2)
	var torque [3]float64
	targetDuration := time.Second / time.Duration(sc.cfg.FPS)
	start := time.Now()
	lastFrame := start

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return errors.Join(saveErrs...)
		case size := <-resized:
			width, height = size[0], size[1]
			term.Erase()
			term.Resize(width, height)
			fb = render.NewFramebuffer(width, height*2)
		default:
		}

	drain:
		for {
			select {
			case a := <-actions:
				a(sc, &torque)
			default:
				break drain
			}
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		// Key release events are unreliable, so torque decays on its own
		sc.rotation.ApplyImpulse(torque[0]*dt*10, torque[1]*dt*10, torque[2]*dt*10)
		for i := range torque {
			torque[i] *= 0.9
		}
		sc.rotation.Update()

		sc.draw(fb, now.Sub(start).Seconds())
		fb.Draw(term, uv.Rectangle{Min: image.Pt(0, 0), Max: image.Pt(width, height)})
		if err := term.Display(); err != nil {
			cleanup()
			return errors.Join(append(saveErrs, fmt.Errorf("display: %w", err))...)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
