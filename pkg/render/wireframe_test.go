package render

import (
	"math"
	"testing"

	"github.com/taigrr/libmatrix/pkg/math3d"
	"github.com/taigrr/libmatrix/pkg/models"
	"github.com/taigrr/libmatrix/pkg/stack"
)

// viewStack returns a stack holding a 60 degree projection and a camera at
// (0, 0, 5) looking at the origin.
func viewStack(fb *Framebuffer) *stack.Stack4 {
	s := stack.New4()
	s.Perspective(60, float32(fb.Width)/float32(fb.Height), 0.1, 100)
	s.LookAt(0, 0, 5, 0, 0, 0, 0, 1, 0)
	return s
}

func countPixels(fb *Framebuffer, c Color) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

func TestProject(t *testing.T) {
	fb := NewFramebuffer(80, 40)
	w := NewWireframe(fb)
	w.SetTransform(viewStack(fb).Current())

	x, y, ok := w.Project(math3d.Zero3())
	if !ok || math.Abs(float64(x-40)) > 1e-3 || math.Abs(float64(y-20)) > 1e-3 {
		t.Errorf("origin projects to (%v, %v, %v), want screen center", x, y, ok)
	}

	// +Y is up on screen
	_, yUp, ok := w.Project(math3d.V3(0, 1, 0))
	if !ok || yUp >= y {
		t.Errorf("point above the origin projects to row %v, want above %v", yUp, y)
	}

	if _, _, ok := w.Project(math3d.V3(0, 0, 10)); ok {
		t.Error("point behind the eye should not project")
	}
	if _, _, ok := w.Project(math3d.V3(0, 0, -500)); ok {
		t.Error("point beyond the far plane should not project")
	}
}

func TestProjectRejectsFarOffscreen(t *testing.T) {
	fb := NewFramebuffer(80, 40)
	w := NewWireframe(fb)
	w.SetTransform(viewStack(fb).Current())

	// Just past the near plane and far to the side
	grazing := math3d.V3(50, 0, 4.85)
	if _, _, ok := w.Project(grazing); ok {
		t.Error("point far outside the viewport should not project")
	}
	if _, _, ok := w.Project(math3d.V3(0, 50, 4.85)); ok {
		t.Error("point far above the viewport should not project")
	}

	// Slightly off screen still projects so edges can enter the view
	if x, _, ok := w.Project(math3d.V3(8, 0, 0)); !ok || x <= float32(fb.Width) {
		t.Errorf("near off-screen point = (%v, %v), want projected past the right edge", x, ok)
	}

	w.DrawLine3D(math3d.Zero3(), grazing, ColorRed)
	if n := countPixels(fb, ColorRed); n != 0 {
		t.Errorf("line to a far off-screen point drew %d pixels", n)
	}
}

func TestDrawMesh(t *testing.T) {
	fb := NewFramebuffer(80, 40)
	w := NewWireframe(fb)
	s := viewStack(fb)
	cube := models.NewCube(1)

	s.Push()
	s.Rotate(30, 0, 1, 0)
	w.SetTransform(s.Current())
	if !w.DrawMesh(cube, ColorGreen) {
		t.Fatal("cube in front of the camera was culled")
	}
	s.Pop()
	if countPixels(fb, ColorGreen) == 0 {
		t.Error("no wireframe pixels drawn")
	}

	// Pushed far to the side, the cube is culled and nothing is drawn
	fb.Clear(ColorGray)
	s.Push()
	s.Translate(100, 0, 0)
	w.SetTransform(s.Current())
	if w.DrawMesh(cube, ColorGreen) {
		t.Error("cube outside the view volume was drawn")
	}
	s.Pop()
	if countPixels(fb, ColorGreen) != 0 {
		t.Error("culled cube left pixels behind")
	}
}

func TestDrawAxesAndGrid(t *testing.T) {
	fb := NewFramebuffer(60, 60)
	w := NewWireframe(fb)
	s := viewStack(fb)
	s.Rotate(20, 1, 0, 0)
	w.SetTransform(s.Current())

	w.DrawGrid(2, 0.5, ColorGray)
	w.DrawAxes(1)
	for _, c := range []Color{ColorRed, ColorGreen, ColorBlue, ColorGray} {
		if countPixels(fb, c) == 0 {
			t.Errorf("no pixels drawn in %v", c)
		}
	}
}
