package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/libmatrix/pkg/math3d"
)

// guardBand bounds projected NDC x and y. Points beyond it do not project.
const guardBand = 4

// EdgeMesh is the geometry a Wireframe can draw. models.Mesh implements it.
type EdgeMesh interface {
	Position(i int) math3d.Vec3
	Edges() [][2]int
	Bounds() (min, max math3d.Vec3)
}

// Wireframe projects model-space lines through a model-view-projection
// matrix onto a framebuffer.
type Wireframe struct {
	fb  *Framebuffer
	mvp math3d.Mat4
}

// NewWireframe creates a wireframe renderer drawing into fb with an
// identity transform.
func NewWireframe(fb *Framebuffer) *Wireframe {
	return &Wireframe{fb: fb, mvp: math3d.Identity4[float32]()}
}

// SetTransform sets the model-view-projection matrix, typically the current
// top of a stack.
func (w *Wireframe) SetTransform(mvp math3d.Mat4) {
	w.mvp = mvp
}

// Project maps a model-space point to framebuffer coordinates. ok is false
// when the point is behind the eye, outside the depth range, or far outside
// the viewport.
func (w *Wireframe) Project(p math3d.Vec3) (x, y float32, ok bool) {
	clip := w.mvp.MulVec(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	if ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, false
	}
	if !(math32.Abs(ndc.X) <= guardBand && math32.Abs(ndc.Y) <= guardBand) {
		return 0, 0, false
	}
	// NDC y points up, framebuffer rows go down
	x = (ndc.X + 1) * 0.5 * float32(w.fb.Width)
	y = (1 - ndc.Y) * 0.5 * float32(w.fb.Height)
	return x, y, true
}

// DrawLine3D draws a model-space line. Lines with an endpoint that fails to
// project are skipped.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, c Color) {
	x1, y1, ok1 := w.Project(p1)
	x2, y2, ok2 := w.Project(p2)
	if !ok1 || !ok2 {
		return
	}
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), c)
}

// DrawMesh draws every edge of m. Meshes whose bounds fall outside the view
// volume are culled first. It reports whether anything was drawn.
func (w *Wireframe) DrawMesh(m EdgeMesh, c Color) bool {
	if !NewFrustumFromMatrix(w.mvp).IntersectAABB(NewAABB(m.Bounds())) {
		return false
	}
	for _, e := range m.Edges() {
		w.DrawLine3D(m.Position(e[0]), m.Position(e[1]), c)
	}
	return true
}

// DrawAxes draws the model-space coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float32) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}

// DrawGrid draws a grid on the model-space XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float32, c Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), c)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), c)
	}
}
