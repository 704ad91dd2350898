package stack

import "github.com/taigrr/libmatrix/pkg/math3d"

// Stack4 is a MatrixStack of float32 4x4 matrices with the transform
// generators bound to it. Each generator right-multiplies the top, so the
// last transform issued is the first applied to a vertex.
type Stack4 struct {
	*MatrixStack[math3d.Mat4]
}

// New4 returns a Stack4 of depth 1 with identity on top.
func New4() *Stack4 {
	return &Stack4{New(math3d.Identity4[float32]())}
}

// New4From returns a Stack4 of depth 1 with m on top.
func New4From(m math3d.Mat4) *Stack4 {
	return &Stack4{NewFrom(math3d.Identity4[float32](), m)}
}

// Translate composes a translation by (x, y, z).
func (s *Stack4) Translate(x, y, z float32) {
	s.Mul(math3d.Translate(x, y, z))
}

// Scale composes a scale by (x, y, z).
func (s *Stack4) Scale(x, y, z float32) {
	s.Mul(math3d.Scale(x, y, z))
}

// Rotate composes a rotation of angle degrees about (x, y, z).
func (s *Stack4) Rotate(angle, x, y, z float32) {
	s.Mul(math3d.Rotate(angle, x, y, z))
}

// Frustum composes a perspective projection from clip bounds.
func (s *Stack4) Frustum(left, right, bottom, top, near, far float32) {
	s.Mul(math3d.Frustum(left, right, bottom, top, near, far))
}

// Ortho composes an orthographic projection.
func (s *Stack4) Ortho(left, right, bottom, top, near, far float32) {
	s.Mul(math3d.Ortho(left, right, bottom, top, near, far))
}

// Perspective composes a perspective projection with fovy in degrees.
func (s *Stack4) Perspective(fovy, aspect, zNear, zFar float32) {
	s.Mul(math3d.Perspective(fovy, aspect, zNear, zFar))
}

// LookAt composes a view transform from eye toward center.
func (s *Stack4) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	s.Mul(math3d.LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ))
}
