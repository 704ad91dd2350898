package math3d

import "github.com/chewxy/math32"

// The generators below reproduce the fixed-function OpenGL matrices
// (glTranslate, glScale, glRotate, glFrustum, glOrtho, gluPerspective,
// gluLookAt). They are laid out row-major for column vectors, so the
// translation lives in the last column and m.MulVec(p) transforms p.
//
// Degenerate inputs are the caller's problem: a zero rotation axis or
// left == right, bottom == top, near == far produce NaN or Inf entries.
// Nothing is clamped.

const deg2Rad = math32.Pi / 180

// Translate creates a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Rotate creates a rotation of angle degrees counterclockwise around the
// axis (x, y, z). The axis is normalized first and must not be zero.
func Rotate(angle, x, y, z float32) Mat4 {
	axis := Normalize3(V3(x, y, z))
	x, y, z = axis.X, axis.Y, axis.Z

	rad := angle * deg2Rad
	s, c := math32.Sin(rad), math32.Cos(rad)
	t := 1 - c

	return Mat4{
		x*x*t + c, x*y*t - z*s, x*z*t + y*s, 0,
		y*x*t + z*s, y*y*t + c, y*z*t - x*s, 0,
		x*z*t - y*s, y*z*t + x*s, z*z*t + c, 0,
		0, 0, 0, 1,
	}
}

// RotateX creates a rotation of angle degrees around the X axis.
func RotateX(angle float32) Mat4 {
	return Rotate(angle, 1, 0, 0)
}

// RotateY creates a rotation of angle degrees around the Y axis.
func RotateY(angle float32) Mat4 {
	return Rotate(angle, 0, 1, 0)
}

// RotateZ creates a rotation of angle degrees around the Z axis.
func RotateZ(angle float32) Mat4 {
	return Rotate(angle, 0, 0, 1)
}

// Frustum creates a perspective projection for the given view volume.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near

	return Mat4{
		2 * near / rl, 0, (right + left) / rl, 0,
		0, 2 * near / tb, (top + bottom) / tb, 0,
		0, 0, -(far + near) / fn, -2 * far * near / fn,
		0, 0, -1, 0,
	}
}

// Ortho creates an orthographic projection for the given view volume.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near

	return Mat4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	}
}

// Perspective creates a symmetric perspective projection.
// fovy is the vertical field of view in degrees, aspect is width/height.
func Perspective(fovy, aspect, zNear, zFar float32) Mat4 {
	top := zNear * math32.Tan(fovy*deg2Rad/2)
	right := top * aspect
	return Frustum(-right, right, -top, top, zNear, zFar)
}

// LookAt creates a right-handed view matrix looking from eye towards center.
func LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) Mat4 {
	return LookAtVec(V3(eyeX, eyeY, eyeZ), V3(centerX, centerY, centerZ), V3(upX, upY, upZ))
}

// LookAtVec is LookAt with vector arguments.
func LookAtVec(eye, center, up Vec3) Mat4 {
	f := Normalize3(center.Sub(eye)) // Forward
	s := Normalize3(f.Cross(up))     // Right
	u := s.Cross(f)                  // Up (recomputed)

	m := Mat4{
		s.X, s.Y, s.Z, 0,
		u.X, u.Y, u.Z, 0,
		-f.X, -f.Y, -f.Z, 0,
		0, 0, 0, 1,
	}
	return m.Mul(Translate(-eye.X, -eye.Y, -eye.Z))
}
