package math3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// assertMatchesGL compares m against a column-major mathgl matrix by logical
// (row, col) position.
func assertMatchesGL(t *testing.T, name string, m Mat4, gl mgl32.Mat4) {
	t.Helper()
	for r := range 4 {
		for c := range 4 {
			if !nearlyEqual(m.At(r, c), gl.At(r, c), 1e-5) {
				t.Errorf("%s[%d][%d] = %v, mathgl has %v", name, r, c, m.At(r, c), gl.At(r, c))
			}
		}
	}
}

func assertVec4Near(t *testing.T, got, want Vec4, eps float32) {
	t.Helper()
	if !nearlyEqual(got.X, want.X, eps) || !nearlyEqual(got.Y, want.Y, eps) ||
		!nearlyEqual(got.Z, want.Z, eps) || !nearlyEqual(got.W, want.W, eps) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(1, 2, 3).MulVec(V4(0, 0, 0, 1))
	if !got.Equal(V4(1, 2, 3, 1)) {
		t.Errorf("translate(1,2,3) * origin = %v, want (1, 2, 3, 1)", got)
	}

	// Directions are unaffected
	if dir := Translate(1, 2, 3).MulVec(V4(1, 0, 0, 0)); !dir.Equal(V4(1, 0, 0, 0)) {
		t.Errorf("translate moved a direction: %v", dir)
	}

	assertMatchesGL(t, "Translate", Translate(1, -2, 3.5), mgl32.Translate3D(1, -2, 3.5))
}

func TestScale(t *testing.T) {
	got := Scale(2, 2, 2).MulVec(V4(1, 1, 1, 1))
	if !got.Equal(V4(2, 2, 2, 1)) {
		t.Errorf("scale(2,2,2) * (1,1,1,1) = %v, want (2, 2, 2, 1)", got)
	}

	assertMatchesGL(t, "Scale", Scale(2, -1, 0.5), mgl32.Scale3D(2, -1, 0.5))
}

func TestRotate(t *testing.T) {
	got := Rotate(180, 0, 0, 1).MulVec(V4(1, 0, 0, 1))
	assertVec4Near(t, got, V4(-1, 0, 0, 1), 1e-6)

	// Counterclockwise: +90 about Z takes X to Y
	got = RotateZ(90).MulVec(V4(1, 0, 0, 0))
	assertVec4Near(t, got, V4(0, 1, 0, 0), 1e-6)

	// Y to Z about X, Z to X about Y
	assertVec4Near(t, RotateX(90).MulVec(V4(0, 1, 0, 0)), V4(0, 0, 1, 0), 1e-6)
	assertVec4Near(t, RotateY(90).MulVec(V4(0, 0, 1, 0)), V4(1, 0, 0, 0), 1e-6)

	// The axis is normalized internally
	assertMatchesGL(t, "Rotate", Rotate(37, 0, 0, 10), Rotate(37, 0, 0, 1).toGL())

	axis := mgl32.Vec3{1, 2, 3}.Normalize()
	assertMatchesGL(t, "Rotate arbitrary", Rotate(42, 1, 2, 3), mgl32.HomogRotate3D(mgl32.DegToRad(42), axis))

	// Rotations preserve length
	v := Rotate(73, -1, 0.5, 2).MulDir(V3(3, 4, 12))
	if math.Abs(v.Length()-13) > 1e-4 {
		t.Errorf("rotated length = %v, want 13", v.Length())
	}
}

func TestRotateZeroAxis(t *testing.T) {
	m := Rotate(45, 0, 0, 0)
	if !math.IsNaN(float64(m.At(0, 0))) {
		t.Errorf("zero axis should yield NaN, got\n%v", m)
	}
}

func TestFrustum(t *testing.T) {
	m := Frustum(-1, 2, -0.5, 1.5, 0.5, 50)
	assertMatchesGL(t, "Frustum", m, mgl32.Frustum(-1, 2, -0.5, 1.5, 0.5, 50))

	// Near plane center maps to z = -1 in NDC
	p := m.MulVec(V4(0.5, 0.5, -0.5, 1))
	if !nearlyEqual(p.Z/p.W, -1, 1e-5) {
		t.Errorf("near plane depth = %v, want -1", p.Z/p.W)
	}
	// Far plane maps to z = +1
	p = m.MulVec(V4(0, 0, -50, 1))
	if !nearlyEqual(p.Z/p.W, 1, 1e-5) {
		t.Errorf("far plane depth = %v, want 1", p.Z/p.W)
	}
}

func TestFrustumDegenerate(t *testing.T) {
	m := Frustum(-1, 1, -1, 1, 1, 1)
	if !math.IsInf(float64(m.At(2, 2)), 0) && !math.IsNaN(float64(m.At(2, 2))) {
		t.Errorf("near == far should not be clamped, got m[2][2] = %v", m.At(2, 2))
	}

	o := Ortho(1, 1, -1, 1, -1, 1)
	if !math.IsInf(float64(o.At(0, 0)), 0) {
		t.Errorf("left == right should produce Inf, got %v", o.At(0, 0))
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 0.1, 10)
	assertMatchesGL(t, "Ortho", m, mgl32.Ortho(-2, 2, -1, 1, 0.1, 10))

	// Corners map to the canonical cube
	assertVec4Near(t, m.MulVec(V4(2, 1, -10, 1)), V4(1, 1, 1, 1), 1e-5)
	assertVec4Near(t, m.MulVec(V4(-2, -1, -0.1, 1)), V4(-1, -1, -1, 1), 1e-5)
}

func TestPerspective(t *testing.T) {
	m := Perspective(60, 4.0/3.0, 0.1, 100)
	assertMatchesGL(t, "Perspective", m, mgl32.Perspective(mgl32.DegToRad(60), 4.0/3.0, 0.1, 100))

	// Equivalent to the symmetric frustum
	top := float32(0.1 * math.Tan(math.Pi/6))
	right := top * 4 / 3
	want := Frustum(-right, right, -top, top, 0.1, 100)
	for i := range m {
		if !nearlyEqual(m[i], want[i], 1e-5) {
			t.Errorf("Perspective[%d] = %v, frustum form %v", i, m[i], want[i])
		}
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The origin sits 5 units down -Z in view space
	assertVec4Near(t, m.MulVec(V4(0, 0, 0, 1)), V4(0, 0, -5, 1), 1e-6)
	// The eye is the view-space origin
	assertVec4Near(t, m.MulVec(V4(0, 0, 5, 1)), V4(0, 0, 0, 1), 1e-6)
	// Looking toward the origin maps the viewing direction to -Z
	assertVec4Near(t, m.MulVec(V4(0, 0, -1, 0)), V4(0, 0, -1, 0), 1e-6)

	assertMatchesGL(t, "LookAt", LookAt(3, 4, 5, -1, 0.5, 2, 0, 1, 0), mgl32.LookAt(3, 4, 5, -1, 0.5, 2, 0, 1, 0))

	if LookAtVec(V3(3, 4, 5), V3(-1, 0.5, 2), Up()) != LookAt(3, 4, 5, -1, 0.5, 2, 0, 1, 0) {
		t.Error("LookAtVec and LookAt disagree")
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	if Perspective(45, 1.7, 0.3, 70) != Perspective(45, 1.7, 0.3, 70) {
		t.Error("Perspective is not deterministic")
	}
	if Rotate(12.5, 1, 1, 0) != Rotate(12.5, 1, 1, 0) {
		t.Error("Rotate is not deterministic")
	}
}

// toGL converts m to mathgl's column-major layout.
func (m Matrix4[T]) toGL() mgl32.Mat4 {
	var out mgl32.Mat4
	for r := range 4 {
		for c := range 4 {
			out[c*4+r] = float32(m.At(r, c))
		}
	}
	return out
}
