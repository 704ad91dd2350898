package math3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

func TestF32RoundTrip(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateZ(30))
	fm := m.ToF32()
	// f32.Mat4 is row-major: the translation is in elements 3, 7 and 11
	if fm[3] != 1 || fm[7] != 2 || fm[11] != 3 {
		t.Errorf("ToF32 translation = (%v, %v, %v), want (1, 2, 3)", fm[3], fm[7], fm[11])
	}
	if back := Mat4FromF32(fm); back != m {
		t.Errorf("Mat4 round trip changed the matrix:\n%v", back)
	}

	m3 := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if back := Mat3FromF32(m3.ToF32()); back != m3 {
		t.Errorf("Mat3 round trip changed the matrix:\n%v", back)
	}

	im := IMat4(seq4IntTable())
	if got := im.ToF32(); got[5] != 6 {
		t.Errorf("IMat4.ToF32()[5] = %v, want 6", got[5])
	}

	v := V3(1, -2, 3)
	if got := Vec3FromF32(v.ToF32()); got != v {
		t.Errorf("Vec3 round trip = %v", got)
	}
	if got := Vec4FromF32(f32.Vec4{1, 2, 3, 4}); got != V4(1, 2, 3, 4) {
		t.Errorf("Vec4FromF32 = %v", got)
	}
}

func TestBufferForColumnMajorConsumer(t *testing.T) {
	m := Translate(4, 5, 6)

	// A column-major consumer reading the raw buffer sees the transpose
	gl := mgl32.Mat4(m.Buffer())
	for r := range 4 {
		for c := range 4 {
			if gl.At(r, c) != m.At(c, r) {
				t.Fatalf("column-major view [%d][%d] = %v, want %v", r, c, gl.At(r, c), m.At(c, r))
			}
		}
	}

	// ColumnMajor hands over the logical matrix
	gl = mgl32.Mat4(m.ColumnMajor())
	if got := gl.Col(3); got != (mgl32.Vec4{4, 5, 6, 1}) {
		t.Errorf("translation column = %v, want [4 5 6 1]", got)
	}
	if back := FromColumnMajor4(m.ColumnMajor()); back != m {
		t.Errorf("FromColumnMajor4 round trip changed the matrix:\n%v", back)
	}
}

func seq4IntTable() [16]int32 {
	var out [16]int32
	for i := range out {
		out[i] = int32(i + 1)
	}
	return out
}
