package harness

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/taigrr/libmatrix/pkg/math3d"
	"github.com/taigrr/libmatrix/pkg/stack"
)

// Default returns the standard functional test set in run order.
func Default() []Test {
	return []Test{
		{Name: "mat2 operations", Run: testMat2},
		{Name: "mat3 operations", Run: testMat3},
		{Name: "mat4 operations", Run: testMat4},
		{Name: "row access", Run: testRowAccess},
		{Name: "raw buffer layout", Run: testBuffer},
		{Name: "outer product", Run: testOuter},
		{Name: "stack push/pop", Run: testStackPushPop},
		{Name: "stack depth", Run: testStackDepth},
		{Name: "translate", Run: testTranslate},
		{Name: "scale", Run: testScale},
		{Name: "rotate", Run: testRotate},
		{Name: "frustum", Run: testFrustum},
		{Name: "ortho", Run: testOrtho},
		{Name: "perspective", Run: testPerspective},
		{Name: "lookAt", Run: testLookAt},
	}
}

// Select returns the tests whose names appear in names, in names order.
func Select(tests []Test, names []string) ([]Test, error) {
	byName := make(map[string]Test, len(tests))
	for _, t := range tests {
		byName[t.Name] = t
	}
	out := make([]Test, 0, len(names))
	var errs []error
	for _, n := range names {
		t, ok := byName[n]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown test %q", n))
			continue
		}
		out = append(out, t)
	}
	return out, errors.Join(errs...)
}

const tolerance = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance*math.Max(1, math.Abs(float64(b)))
}

func nearVec4(a, b math3d.Vec4) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) && near(a.W, b.W)
}

// matchesGL compares m with a column-major mathgl matrix by logical position.
func matchesGL(m math3d.Mat4, gl mgl32.Mat4) error {
	for r := range 4 {
		for c := range 4 {
			if !near(m.At(r, c), gl.At(r, c)) {
				return fmt.Errorf("element [%d][%d] = %v, reference %v", r, c, m.At(r, c), gl.At(r, c))
			}
		}
	}
	return nil
}

func testMat2(_ Options, log io.Writer) error {
	a := math3d.Mat2{1, 2, 3, 4}
	b := math3d.Mat2{5, 6, 7, 8}
	fmt.Fprintf(log, "a =\n%vb =\n%v", a, b)

	if got, want := a.Mul(b), (math3d.Mat2{19, 22, 43, 50}); got != want {
		return fmt.Errorf("a*b =\n%vwant\n%v", got, want)
	}
	if got, want := b.Sub(a), (math3d.Mat2{4, 4, 4, 4}); got != want {
		return fmt.Errorf("b-a =\n%vwant\n%v", got, want)
	}
	if got := a.Add(b).Sub(b); got != a {
		return fmt.Errorf("(a+b)-b =\n%vwant a", got)
	}
	if got := a.Mul(math3d.Identity2[float32]()); got != a {
		return errors.New("a*I != a")
	}
	return nil
}

func testMat3(_ Options, log io.Writer) error {
	a := math3d.IMat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := math3d.IMat3{9, 8, 7, 6, 5, 4, 3, 2, 1}
	got := a.Mul(b)
	fmt.Fprintf(log, "a*b =\n%v", got)

	if want := (math3d.IMat3{30, 24, 18, 84, 69, 54, 138, 114, 90}); got != want {
		return fmt.Errorf("a*b =\n%vwant\n%v", got, want)
	}
	if got := a.Transpose().Transpose(); got != a {
		return errors.New("double transpose changed the matrix")
	}
	if got := math3d.ScalarMul3(2, a); got != a.MulScalar(2) {
		return errors.New("scalar multiplication is not commutative")
	}
	v := math3d.IVec3{X: 1, Y: 0, Z: -1}
	if got, want := a.MulVec(v), (math3d.IVec3{X: -2, Y: -2, Z: -2}); got != want {
		return fmt.Errorf("a*v = %v, want %v", got, want)
	}
	if got, want := math3d.RowMul3(v, a), (math3d.IVec3{X: -6, Y: -6, Z: -6}); got != want {
		return fmt.Errorf("v*a = %v, want %v", got, want)
	}
	return nil
}

func testMat4(_ Options, log io.Writer) error {
	a := math3d.Translate(1, 2, 3).Mul(math3d.Rotate(30, 0, 1, 0))
	b := math3d.Scale(2, 3, 4).Mul(math3d.Rotate(-45, 1, 0, 0))
	c := math3d.Perspective(60, 1.5, 0.1, 100)
	fmt.Fprintf(log, "a =\n%v", a)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	for i := range left {
		if !near(left[i], right[i]) {
			return fmt.Errorf("(a*b)*c differs from a*(b*c) at %d: %v vs %v", i, left[i], right[i])
		}
	}
	if got := math3d.Identity4[float32]().Mul(a); got != a {
		return errors.New("I*a != a")
	}
	if got := a.DivScalar(2).MulScalar(2); got != a {
		return errors.New("(a/2)*2 != a")
	}
	return nil
}

func testRowAccess(_ Options, log io.Writer) error {
	m := math3d.Identity4[float32]()
	row := m.Row(2)
	row[3] = 7
	fmt.Fprintf(log, "after row write =\n%v", m)

	if m.At(2, 3) != 7 {
		return fmt.Errorf("row write did not reach the matrix: [2][3] = %v", m.At(2, 3))
	}
	if len(row) != 4 || cap(row) != 4 {
		return fmt.Errorf("row has len %d cap %d, want 4 4", len(row), cap(row))
	}
	return nil
}

func testBuffer(_ Options, _ io.Writer) error {
	m := math3d.Translate(4, 5, 6)
	gl := mgl32.Mat4(m.Buffer())
	if gl.Transpose() != mgl32.Mat4(m.ColumnMajor()) {
		return errors.New("raw buffer is not the transpose seen by a column-major consumer")
	}
	if math3d.FromColumnMajor4(m.ColumnMajor()) != m {
		return errors.New("column-major round trip changed the matrix")
	}
	return nil
}

func testOuter(_ Options, _ io.Writer) error {
	a := math3d.V4(1, 2, 3, 4)
	b := math3d.V4(-1, 0.5, 2, 0)
	m := math3d.Outer4(a, b)
	av, bv := a.Array(), b.Array()
	for i := range 4 {
		for j := range 4 {
			if m.At(i, j) != av[i]*bv[j] {
				return fmt.Errorf("outer[%d][%d] = %v, want %v", i, j, m.At(i, j), av[i]*bv[j])
			}
		}
	}
	return nil
}

func testStackPushPop(_ Options, log io.Writer) error {
	s := stack.New4()
	s.Translate(1, 2, 3)
	before := s.Current()

	s.Push()
	s.Rotate(90, 0, 0, 1)
	s.Scale(2, 2, 2)
	fmt.Fprintln(log, "pushed top:")
	_ = s.Fprint(log)
	s.Pop()

	if s.Current() != before {
		return fmt.Errorf("pop did not restore the prior top:\n%v", s.Current())
	}

	s.Push()
	s.LoadIdentity()
	s.Pop()
	if s.Current() != before {
		return errors.New("LoadIdentity reached below the top")
	}
	return nil
}

func testStackDepth(_ Options, _ io.Writer) error {
	s := stack.New4()
	for range 3 {
		s.Push()
	}
	s.Pop()
	s.Pop()
	if s.Depth() != 2 {
		return fmt.Errorf("depth = %d, want 2", s.Depth())
	}
	return nil
}

func testTranslate(_ Options, _ io.Writer) error {
	got := math3d.Translate(1, 2, 3).MulVec(math3d.V4(0, 0, 0, 1))
	if got != math3d.V4(1, 2, 3, 1) {
		return fmt.Errorf("translate(1,2,3)*(0,0,0,1) = %v", got)
	}
	return matchesGL(math3d.Translate(1, 2, 3), mgl32.Translate3D(1, 2, 3))
}

func testScale(_ Options, _ io.Writer) error {
	got := math3d.Scale(2, 2, 2).MulVec(math3d.V4(1, 1, 1, 1))
	if got != math3d.V4(2, 2, 2, 1) {
		return fmt.Errorf("scale(2,2,2)*(1,1,1,1) = %v", got)
	}
	return matchesGL(math3d.Scale(2, 3, 4), mgl32.Scale3D(2, 3, 4))
}

func testRotate(_ Options, log io.Writer) error {
	m := math3d.Rotate(180, 0, 0, 1)
	got := m.MulVec(math3d.V4(1, 0, 0, 1))
	fmt.Fprintf(log, "rotate(180, z) =\n%v", m)
	if !nearVec4(got, math3d.V4(-1, 0, 0, 1)) {
		return fmt.Errorf("rotate(180,0,0,1)*(1,0,0,1) = %v", got)
	}
	axis := mgl32.Vec3{1, 1, 1}.Normalize()
	return matchesGL(math3d.Rotate(40, 1, 1, 1), mgl32.HomogRotate3D(mgl32.DegToRad(40), axis))
}

func testFrustum(_ Options, _ io.Writer) error {
	return matchesGL(math3d.Frustum(-1, 1, -0.75, 0.75, 1, 20), mgl32.Frustum(-1, 1, -0.75, 0.75, 1, 20))
}

func testOrtho(_ Options, _ io.Writer) error {
	return matchesGL(math3d.Ortho(-4, 4, -3, 3, -1, 10), mgl32.Ortho(-4, 4, -3, 3, -1, 10))
}

func testPerspective(_ Options, _ io.Writer) error {
	return matchesGL(math3d.Perspective(45, 4.0/3.0, 0.5, 50), mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.5, 50))
}

func testLookAt(_ Options, log io.Writer) error {
	m := math3d.LookAt(0, 0, 5, 0, 0, 0, 0, 1, 0)
	fmt.Fprintf(log, "lookAt =\n%v", m)
	if got := m.MulVec(math3d.V4(0, 0, 0, 1)); !nearVec4(got, math3d.V4(0, 0, -5, 1)) {
		return fmt.Errorf("origin in view space = %v, want (0, 0, -5, 1)", got)
	}
	return matchesGL(math3d.LookAt(2, 3, 4, 0, 1, 0, 0, 1, 0), mgl32.LookAt(2, 3, 4, 0, 1, 0, 0, 1, 0))
}
