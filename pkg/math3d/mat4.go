package math3d

import (
	"io"
	"os"
)

// Matrix4 is a 4x4 matrix stored in row-major order.
// Element (row, col) lives at index row*4 + col.
//
// The zero value is the zero matrix; use Identity4 for the identity.
type Matrix4[T Number] [16]T

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Number]() Matrix4[T] {
	var m Matrix4[T]
	setIdentity(m[:], 4)
	return m
}

// SetIdentity resets m to the identity in place.
func (m *Matrix4[T]) SetIdentity() {
	setIdentity(m[:], 4)
}

// At returns the element at (row, col).
func (m Matrix4[T]) At(row, col int) T {
	return m[row*4+col]
}

// Set sets the element at (row, col).
func (m *Matrix4[T]) Set(row, col int, v T) {
	m[row*4+col] = v
}

// Row returns row as a slice backed by m. Writes through the slice modify m.
// The slice must not outlive m.
func (m *Matrix4[T]) Row(row int) []T {
	return m[row*4 : row*4+4 : row*4+4]
}

// Add returns the element-wise sum m + rhs.
func (m Matrix4[T]) Add(rhs Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	addInto(out[:], m[:], rhs[:])
	return out
}

// Sub returns the element-wise difference m - rhs.
func (m Matrix4[T]) Sub(rhs Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	subInto(out[:], m[:], rhs[:])
	return out
}

// Mul returns the matrix product m * rhs.
func (m Matrix4[T]) Mul(rhs Matrix4[T]) Matrix4[T] {
	var out Matrix4[T]
	mulInto(out[:], m[:], rhs[:], 4)
	return out
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix4[T]) MulScalar(s T) Matrix4[T] {
	var out Matrix4[T]
	scaleInto(out[:], m[:], s)
	return out
}

// DivScalar returns m with every element divided by s.
func (m Matrix4[T]) DivScalar(s T) Matrix4[T] {
	var out Matrix4[T]
	divInto(out[:], m[:], s)
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix4[T]) Transpose() Matrix4[T] {
	var out Matrix4[T]
	transposeInto(out[:], m[:], 4)
	return out
}

// Equal reports whether m and rhs are identical element by element.
func (m Matrix4[T]) Equal(rhs Matrix4[T]) bool {
	return m == rhs
}

// Buffer returns the raw row-major storage. A column-major consumer (such as
// an OpenGL uniform upload without transpose) sees the transpose of m.
func (m Matrix4[T]) Buffer() [16]T {
	return m
}

// ColumnMajor returns the elements in column-major order.
func (m Matrix4[T]) ColumnMajor() [16]T {
	return m.Transpose()
}

// FromColumnMajor4 builds a matrix from column-major elements.
func FromColumnMajor4[T Number](buf [16]T) Matrix4[T] {
	return Matrix4[T](buf).Transpose()
}

// ScalarMul4 returns s * m.
func ScalarMul4[T Number](s T, m Matrix4[T]) Matrix4[T] {
	return m.MulScalar(s)
}

// String renders the matrix one row per line.
func (m Matrix4[T]) String() string {
	return formatRows(m[:], 4, 6)
}

// Fprint writes the matrix to w.
func (m Matrix4[T]) Fprint(w io.Writer) error {
	return fprintRows(w, m.String())
}

// Print writes the matrix to standard output.
func (m Matrix4[T]) Print() {
	_ = m.Fprint(os.Stdout)
}

// MulVec transforms the column vector v: result[i] = Σ_j m[i][j]*v[j].
func (m Matrix4[T]) MulVec(v Vector4[T]) Vector4[T] {
	return Vector4[T]{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms v as a point (w=1) and applies the perspective divide.
func (m Matrix4[T]) MulPoint(v Vector3[T]) Vector3[T] {
	return m.MulVec(V4FromV3(v, 1)).PerspectiveDivide()
}

// MulDir transforms v as a direction (w=0, no translation).
func (m Matrix4[T]) MulDir(v Vector3[T]) Vector3[T] {
	return m.MulVec(V4FromV3(v, 0)).Vec3()
}

// RowMul4 transforms the row vector v: result[j] = Σ_i v[i]*m[i][j].
func RowMul4[T Number](v Vector4[T], m Matrix4[T]) Vector4[T] {
	return Vector4[T]{
		v.X*m[0] + v.Y*m[4] + v.Z*m[8] + v.W*m[12],
		v.X*m[1] + v.Y*m[5] + v.Z*m[9] + v.W*m[13],
		v.X*m[2] + v.Y*m[6] + v.Z*m[10] + v.W*m[14],
		v.X*m[3] + v.Y*m[7] + v.Z*m[11] + v.W*m[15],
	}
}

// Outer4 returns the outer product a ⊗ b.
func Outer4[T Number](a, b Vector4[T]) Matrix4[T] {
	var m Matrix4[T]
	av, bv := a.Array(), b.Array()
	outerInto(m[:], av[:], bv[:], 4)
	return m
}

// Translation extracts the translation column.
func (m Matrix4[T]) Translation() Vector3[T] {
	return Vector3[T]{m[3], m[7], m[11]}
}
