package math3d

import (
	"io"
	"os"
)

// Matrix3 is a 3x3 matrix stored in row-major order.
// Element (row, col) lives at index row*3 + col.
//
// The zero value is the zero matrix; use Identity3 for the identity.
type Matrix3[T Number] [9]T

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Number]() Matrix3[T] {
	var m Matrix3[T]
	setIdentity(m[:], 3)
	return m
}

// SetIdentity resets m to the identity in place.
func (m *Matrix3[T]) SetIdentity() {
	setIdentity(m[:], 3)
}

// At returns the element at (row, col).
func (m Matrix3[T]) At(row, col int) T {
	return m[row*3+col]
}

// Set sets the element at (row, col).
func (m *Matrix3[T]) Set(row, col int, v T) {
	m[row*3+col] = v
}

// Row returns row as a slice backed by m. Writes through the slice modify m.
// The slice must not outlive m.
func (m *Matrix3[T]) Row(row int) []T {
	return m[row*3 : row*3+3 : row*3+3]
}

// Add returns the element-wise sum m + rhs.
func (m Matrix3[T]) Add(rhs Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	addInto(out[:], m[:], rhs[:])
	return out
}

// Sub returns the element-wise difference m - rhs.
func (m Matrix3[T]) Sub(rhs Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	subInto(out[:], m[:], rhs[:])
	return out
}

// Mul returns the matrix product m * rhs.
func (m Matrix3[T]) Mul(rhs Matrix3[T]) Matrix3[T] {
	var out Matrix3[T]
	mulInto(out[:], m[:], rhs[:], 3)
	return out
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	var out Matrix3[T]
	scaleInto(out[:], m[:], s)
	return out
}

// DivScalar returns m with every element divided by s.
func (m Matrix3[T]) DivScalar(s T) Matrix3[T] {
	var out Matrix3[T]
	divInto(out[:], m[:], s)
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix3[T]) Transpose() Matrix3[T] {
	var out Matrix3[T]
	transposeInto(out[:], m[:], 3)
	return out
}

// Equal reports whether m and rhs are identical element by element.
func (m Matrix3[T]) Equal(rhs Matrix3[T]) bool {
	return m == rhs
}

// Buffer returns the raw row-major storage. A column-major consumer (such as
// an OpenGL uniform upload without transpose) sees the transpose of m.
func (m Matrix3[T]) Buffer() [9]T {
	return m
}

// ColumnMajor returns the elements in column-major order.
func (m Matrix3[T]) ColumnMajor() [9]T {
	return m.Transpose()
}

// FromColumnMajor3 builds a matrix from column-major elements.
func FromColumnMajor3[T Number](buf [9]T) Matrix3[T] {
	return Matrix3[T](buf).Transpose()
}

// ScalarMul3 returns s * m.
func ScalarMul3[T Number](s T, m Matrix3[T]) Matrix3[T] {
	return m.MulScalar(s)
}

// String renders the matrix one row per line.
func (m Matrix3[T]) String() string {
	return formatRows(m[:], 3, -1)
}

// Fprint writes the matrix to w.
func (m Matrix3[T]) Fprint(w io.Writer) error {
	return fprintRows(w, m.String())
}

// Print writes the matrix to standard output.
func (m Matrix3[T]) Print() {
	_ = m.Fprint(os.Stdout)
}

// MulVec transforms the column vector v: result[i] = Σ_j m[i][j]*v[j].
func (m Matrix3[T]) MulVec(v Vector3[T]) Vector3[T] {
	var out [3]T
	mulVecInto(out[:], m[:], []T{v.X, v.Y, v.Z}, 3)
	return Vector3[T]{out[0], out[1], out[2]}
}

// RowMul3 transforms the row vector v: result[j] = Σ_i v[i]*m[i][j].
func RowMul3[T Number](v Vector3[T], m Matrix3[T]) Vector3[T] {
	var out [3]T
	rowMulInto(out[:], []T{v.X, v.Y, v.Z}, m[:], 3)
	return Vector3[T]{out[0], out[1], out[2]}
}

// Outer3 returns the outer product a ⊗ b.
func Outer3[T Number](a, b Vector3[T]) Matrix3[T] {
	var m Matrix3[T]
	outerInto(m[:], []T{a.X, a.Y, a.Z}, []T{b.X, b.Y, b.Z}, 3)
	return m
}

// Mat3 returns the upper-left 3x3 block of m (its rotation and scale part).
func (m Matrix4[T]) Mat3() Matrix3[T] {
	return Matrix3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}
