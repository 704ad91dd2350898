package math3d

import (
	"io"
	"os"
)

// Matrix2 is a 2x2 matrix stored in row-major order.
// Element (row, col) lives at index row*2 + col.
//
// The zero value is the zero matrix; use Identity2 for the identity.
type Matrix2[T Number] [4]T

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Number]() Matrix2[T] {
	var m Matrix2[T]
	setIdentity(m[:], 2)
	return m
}

// SetIdentity resets m to the identity in place.
func (m *Matrix2[T]) SetIdentity() {
	setIdentity(m[:], 2)
}

// At returns the element at (row, col).
func (m Matrix2[T]) At(row, col int) T {
	return m[row*2+col]
}

// Set sets the element at (row, col).
func (m *Matrix2[T]) Set(row, col int, v T) {
	m[row*2+col] = v
}

// Row returns row as a slice backed by m. Writes through the slice modify m.
// The slice must not outlive m.
func (m *Matrix2[T]) Row(row int) []T {
	return m[row*2 : row*2+2 : row*2+2]
}

// Add returns the element-wise sum m + rhs.
func (m Matrix2[T]) Add(rhs Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	addInto(out[:], m[:], rhs[:])
	return out
}

// Sub returns the element-wise difference m - rhs.
func (m Matrix2[T]) Sub(rhs Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	subInto(out[:], m[:], rhs[:])
	return out
}

// Mul returns the matrix product m * rhs.
func (m Matrix2[T]) Mul(rhs Matrix2[T]) Matrix2[T] {
	var out Matrix2[T]
	mulInto(out[:], m[:], rhs[:], 2)
	return out
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix2[T]) MulScalar(s T) Matrix2[T] {
	var out Matrix2[T]
	scaleInto(out[:], m[:], s)
	return out
}

// DivScalar returns m with every element divided by s.
func (m Matrix2[T]) DivScalar(s T) Matrix2[T] {
	var out Matrix2[T]
	divInto(out[:], m[:], s)
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix2[T]) Transpose() Matrix2[T] {
	var out Matrix2[T]
	transposeInto(out[:], m[:], 2)
	return out
}

// Equal reports whether m and rhs are identical element by element.
func (m Matrix2[T]) Equal(rhs Matrix2[T]) bool {
	return m == rhs
}

// Buffer returns the raw row-major storage. A column-major consumer (such as
// an OpenGL uniform upload without transpose) sees the transpose of m.
func (m Matrix2[T]) Buffer() [4]T {
	return m
}

// ColumnMajor returns the elements in column-major order.
func (m Matrix2[T]) ColumnMajor() [4]T {
	return m.Transpose()
}

// FromColumnMajor2 builds a matrix from column-major elements.
func FromColumnMajor2[T Number](buf [4]T) Matrix2[T] {
	return Matrix2[T](buf).Transpose()
}

// ScalarMul2 returns s * m.
func ScalarMul2[T Number](s T, m Matrix2[T]) Matrix2[T] {
	return m.MulScalar(s)
}

// String renders the matrix one row per line.
func (m Matrix2[T]) String() string {
	return formatRows(m[:], 2, -1)
}

// Fprint writes the matrix to w.
func (m Matrix2[T]) Fprint(w io.Writer) error {
	return fprintRows(w, m.String())
}

// Print writes the matrix to standard output.
func (m Matrix2[T]) Print() {
	_ = m.Fprint(os.Stdout)
}

// MulVec transforms the column vector v: result[i] = Σ_j m[i][j]*v[j].
func (m Matrix2[T]) MulVec(v Vector2[T]) Vector2[T] {
	return Vector2[T]{
		m[0]*v.X + m[1]*v.Y,
		m[2]*v.X + m[3]*v.Y,
	}
}

// RowMul2 transforms the row vector v: result[j] = Σ_i v[i]*m[i][j].
func RowMul2[T Number](v Vector2[T], m Matrix2[T]) Vector2[T] {
	return Vector2[T]{
		v.X*m[0] + v.Y*m[2],
		v.X*m[1] + v.Y*m[3],
	}
}

// Outer2 returns the outer product a ⊗ b.
func Outer2[T Number](a, b Vector2[T]) Matrix2[T] {
	return Matrix2[T]{
		a.X * b.X, a.X * b.Y,
		a.Y * b.X, a.Y * b.Y,
	}
}
