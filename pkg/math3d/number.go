// Package math3d provides the fixed-size vector and matrix primitives used to
// build graphics transforms: 2, 3 and 4 dimensional vectors and square
// matrices over a numeric element type, plus the classic OpenGL transform
// generators.
//
// Matrices are stored row-major and addressed as m.At(row, col). Vectors are
// treated as columns when multiplied on the right of a matrix (MulVec) and as
// rows when multiplied on the left (RowMul2/3/4).
//
// None of the types carry internal synchronization. They are values; copy
// them freely.
package math3d

import "golang.org/x/exp/constraints"

// Number is the set of element types vectors and matrices may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is the set of floating-point element types.
type Float interface {
	constraints.Float
}
