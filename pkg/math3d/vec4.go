package math3d

import "math"

// Vector4 represents a 4D vector (or homogeneous 3D point).
type Vector4[T Number] struct {
	X, Y, Z, W T
}

// NewVector4 creates a new Vector4.
func NewVector4[T Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// V4 creates a new single-precision Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 creates a Vector4 from a Vector3 with the specified W.
func V4FromV3[T Number](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// Vec3 returns the Vector3 portion (ignoring W).
func (v Vector4[T]) Vec3() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns the Vector3 after dividing by W.
// W == 0 is returned undivided.
func (v Vector4[T]) PerspectiveDivide() Vector3[T] {
	if v.W == 0 {
		return Vector3[T]{v.X, v.Y, v.Z}
	}
	return Vector3[T]{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// Add returns the vector sum.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vector4[T]) Add(b Vector4[T]) Vector4[T] {
	return Vector4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the vector difference.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vector4[T]) Sub(b Vector4[T]) Vector4[T] {
	return Vector4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Mul returns the component-wise product.
func (a Vector4[T]) Mul(b Vector4[T]) Vector4[T] {
	return Vector4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// Div returns the component-wise quotient.
func (a Vector4[T]) Div(b Vector4[T]) Vector4[T] {
	return Vector4[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

// Scale returns the scalar product.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar returns the scalar division.
func (v Vector4[T]) DivScalar(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Dot returns the dot product.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vector4[T]) Dot(b Vector4[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Equal reports exact component equality.
func (a Vector4[T]) Equal(b Vector4[T]) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z && a.W == b.W
}

// Length returns the length.
func (v Vector4[T]) Length() float64 {
	return math.Sqrt(float64(v.Dot(v)))
}

// Array returns the components as an array.
func (v Vector4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// Normalize4 returns the unit vector.
func Normalize4[T Float](v Vector4[T]) Vector4[T] {
	return v.DivScalar(T(v.Length()))
}
