package math3d

import "math"

// Vector3 represents a 3D vector.
type Vector3[T Number] struct {
	X, Y, Z T
}

// NewVector3 creates a new Vector3.
func NewVector3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// V3 creates a new single-precision Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Add returns the vector sum a + b.
func (a Vector3[T]) Add(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector3[T]) Sub(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vector3[T]) Mul(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Div returns the component-wise quotient a / b.
func (a Vector3[T]) Div(b Vector3[T]) Vector3[T] {
	return Vector3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// Scale returns the scalar product a * s.
func (a Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{a.X * s, a.Y * s, a.Z * s}
}

// DivScalar returns the scalar division a / s.
func (a Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vector3[T]) Dot(b Vector3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vector3[T]) Cross(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Equal reports whether a and b are identical component by component.
// Floating-point components are compared exactly.
func (a Vector3[T]) Equal(b Vector3[T]) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// Length returns the magnitude of the vector.
func (a Vector3[T]) Length() float64 {
	return math.Sqrt(float64(a.Dot(a)))
}

// Negate returns the negated vector.
func (a Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-a.X, -a.Y, -a.Z}
}

// Min returns the component-wise minimum.
func (a Vector3[T]) Min(b Vector3[T]) Vector3[T] {
	return Vector3[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vector3[T]) Max(b Vector3[T]) Vector3[T] {
	return Vector3[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Array returns the components as an array.
func (a Vector3[T]) Array() [3]T {
	return [3]T{a.X, a.Y, a.Z}
}

// Normalize3 returns the unit vector in the same direction as v.
// The zero vector yields NaN components.
func Normalize3[T Float](v Vector3[T]) Vector3[T] {
	return v.DivScalar(T(v.Length()))
}
