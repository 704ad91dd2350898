package math3d

import "math"

// Vector2 represents a 2D vector.
type Vector2[T Number] struct {
	X, Y T
}

// NewVector2 creates a new Vector2.
func NewVector2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// V2 creates a new single-precision Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vector2[T]) Add(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vector2[T]) Sub(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vector2[T]) Mul(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X * b.X, a.Y * b.Y}
}

// Div returns the component-wise quotient a / b.
func (a Vector2[T]) Div(b Vector2[T]) Vector2[T] {
	return Vector2[T]{a.X / b.X, a.Y / b.Y}
}

// Scale returns the scalar product a * s.
func (a Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{a.X * s, a.Y * s}
}

// DivScalar returns the scalar division a / s.
func (a Vector2[T]) DivScalar(s T) Vector2[T] {
	return Vector2[T]{a.X / s, a.Y / s}
}

// Dot returns the dot product a · b.
func (a Vector2[T]) Dot(b Vector2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Equal reports whether a and b are identical component by component.
// Floating-point components are compared exactly.
func (a Vector2[T]) Equal(b Vector2[T]) bool {
	return a.X == b.X && a.Y == b.Y
}

// Length returns the magnitude of the vector.
func (a Vector2[T]) Length() float64 {
	return math.Sqrt(float64(a.Dot(a)))
}

// Array returns the components as an array.
func (a Vector2[T]) Array() [2]T {
	return [2]T{a.X, a.Y}
}

// Normalize2 returns the unit vector in the same direction as v.
// The zero vector yields NaN components.
func Normalize2[T Float](v Vector2[T]) Vector2[T] {
	return v.DivScalar(T(v.Length()))
}
