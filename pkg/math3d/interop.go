package math3d

import "golang.org/x/image/math/f32"

// f32 matrices are row-major like Mat4, so conversions copy element for
// element without transposing.

// ToF32 converts m to an f32.Mat4.
func (m Matrix4[T]) ToF32() f32.Mat4 {
	var out f32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Mat4FromF32 converts an f32.Mat4 to a Mat4.
func Mat4FromF32(m f32.Mat4) Mat4 {
	return Mat4(m)
}

// ToF32 converts m to an f32.Mat3.
func (m Matrix3[T]) ToF32() f32.Mat3 {
	var out f32.Mat3
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Mat3FromF32 converts an f32.Mat3 to a Mat3.
func Mat3FromF32(m f32.Mat3) Mat3 {
	return Mat3(m)
}

// ToF32 converts v to an f32.Vec3.
func (a Vector3[T]) ToF32() f32.Vec3 {
	return f32.Vec3{float32(a.X), float32(a.Y), float32(a.Z)}
}

// ToF32 converts v to an f32.Vec4.
func (v Vector4[T]) ToF32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vec3FromF32 converts an f32.Vec3 to a Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Vec4FromF32 converts an f32.Vec4 to a Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}
