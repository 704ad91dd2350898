package math3d

// Single-precision types, the default element type for transforms.
type (
	Vec2 = Vector2[float32]
	Vec3 = Vector3[float32]
	Vec4 = Vector4[float32]
	Mat2 = Matrix2[float32]
	Mat3 = Matrix3[float32]
	Mat4 = Matrix4[float32]
)

// Double-precision types.
type (
	DVec2 = Vector2[float64]
	DVec3 = Vector3[float64]
	DVec4 = Vector4[float64]
	DMat2 = Matrix2[float64]
	DMat3 = Matrix3[float64]
	DMat4 = Matrix4[float64]
)

// Signed integer types.
type (
	IVec2 = Vector2[int32]
	IVec3 = Vector3[int32]
	IVec4 = Vector4[int32]
	IMat2 = Matrix2[int32]
	IMat3 = Matrix3[int32]
	IMat4 = Matrix4[int32]
)

// Unsigned integer types.
type (
	UVec2 = Vector2[uint32]
	UVec3 = Vector3[uint32]
	UVec4 = Vector4[uint32]
	UMat2 = Matrix2[uint32]
	UMat3 = Matrix3[uint32]
	UMat4 = Matrix4[uint32]
)
