package enginetypes

import "github.com/go-gl/mathgl/mgl32"

// Conversions to and from mgl32, for doing the math these types leave out.

// Vec2 converts v to an mgl32.Vec2.
func (v Vector2) Vec2() mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

// Vec3 converts v to an mgl32.Vec3.
func (v Vector3) Vec3() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Vec4 converts v to an mgl32.Vec4.
func (v Vector4) Vec4() mgl32.Vec4 { return mgl32.Vec4{v.X, v.Y, v.Z, v.W} }

// Vector2FromVec2 converts an mgl32.Vec2 to a Vector2.
func Vector2FromVec2(v mgl32.Vec2) Vector2 { return Vector2{v[0], v[1]} }

// Vector3FromVec3 converts an mgl32.Vec3 to a Vector3.
func Vector3FromVec3(v mgl32.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }

// Vector4FromVec4 converts an mgl32.Vec4 to a Vector4.
func Vector4FromVec4(v mgl32.Vec4) Vector4 { return Vector4{v[0], v[1], v[2], v[3]} }

// Quat returns q as an mgl32.Quat, which keeps W apart from the vector part.
func (q Quaternion) Quat() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuaternionFromQuat is the inverse of Quaternion.Quat.
func QuaternionFromQuat(q mgl32.Quat) Quaternion {
	return Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Mat4 returns m as an mgl32.Mat4. Both are column-major, so the elements are in wire key order.
func (m Matrix4x4) Mat4() mgl32.Mat4 {
	var out mgl32.Mat4
	copy(out[:], m.columnMajor())
	return out
}

// Matrix4x4FromMat4 is the inverse of Matrix4x4.Mat4.
func Matrix4x4FromMat4(m mgl32.Mat4) Matrix4x4 {
	return Matrix4x4{
		M00: m[0], M10: m[1], M20: m[2], M30: m[3],
		M01: m[4], M11: m[5], M21: m[6], M31: m[7],
		M02: m[8], M12: m[9], M22: m[10], M32: m[11],
		M03: m[12], M13: m[13], M23: m[14], M33: m[15],
	}
}
