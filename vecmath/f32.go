package vecmath

import "golang.org/x/image/math/f32"

// Conversions to and from golang.org/x/image/math/f32. Both packages store
// matrices row-major, so these are plain copies.

func (v Vec2) F32() f32.Vec2 { return f32.Vec2(v) }
func (v Vec3) F32() f32.Vec3 { return f32.Vec3(v) }
func (v Vec4) F32() f32.Vec4 { return f32.Vec4(v) }
func (m Mat3) F32() f32.Mat3 { return f32.Mat3(m) }
func (m Mat4) F32() f32.Mat4 { return f32.Mat4(m) }

func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2(v) }
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3(v) }
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4(v) }
func Mat3FromF32(m f32.Mat3) Mat3 { return Mat3(m) }
func Mat4FromF32(m f32.Mat4) Mat4 { return Mat4(m) }
