package vecmath

import "github.com/chewxy/math32"

// PointAt builds the camera-to-world matrix of a camera at eye facing target.
// The rows are the right, up and forward axes followed by the eye position.
// Forward points from eye to target (left-handed) and up is re-orthogonalized
// against it before right is derived.
func PointAt(eye Vec3, target Vec3, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	newUp := up.Sub(forward.Mul(up.Dot(forward))).Normalize()
	right := newUp.Cross(forward)
	return Mat4{
		right[0], right[1], right[2], 0,
		newUp[0], newUp[1], newUp[2], 0,
		forward[0], forward[1], forward[2], 0,
		eye[0], eye[1], eye[2], 1,
	}
}

// LookAt builds the world-to-camera (view) matrix, the inverse of PointAt.
func LookAt(eye Vec3, target Vec3, up Vec3) Mat4 {
	return InvertPointAt(PointAt(eye, target, up))
}

// InvertPointAt inverts a matrix made only of an orthonormal rotation and a
// translation, such as the result of PointAt. It is NOT a general inverse:
// any scale, shear or projection in m gives a wrong result.
func InvertPointAt(m Mat4) Mat4 {
	t := Vec3{m[12], m[13], m[14]}
	return Mat4{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		-t.Dot(Vec3{m[0], m[1], m[2]}), -t.Dot(Vec3{m[4], m[5], m[6]}), -t.Dot(Vec3{m[8], m[9], m[10]}), 1,
	}
}

// Perspective builds a left-handed perspective projection with clip depth in
// [0, 1]. aspect is width/height and fov the vertical field of view in radians.
func Perspective(aspect float32, fov float32, near float32, far float32) Mat4 {
	f := 1 / math32.Tan(fov/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (far - near), 1,
		0, 0, -(far * near) / (far - near), 0,
	}
}

// Orthographic maps the box spanned by (left, bottom, near) and
// (right, top, far) onto x, y in [-1, 1] and z in [0, 1].
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (far - near), 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), near / (near - far), 1,
	}
}
