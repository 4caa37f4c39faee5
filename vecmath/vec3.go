package vecmath

import (
	"github.com/chewxy/math32"

	"liblac/internal/diag"
)

type Vec3 [3]float32

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Mul scales v by s.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div scales v down by s. Dividing by zero logs a warning and yields the zero
// vector.
func (v Vec3) Div(s float32) Vec3 {
	if s == 0 {
		diag.Warnf("attempted divide by 0")
		return Vec3{}
	}
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (v Vec3) Dot(w Vec3) float32 {
	return (v[0] * w[0]) + (v[1] * w[1]) + (v[2] * w[2])
}

// Cross returns the vector orthogonal to v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		(v[1] * w[2]) - (v[2] * w[1]),
		(v[2] * w[0]) - (v[0] * w[2]),
		(v[0] * w[1]) - (v[1] * w[0]),
	}
}

// Len returns the magnitude of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v has no
// length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l <= 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// MulMat returns the row vector v transformed by the linear map m.
func (v Vec3) MulMat(m Mat3) Vec3 {
	return Vec3{
		v[0]*m[0] + v[1]*m[3] + v[2]*m[6],
		v[0]*m[1] + v[1]*m[4] + v[2]*m[7],
		v[0]*m[2] + v[1]*m[5] + v[2]*m[8],
	}
}

// Extend returns v in homogeneous coordinates. Use w = 1 for points and
// w = 0 for directions.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// TransformPoint applies the affine transform m to the point v.
func (v Vec3) TransformPoint(m Mat4) Vec3 {
	return v.Extend(1).MulMat(m).XYZ()
}

// TransformDir applies m to the direction v, ignoring translation.
func (v Vec3) TransformDir(m Mat4) Vec3 {
	return v.Extend(0).MulMat(m).XYZ()
}

func (v Vec3) ApproxEqual(w Vec3, eps float32) bool {
	return approxEqual(v[:], w[:], eps)
}
