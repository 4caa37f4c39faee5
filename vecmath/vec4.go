package vecmath

import (
	"github.com/chewxy/math32"

	"liblac/internal/diag"
)

type Vec4 [4]float32

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul scales v by s.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Div scales v down by s. Dividing by zero logs a warning and yields the zero
// vector.
func (v Vec4) Div(s float32) Vec4 {
	if s == 0 {
		diag.Warnf("attempted divide by 0")
		return Vec4{}
	}
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

func (v Vec4) Dot(w Vec4) float32 {
	return (v[0] * w[0]) + (v[1] * w[1]) + (v[2] * w[2]) + (v[3] * w[3])
}

// Len returns the magnitude of v.
func (v Vec4) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v has no
// length.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l <= 0 {
		return Vec4{}
	}
	return v.Mul(1 / l)
}

// MulMat returns the row vector v transformed by m.
func (v Vec4) MulMat(m Mat4) Vec4 {
	return Vec4{
		v[0]*m[0] + v[1]*m[4] + v[2]*m[8] + v[3]*m[12],
		v[0]*m[1] + v[1]*m[5] + v[2]*m[9] + v[3]*m[13],
		v[0]*m[2] + v[1]*m[6] + v[2]*m[10] + v[3]*m[14],
		v[0]*m[3] + v[1]*m[7] + v[2]*m[11] + v[3]*m[15],
	}
}

func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide maps clip coordinates to normalized device coordinates.
// A w of zero degrades like Div.
func (v Vec4) PerspectiveDivide() Vec3 {
	return v.XYZ().Div(v[3])
}

func (v Vec4) ApproxEqual(w Vec4, eps float32) bool {
	return approxEqual(v[:], w[:], eps)
}

func approxEqual(a []float32, b []float32, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
