package vecmath

import (
	"github.com/chewxy/math32"

	"liblac/internal/diag"
)

type Vec2 [2]float32

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v[0] + w[0], v[1] + w[1]}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v[0] - w[0], v[1] - w[1]}
}

// Mul scales v by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

// Div scales v down by s. Dividing by zero logs a warning and yields the zero
// vector.
func (v Vec2) Div(s float32) Vec2 {
	if s == 0 {
		diag.Warnf("attempted divide by 0")
		return Vec2{}
	}
	return Vec2{v[0] / s, v[1] / s}
}

func (v Vec2) Dot(w Vec2) float32 {
	return (v[0] * w[0]) + (v[1] * w[1])
}

// Len returns the magnitude of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v has no
// length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l <= 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// MulMat returns the row vector v transformed by m.
func (v Vec2) MulMat(m Mat2) Vec2 {
	return Vec2{
		v[0]*m[0] + v[1]*m[2],
		v[0]*m[1] + v[1]*m[3],
	}
}

// Polar returns the length of v and its angle to the positive x-axis in
// radians, in (-Pi, Pi].
func (v Vec2) Polar() (length float32, angle float32) {
	return v.Len(), math32.Atan2(v[1], v[0])
}

// FromPolar is the inverse of Vec2.Polar.
func FromPolar(length float32, angle float32) Vec2 {
	return Vec2{length * math32.Cos(angle), length * math32.Sin(angle)}
}

func (v Vec2) ApproxEqual(w Vec2, eps float32) bool {
	return approxEqual(v[:], w[:], eps)
}
