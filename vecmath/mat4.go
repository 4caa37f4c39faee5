package vecmath

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 matrix in row-major order.
type Mat4 [16]float32

func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) At(r int, c int) float32 {
	return m[4*r+c]
}

func (m Mat4) Row(r int) Vec4 {
	return Vec4{m[4*r], m[4*r+1], m[4*r+2], m[4*r+3]}
}

func (m Mat4) Col(c int) Vec4 {
	return Vec4{m[c], m[4+c], m[8+c], m[12+c]}
}

func (m Mat4) Add(b Mat4) Mat4 {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

func (m Mat4) Sub(b Mat4) Mat4 {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

func (m Mat4) MulScalar(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m·b. With row vectors the result applies m first, then b.
func (m Mat4) Mul(b Mat4) Mat4 {
	var c Mat4
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			c[4*r+col] = (m[4*r] * b[col]) + (m[4*r+1] * b[4+col]) +
				(m[4*r+2] * b[8+col]) + (m[4*r+3] * b[12+col])
		}
	}
	return c
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mat3 returns the upper-left linear block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Mat4) ApproxEqual(b Mat4, eps float32) bool {
	return approxEqual(m[:], b[:], eps)
}

func (m Mat4) String() string {
	return format(m[:], 4)
}

func format(e []float32, n int) string {
	sb := strings.Builder{}
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%v", e[n*r:n*r+n]))
	}
	return sb.String()
}
