package vecmath

// Mat2 is a 2x2 matrix in row-major order.
type Mat2 [4]float32

func Ident2() Mat2 {
	return Mat2{
		1, 0,
		0, 1,
	}
}

func (m Mat2) At(r int, c int) float32 {
	return m[2*r+c]
}

func (m Mat2) Row(r int) Vec2 {
	return Vec2{m[2*r], m[2*r+1]}
}

func (m Mat2) Col(c int) Vec2 {
	return Vec2{m[c], m[2+c]}
}

func (m Mat2) Add(b Mat2) Mat2 {
	return Mat2{
		m[0] + b[0], m[1] + b[1],
		m[2] + b[2], m[3] + b[3],
	}
}

func (m Mat2) Sub(b Mat2) Mat2 {
	return Mat2{
		m[0] - b[0], m[1] - b[1],
		m[2] - b[2], m[3] - b[3],
	}
}

func (m Mat2) MulScalar(s float32) Mat2 {
	return Mat2{
		m[0] * s, m[1] * s,
		m[2] * s, m[3] * s,
	}
}

// Mul returns m·b.
func (m Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		(m[0] * b[0]) + (m[1] * b[2]), (m[0] * b[1]) + (m[1] * b[3]),
		(m[2] * b[0]) + (m[3] * b[2]), (m[2] * b[1]) + (m[3] * b[3]),
	}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{
		m[0], m[2],
		m[1], m[3],
	}
}

func (m Mat2) ApproxEqual(b Mat2, eps float32) bool {
	return approxEqual(m[:], b[:], eps)
}

func (m Mat2) String() string {
	return format(m[:], 2)
}
