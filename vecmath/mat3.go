package vecmath

// Mat3 is a 3x3 matrix in row-major order.
type Mat3 [9]float32

func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (m Mat3) At(r int, c int) float32 {
	return m[3*r+c]
}

func (m Mat3) Row(r int) Vec3 {
	return Vec3{m[3*r], m[3*r+1], m[3*r+2]}
}

func (m Mat3) Col(c int) Vec3 {
	return Vec3{m[c], m[3+c], m[6+c]}
}

func (m Mat3) Add(b Mat3) Mat3 {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

func (m Mat3) Sub(b Mat3) Mat3 {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

func (m Mat3) MulScalar(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m·b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var c Mat3
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			c[3*r+col] = (m[3*r] * b[col]) + (m[3*r+1] * b[3+col]) + (m[3*r+2] * b[6+col])
		}
	}
	return c
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mat4 embeds m as the linear part of an affine transform.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

func (m Mat3) ApproxEqual(b Mat3, eps float32) bool {
	return approxEqual(m[:], b[:], eps)
}

func (m Mat3) String() string {
	return format(m[:], 3)
}
