package vecmath

import "github.com/chewxy/math32"

// Plane selects the mirror planes of a reflection.
type Plane uint8

const (
	PlaneYZ Plane = 1 << iota // mirrors x
	PlaneXZ                   // mirrors y
	PlaneXY                   // mirrors z
)

// Reflection mirrors across every selected plane. Without a plane the result
// is the identity.
func Reflection(planes Plane) Mat4 {
	m := Ident4()
	if planes&PlaneYZ != 0 {
		m[0] = -1
	}
	if planes&PlaneXZ != 0 {
		m[5] = -1
	}
	if planes&PlaneXY != 0 {
		m[10] = -1
	}
	return m
}

func Translation(tx float32, ty float32, tz float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		tx, ty, tz, 1,
	}
}

func Scale(sx float32, sy float32, sz float32) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Yaw rotates about the z-axis.
func Yaw(rad float32) Mat4 {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Pitch rotates about the y-axis.
func Pitch(rad float32) Mat4 {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Roll rotates about the x-axis.
func Roll(rad float32) Mat4 {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// Rotation combines the rotations about x, y and z as Yaw(rz)·Pitch(ry)·Roll(rx).
// The order is part of the contract, reordering changes the result.
func Rotation(rx float32, ry float32, rz float32) Mat4 {
	return Yaw(rz).Mul(Pitch(ry)).Mul(Roll(rx))
}

// RotationAxis rotates by rad around axis. The axis does not need to be
// normalized.
func RotationAxis(axis Vec3, rad float32) Mat4 {
	u := axis
	if u.Dot(u) != 1 {
		u = axis.Normalize()
	}
	ux, uy, uz := u[0], u[1], u[2]
	c, s := math32.Cos(rad), math32.Sin(rad)
	t := 1 - c
	return Mat4{
		c + ux*ux*t, ux*uy*t + uz*s, ux*uz*t - uy*s, 0,
		uy*ux*t - uz*s, c + uy*uy*t, uy*uz*t + ux*s, 0,
		uz*ux*t + uy*s, uz*uy*t - ux*s, c + uz*uz*t, 0,
		0, 0, 0, 1,
	}
}

// Rotation2 rotates counter-clockwise by rad.
func Rotation2(rad float32) Mat2 {
	c, s := math32.Cos(rad), math32.Sin(rad)
	return Mat2{
		c, s,
		-s, c,
	}
}

func Scale2(sx float32, sy float32) Mat2 {
	return Mat2{
		sx, 0,
		0, sy,
	}
}

func Yaw3(rad float32) Mat3 {
	return Yaw(rad).Mat3()
}

func Pitch3(rad float32) Mat3 {
	return Pitch(rad).Mat3()
}

func Roll3(rad float32) Mat3 {
	return Roll(rad).Mat3()
}

// Rotation3 is the linear part of Rotation.
func Rotation3(rx float32, ry float32, rz float32) Mat3 {
	return Yaw3(rz).Mul(Pitch3(ry)).Mul(Roll3(rx))
}

func Scale3(sx float32, sy float32, sz float32) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	}
}

// Translation2D moves 2D points given in homogeneous coordinates (x, y, 1).
func Translation2D(tx float32, ty float32) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		tx, ty, 1,
	}
}
