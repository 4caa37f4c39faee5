package vecmath

const Pi = float32(3.14159265358979323846264338327950288)

// ToRad turns degrees into radians.
func ToRad(deg float32) float32 {
	return deg * (Pi / 180)
}

// ToDeg turns radians into degrees.
func ToDeg(rad float32) float32 {
	return rad * (180 / Pi)
}
