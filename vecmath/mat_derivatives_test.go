package vecmath

import (
	"testing"
)

func TestRotationComposition(t *testing.T) {
	got := Rotation(ToRad(45), ToRad(90), ToRad(180))
	want := Mat4{
		0, -0.71, 0.71, 0,
		0, -0.71, -0.71, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
	}
	if !got.ApproxEqual(want, 0.01) {
		t.Errorf("rotation(45, 90, 180) mismatch, expected:\n%s\nactual:\n%s", want, got)
	}
	if got != Yaw(ToRad(180)).Mul(Pitch(ToRad(90))).Mul(Roll(ToRad(45))) {
		t.Errorf("rotation is not yaw·pitch·roll")
	}
	if got.ApproxEqual(Roll(ToRad(45)).Mul(Pitch(ToRad(90))).Mul(Yaw(ToRad(180))), 0.01) {
		t.Errorf("reversed composition order should give a different matrix")
	}
}

func TestRotationX(t *testing.T) {
	mrx := Roll(ToRad(90))
	mrxComplex := RotationAxis(Vec3{1, 0, 0}, ToRad(90))
	if !mrx.ApproxEqual(mrxComplex, 1e-6) {
		t.Errorf("Roll not equal to generic rotation around x. Roll:\n%s\nRotation around x-axis:\n%s", mrx, mrxComplex)
	}
}

func TestRotationY(t *testing.T) {
	mry := Pitch(ToRad(90))
	mryComplex := RotationAxis(Vec3{0, 1, 0}, ToRad(90))
	if !mry.ApproxEqual(mryComplex, 1e-6) {
		t.Errorf("Pitch not equal to generic rotation around y. Pitch:\n%s\nRotation around y-axis:\n%s", mry, mryComplex)
	}
}

func TestRotationZ(t *testing.T) {
	mrz := Yaw(ToRad(90))
	mrzComplex := RotationAxis(Vec3{0, 0, 1}, ToRad(90))
	if !mrz.ApproxEqual(mrzComplex, 1e-6) {
		t.Errorf("Yaw not equal to generic rotation around z. Yaw:\n%s\nRotation around z-axis:\n%s", mrz, mrzComplex)
	}
}

func TestRotationDirections(t *testing.T) {
	// Positive angles turn counter-clockwise when looking down the axis.
	if got := (Vec3{1, 0, 0}).TransformDir(Yaw(Pi / 2)); !got.ApproxEqual(Vec3{0, 1, 0}, 1e-6) {
		t.Errorf("yaw 90: x -> %v", got)
	}
	if got := (Vec3{0, 0, 1}).TransformDir(Pitch(Pi / 2)); !got.ApproxEqual(Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("pitch 90: z -> %v", got)
	}
	if got := (Vec3{0, 1, 0}).TransformDir(Roll(Pi / 2)); !got.ApproxEqual(Vec3{0, 0, 1}, 1e-6) {
		t.Errorf("roll 90: y -> %v", got)
	}
}

func TestArbitraryRotation(t *testing.T) {
	mr := RotationAxis(Vec3{-0.5, 1, 1}, ToRad(-74))
	mrExpected := Mat4{
		0.3561221, -0.8018106, 0.47987163, 0,
		0.47987163, 0.5975763, 0.6423595, 0,
		-0.8018106, 0.0015183985, 0.5975763, 0,
		0, 0, 0, 1,
	}
	if !mr.ApproxEqual(mrExpected, 1e-5) {
		t.Errorf("Arbitrary rotation didn't match expectations. expectation:\n%s\nactual:\n%s", mrExpected, mr)
	}
	if got := (Vec3{-0.5, 1, 1}).TransformDir(mr); !got.ApproxEqual(Vec3{-0.5, 1, 1}, 1e-5) {
		t.Errorf("rotation axis must be invariant, got %v", got)
	}
}

func TestRotationOrthonormal(t *testing.T) {
	for _, a := range []float32{-2.5, -0.3, 0.7, 1.9, 3} {
		m := Rotation(a, a*0.5, -a)
		if !m.Mul(m.Transpose()).ApproxEqual(Ident4(), 1e-5) {
			t.Errorf("R·Rᵀ != I for angle %v:\n%s", a, m.Mul(m.Transpose()))
		}
		v := Vec3{3, -4, 12}
		if got := v.TransformDir(m).Len(); got < 12.99 || got > 13.01 {
			t.Errorf("rotation changed length to %v", got)
		}
	}
}

func TestReflection(t *testing.T) {
	if Reflection(0) != Ident4() {
		t.Errorf("no plane should leave the identity:\n%s", Reflection(0))
	}
	cases := []struct {
		planes Plane
		want   Vec3
	}{
		{PlaneYZ, Vec3{-1, 2, 3}},
		{PlaneXZ, Vec3{1, -2, 3}},
		{PlaneXY, Vec3{1, 2, -3}},
		{PlaneYZ | PlaneXY, Vec3{-1, 2, -3}},
		{PlaneYZ | PlaneXZ | PlaneXY, Vec3{-1, -2, -3}},
	}
	for _, c := range cases {
		if got := (Vec3{1, 2, 3}).TransformPoint(Reflection(c.planes)); got != c.want {
			t.Errorf("reflection %03b: got %v, want %v", c.planes, got, c.want)
		}
	}
	m := Reflection(PlaneXZ)
	if m.Mul(m) != Ident4() {
		t.Errorf("reflecting twice should be the identity")
	}
}

func TestTranslationAndScale(t *testing.T) {
	tm := Translation(1, -2, 3)
	if tm.Row(3) != (Vec4{1, -2, 3, 1}) {
		t.Errorf("translation should live in the last row:\n%s", tm)
	}
	if tm.Mul(Translation(-1, 2, -3)) != Ident4() {
		t.Errorf("opposite translations should cancel")
	}
	sm := Scale(2, 3, 4)
	if got := (Vec3{1, 1, 1}).TransformPoint(sm); got != (Vec3{2, 3, 4}) {
		t.Errorf("scale: %v", got)
	}
	// Scaling after translating also scales the offset.
	if got := (Vec3{}).TransformPoint(tm.Mul(sm)); got != (Vec3{2, -6, 12}) {
		t.Errorf("translate then scale: %v", got)
	}
}

func TestSmallConstructors(t *testing.T) {
	if Rotation3(0.3, -1.2, 2) != Rotation(0.3, -1.2, 2).Mat3() {
		t.Errorf("rotation3 should be the linear part of rotation")
	}
	if Yaw3(1) != Yaw(1).Mat3() || Pitch3(1) != Pitch(1).Mat3() || Roll3(1) != Roll(1).Mat3() {
		t.Errorf("3x3 elementary rotations differ from 4x4 blocks")
	}
	if Scale3(2, 3, 4).Mat4() != Scale(2, 3, 4) {
		t.Errorf("scale3 embedding")
	}
	if got := (Vec2{3, 4}).MulMat(Scale2(2, -1)); got != (Vec2{6, -4}) {
		t.Errorf("scale2: %v", got)
	}
	r := Rotation2(0.6)
	if !r.Mul(Rotation2(-0.6)).ApproxEqual(Ident2(), 1e-6) {
		t.Errorf("rotation2 inverse:\n%s", r.Mul(Rotation2(-0.6)))
	}
	if got := (Vec3{1, 2, 1}).MulMat(Translation2D(5, -5)); got != (Vec3{6, -3, 1}) {
		t.Errorf("translation2D: %v", got)
	}
}
