package main

import (
	"testing"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"liblac/scene"
	vm "liblac/vecmath"
)

func TestOnKey(t *testing.T) {
	c := scene.NewCamera(45, 0.1, 100)
	resetCamera(c)

	onKey(sdl.K_w, c)
	onKey(sdl.K_d, c)
	if !c.Pos.ApproxEqual(vm.Vec3{moveStep, 0, -3 + moveStep}, 1e-6) {
		t.Errorf("pos after w, d = %v", c.Pos)
	}

	onKey(sdl.K_1, c)
	if c.Projection != scene.OrthographicProjection {
		t.Errorf("1 should switch to orthographic, got %s", c.Projection)
	}
	onKey(sdl.K_1, c)
	if c.Projection != scene.PerspectiveProjection {
		t.Errorf("1 should switch back to perspective, got %s", c.Projection)
	}

	onKey(sdl.K_2, c)
	if c.Target == nil || *c.Target != (vm.Vec3{}) {
		t.Errorf("2 should target the origin, got %v", c.Target)
	}
	onKey(sdl.K_2, c)
	if c.Target != nil {
		t.Errorf("second 2 should clear the target")
	}

	onKey(sdl.K_RIGHT, c)
	if c.LookDir.ApproxEqual(vm.Vec3{0, 0, 1}, 1e-6) {
		t.Errorf("right arrow did not turn the camera")
	}

	onKey(sdl.K_3, c)
	if c.Pos != (vm.Vec3{0, 0, -3}) || c.LookDir != (vm.Vec3{0, 0, 1}) {
		t.Errorf("reset gave pos %v dir %v", c.Pos, c.LookDir)
	}

	if !onKey(sdl.K_ESCAPE, c) {
		t.Error("escape should quit")
	}
	if onKey(sdl.K_q, c) {
		t.Error("unbound key should not quit")
	}
}

func TestSpin(t *testing.T) {
	m := scene.NewCube()
	base := vm.Translation(0, 0, 2)
	spin(0, m, base)
	if !m.Model.ApproxEqual(base, 1e-6) {
		t.Errorf("spin at t=0 should keep the base transform, got\n%s", m.Model)
	}
	spin(2*time.Second, m, base)
	want := base.Mul(vm.Rotation(vm.ToRad(90), vm.ToRad(45), vm.ToRad(22.5)))
	if !m.Model.ApproxEqual(want, 1e-5) {
		t.Errorf("spin at t=2s:\n%s\nwant:\n%s", m.Model, want)
	}
}

func TestChannel(t *testing.T) {
	if channel(-1) != 255 || channel(0.5) != 127 || channel(3) != 255 {
		t.Errorf("channel = %d %d %d", channel(-1), channel(0.5), channel(3))
	}
}
