package scene

import (
	"liblac/internal/diag"
	vm "liblac/vecmath"
)

type ProjectionType int

const (
	PerspectiveProjection ProjectionType = iota
	OrthographicProjection
)

func (p ProjectionType) String() string {
	switch p {
	case PerspectiveProjection:
		return "perspective"
	case OrthographicProjection:
		return "orthographic"
	default:
		return "unknown"
	}
}

type Camera struct {
	Projection ProjectionType

	// Projection matrix precursors, Fov is the vertical field of view in degrees
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32

	Pos     vm.Vec3
	LookDir vm.Vec3
	Target  *vm.Vec3
	Up      vm.Vec3
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	return &Camera{
		Fov:     fov,
		Aspect:  1,
		Near:    near,
		Far:     far,
		LookDir: vm.Vec3{0, 0, 1},
		Up:      vm.Vec3{0, 1, 0},
	}
}

func (c *Camera) Move(v vm.Vec3) {
	c.Pos = c.Pos.Add(v)
}

// Turn rotates the free look direction around axis.
func (c *Camera) Turn(deg float32, axis vm.Vec3) {
	c.LookDir = c.LookDir.TransformDir(vm.RotationAxis(axis, vm.ToRad(deg)))
}

func (c *Camera) SetTarget(v vm.Vec3) {
	c.Target = &v
}

func (c *Camera) ClearTarget() {
	c.Target = nil
}

// View returns the world-to-camera matrix, facing Target when set and along
// LookDir otherwise.
func (c *Camera) View() vm.Mat4 {
	dir := c.LookDir
	if c.Target != nil {
		dir = c.Target.Sub(c.Pos)
	}
	if dir.Len() == 0 {
		diag.Warnf("failed to calculate view direction, target - position = [0,0,0]; using +z")
		dir = vm.Vec3{0, 0, 1}
	}
	return vm.LookAt(c.Pos, c.Pos.Add(dir), c.Up)
}

func (c *Camera) ProjectionMatrix() vm.Mat4 {
	switch c.Projection {
	case PerspectiveProjection:
		return vm.Perspective(c.Aspect, vm.ToRad(c.Fov), c.Near, c.Far)
	case OrthographicProjection:
		return vm.Orthographic(-c.Aspect, c.Aspect, -1, 1, c.Near, c.Far)
	default:
		diag.Logf(diag.Error, "unknown projection type %d, returning identity", int(c.Projection))
		return vm.Ident4()
	}
}

func (c *Camera) ViewProjection() vm.Mat4 {
	return c.View().Mul(c.ProjectionMatrix())
}

// Project maps the world point p through mvp onto a width x height viewport
// with the origin in the top left corner. ok is false for points that are not
// in front of the camera.
func Project(p vm.Vec3, mvp vm.Mat4, width float32, height float32) (x float32, y float32, ok bool) {
	clip := p.Extend(1).MulMat(mvp)
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndc := clip.PerspectiveDivide()
	return (ndc[0] + 1) * 0.5 * width, (1 - ndc[1]) * 0.5 * height, true
}
