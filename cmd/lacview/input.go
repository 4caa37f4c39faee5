package main

import (
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"liblac/scene"
	vm "liblac/vecmath"
)

const (
	moveStep = 0.25
	turnStep = 5
)

func resetCamera(c *scene.Camera) {
	c.Pos = vm.Vec3{0, 0, -3}
	c.LookDir = vm.Vec3{0, 0, 1}
	c.ClearTarget()
}

// onKey applies a released key to the camera. It reports whether the key
// asks the viewer to quit.
func onKey(key sdl.Keycode, c *scene.Camera) (quit bool) {
	switch key {
	case sdl.K_ESCAPE:
		return true
	case sdl.K_1:
		if c.Projection == scene.PerspectiveProjection {
			c.Projection = scene.OrthographicProjection
		} else {
			c.Projection = scene.PerspectiveProjection
		}
		log.Printf("Switching projection to -> %s", c.Projection)
	case sdl.K_2:
		if c.Target != nil {
			c.ClearTarget()
		} else {
			c.SetTarget(vm.Vec3{})
		}
	case sdl.K_3:
		resetCamera(c)
	case sdl.K_w:
		c.Move(vm.Vec3{0, 0, moveStep})
	case sdl.K_a:
		c.Move(vm.Vec3{-moveStep, 0, 0})
	case sdl.K_s:
		c.Move(vm.Vec3{0, 0, -moveStep})
	case sdl.K_d:
		c.Move(vm.Vec3{moveStep, 0, 0})
	case sdl.K_LEFT:
		c.Turn(-turnStep, vm.Vec3{0, 1, 0})
	case sdl.K_RIGHT:
		c.Turn(turnStep, vm.Vec3{0, 1, 0})
	case sdl.K_UP:
		c.Turn(-turnStep, vm.Vec3{1, 0, 0})
	case sdl.K_DOWN:
		c.Turn(turnStep, vm.Vec3{1, 0, 0})
	}
	return false
}
