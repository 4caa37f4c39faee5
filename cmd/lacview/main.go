// Command lacview draws the wireframe of a cube or binary STL mesh, projected
// with the liblac camera matrices, into an SDL2 window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"liblac/scene"
	"liblac/stl"
	vm "liblac/vecmath"
)

const PROGRAM_NAME = "lacview"

var (
	width  = flag.Int("width", 1280, "window width in pixels")
	height = flag.Int("height", 720, "window height in pixels")
	fov    = flag.Float64("fov", 45, "vertical field of view in degrees")
	near   = flag.Float64("near", 0.1, "near clipping plane")
	far    = flag.Float64("far", 100, "far clipping plane")
	stlIn  = flag.String("stl", "", "binary STL file to show instead of the cube")
	ortho  = flag.Bool("ortho", false, "start with an orthographic projection")
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

// spin turns the model around all three axes at 45 degrees per second.
func spin(elapsed time.Duration, m *scene.Mesh, base vm.Mat4) {
	a := float32(elapsed.Seconds()) * vm.ToRad(45)
	m.Model = base.Mul(vm.Rotation(a, a*0.5, a*0.25))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", PROGRAM_NAME, err)
	os.Exit(1)
}

func main() {
	flag.Parse()
	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())

	mesh := scene.NewCube()
	if *stlIn != "" {
		m, err := stl.Read(*stlIn)
		if err != nil {
			fatal(err)
		}
		m.Normalize()
		mesh = m
	}

	cam := scene.NewCamera(float32(*fov), float32(*near), float32(*far))
	if *ortho {
		cam.Projection = scene.OrthographicProjection
	}
	resetCamera(cam)

	v, err := NewViewer(PROGRAM_NAME, int32(*width), int32(*height), cam)
	if err != nil {
		fatal(err)
	}
	defer v.Destroy()

	base := mesh.Model
	v.Loop(mesh, func(elapsed time.Duration) {
		spin(elapsed, mesh, base)
	})
}
