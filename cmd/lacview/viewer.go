package main

import (
	"fmt"
	"log"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"

	"liblac/scene"
)

// Viewer owns the SDL window and renderer the wireframe is drawn with.
type Viewer struct {
	Win *sdl.Window
	Ren *sdl.Renderer
	Cam *scene.Camera

	Width     int32
	Height    int32
	Minimized bool
	Close     bool
}

func NewViewer(title string, w int32, h int32, cam *scene.Camera) (*Viewer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}
	win, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		w,
		h,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create SDL window: %w", err)
	}
	ren, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create SDL renderer: %w", err)
	}
	log.Printf("Created SDL window. Title: \"%s\", Width: %d, Height: %d", title, w, h)
	v := &Viewer{Win: win, Ren: ren, Cam: cam}
	v.resize(w, h)
	return v, nil
}

func (v *Viewer) Destroy() {
	if err := v.Ren.Destroy(); err != nil {
		log.Printf("Failed to destroy renderer: %v", err)
	}
	if err := v.Win.Destroy(); err != nil {
		log.Printf("Failed to destroy window: %v", err)
	}
	sdl.Quit()
}

func (v *Viewer) resize(w int32, h int32) {
	v.Width, v.Height = w, h
	if h > 0 {
		v.Cam.Aspect = float32(w) / float32(h)
	}
}

// Loop polls events and redraws the mesh until the window is closed. update
// runs before every frame with the time since the loop started.
func (v *Viewer) Loop(m *scene.Mesh, update func(time.Duration)) {
	t0 := time.Now()
	frames := 0
	edges := m.Edges()
	v.Close = false
	for !v.Close {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				v.Close = true
			case *sdl.WindowEvent:
				switch ev.Event {
				case sdl.WINDOWEVENT_RESIZED:
					v.resize(ev.Data1, ev.Data2)
				case sdl.WINDOWEVENT_MINIMIZED:
					v.Minimized = true
				case sdl.WINDOWEVENT_RESTORED:
					v.Minimized = false
				}
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYUP && onKey(ev.Keysym.Sym, v.Cam) {
					v.Close = true
				}
			}
		}
		if v.Minimized {
			sdl.WaitEvent()
			continue
		}
		update(time.Since(t0))
		if err := v.draw(m, edges); err != nil {
			log.Printf("Failed to draw frame: %v", err)
			return
		}
		frames++
	}
	dt := time.Since(t0)
	log.Printf("Elapsed: %v, rough avg fps: %v fps", dt, float64(frames)/dt.Seconds())
}

func (v *Viewer) draw(m *scene.Mesh, edges []scene.Edge) error {
	if err := v.Ren.SetDrawColor(16, 16, 24, 255); err != nil {
		return err
	}
	if err := v.Ren.Clear(); err != nil {
		return err
	}
	mvp := m.Model.Mul(v.Cam.ViewProjection())
	w, h := float32(v.Width), float32(v.Height)
	for _, e := range edges {
		a, b := m.Vertices[e.A], m.Vertices[e.B]
		x1, y1, ok1 := scene.Project(a.Pos, mvp, w, h)
		x2, y2, ok2 := scene.Project(b.Pos, mvp, w, h)
		if !ok1 || !ok2 {
			continue
		}
		c := a.Color.Add(b.Color).Mul(0.5)
		if err := v.Ren.SetDrawColor(channel(c[0]), channel(c[1]), channel(c[2]), 255); err != nil {
			return err
		}
		if err := v.Ren.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2)); err != nil {
			return err
		}
	}
	v.Ren.Present()
	return nil
}

// channel maps a colour component to a byte. Negative components (STL
// normals) are mirrored.
func channel(f float32) uint8 {
	f = math32.Abs(f)
	if f > 1 {
		f = 1
	}
	return uint8(f * 255)
}
