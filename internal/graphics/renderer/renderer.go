package renderer

import (
	"fmt"
	"log"

	"mini-clouds/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor is the background behind the clouds
var ClearColor = mgl32.Vec4{0, 0, 0, 1}

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	dev         graphics.Device
	camera      *graphics.Camera
	renderables []Renderable

	lastElapsed float64
	frames      uint64
}

// NewRenderer configures global GL state and initializes every renderable.
// The first Init error aborts construction.
func NewRenderer(dev graphics.Device, cam *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	log.Printf("OpenGL version: %s", dev.Version())

	// Configure OpenGL
	dev.Enable(graphics.CapDepthTest)
	dev.DepthFunc(graphics.FuncLess)
	dev.Enable(graphics.CapBlend)
	dev.BlendFunc(graphics.FactorSrcAlpha, graphics.FactorOneMinusSrcAlpha)
	dev.Enable(graphics.CapCullFace)
	dev.CullFace(graphics.FaceBack)
	dev.FrontFace(graphics.WindingClockwise)

	renderer := &Renderer{
		dev:         dev,
		camera:      cam,
		renderables: rs,
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// Release the ones that already succeeded
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, r, err)
		}
	}

	return renderer, nil
}

// RenderFrame clears the target and draws every renderable.
// elapsed is the frame clock in seconds since startup.
func (r *Renderer) RenderFrame(elapsed float64) {
	r.dev.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	r.dev.Clear()

	dt := 0.0
	if r.frames > 0 {
		dt = elapsed - r.lastElapsed
	}
	r.lastElapsed = elapsed
	r.frames++

	// Snapshot releases the camera lock before any GPU call below
	ctx := RenderContext{
		Camera:  r.camera.Snapshot(),
		Elapsed: elapsed,
		DT:      dt,
	}

	// Render all features
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Frames returns how many frames have been rendered
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport applies a framebuffer resize to the device, the camera
// projection and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.dev.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
