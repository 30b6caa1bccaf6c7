package renderer

import (
	"mini-clouds/internal/graphics"
)

// RenderContext provides shared per-frame context for all renderables.
// Camera is a snapshot: renderables never touch the live camera or its lock.
type RenderContext struct {
	Camera  graphics.CameraSnapshot
	Elapsed float64 // seconds since startup
	DT      float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
