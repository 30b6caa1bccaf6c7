package graphics

import (
	"log"
	"math"
	"sync"

	"mini-clouds/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is kept away from ±90 so cross(worldUp, direction) never degenerates.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// CameraSnapshot is an immutable copy of the camera state taken under its lock
type CameraSnapshot struct {
	Yaw, Pitch float32
	FOV        float32
	Aspect     float32
	Position   mgl32.Vec3
	Direction  mgl32.Vec3
	Right      mgl32.Vec3
	Up         mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
	MVP        mgl32.Mat4
}

// Camera handles orientation, the derived basis and the view/projection matrices.
// Every mutation holds mu for the full orientation+matrix update, so readers
// going through Snapshot never observe a half-applied change.
type Camera struct {
	mu sync.Mutex

	yaw   float32
	pitch float32

	position  mgl32.Vec3
	direction mgl32.Vec3
	right     mgl32.Vec3
	up        mgl32.Vec3

	sensitivity float32

	aspectRatio float32
	fov         float32
	nearPlane   float32
	farPlane    float32

	model      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4
	mvp        mgl32.Mat4
}

func NewCamera(width, height int) *Camera {
	near, far := config.GetClipPlanes()
	c := &Camera{
		sensitivity: config.GetMouseSensitivity(),
		aspectRatio: aspect(width, height, 1),
		fov:         config.GetFOV(),
		nearPlane:   near,
		farPlane:    far,
		model:       mgl32.Ident4(),
	}
	c.updateVectors()
	c.recalculate()
	return c
}

func aspect(width, height int, fallback float32) float32 {
	if width <= 0 || height <= 0 {
		return fallback
	}
	return float32(width) / float32(height)
}

// OnMouseDelta rotates the camera by a raw cursor delta in pixels.
// dx turns right, positive dy (cursor moving down the screen) looks down.
func (c *Camera) OnMouseDelta(dx, dy float64) {
	dir := func() mgl32.Vec3 {
		c.mu.Lock()
		defer c.mu.Unlock()
		s := float64(c.sensitivity)
		c.yaw += float32(dx * s)
		c.pitch -= float32(dy * s)
		c.pitch = clampPitch(c.pitch)
		c.updateVectors()
		c.recalculate()
		return c.direction
	}()

	if config.GetShowCamera() {
		log.Printf("Cam dir: %v, %v, %v", dir.X(), dir.Y(), dir.Z())
	}
}

// SetRotation sets yaw and pitch in degrees; pitch is clamped
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateVectors()
	c.recalculate()
}

// SetPosition moves the eye
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = pos
	c.recalculate()
}

// SetSensitivity sets degrees of rotation per pixel
func (c *Camera) SetSensitivity(s float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sensitivity = s
}

// Sensitivity returns degrees of rotation per pixel
func (c *Camera) Sensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sensitivity
}

// SetViewport updates the aspect ratio after a resize. A zero-sized
// (minimized) viewport keeps the previous aspect.
func (c *Camera) SetViewport(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspectRatio = aspect(width, height, c.aspectRatio)
	c.recalculate()
}

// SetFOV sets the vertical field of view in degrees and rebuilds the projection
func (c *Camera) SetFOV(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.recalculate()
}

// Recalculate rebuilds view, projection and mvp from the current state
func (c *Camera) Recalculate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recalculate()
}

// Snapshot copies the state the renderer needs; the lock is released on return
func (c *Camera) Snapshot() CameraSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CameraSnapshot{
		Yaw:        c.yaw,
		Pitch:      c.pitch,
		FOV:        c.fov,
		Aspect:     c.aspectRatio,
		Position:   c.position,
		Direction:  c.direction,
		Right:      c.right,
		Up:         c.up,
		View:       c.view,
		Projection: c.projection,
		MVP:        c.mvp,
	}
}

// updateVectors derives direction, right and up from yaw/pitch. Caller holds mu.
func (c *Camera) updateVectors() {
	y := float64(mgl32.DegToRad(c.yaw))
	p := float64(mgl32.DegToRad(c.pitch))
	c.direction = mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
	c.right = worldUp.Cross(c.direction).Normalize()
	c.up = c.direction.Cross(c.right).Normalize()
}

// recalculate rebuilds the matrices. Caller holds mu.
func (c *Camera) recalculate() {
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.direction), c.up)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspectRatio, c.nearPlane, c.farPlane)
	c.mvp = c.projection.Mul4(c.view).Mul4(c.model)
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < MinPitch {
		return MinPitch
	}
	return p
}
