// Package mouselook turns absolute cursor positions into camera rotation
// deltas while mouse-look is engaged.
package mouselook

import "sync"

// Rotator receives raw cursor deltas in pixels; *graphics.Camera satisfies it
type Rotator interface {
	OnMouseDelta(dx, dy float64)
}

// CursorCapturer hides the cursor and switches the window to relative motion
type CursorCapturer interface {
	CaptureCursor()
}

// MouseLook holds the cursor tracking state for one window.
// The first cursor sample after activation only sets the baseline, so
// re-engaging never produces a jump from wherever the cursor wandered.
type MouseLook struct {
	mu sync.Mutex

	rot         Rotator
	active      bool
	firstSample bool
	lastX       float64
	lastY       float64
}

func New(rot Rotator) *MouseLook {
	return &MouseLook{rot: rot, firstSample: true}
}

// Engage captures the cursor and activates mouse-look. Every left press calls
// this; only an inactive->active transition re-primes the baseline.
func (m *MouseLook) Engage(c CursorCapturer) {
	if c != nil {
		c.CaptureCursor()
	}
	m.Activate()
}

// Activate marks mouse-look active and arms the first-sample baseline
// if it was inactive
func (m *MouseLook) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		return
	}
	m.active = true
	m.firstSample = true
}

// Deactivate stops forwarding cursor motion. The next activation starts from
// a fresh baseline.
func (m *MouseLook) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = false
	m.firstSample = true
}

// Active reports whether cursor motion currently rotates the camera
func (m *MouseLook) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// HandleCursor consumes an absolute cursor position in pixels
func (m *MouseLook) HandleCursor(x, y float64) {
	m.mu.Lock()
	if !m.active {
		m.mu.Unlock()
		return
	}
	if m.firstSample {
		m.lastX, m.lastY = x, y
		m.firstSample = false
		m.mu.Unlock()
		return
	}
	dx, dy := x-m.lastX, y-m.lastY
	m.lastX, m.lastY = x, y
	m.mu.Unlock()

	m.rot.OnMouseDelta(dx, dy)
}
