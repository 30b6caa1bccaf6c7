package config

import "sync"

// RenderSettings holds camera projection and frame pacing configuration
type RenderSettings struct {
	mu          sync.RWMutex
	fov         float32 // vertical, degrees
	nearPlane   float32
	farPlane    float32
	fpsLimit    int // 0 means unlimited
	vsync       bool
	sensitivity float32
	showCamera  bool
}

var globalRenderSettings = &RenderSettings{
	fov:         70.0,
	nearPlane:   0.1,
	farPlane:    1000.0,
	fpsLimit:    0,
	vsync:       true,
	sensitivity: 0.1,
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}

	globalRenderSettings.fov = fov
}

// GetClipPlanes returns the near and far clip distances
func GetClipPlanes() (near, far float32) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.nearPlane, globalRenderSettings.farPlane
}

// SetClipPlanes sets the near and far clip distances. Invalid pairs are ignored.
func SetClipPlanes(near, far float32) {
	if near <= 0 || far <= near {
		return
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.nearPlane = near
	globalRenderSettings.farPlane = far
}

// GetFPSLimit returns the frame cap, 0 when unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values disable the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetVSync returns whether buffer swaps wait for vertical sync
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync enables or disables vertical sync
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

// GetMouseSensitivity returns the degrees of rotation per pixel of cursor travel
func GetMouseSensitivity() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.sensitivity
}

// SetMouseSensitivity sets the degrees of rotation per pixel of cursor travel
func SetMouseSensitivity(s float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 10 {
		s = 10
	}

	globalRenderSettings.sensitivity = s
}

// GetShowCamera returns whether camera direction is logged on every mouse update
func GetShowCamera() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showCamera
}

// SetShowCamera toggles camera direction logging
func SetShowCamera(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showCamera = enabled
}
