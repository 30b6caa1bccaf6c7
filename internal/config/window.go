package config

import "sync"

// WindowSettings holds the initial window configuration
type WindowSettings struct {
	mu     sync.RWMutex
	width  int
	height int
	title  string
}

var globalWindowSettings = &WindowSettings{
	width:  800,
	height: 600,
	title:  "mini-clouds",
}

// GetWindowSize returns the initial window size in screen coordinates
func GetWindowSize() (width, height int) {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.width, globalWindowSettings.height
}

// SetWindowSize sets the initial window size. Non-positive dimensions are ignored.
func SetWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.width = width
	globalWindowSettings.height = height
}

// GetWindowTitle returns the window title
func GetWindowTitle() string {
	globalWindowSettings.mu.RLock()
	defer globalWindowSettings.mu.RUnlock()
	return globalWindowSettings.title
}

// SetWindowTitle sets the window title
func SetWindowTitle(title string) {
	globalWindowSettings.mu.Lock()
	defer globalWindowSettings.mu.Unlock()
	globalWindowSettings.title = title
}
