package config

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// CloudParams are the constant inputs of the cloud shader
type CloudParams struct {
	Opacity           float32
	Scale             float32
	AmbientBrightMult float32
	ViewDistance      float32
	Sunset            float32
	Sunrise           float32
	FogColor          mgl32.Vec4
}

// DefaultCloudParams returns the values the cloud shader was tuned against
func DefaultCloudParams() CloudParams {
	return CloudParams{
		Opacity:           1.0,
		Scale:             1.0,
		AmbientBrightMult: 1.0,
		ViewDistance:      8.0,
		Sunset:            0.0,
		Sunrise:           0.0,
		FogColor:          mgl32.Vec4{0, 0, 0, 1},
	}
}

// CloudSettings holds cloud render configuration
type CloudSettings struct {
	mu        sync.RWMutex
	params    CloudParams
	shaderDir string
}

var globalCloudSettings = &CloudSettings{
	params:    DefaultCloudParams(),
	shaderDir: "assets/shaders/clouds",
}

// GetCloudParams returns a copy of the current cloud shader constants
func GetCloudParams() CloudParams {
	globalCloudSettings.mu.RLock()
	defer globalCloudSettings.mu.RUnlock()
	return globalCloudSettings.params
}

// SetCloudParams replaces the cloud shader constants
func SetCloudParams(p CloudParams) {
	globalCloudSettings.mu.Lock()
	defer globalCloudSettings.mu.Unlock()

	// Opacity is a blend factor
	if p.Opacity < 0 {
		p.Opacity = 0
	}
	if p.Opacity > 1 {
		p.Opacity = 1
	}
	if p.ViewDistance < 0 {
		p.ViewDistance = 0
	}

	globalCloudSettings.params = p
}

// GetCloudShaderDir returns the directory holding clouds.vert and clouds.frag
func GetCloudShaderDir() string {
	globalCloudSettings.mu.RLock()
	defer globalCloudSettings.mu.RUnlock()
	return globalCloudSettings.shaderDir
}

// SetCloudShaderDir sets the directory holding clouds.vert and clouds.frag
func SetCloudShaderDir(dir string) {
	if dir == "" {
		return
	}
	globalCloudSettings.mu.Lock()
	defer globalCloudSettings.mu.Unlock()
	globalCloudSettings.shaderDir = dir
}
