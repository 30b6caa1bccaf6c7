package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"mini-clouds/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()
	closer.Bind(func() {
		log.Println("mini-clouds: shutdown complete")
	})

	parseFlags()

	if err := run(); err != nil {
		closer.Fatalln(err)
	}
}

func parseFlags() {
	width, height := config.GetWindowSize()
	near, far := config.GetClipPlanes()
	params := config.GetCloudParams()

	fWidth := flag.Int("width", width, "Window width")
	fHeight := flag.Int("height", height, "Window height")
	fTitle := flag.String("title", config.GetWindowTitle(), "Window title")
	fFOV := flag.Float64("fov", float64(config.GetFOV()), "Vertical field of view in degrees")
	fNear := flag.Float64("near", float64(near), "Near clip plane")
	fFar := flag.Float64("far", float64(far), "Far clip plane")
	fSens := flag.Float64("sensitivity", float64(config.GetMouseSensitivity()), "Mouse-look degrees per pixel")
	fFPS := flag.Int("fps", config.GetFPSLimit(), "Frame rate cap (0 = unlimited)")
	fVSync := flag.Bool("vsync", config.GetVSync(), "Wait for vertical sync on swap")
	fShowCam := flag.Bool("show-cam", config.GetShowCamera(), "Log the camera direction on every mouse move")
	fShaders := flag.String("shaders", config.GetCloudShaderDir(), "Directory holding clouds.vert and clouds.frag")

	fOpacity := flag.Float64("opacity", float64(params.Opacity), "Cloud opacity")
	fScale := flag.Float64("scale", float64(params.Scale), "Cloud noise scale")
	fAmbient := flag.Float64("ambient", float64(params.AmbientBrightMult), "Ambient brightness multiplier")
	fViewDist := flag.Float64("view-distance", float64(params.ViewDistance), "Cloud view distance")
	fSunset := flag.Float64("sunset", float64(params.Sunset), "Sunset factor")
	fSunrise := flag.Float64("sunrise", float64(params.Sunrise), "Sunrise factor")
	fFog := flag.String("fog", "", "Fog color as r,g,b,a")
	flag.Parse()

	config.SetWindowSize(*fWidth, *fHeight)
	config.SetWindowTitle(*fTitle)
	config.SetFOV(float32(*fFOV))
	config.SetClipPlanes(float32(*fNear), float32(*fFar))
	config.SetMouseSensitivity(float32(*fSens))
	config.SetFPSLimit(*fFPS)
	config.SetVSync(*fVSync)
	config.SetShowCamera(*fShowCam)
	config.SetCloudShaderDir(*fShaders)

	params.Opacity = float32(*fOpacity)
	params.Scale = float32(*fScale)
	params.AmbientBrightMult = float32(*fAmbient)
	params.ViewDistance = float32(*fViewDist)
	params.Sunset = float32(*fSunset)
	params.Sunrise = float32(*fSunrise)
	if *fFog != "" {
		fog, err := parseColor(*fFog)
		if err != nil {
			log.Printf("ignoring -fog: %v", err)
		} else {
			params.FogColor = fog
		}
	}
	config.SetCloudParams(params)
}

func parseColor(s string) (mgl32.Vec4, error) {
	var c mgl32.Vec4
	if _, err := fmt.Sscanf(s, "%f,%f,%f,%f", &c[0], &c[1], &c[2], &c[3]); err != nil {
		return mgl32.Vec4{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	scene, err := setupScene(window)
	if err != nil {
		return err
	}
	defer scene.Renderer.Dispose()

	setupInputHandlers(window, scene)

	NewGameLoop(window, scene).Run()
	return nil
}
