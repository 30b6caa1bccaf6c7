package main

import (
	"fmt"

	"mini-clouds/internal/config"
	"mini-clouds/internal/graphics"
	"mini-clouds/internal/graphics/opengl"
	"mini-clouds/internal/graphics/renderables/clouds"
	"mini-clouds/internal/graphics/renderer"
	"mini-clouds/internal/input"
	"mini-clouds/internal/input/mouselook"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, config.GetWindowTitle(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		// FPS limiter paces frames instead
		glfw.SwapInterval(0)
	}
	// Cursor stays visible until the first left click engages mouse-look
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return window, nil
}

// Scene holds everything the frame loop and the callbacks share
type Scene struct {
	Renderer  *renderer.Renderer
	Input     *input.InputManager
	MouseLook *mouselook.MouseLook
}

func setupScene(window *glfw.Window) (*Scene, error) {
	dev, err := opengl.NewDevice()
	if err != nil {
		return nil, err
	}

	fbW, fbH := window.GetFramebufferSize()
	cam := graphics.NewCamera(fbW, fbH)
	r, err := renderer.NewRenderer(dev, cam, clouds.NewClouds(dev, config.GetCloudShaderDir()))
	if err != nil {
		return nil, err
	}
	r.UpdateViewport(fbW, fbH)

	return &Scene{
		Renderer:  r,
		Input:     input.NewInputManager(),
		MouseLook: mouselook.New(cam),
	}, nil
}
