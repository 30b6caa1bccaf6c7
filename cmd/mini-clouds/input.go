package main

import (
	"log"

	"mini-clouds/internal/config"
	"mini-clouds/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// zoomStep is the FOV change in degrees per scroll notch
const zoomStep = 2

// windowCursor captures the cursor of a GLFW window for mouse-look
type windowCursor struct {
	window *glfw.Window
}

func (c windowCursor) CaptureCursor() {
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func setupInputHandlers(window *glfw.Window, s *Scene) {
	im := s.Input
	cursor := windowCursor{window: window}

	im.OnPress(input.ActionMouseLook, func() {
		s.MouseLook.Engage(cursor)
	})
	im.OnPress(input.ActionQuit, func() {
		window.SetShouldClose(true)
	})
	im.OnPress(input.ActionToggleCameraTrace, func() {
		enabled := !config.GetShowCamera()
		config.SetShowCamera(enabled)
		log.Printf("camera trace: %v", enabled)
	})

	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		s.MouseLook.HandleCursor(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Scroll zooms by narrowing the field of view
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		config.SetFOV(config.GetFOV() - float32(yoff)*zoomStep)
		s.Renderer.GetCamera().SetFOV(config.GetFOV())
	})

	// Projection follows the framebuffer, which differs from the window size on HiDPI
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		s.Renderer.UpdateViewport(fbWidth, fbHeight)
	})
}
