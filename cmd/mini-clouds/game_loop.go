package main

import (
	"fmt"
	"log"
	"time"

	"mini-clouds/internal/game"
	"mini-clouds/internal/input"
	"mini-clouds/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the frame time above which the top profiling buckets are logged
const slowFrame = 16 * time.Millisecond

// GameLoop drives rendering and event pumping until the window closes
type GameLoop struct {
	window     *glfw.Window
	scene      *Scene
	fpsLimiter *game.FPSLimiter

	showProfiling    bool
	lastFrames       uint64
	lastFPSCheckTime time.Time
}

func NewGameLoop(window *glfw.Window, s *Scene) *GameLoop {
	return &GameLoop{
		window:           window,
		scene:            s,
		fpsLimiter:       game.NewFPSLimiter(),
		lastFPSCheckTime: time.Now(),
	}
}

// Run ticks until the window is asked to close
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		gl.tick()
	}
}

func (gl *GameLoop) tick() {
	profiling.ResetFrame()
	start := time.Now()

	// clear + draw, present, then pump events for the next frame
	gl.scene.Renderer.RenderFrame(glfw.GetTime())

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	im := gl.scene.Input
	if im.JustPressed(input.ActionToggleProfiling) {
		gl.showProfiling = !gl.showProfiling
	}

	// Clear edge flags at end of frame
	im.PostUpdate()

	gl.updateProfiling(start)

	gl.fpsLimiter.Wait()
}

func (gl *GameLoop) updateProfiling(start time.Time) {
	frameDur := time.Since(start)
	if frameDur > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", frameDur, profiling.TopN(3))
	}

	if time.Since(gl.lastFPSCheckTime) >= time.Second {
		frames := gl.scene.Renderer.Frames()
		fmt.Println("FPS: ", frames-gl.lastFrames)
		if gl.showProfiling {
			fmt.Printf("render %s, glfw %s\n",
				profiling.SumWithPrefix("renderer."), profiling.SumWithPrefix("glfw."))
		}
		gl.lastFrames = frames
		gl.lastFPSCheckTime = time.Now()
	}
}
