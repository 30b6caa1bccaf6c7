package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMouseLook Action = iota
	ActionReleaseMouse
	ActionQuit
	ActionToggleProfiling
	ActionToggleCameraTrace
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMouseLook:         "mouse-look",
	ActionReleaseMouse:      "release-mouse",
	ActionQuit:              "quit",
	ActionToggleProfiling:   "toggle-profiling",
	ActionToggleCameraTrace: "toggle-camera-trace",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps physical keys/buttons to logical actions, tracks their
// held state with per-frame edge flags, and runs press handlers in event order.
type InputManager struct {
	mu sync.RWMutex

	// One key can map to multiple actions
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Press handlers, run outside the lock on the released->pressed edge
	onPress [ActionCount][]func()

	held         [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyC, ActionToggleCameraTrace)

	// ActionReleaseMouse has no default binding: mouse-look is one-way.
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLook)

	return im
}

func validAction(a Action) bool {
	return a >= 0 && a < ActionCount
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action (e.g., Escape and Q both quit).
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if !validAction(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if !validAction(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// OnPress registers fn to run every time action goes from released to pressed
func (im *InputManager) OnPress(action Action, fn func()) {
	if !validAction(action) || fn == nil {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.onPress[action] = append(im.onPress[action], fn)
}

// HandleKeyEvent processes a key event. Key repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions := im.keyToActions[key]
	im.mu.RUnlock()

	im.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	im.apply(actions, action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, pressed bool) {
	if len(actions) == 0 {
		return
	}

	var handlers []func()
	im.mu.Lock()
	for _, act := range actions {
		if pressed && !im.held[act] {
			im.justPressed[act] = true
			handlers = append(handlers, im.onPress[act]...)
		}
		if !pressed && im.held[act] {
			im.justReleased[act] = true
		}
		im.held[act] = pressed
	}
	im.mu.Unlock()

	// Handlers may call back into the manager
	for _, fn := range handlers {
		fn()
	}
}

// PostUpdate clears the edge flags. Call once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if !validAction(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.held[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if !validAction(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if !validAction(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
