package input

import (
	"sync"

	"vox/internal/window"
)

// Action represents a logical client action, not a physical key
type Action int

const (
	ActionToggleFullScreen Action = iota
	ActionQuit
	ActionToggleFrameStats
	ActionMouseLeft
	ActionMouseRight
	ActionMouseMiddle
	ActionModControl
	ActionModShift
	ActionModAlt
	ActionModSuper
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to logical actions and keeps
// per-frame edge state.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[window.Key][]Action
	mouseButtonToActions map[window.MouseButton][]Action

	currentState [ActionCount]bool

	// Reset by PostUpdate
	justPressed [ActionCount]bool

	scrollX float64
	scrollY float64
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[window.Key][]Action),
		mouseButtonToActions: make(map[window.MouseButton][]Action),
	}

	im.BindKey(window.KeyF11, ActionToggleFullScreen)
	im.BindKey(window.KeyEscape, ActionQuit)
	im.BindKey(window.KeyF3, ActionToggleFrameStats)

	im.BindMouseButton(window.MouseButtonLeft, ActionMouseLeft)
	im.BindMouseButton(window.MouseButtonRight, ActionMouseRight)
	im.BindMouseButton(window.MouseButtonMiddle, ActionMouseMiddle)

	im.BindKey(window.KeyLeftControl, ActionModControl)
	im.BindKey(window.KeyRightControl, ActionModControl)
	im.BindKey(window.KeyLeftShift, ActionModShift)
	im.BindKey(window.KeyRightShift, ActionModShift)
	im.BindKey(window.KeyLeftAlt, ActionModAlt)
	im.BindKey(window.KeyRightAlt, ActionModAlt)
	im.BindKey(window.KeyLeftSuper, ActionModSuper)
	im.BindKey(window.KeyRightSuper, ActionModSuper)

	return im
}

// BindKey binds a physical key to a logical action.
// One key may drive several actions and several keys the same action.
func (im *InputManager) BindKey(key window.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button window.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent has the window.Callbacks key signature so it can be
// registered directly.
func (im *InputManager) HandleKeyEvent(key window.Key, _ int, action window.Action, _ window.ModifierKey) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == window.Press || action == window.Repeat)
}

// HandleMouseButtonEvent has the window.Callbacks mouse button signature
func (im *InputManager) HandleMouseButtonEvent(button window.MouseButton, action window.Action, _ window.ModifierKey) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == window.Press)
}

// HandleScrollEvent accumulates scroll offsets until PostUpdate
func (im *InputManager) HandleScrollEvent(xoff, yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.scrollX += xoff
	im.scrollY += yoff
}

func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		// edges are detected when the event arrives, not at frame end
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = pressed
	}
}

// PostUpdate must be called at the end of each frame, after all input checks
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.justPressed = [ActionCount]bool{}
	im.scrollX, im.scrollY = 0, 0
}

// IsActive returns true while the action is held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only in the frame the action was pressed
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// Scroll returns the scroll offsets accumulated this frame
func (im *InputManager) Scroll() (x, y float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.scrollX, im.scrollY
}
