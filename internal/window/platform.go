package window

import "image"

// Hint is a window creation hint. Hints apply to every window created after
// they are set.
type Hint int

const (
	HintSamples Hint = iota
	HintVisible
	HintRedBits
	HintGreenBits
	HintBlueBits
	HintRefreshRate
	HintContextVersionMajor
	HintContextVersionMinor
	HintCoreProfile
	HintForwardCompatible
)

// Boolean hint values
const (
	False = 0
	True  = 1
)

// VideoMode describes the current mode of a display
type VideoMode struct {
	Width       int
	Height      int
	RedBits     int
	GreenBits   int
	BlueBits    int
	RefreshRate int
}

// Callbacks are the event handlers attached to a native window. Any of them
// may be nil. Resize reports screen coordinates; FramebufferResize reports
// pixels, which is what the viewport needs.
type Callbacks struct {
	Resize            func(width, height int)
	FramebufferResize func(width, height int)
	Key               func(key Key, scancode int, action Action, mods ModifierKey)
	MouseButton       func(button MouseButton, action Action, mods ModifierKey)
	Scroll            func(xoff, yoff float64)
}

// Platform is the windowing library. All methods must be called from the
// main thread.
type Platform interface {
	Init() error
	Terminate()
	WindowHint(hint Hint, value int)
	PrimaryVideoMode() VideoMode
	// CreateWindow opens a window with its own context. Fullscreen windows are
	// bound to the primary display. The new context shares objects with share
	// when share is not nil.
	CreateWindow(width, height int, title string, fullscreen bool, share NativeWindow) (NativeWindow, error)
	SwapInterval(interval int)
	PollEvents()
}

// NativeWindow is one live window and its rendering context
type NativeWindow interface {
	Size() (width, height int)
	FramebufferSize() (width, height int)
	SetPos(x, y int)
	Show()
	MakeContextCurrent()
	SwapBuffers()
	CursorPos() (x, y float64)
	ShouldClose() bool
	SetShouldClose(value bool)
	SetCallbacks(cb Callbacks)
	SetIcon(images []image.Image)
	Destroy()
}
