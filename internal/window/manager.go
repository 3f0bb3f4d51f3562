package window

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
)

var (
	ErrNotCreated     = errors.New("window: not created")
	ErrAlreadyCreated = errors.New("window: already created")
)

// Config holds the parameters of the initial window
type Config struct {
	Title        string
	Width        int
	Height       int
	Samples      int
	ContextMajor int
	ContextMinor int
	Icon         []image.Image
}

// DefaultConfig returns an 800x800 window with 8x multisampling on an
// OpenGL 4.1 core context.
func DefaultConfig() Config {
	return Config{
		Title:        "Vox",
		Width:        800,
		Height:       800,
		Samples:      8,
		ContextMajor: 4,
		ContextMinor: 1,
	}
}

// Manager owns the application's single native window and its context.
// It is not safe for concurrent use; every method runs on the main thread.
type Manager struct {
	platform Platform
	cfg      Config
	handlers Callbacks
	log      *slog.Logger

	window     NativeWindow
	fullscreen bool

	width     int
	height    int
	oldWidth  int
	oldHeight int
	cursorX   int
	cursorY   int
	fbWidth   int
	fbHeight  int
}

// New returns a manager that will open its window on p. The handlers receive
// events from whichever native window is current.
func New(p Platform, cfg Config, handlers Callbacks, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		platform: p,
		cfg:      cfg,
		handlers: handlers,
		log:      log,
	}
}

// Create initializes the platform and opens a centered, visible window.
// Failure to initialize leaves nothing to clean up.
func (m *Manager) Create() error {
	if m.window != nil {
		return ErrAlreadyCreated
	}
	if err := m.platform.Init(); err != nil {
		return fmt.Errorf("window: init: %w", err)
	}

	m.platform.WindowHint(HintSamples, m.cfg.Samples)
	m.platform.WindowHint(HintVisible, False)
	if m.cfg.ContextMajor > 0 {
		m.platform.WindowHint(HintContextVersionMajor, m.cfg.ContextMajor)
		m.platform.WindowHint(HintContextVersionMinor, m.cfg.ContextMinor)
		m.platform.WindowHint(HintCoreProfile, True)
		m.platform.WindowHint(HintForwardCompatible, True)
	}

	m.width, m.height = m.cfg.Width, m.cfg.Height
	m.oldWidth, m.oldHeight = m.width, m.height

	w, err := m.platform.CreateWindow(m.width, m.height, m.cfg.Title, false, nil)
	if err != nil {
		m.platform.Terminate()
		return fmt.Errorf("window: create: %w", err)
	}

	m.cursorX, m.cursorY = 0, 0
	m.bind(w)

	m.width, m.height = w.Size()
	m.fbWidth, m.fbHeight = w.FramebufferSize()
	m.center(w)

	w.MakeContextCurrent()
	m.platform.SwapInterval(0)

	if len(m.cfg.Icon) > 0 {
		w.SetIcon(m.cfg.Icon)
	}
	w.Show()

	m.window = w
	m.fullscreen = false
	m.log.Info("window created", "width", m.width, "height", m.height, "samples", m.cfg.Samples)
	return nil
}

// Destroy closes the window and shuts the platform down. Calling it again is
// a no-op.
func (m *Manager) Destroy() {
	if m.window == nil {
		return
	}
	m.window.Destroy()
	m.window = nil
	m.platform.Terminate()
	m.log.Info("window destroyed")
}

// Update samples the cursor position
func (m *Manager) Update(dt float64) {
	if m.window == nil {
		return
	}
	x, y := m.window.CursorPos()
	m.cursorX = int(math.Floor(x))
	m.cursorY = int(math.Floor(y))
}

// Render presents the frame drawn since the previous call
func (m *Manager) Render() {
	if m.window == nil {
		return
	}
	m.window.SwapBuffers()
}

// PollEvents processes pending events; callbacks run before it returns
func (m *Manager) PollEvents() {
	if m.window == nil {
		return
	}
	m.platform.PollEvents()
}

func (m *Manager) GetWindowWidth() int  { return m.width }
func (m *Manager) GetWindowHeight() int { return m.height }
func (m *Manager) GetCursorX() int      { return m.cursorX }
func (m *Manager) GetCursorY() int      { return m.cursorY }
func (m *Manager) IsFullScreen() bool   { return m.fullscreen }

// GetFramebufferSize returns the drawable size in pixels. It differs from the
// window size on HiDPI displays.
func (m *Manager) GetFramebufferSize() (int, int) { return m.fbWidth, m.fbHeight }

// ResizeWindow updates the cached size only
func (m *Manager) ResizeWindow(width, height int) {
	m.width = width
	m.height = height
}

// ShouldCloseWindow reports whether a close was requested. Without a window
// it reports true so a main loop never spins on a dead handle.
func (m *Manager) ShouldCloseWindow() bool {
	if m.window == nil {
		return true
	}
	return m.window.ShouldClose()
}

// RequestClose flags the window for closing as if the user had closed it
func (m *Manager) RequestClose() {
	if m.window != nil {
		m.window.SetShouldClose(true)
	}
}

// ToggleFullScreen switches between windowed and fullscreen mode by opening a
// replacement window that shares the current context. The old window is
// destroyed only once the new one is current and the resize handlers have
// seen the new size. If the replacement cannot be created the current window stays
// in place untouched.
func (m *Manager) ToggleFullScreen(fullscreen bool) error {
	if m.window == nil {
		return ErrNotCreated
	}
	if fullscreen == m.fullscreen {
		return nil
	}

	prevWidth, prevHeight := m.width, m.height
	prevOldWidth, prevOldHeight := m.oldWidth, m.oldHeight

	if fullscreen {
		mode := m.platform.PrimaryVideoMode()
		m.platform.WindowHint(HintRedBits, mode.RedBits)
		m.platform.WindowHint(HintGreenBits, mode.GreenBits)
		m.platform.WindowHint(HintBlueBits, mode.BlueBits)
		m.platform.WindowHint(HintRefreshRate, mode.RefreshRate)

		m.oldWidth, m.oldHeight = m.width, m.height
		m.width, m.height = mode.Width, mode.Height
	} else {
		m.width, m.height = m.oldWidth, m.oldHeight
	}

	next, err := m.platform.CreateWindow(m.width, m.height, m.cfg.Title, fullscreen, m.window)
	if err != nil {
		m.width, m.height = prevWidth, prevHeight
		m.oldWidth, m.oldHeight = prevOldWidth, prevOldHeight
		return fmt.Errorf("window: toggle fullscreen=%t: %w", fullscreen, err)
	}

	m.bind(next)
	next.MakeContextCurrent()
	m.platform.SwapInterval(0)

	m.width, m.height = next.Size()
	if !fullscreen {
		m.center(next)
	}
	if len(m.cfg.Icon) > 0 {
		next.SetIcon(m.cfg.Icon)
	}
	next.Show()

	m.onResize(m.width, m.height)
	fbWidth, fbHeight := next.FramebufferSize()
	m.onFramebufferResize(fbWidth, fbHeight)

	m.window.Destroy()
	m.window = next
	m.fullscreen = fullscreen
	m.log.Info("window mode changed", "fullscreen", fullscreen, "width", m.width, "height", m.height)
	return nil
}

func (m *Manager) bind(w NativeWindow) {
	w.SetCallbacks(Callbacks{
		Resize:            m.onResize,
		FramebufferResize: m.onFramebufferResize,
		Key:               m.handlers.Key,
		MouseButton:       m.handlers.MouseButton,
		Scroll:            m.handlers.Scroll,
	})
}

func (m *Manager) onResize(width, height int) {
	m.ResizeWindow(width, height)
	if m.handlers.Resize != nil {
		m.handlers.Resize(width, height)
	}
}

func (m *Manager) onFramebufferResize(width, height int) {
	m.fbWidth, m.fbHeight = width, height
	if m.handlers.FramebufferResize != nil {
		m.handlers.FramebufferResize(width, height)
	}
}

func (m *Manager) center(w NativeWindow) {
	mode := m.platform.PrimaryVideoMode()
	w.SetPos((mode.Width-m.width)/2, (mode.Height-m.height)/2)
}
