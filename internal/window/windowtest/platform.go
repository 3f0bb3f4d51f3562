// Package windowtest provides an in-memory window.Platform for tests that
// must run without a display.
package windowtest

import (
	"fmt"
	"image"

	"vox/internal/window"
)

// Platform records every call made to it. Events queued with Queue run on
// the next PollEvents, the way a real event loop delivers them.
type Platform struct {
	Mode window.VideoMode
	// Scale is the framebuffer pixels per screen coordinate, 2 for HiDPI
	Scale     int
	InitErr   error
	CreateErr error

	Initialized bool
	Terminated  bool
	Hints       map[window.Hint]int
	Intervals   []int
	Windows     []*Window
	Current     *Window

	// Log holds an ordered trace: "create 1", "current 2", "destroy 1", ...
	Log []string

	pending []func()
}

// NewPlatform returns a platform whose primary display is 1920x1080
func NewPlatform() *Platform {
	return &Platform{
		Mode: window.VideoMode{
			Width:       1920,
			Height:      1080,
			RedBits:     8,
			GreenBits:   8,
			BlueBits:    8,
			RefreshRate: 60,
		},
		Scale: 1,
		Hints: make(map[window.Hint]int),
	}
}

func (p *Platform) Init() error {
	p.record("init")
	if p.InitErr != nil {
		return p.InitErr
	}
	p.Initialized = true
	return nil
}

func (p *Platform) Terminate() {
	p.record("terminate")
	p.Terminated = true
}

func (p *Platform) WindowHint(hint window.Hint, value int) {
	p.Hints[hint] = value
}

func (p *Platform) PrimaryVideoMode() window.VideoMode {
	return p.Mode
}

func (p *Platform) CreateWindow(width, height int, title string, fullscreen bool, share window.NativeWindow) (window.NativeWindow, error) {
	if p.CreateErr != nil {
		p.record("create failed")
		return nil, p.CreateErr
	}
	visible, set := p.Hints[window.HintVisible]
	w := &Window{
		p:          p,
		ID:         len(p.Windows) + 1,
		Width:      width,
		Height:     height,
		Title:      title,
		Fullscreen: fullscreen,
		Visible:    !set || visible != window.False,
	}
	if s, ok := share.(*Window); ok {
		w.Share = s
	}
	p.Windows = append(p.Windows, w)
	p.record(fmt.Sprintf("create %d", w.ID))
	return w, nil
}

func (p *Platform) SwapInterval(interval int) {
	p.Intervals = append(p.Intervals, interval)
}

func (p *Platform) PollEvents() {
	events := p.pending
	p.pending = nil
	for _, fn := range events {
		fn()
	}
}

// Queue schedules fn to run during the next PollEvents
func (p *Platform) Queue(fn func()) {
	p.pending = append(p.pending, fn)
}

// Record appends an entry to the trace; tests use it from handlers to check
// ordering against platform calls.
func (p *Platform) Record(entry string) {
	p.record(entry)
}

// Live returns the windows that have not been destroyed
func (p *Platform) Live() []*Window {
	var out []*Window
	for _, w := range p.Windows {
		if !w.Destroyed {
			out = append(out, w)
		}
	}
	return out
}

// Last returns the most recently created window, or nil
func (p *Platform) Last() *Window {
	if len(p.Windows) == 0 {
		return nil
	}
	return p.Windows[len(p.Windows)-1]
}

func (p *Platform) scale() int {
	if p.Scale < 1 {
		return 1
	}
	return p.Scale
}

func (p *Platform) record(entry string) {
	p.Log = append(p.Log, entry)
}

// Window is a fake native window
type Window struct {
	p *Platform

	ID         int
	Title      string
	Width      int
	Height     int
	X          int
	Y          int
	Fullscreen bool
	Share      *Window
	Visible    bool
	Destroyed  bool
	Close      bool
	CursorX    float64
	CursorY    float64
	Swaps      int
	Icon       []image.Image
	Callbacks  window.Callbacks
}

func (w *Window) Size() (int, int) { return w.Width, w.Height }

func (w *Window) FramebufferSize() (int, int) {
	return w.Width * w.p.scale(), w.Height * w.p.scale()
}

func (w *Window) SetPos(x, y int) {
	w.X, w.Y = x, y
}

func (w *Window) Show() {
	w.Visible = true
	w.p.record(fmt.Sprintf("show %d", w.ID))
}

func (w *Window) MakeContextCurrent() {
	w.p.Current = w
	w.p.record(fmt.Sprintf("current %d", w.ID))
}

func (w *Window) SwapBuffers() { w.Swaps++ }

func (w *Window) CursorPos() (float64, float64) { return w.CursorX, w.CursorY }

func (w *Window) ShouldClose() bool { return w.Close }

func (w *Window) SetShouldClose(value bool) { w.Close = value }

func (w *Window) SetCallbacks(cb window.Callbacks) {
	w.Callbacks = cb
	w.p.record(fmt.Sprintf("callbacks %d", w.ID))
}

func (w *Window) SetIcon(images []image.Image) { w.Icon = images }

func (w *Window) Destroy() {
	w.Destroyed = true
	if w.p.Current == w {
		w.p.Current = nil
	}
	w.p.record(fmt.Sprintf("destroy %d", w.ID))
}

// Resize queues an OS resize of w. Like GLFW, the window size callback runs
// first, then the framebuffer one.
func (w *Window) Resize(width, height int) {
	w.p.Queue(func() {
		w.Width, w.Height = width, height
		if w.Callbacks.Resize != nil {
			w.Callbacks.Resize(width, height)
		}
		if w.Callbacks.FramebufferResize != nil {
			w.Callbacks.FramebufferResize(w.FramebufferSize())
		}
	})
}

// Key queues a key event on w
func (w *Window) Key(key window.Key, action window.Action) {
	w.p.Queue(func() {
		if w.Callbacks.Key != nil {
			w.Callbacks.Key(key, 0, action, 0)
		}
	})
}

// Click queues a mouse button event on w
func (w *Window) Click(button window.MouseButton, action window.Action) {
	w.p.Queue(func() {
		if w.Callbacks.MouseButton != nil {
			w.Callbacks.MouseButton(button, action, 0)
		}
	})
}

// Scroll queues a scroll event on w
func (w *Window) Scroll(xoff, yoff float64) {
	w.p.Queue(func() {
		if w.Callbacks.Scroll != nil {
			w.Callbacks.Scroll(xoff, yoff)
		}
	})
}

// RequestClose simulates the user closing w
func (w *Window) RequestClose() {
	w.p.Queue(func() { w.Close = true })
}
