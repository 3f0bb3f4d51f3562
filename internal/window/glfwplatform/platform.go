// Package glfwplatform implements window.Platform on GLFW 3.3.
package glfwplatform

import (
	"fmt"
	"image"

	"vox/internal/window"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var hints = map[window.Hint]glfw.Hint{
	window.HintSamples:             glfw.Samples,
	window.HintVisible:             glfw.Visible,
	window.HintRedBits:             glfw.RedBits,
	window.HintGreenBits:           glfw.GreenBits,
	window.HintBlueBits:            glfw.BlueBits,
	window.HintRefreshRate:         glfw.RefreshRate,
	window.HintContextVersionMajor: glfw.ContextVersionMajor,
	window.HintContextVersionMinor: glfw.ContextVersionMinor,
	window.HintForwardCompatible:   glfw.OpenGLForwardCompatible,
}

// Platform is the GLFW windowing backend. GLFW must only be used from the
// main OS thread, so callers lock it with runtime.LockOSThread.
type Platform struct{}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

func (p *Platform) Terminate() {
	glfw.Terminate()
}

func (p *Platform) WindowHint(hint window.Hint, value int) {
	if hint == window.HintCoreProfile {
		if value != window.False {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		} else {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
		}
		return
	}
	if h, ok := hints[hint]; ok {
		glfw.WindowHint(h, value)
	}
}

func (p *Platform) PrimaryVideoMode() window.VideoMode {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return window.VideoMode{}
	}
	vm := monitor.GetVideoMode()
	if vm == nil {
		return window.VideoMode{}
	}
	return window.VideoMode{
		Width:       vm.Width,
		Height:      vm.Height,
		RedBits:     vm.RedBits,
		GreenBits:   vm.GreenBits,
		BlueBits:    vm.BlueBits,
		RefreshRate: vm.RefreshRate,
	}
}

func (p *Platform) CreateWindow(width, height int, title string, fullscreen bool, share window.NativeWindow) (window.NativeWindow, error) {
	var monitor *glfw.Monitor
	if fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	var shared *glfw.Window
	if w, ok := share.(*Window); ok && w != nil {
		shared = w.w
	}

	w, err := glfw.CreateWindow(width, height, title, monitor, shared)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &Window{w: w}, nil
}

func (p *Platform) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

// Window wraps a *glfw.Window
type Window struct {
	w *glfw.Window
}

func (w *Window) Size() (int, int) { return w.w.GetSize() }

func (w *Window) FramebufferSize() (int, int) { return w.w.GetFramebufferSize() }

func (w *Window) SetPos(x, y int) { w.w.SetPos(x, y) }

func (w *Window) Show() { w.w.Show() }

func (w *Window) MakeContextCurrent() { w.w.MakeContextCurrent() }

func (w *Window) SwapBuffers() { w.w.SwapBuffers() }

func (w *Window) CursorPos() (float64, float64) { return w.w.GetCursorPos() }

func (w *Window) ShouldClose() bool { return w.w.ShouldClose() }

func (w *Window) SetShouldClose(value bool) { w.w.SetShouldClose(value) }

func (w *Window) SetIcon(images []image.Image) { w.w.SetIcon(images) }

func (w *Window) Destroy() { w.w.Destroy() }

// SetCallbacks installs cb on the GLFW window. The key and button codes are
// passed through unchanged since window uses the GLFW numbering.
func (w *Window) SetCallbacks(cb window.Callbacks) {
	if cb.Resize != nil {
		w.w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
			cb.Resize(width, height)
		})
	} else {
		w.w.SetSizeCallback(nil)
	}

	if cb.FramebufferResize != nil {
		w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
			cb.FramebufferResize(width, height)
		})
	} else {
		w.w.SetFramebufferSizeCallback(nil)
	}

	if cb.Key != nil {
		w.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			cb.Key(window.Key(key), scancode, window.Action(action), window.ModifierKey(mods))
		})
	} else {
		w.w.SetKeyCallback(nil)
	}

	if cb.MouseButton != nil {
		w.w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
			cb.MouseButton(window.MouseButton(button), window.Action(action), window.ModifierKey(mods))
		})
	} else {
		w.w.SetMouseButtonCallback(nil)
	}

	if cb.Scroll != nil {
		w.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
			cb.Scroll(xoff, yoff)
		})
	} else {
		w.w.SetScrollCallback(nil)
	}
}
