package game

import (
	"context"
	"image"
	"log/slog"
	"strings"
	"time"

	"vox/internal/config"
	"vox/internal/input"
	"vox/internal/profiling"
	"vox/internal/window"
)

// slowFrame is the processing time above which a frame is logged
const slowFrame = 16 * time.Millisecond

// Renderer draws one frame into the current context
type Renderer interface {
	SetViewport(width, height int)
	Draw(dt float64)
}

// App is the host application. It owns the window and drives the frame loop
// on the main thread.
type App struct {
	window       *window.Manager
	inputManager *input.InputManager
	renderer     Renderer
	settings     config.Settings
	log          *slog.Logger

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	frames      int
	lastStats   time.Time
	toggleFails int
	clicks      int
}

// NewApp prepares the application; the window opens on Start
func NewApp(p window.Platform, settings config.Settings, icon []image.Image, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		inputManager: input.NewInputManager(),
		settings:     settings,
		log:          log,
		fpsLimiter:   NewFPSLimiter(),
	}

	cfg := window.DefaultConfig()
	cfg.Title = settings.Window.Title
	cfg.Width = settings.Window.Width
	cfg.Height = settings.Window.Height
	cfg.Samples = settings.Window.Samples
	cfg.Icon = icon

	a.window = window.New(p, cfg, window.Callbacks{
		Resize:            a.ResizeWindow,
		FramebufferResize: a.ResizeFramebuffer,
		Key:               a.inputManager.HandleKeyEvent,
		MouseButton:       a.inputManager.HandleMouseButtonEvent,
		Scroll:            a.inputManager.HandleScrollEvent,
	}, log.With("component", "window"))
	return a
}

// Window exposes the window manager
func (a *App) Window() *window.Manager { return a.window }

// Input exposes the action state
func (a *App) Input() *input.InputManager { return a.inputManager }

// SetRenderer attaches the frame renderer. It must be created after Start
// since it needs a current context.
func (a *App) SetRenderer(r Renderer) {
	a.renderer = r
	if r != nil {
		r.SetViewport(a.window.GetFramebufferSize())
	}
}

// Start opens the window, switching to fullscreen when configured
func (a *App) Start() error {
	if err := a.window.Create(); err != nil {
		return err
	}
	config.SetFPSLimit(a.settings.FPSLimit)
	if a.settings.Window.Fullscreen {
		if err := a.window.ToggleFullScreen(true); err != nil {
			a.log.Warn("fullscreen unavailable, staying windowed", "err", err)
		}
	}
	now := time.Now()
	a.lastTime = now
	a.lastStats = now
	return nil
}

// Stop closes the window. Safe to call more than once.
func (a *App) Stop() {
	a.window.Destroy()
}

// ResizeWindow receives window size changes, including the synthetic one
// sent after a fullscreen toggle. The manager has already cached the size.
func (a *App) ResizeWindow(width, height int) {
	a.log.Debug("window resized", "width", width, "height", height)
}

// ResizeFramebuffer follows the drawable size in pixels
func (a *App) ResizeFramebuffer(width, height int) {
	if a.renderer != nil {
		a.renderer.SetViewport(width, height)
	}
	a.log.Debug("framebuffer resized", "width", width, "height", height)
}

// Run ticks until the window is asked to close or ctx is done
func (a *App) Run(ctx context.Context) {
	for !a.window.ShouldCloseWindow() && ctx.Err() == nil {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("window.PollEvents")(); a.window.PollEvents() }()
	a.window.Update(dt)

	a.handleInputActions()

	if a.renderer != nil {
		func() { defer profiling.Track("renderer.Draw")(); a.renderer.Draw(dt) }()
	}
	func() { defer profiling.Track("window.Render")(); a.window.Render() }()

	a.frames++
	if d := time.Since(start); d > slowFrame {
		a.log.Warn("slow frame",
			"duration", d,
			"window", profiling.FormatMs(profiling.SumWithPrefix("window.")),
			"top", profiling.TopN(5))
	}
	if config.GetFrameStats() && time.Since(a.lastStats) >= time.Second {
		a.logFrameStats()
		a.frames = 0
		a.lastStats = time.Now()
	}

	a.inputManager.PostUpdate() // clear edge flags and scroll

	a.fpsLimiter.Wait(config.GetFPSLimit())
}

func (a *App) logFrameStats() {
	fbWidth, fbHeight := a.window.GetFramebufferSize()
	scrollX, scrollY := a.inputManager.Scroll()
	a.log.Info("frame stats",
		"fps", a.frames,
		"cursor_x", a.window.GetCursorX(),
		"cursor_y", a.window.GetCursorY(),
		"width", a.window.GetWindowWidth(),
		"height", a.window.GetWindowHeight(),
		"fb_width", fbWidth,
		"fb_height", fbHeight,
		"scroll_x", scrollX,
		"scroll_y", scrollY,
		"mods", heldModifiers(a.inputManager))
}

var modifierNames = []struct {
	action input.Action
	name   string
}{
	{input.ActionModControl, "ctrl"},
	{input.ActionModShift, "shift"},
	{input.ActionModAlt, "alt"},
	{input.ActionModSuper, "super"},
}

// heldModifiers lists the modifier actions currently down, e.g. "ctrl+shift"
func heldModifiers(im *input.InputManager) string {
	var held []string
	for _, m := range modifierNames {
		if im.IsActive(m.action) {
			held = append(held, m.name)
		}
	}
	return strings.Join(held, "+")
}

func (a *App) handleInputActions() {
	if a.inputManager.JustPressed(input.ActionToggleFullScreen) {
		want := !a.window.IsFullScreen()
		if err := a.window.ToggleFullScreen(want); err != nil {
			a.toggleFails++
			a.log.Warn("fullscreen toggle failed", "fullscreen", want, "err", err)
		}
	}

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.RequestClose()
	}

	if a.inputManager.JustPressed(input.ActionToggleFrameStats) {
		on := config.ToggleFrameStats()
		a.log.Info("frame stats", "enabled", on)
	}

	for _, b := range mouseActions {
		if a.inputManager.JustPressed(b.action) {
			a.clicks++
			a.log.Debug("click", "button", b.name,
				"x", a.window.GetCursorX(), "y", a.window.GetCursorY())
		}
	}
}

var mouseActions = []struct {
	action input.Action
	name   string
}{
	{input.ActionMouseLeft, "left"},
	{input.ActionMouseRight, "right"},
	{input.ActionMouseMiddle, "middle"},
}
