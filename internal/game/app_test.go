package game

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"vox/internal/config"
	"vox/internal/window"
	"vox/internal/window/windowtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	viewports [][2]int
	draws     int
}

func (r *fakeRenderer) SetViewport(w, h int) { r.viewports = append(r.viewports, [2]int{w, h}) }
func (r *fakeRenderer) Draw(dt float64)      { r.draws++ }

func newApp(t *testing.T, mutate func(*config.Settings)) (*App, *windowtest.Platform, *fakeRenderer) {
	t.Helper()
	return newAppOn(t, windowtest.NewPlatform(), nil, mutate)
}

func newAppOn(t *testing.T, p *windowtest.Platform, log *slog.Logger, mutate func(*config.Settings)) (*App, *windowtest.Platform, *fakeRenderer) {
	t.Helper()
	settings := config.Defaults()
	settings.FPSLimit = 0
	if mutate != nil {
		mutate(&settings)
	}
	a := NewApp(p, settings, nil, log)
	require.NoError(t, a.Start())
	t.Cleanup(a.Stop)

	r := &fakeRenderer{}
	a.SetRenderer(r)
	return a, p, r
}

func TestStartOpensConfiguredWindow(t *testing.T) {
	a, p, r := newApp(t, func(s *config.Settings) {
		s.Window.Width = 1024
		s.Window.Height = 640
		s.Window.Samples = 4
	})
	assert.Equal(t, 1024, a.Window().GetWindowWidth())
	assert.Equal(t, 640, a.Window().GetWindowHeight())
	assert.Equal(t, 4, p.Hints[window.HintSamples])
	assert.Equal(t, [][2]int{{1024, 640}}, r.viewports)
	assert.False(t, a.Window().ShouldCloseWindow())
}

func TestStartFullscreen(t *testing.T) {
	a, p, _ := newApp(t, func(s *config.Settings) { s.Window.Fullscreen = true })
	assert.True(t, a.Window().IsFullScreen())
	assert.Len(t, p.Live(), 1)
	assert.True(t, p.Last().Fullscreen)
}

func TestStartFailure(t *testing.T) {
	p := windowtest.NewPlatform()
	p.InitErr = errors.New("no display")
	a := NewApp(p, config.Defaults(), nil, nil)
	assert.Error(t, a.Start())
}

func TestTickPresentsFrame(t *testing.T) {
	a, p, r := newApp(t, nil)
	p.Last().CursorX, p.Last().CursorY = 33.7, 12.2

	a.tick()
	assert.Equal(t, 1, r.draws)
	assert.Equal(t, 1, p.Last().Swaps)
	assert.Equal(t, 33, a.Window().GetCursorX())
	assert.Equal(t, 12, a.Window().GetCursorY())
}

func TestResizeReachesRenderer(t *testing.T) {
	a, p, r := newApp(t, nil)
	p.Last().Resize(640, 480)
	a.tick()
	assert.Equal(t, [2]int{640, 480}, r.viewports[len(r.viewports)-1])
	assert.Equal(t, 640, a.Window().GetWindowWidth())
}

func TestHiDPIViewportUsesFramebuffer(t *testing.T) {
	p := windowtest.NewPlatform()
	p.Scale = 2
	a, _, r := newAppOn(t, p, nil, nil)
	assert.Equal(t, [][2]int{{1600, 1600}}, r.viewports)

	p.Last().Resize(640, 480)
	a.tick()
	assert.Equal(t, [2]int{1280, 960}, r.viewports[len(r.viewports)-1])
	assert.Equal(t, 640, a.Window().GetWindowWidth())
	assert.Equal(t, 480, a.Window().GetWindowHeight())

	p.Last().Key(window.KeyF11, window.Press)
	a.tick()
	assert.Equal(t, [2]int{3840, 2160}, r.viewports[len(r.viewports)-1])
	assert.Equal(t, 1920, a.Window().GetWindowWidth())
}

func TestFrameStatsReportInput(t *testing.T) {
	if !config.GetFrameStats() {
		config.ToggleFrameStats()
		t.Cleanup(func() { config.ToggleFrameStats() })
	}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a, p, _ := newAppOn(t, windowtest.NewPlatform(), log, nil)

	w := p.Last()
	w.Key(window.KeyLeftShift, window.Press)
	w.Key(window.KeyRightControl, window.Press)
	w.Scroll(0, 1.5)
	w.Click(window.MouseButtonLeft, window.Press)
	a.lastStats = time.Now().Add(-2 * time.Second)
	a.tick()

	out := buf.String()
	assert.Contains(t, out, "mods=ctrl+shift")
	assert.Contains(t, out, "scroll_y=1.5")
	assert.Contains(t, out, "button=left")
	assert.Equal(t, 1, a.clicks)

	// scroll is per frame, modifiers stay held
	x, y := a.Input().Scroll()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Equal(t, "ctrl+shift", heldModifiers(a.Input()))
}

func TestF11TogglesFullscreen(t *testing.T) {
	a, p, r := newApp(t, nil)

	p.Last().Key(window.KeyF11, window.Press)
	a.tick()
	assert.True(t, a.Window().IsFullScreen())
	assert.Equal(t, [2]int{1920, 1080}, r.viewports[len(r.viewports)-1])

	// the new window delivers events to the same handlers
	p.Last().Key(window.KeyF11, window.Release)
	a.tick()
	p.Last().Key(window.KeyF11, window.Press)
	a.tick()
	assert.False(t, a.Window().IsFullScreen())
	assert.Equal(t, 800, a.Window().GetWindowWidth())
	assert.Equal(t, 800, a.Window().GetWindowHeight())
	assert.Len(t, p.Live(), 1)
}

func TestFailedToggleKeepsRunning(t *testing.T) {
	a, p, _ := newApp(t, nil)
	p.CreateErr = errors.New("refused")

	p.Last().Key(window.KeyF11, window.Press)
	a.tick()
	assert.False(t, a.Window().IsFullScreen())
	assert.Equal(t, 1, a.toggleFails)
	assert.False(t, a.Window().ShouldCloseWindow())
}

func TestEscapeEndsRun(t *testing.T) {
	a, p, r := newApp(t, nil)
	p.Last().Key(window.KeyEscape, window.Press)

	a.Run(context.Background())
	assert.True(t, a.Window().ShouldCloseWindow())
	assert.Equal(t, 1, r.draws)
}

func TestUserCloseEndsRun(t *testing.T) {
	a, p, r := newApp(t, nil)
	a.tick()
	p.Last().RequestClose()

	a.Run(context.Background())
	assert.Equal(t, 2, r.draws)
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _, r := newApp(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a.Run(ctx)
	assert.Zero(t, r.draws)
	assert.False(t, a.Window().ShouldCloseWindow())
}

func TestStop(t *testing.T) {
	a, p, _ := newApp(t, nil)
	a.Stop()
	assert.True(t, p.Terminated)
	assert.True(t, a.Window().ShouldCloseWindow())
}

func TestFPSLimiterUnlimitedReturnsImmediately(t *testing.T) {
	f := NewFPSLimiter()
	f.Wait(0)
	f.Wait(-1)
	assert.True(t, f.next.IsZero())
}

func TestFPSLimiterSchedulesNextFrame(t *testing.T) {
	f := NewFPSLimiter()
	f.Wait(1000)
	assert.False(t, f.next.IsZero())
}
