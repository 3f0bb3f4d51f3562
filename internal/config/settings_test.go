package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 8, cfg.Window.Samples)
	assert.False(t, cfg.Window.Fullscreen)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Vox", cfg.Window.Title)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vox.yaml")
	data := `
window:
  width: 1280
  height: 720
  fullscreen: true
fps_limit: 60
log:
  level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, 8, cfg.Window.Samples, "unset keys keep defaults")
	assert.Equal(t, "Vox", cfg.Window.Title)
	assert.Equal(t, 60, cfg.FPSLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Defaults()
	err := Decode(strings.NewReader("window:\n  colour: red\n"), &cfg)
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Decode(strings.NewReader(""), &cfg))
	assert.Equal(t, Defaults(), cfg)
}

func TestApplyEnv(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(lookupFrom(map[string]string{
		"VOX_WINDOW_WIDTH": "1024",
		"VOX_FULLSCREEN":   "true",
		"VOX_FPS_LIMIT":    " 0 ",
		"VOX_LOG_FORMAT":   "json",
		"VOX_CONTENT_ROOT": "/opt/vox",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, 0, cfg.FPSLimit)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/opt/vox", cfg.ContentRoot)
}

func TestApplyEnvBadValue(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(lookupFrom(map[string]string{"VOX_WINDOW_HEIGHT": "tall"}))
	assert.ErrorIs(t, err, ErrInvalid)

	err = cfg.ApplyEnv(lookupFrom(map[string]string{"VOX_FULLSCREEN": "maybe"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Settings){
		"tiny width":    func(s *Settings) { s.Window.Width = 10 },
		"huge samples":  func(s *Settings) { s.Window.Samples = 64 },
		"no title":      func(s *Settings) { s.Window.Title = "" },
		"negative fps":  func(s *Settings) { s.FPSLimit = -1 },
		"bad log level": func(s *Settings) { s.Log.Level = "verbose" },
		"bad format":    func(s *Settings) { s.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFPSLimitClamp(t *testing.T) {
	prev := GetFPSLimit()
	defer SetFPSLimit(prev)

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, MaxFPSLimit, GetFPSLimit())
	SetFPSLimit(60)
	assert.Equal(t, 60, GetFPSLimit())
}

func TestToggleFrameStats(t *testing.T) {
	start := GetFrameStats()
	assert.Equal(t, !start, ToggleFrameStats())
	assert.Equal(t, start, ToggleFrameStats())
}

func TestExampleSettingsFile(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "..", "vox.yaml"))
	require.NoError(t, err)
	defer f.Close()

	cfg := Defaults()
	require.NoError(t, Decode(f, &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 144, cfg.FPSLimit)
}
