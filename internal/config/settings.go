package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MaxFPSLimit is the highest accepted frame cap
const MaxFPSLimit = 1000

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Settings is the on-disk client configuration
type Settings struct {
	Window      WindowSettings `yaml:"window"`
	FPSLimit    int            `yaml:"fps_limit" validate:"min=0,max=1000"`
	ContentRoot string         `yaml:"content_root"`
	Log         LogSettings    `yaml:"log"`
}

type WindowSettings struct {
	Title      string `yaml:"title" validate:"required"`
	Width      int    `yaml:"width" validate:"min=64,max=16384"`
	Height     int    `yaml:"height" validate:"min=64,max=16384"`
	Samples    int    `yaml:"samples" validate:"min=0,max=32"`
	Fullscreen bool   `yaml:"fullscreen"`
	Icon       string `yaml:"icon"`
}

type LogSettings struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Defaults returns the settings used when no file is given
func Defaults() Settings {
	return Settings{
		Window: WindowSettings{
			Title:   "Vox",
			Width:   800,
			Height:  800,
			Samples: 8,
		},
		FPSLimit:    144,
		ContentRoot: ".",
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds settings from defaults, the YAML file at path (skipped when
// path is empty), a .env file in the working directory and VOX_* variables,
// in that order, and validates the result.
func Load(path string) (Settings, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(bytes.NewReader(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode reads YAML into cfg; keys not present leave cfg untouched and
// unknown keys are rejected.
func Decode(r io.Reader, cfg *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from VOX_* variables
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"VOX_WINDOW_WIDTH", &s.Window.Width},
		{"VOX_WINDOW_HEIGHT", &s.Window.Height},
		{"VOX_WINDOW_SAMPLES", &s.Window.Samples},
		{"VOX_FPS_LIMIT", &s.FPSLimit},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, e.key, v, err)
		}
		*e.dst = n
	}

	if v, ok := lookup("VOX_FULLSCREEN"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: VOX_FULLSCREEN=%q: %v", ErrInvalid, v, err)
		}
		s.Window.Fullscreen = b
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"VOX_WINDOW_TITLE", &s.Window.Title},
		{"VOX_WINDOW_ICON", &s.Window.Icon},
		{"VOX_CONTENT_ROOT", &s.ContentRoot},
		{"VOX_LOG_LEVEL", &s.Log.Level},
		{"VOX_LOG_FORMAT", &s.Log.Format},
	}
	for _, e := range strs {
		if v, ok := lookup(e.key); ok {
			*e.dst = v
		}
	}
	return nil
}

var validate = validator.New()

// Validate checks ranges. Log level and format are compared case-insensitively.
func (s *Settings) Validate() error {
	s.Log.Level = strings.ToLower(s.Log.Level)
	s.Log.Format = strings.ToLower(s.Log.Format)
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
