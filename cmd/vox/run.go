package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"sync"

	"vox/internal/config"
	"vox/internal/game"
	"vox/internal/graphics/renderer"
	"vox/internal/logger"
	"vox/internal/registry"
	"vox/internal/window/glfwplatform"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
)

func loadSettings(cmd *cobra.Command) (config.Settings, *slog.Logger, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return settings, nil, err
	}
	if cmd.Flags().Changed("fullscreen") {
		settings.Window.Fullscreen = fullscreen
	}
	if logLevel != "" {
		settings.Log.Level = logLevel
		if err := settings.Validate(); err != nil {
			return settings, nil, err
		}
	}
	log := logger.New(os.Stderr, settings.Log.Level, settings.Log.Format)
	slog.SetDefault(log)
	return settings, log, nil
}

func runClient(cmd *cobra.Command, args []string) error {
	settings, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if rep, err := registry.Verify(settings.ContentRoot); err != nil {
		log.Warn("item content check failed", "err", err)
	} else if !rep.OK() {
		log.Warn("item definitions missing", "root", rep.Root, "missing", len(rep.Missing), "checked", rep.Checked)
	}

	var icon []image.Image
	if settings.Window.Icon != "" {
		icon, err = glfwplatform.LoadIcon(settings.Window.Icon)
		if err != nil {
			log.Warn("window icon not loaded", "err", err)
		}
	}

	app := game.NewApp(glfwplatform.New(), settings, icon, log)

	// A signal cancels the loop; the window is torn down on the main
	// thread before the process exits.
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			app.Stop()
			close(stopped)
		})
	}
	closer.Bind(func() {
		cancel()
		<-stopped
	})

	if err := app.Start(); err != nil {
		stop()
		closer.Fatalln(fmt.Errorf("start window: %w", err))
	}
	if err := gl.Init(); err != nil {
		stop()
		closer.Fatalln(fmt.Errorf("init OpenGL: %w", err))
	}
	log.Info("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	app.SetRenderer(renderer.NewRenderer(app.Window().GetFramebufferSize()))

	app.Run(ctx)
	stop()
	closer.Close()
	return nil
}
