package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// newLogger builds the process logger. Full-screen frontends own the
// terminal, so without --log-file they pass fallback = io.Discard.
// The returned close func must be called before exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		//nolint:errcheck // Best-effort close on exit
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, closeFn, nil
}

// runtimeConfig sizes the screen from the terminal when possible.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagDelay > 0 {
		cfg.FrameDelay = time.Duration(flagDelay) * time.Millisecond
	}
	return cfg
}

// createScene applies the global flags and instantiates sceneID.
func createScene(sceneID string, logger *log.Logger) (registry.Scene, error) {
	if !registry.Exists(sceneID) {
		return nil, fmt.Errorf("unknown scene %q (run 'invaders list' to see available scenes)", sceneID)
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetLogger(logger)

	scene, err := registry.Create(sceneID)
	if err != nil {
		return nil, err
	}
	scene.Reset(runtimeConfig())
	return scene, nil
}
