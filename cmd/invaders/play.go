package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tcellui"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	flagBackend string
	flagFrames  int
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Watch a scene full-screen",
	Long: `Start the specified scene in the alternate screen.

Controls:
  P/Space    - Pause (tea backend)
  R          - Restart (tea backend)
  ?          - Toggle help (tea backend)
  Q/Esc      - Quit

Backends:
  tea    - Bubble Tea frontend with status line (default)
  tcell  - Direct tcell rendering driven by the scene's own loop

Examples:
  invaders play invaders
  invaders play patrol --backend tcell
  invaders play invaders --delay 50
  invaders play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Frontend: tea or tcell")
	playCmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after this many steps (0 = run until quit)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	return play(args[0])
}

func play(sceneID string) error {
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	scene, err := createScene(sceneID, logger)
	if err != nil {
		return err
	}

	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = tcellui.Run(ctx, scene, flagFrames)
	default:
		err = tui.Run(scene, runtimeConfig(), flagFrames)
	}
	if err != nil {
		logger.Error("scene failed", "scene", sceneID, "error", err)
		return fmt.Errorf("running scene: %w", err)
	}
	return nil
}
