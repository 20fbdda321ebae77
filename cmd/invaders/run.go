package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagRunFrames int
	flagNoColor   bool
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Stream frames to stdout",
	Long: `Run the scene without taking over the terminal. Each frame is printed
and the cursor is sent back to the top-left corner, so a terminal shows
the animation in place. With --no-color (or when stdout is not a terminal)
frames are plain text, one after another.

Logs go to stderr unless --log-file is set. Ctrl+C stops the run.

Examples:
  invaders run invaders
  invaders run invaders --frames 100 --no-color > frames.txt
  invaders run patrol --delay 30`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRunFrames, "frames", 0, "Stop after this many frames (0 = run until interrupted)")
	runCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Write plain text frames")
}

func runRun(cmd *cobra.Command, args []string) error {
	sceneID := args[0]

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	scene, err := createScene(sceneID, logger)
	if err != nil {
		return err
	}

	width, height := 80, 30
	if cfg, loadErr := config.Load(sceneID, flagConfig); loadErr == nil {
		width, height = cfg.Playfield.Width, cfg.Playfield.Height
	}
	color := !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
	dst := tui.NewWriterSurface(cmd.OutOrStdout(), width, height, color)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pace := core.NewTickerPacer(scene.FrameDelay())
	defer pace.Stop()

	return scene.Run(ctx, dst, pace, flagRunFrames)
}
