package tcellui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// IsQuitKey reports whether ev asks to leave the scene.
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// watchEvents cancels the run when a quit key arrives and repaints on
// resize. It returns when the screen is finalized.
func watchEvents(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if IsQuitKey(ev) {
				cancel()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// RunOn plays scene on an initialized screen until ctx is cancelled, a quit
// key is pressed or maxFrames steps have run. The caller owns the screen.
func RunOn(ctx context.Context, screen tcell.Screen, scene registry.Scene, maxFrames int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go watchEvents(screen, cancel)

	pace := core.NewTickerPacer(scene.FrameDelay())
	defer pace.Stop()

	return scene.Run(ctx, NewSurface(screen), pace, maxFrames)
}

// Run opens the terminal, plays scene and restores the terminal on return.
func Run(ctx context.Context, scene registry.Scene, maxFrames int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	return RunOn(ctx, screen, scene, maxFrames)
}
