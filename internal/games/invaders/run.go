package invaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Cycle clears dst, renders the scene onto it and presents it.
func (c *Controller) Cycle(dst core.Surface) error {
	dst.Clear()
	c.Render(dst)
	return dst.Present()
}

// Run drives the scene until ctx is cancelled or maxFrames steps have run
// (0 = no limit). Each iteration presents a frame, waits on pace, then
// steps the simulation. The context is the only stop signal; cancelling it
// is not an error.
func (c *Controller) Run(ctx context.Context, dst core.Surface, pace core.Pacer, maxFrames int) error {
	c.logger.Info("scene started", "scene", c.id, "enemies", len(c.enemies), "delay", c.FrameDelay())

	for frames := 0; maxFrames <= 0 || frames < maxFrames; frames++ {
		if ctx.Err() != nil {
			break
		}
		if err := c.Cycle(dst); err != nil {
			return fmt.Errorf("present frame %d: %w", c.steps, err)
		}
		if err := pace.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return err
		}
		c.Step()
	}

	st := c.State()
	c.logger.Info("scene stopped", "scene", c.id, "frame", st.Frame, "enemies_alive", st.EnemiesAlive)
	return nil
}
