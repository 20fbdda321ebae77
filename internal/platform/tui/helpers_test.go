package tui

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// stubScene draws a single marker that moves one column per step.
type stubScene struct {
	steps  int
	resets int
}

func (s *stubScene) ID() string    { return "stub" }
func (s *stubScene) Title() string { return "Stub" }

func (s *stubScene) Reset(core.RuntimeConfig) {
	s.steps = 0
	s.resets++
}

func (s *stubScene) Step() core.StepResult {
	s.steps++
	return core.StepResult{State: s.State()}
}

func (s *stubScene) Render(dst core.Surface) {
	dst.SetCell(s.steps, 1, 'A', core.ColorRed)
}

func (s *stubScene) State() core.SceneState {
	return core.SceneState{Frame: s.steps, EnemiesAlive: 2, EnemiesTotal: 3}
}

func (s *stubScene) FrameDelay() time.Duration {
	return 10 * time.Millisecond
}

func (s *stubScene) Run(context.Context, core.Surface, core.Pacer, int) error {
	return nil
}
