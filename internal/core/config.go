package core

import "time"

// RuntimeConfig contains configuration passed to scenes at initialization.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	FrameDelay time.Duration // Pause between presenting a frame and advancing (0 = scene default)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 30,
	}
}

// SceneState is a read-only summary of a scene after a step.
type SceneState struct {
	Frame        int // Completed simulation steps
	Projectiles  int // Live projectiles owned by the ship
	EnemiesAlive int // Enemies with alive == true
	EnemiesTotal int // Roster size, fixed after setup
}

// StepResult is returned by a scene after each simulation step.
type StepResult struct {
	State  SceneState
	Killed []int // Roster indices of enemies killed during this step
}
