package config

import (
	_ "embed"
)

// Scene identifiers with built-in defaults.
const (
	SceneInvaders = "invaders"
	ScenePatrol   = "patrol"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/patrol.yaml
var defaultPatrolYAML []byte

// DefaultInvadersConfig returns the full-scene configuration: a ship at
// (20, 24) against a 5x3 enemy formation.
func DefaultInvadersConfig() SceneConfig {
	return SceneConfig{
		Title: "Invaders",
		Playfield: PlayfieldConfig{
			Width:  80,
			Height: 30,
			MinX:   0,
			MaxX:   60,
		},
		Timing: TimingConfig{
			FrameDelayMS: 100,
		},
		Ship: ShipConfig{
			X: 20,
			Y: 24,
			Shape: []string{
				`    /\  `,
				`\  |==|  /`,
				` ||====||`,
				`   \__/  `,
			},
			Color:      "white",
			Period:     45,
			FireEvery:  10,
			FireOffset: Offset{X: 3, Y: -1},
			FirePhase:  FireBeforeAdvance,
		},
		Projectile: ProjectileConfig{
			Glyph:  "^",
			Color:  "bright_blue",
			Expiry: ExpireTop,
		},
		Enemies: EnemiesConfig{
			Cols:    5,
			Rows:    3,
			Origin:  Offset{X: 10, Y: 3},
			Spacing: Offset{X: 10, Y: 5},
			Shape: []string{
				` /M\ `,
				`<-O->`,
				` \_/ `,
			},
			Color:        "bright_red",
			Period:       15,
			DescentEvery: 80,
		},
		Collision: CollisionConfig{
			Center: Offset{X: 2, Y: 1},
			Radius: Offset{X: 3, Y: 2},
		},
	}
}

// DefaultPatrolConfig returns the ship-only configuration.
func DefaultPatrolConfig() SceneConfig {
	return SceneConfig{
		Title: "Patrol",
		Playfield: PlayfieldConfig{
			Width:  80,
			Height: 80,
			MinX:   0,
			MaxX:   60,
		},
		Timing: TimingConfig{
			FrameDelayMS: 90,
		},
		Ship: ShipConfig{
			X: 20,
			Y: 20,
			Shape: []string{
				`   /\   `,
				`  /==\  `,
				` |====| `,
				` |====| `,
				`<<\__/>>`,
			},
			Color:      "red",
			Period:     50,
			FireEvery:  5,
			FireOffset: Offset{X: 4, Y: -1},
			FirePhase:  FireAfterPrune,
		},
		Projectile: ProjectileConfig{
			Glyph:  "|",
			Color:  "yellow",
			Expiry: ExpireOffscreen,
		},
		Collision: CollisionConfig{
			Center: Offset{X: 2, Y: 1},
			Radius: Offset{X: 3, Y: 2},
		},
	}
}

// Default returns the hardcoded configuration for a scene.
func Default(sceneID string) (SceneConfig, bool) {
	switch sceneID {
	case SceneInvaders:
		return DefaultInvadersConfig(), true
	case ScenePatrol:
		return DefaultPatrolConfig(), true
	default:
		return SceneConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case SceneInvaders:
		return defaultInvadersYAML
	case ScenePatrol:
		return defaultPatrolYAML
	default:
		return nil
	}
}
