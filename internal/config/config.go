// Package config provides YAML-based scene configuration loading for the
// invaders simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SceneConfig contains all configuration for one scene preset.
type SceneConfig struct {
	Title      string           `yaml:"title"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Timing     TimingConfig     `yaml:"timing"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Collision  CollisionConfig  `yaml:"collision"`
}

// PlayfieldConfig defines the logical field the entities move in.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	MinX   int `yaml:"min_x"` // Left clamp bound for the ship
	MaxX   int `yaml:"max_x"` // Right clamp bound for the ship
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FrameDelayMS int `yaml:"frame_delay_ms"`
}

// Offset is a relative grid displacement.
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// FirePhase selects where in the ship's advance a shot is spawned.
type FirePhase string

const (
	// FireBeforeAdvance spawns the shot before projectiles move, so it
	// travels one cell on the frame it is fired.
	FireBeforeAdvance FirePhase = "before_advance"
	// FireAfterPrune spawns the shot after projectiles moved and expired
	// ones were removed.
	FireAfterPrune FirePhase = "after_prune"
)

// ShipConfig defines the player ship.
type ShipConfig struct {
	X          int       `yaml:"x"`
	Y          int       `yaml:"y"`
	Shape      []string  `yaml:"shape"`
	Color      string    `yaml:"color"`
	Period     int       `yaml:"period"`     // Frames per zig-zag leg
	FireEvery  int       `yaml:"fire_every"` // Fire cadence in frames
	FireOffset Offset    `yaml:"fire_offset"`
	FirePhase  FirePhase `yaml:"fire_phase"`
}

// ExpiryMode selects the projectile removal predicate.
type ExpiryMode string

const (
	// ExpireTop removes projectiles once y < 0.
	ExpireTop ExpiryMode = "top"
	// ExpireOffscreen removes projectiles once y leaves [0, playfield height].
	ExpireOffscreen ExpiryMode = "offscreen"
)

// ProjectileConfig defines the projectile glyph and lifetime.
type ProjectileConfig struct {
	Glyph  string     `yaml:"glyph"`
	Color  string     `yaml:"color"`
	Expiry ExpiryMode `yaml:"expiry"`
}

// EnemiesConfig defines the enemy formation and movement.
type EnemiesConfig struct {
	Cols         int      `yaml:"cols"`
	Rows         int      `yaml:"rows"`
	Origin       Offset   `yaml:"origin"`
	Spacing      Offset   `yaml:"spacing"`
	Shape        []string `yaml:"shape"`
	Color        string   `yaml:"color"`
	Period       int      `yaml:"period"`
	DescentEvery int      `yaml:"descent_every"` // 0 disables descent
	Clamp        bool     `yaml:"clamp"`         // Clamp x to the playfield bounds
}

// CollisionConfig defines the proximity hit test.
type CollisionConfig struct {
	Center       Offset `yaml:"center"` // Offset from enemy origin to its visual center
	Radius       Offset `yaml:"radius"` // Exclusive hit thresholds per axis
	ConsumeOnHit bool   `yaml:"consume_on_hit"`
}

// Validate reports the first problem that would make the scene misbehave.
func (c SceneConfig) Validate() error {
	if c.Playfield.MaxX < c.Playfield.MinX {
		return fmt.Errorf("%w: playfield max_x %d < min_x %d", ErrInvalidConfig, c.Playfield.MaxX, c.Playfield.MinX)
	}
	if c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield height must be positive", ErrInvalidConfig)
	}
	if c.Timing.FrameDelayMS < 0 {
		return fmt.Errorf("%w: negative frame_delay_ms", ErrInvalidConfig)
	}
	if len(c.Ship.Shape) == 0 {
		return fmt.Errorf("%w: ship shape is empty", ErrInvalidConfig)
	}
	if c.Ship.Period <= 0 || c.Ship.FireEvery <= 0 {
		return fmt.Errorf("%w: ship period and fire_every must be positive", ErrInvalidConfig)
	}
	switch c.Ship.FirePhase {
	case FireBeforeAdvance, FireAfterPrune:
	default:
		return fmt.Errorf("%w: unknown fire_phase %q", ErrInvalidConfig, c.Ship.FirePhase)
	}
	if len([]rune(c.Projectile.Glyph)) != 1 {
		return fmt.Errorf("%w: projectile glyph must be a single character, got %q", ErrInvalidConfig, c.Projectile.Glyph)
	}
	switch c.Projectile.Expiry {
	case ExpireTop, ExpireOffscreen:
	default:
		return fmt.Errorf("%w: unknown projectile expiry %q", ErrInvalidConfig, c.Projectile.Expiry)
	}
	if c.Enemies.Cols < 0 || c.Enemies.Rows < 0 {
		return fmt.Errorf("%w: negative enemy formation size", ErrInvalidConfig)
	}
	if c.Enemies.Cols*c.Enemies.Rows > 0 {
		if len(c.Enemies.Shape) == 0 {
			return fmt.Errorf("%w: enemy shape is empty", ErrInvalidConfig)
		}
		if c.Enemies.Period <= 0 {
			return fmt.Errorf("%w: enemy period must be positive", ErrInvalidConfig)
		}
		if c.Enemies.DescentEvery < 0 {
			return fmt.Errorf("%w: negative enemy descent_every", ErrInvalidConfig)
		}
	}
	if c.Collision.Radius.X <= 0 || c.Collision.Radius.Y <= 0 {
		return fmt.Errorf("%w: collision radius must be positive", ErrInvalidConfig)
	}

	colors := []struct{ field, name string }{
		{"ship.color", c.Ship.Color},
		{"projectile.color", c.Projectile.Color},
		{"enemies.color", c.Enemies.Color},
	}
	for _, col := range colors {
		if col.name == "" {
			continue
		}
		if _, ok := core.ParseColor(col.name); !ok {
			return fmt.Errorf("%w: unknown color %q for %s", ErrInvalidConfig, col.name, col.field)
		}
	}
	return nil
}

// Colors resolves the configured color names. Empty names map to the default color.
func (c SceneConfig) Colors() (ship, projectile, enemy core.Color) {
	return colorOrDefault(c.Ship.Color), colorOrDefault(c.Projectile.Color), colorOrDefault(c.Enemies.Color)
}

func colorOrDefault(name string) core.Color {
	col, _ := core.ParseColor(name)
	return col
}
