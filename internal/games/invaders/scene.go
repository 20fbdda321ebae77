package invaders

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Controller owns the ship and the enemy roster and advances them one frame
// at a time.
type Controller struct {
	id      string
	cfg     config.SceneConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	ship    *Ship
	enemies []*Enemy
	hitBox  HitBox
	steps   int
}

// NewController builds a scene from a validated configuration.
func NewController(id string, cfg config.SceneConfig) *Controller {
	c := &Controller{
		id:     id,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	c.Reset(core.DefaultConfig())
	return c
}

// SetLogger replaces the logger. Kills are logged at debug level.
func (c *Controller) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	c.logger = l
}

// ID returns the scene identifier.
func (c *Controller) ID() string {
	return c.id
}

// Title returns the display name for this scene.
func (c *Controller) Title() string {
	if c.cfg.Title != "" {
		return c.cfg.Title
	}
	return c.id
}

// Config returns the configuration the scene was built from.
func (c *Controller) Config() config.SceneConfig {
	return c.cfg
}

// Reset rebuilds the ship and the formation in their starting positions.
func (c *Controller) Reset(rt core.RuntimeConfig) {
	c.runtime = rt
	c.steps = 0

	shipColor, shotColor, enemyColor := c.cfg.Colors()
	glyph := '^'
	if g := []rune(c.cfg.Projectile.Glyph); len(g) > 0 {
		glyph = g[0]
	}

	c.ship = NewShip(core.Pt(c.cfg.Ship.X, c.cfg.Ship.Y), ShipSpec{
		Shape:       Shape(c.cfg.Ship.Shape),
		Color:       shipColor,
		Period:      c.cfg.Ship.Period,
		MinX:        c.cfg.Playfield.MinX,
		MaxX:        c.cfg.Playfield.MaxX,
		FireEvery:   c.cfg.Ship.FireEvery,
		FireOffset:  core.Pt(c.cfg.Ship.FireOffset.X, c.cfg.Ship.FireOffset.Y),
		FirePhase:   c.cfg.Ship.FirePhase,
		ShotGlyph:   glyph,
		ShotColor:   shotColor,
		ShotExpiry:  c.cfg.Projectile.Expiry,
		FieldHeight: c.cfg.Playfield.Height,
	})

	ec := c.cfg.Enemies
	motion := EnemyMotion{
		Period:       ec.Period,
		DescentEvery: ec.DescentEvery,
		Clamp:        ec.Clamp,
		MinX:         c.cfg.Playfield.MinX,
		MaxX:         c.cfg.Playfield.MaxX,
	}
	c.enemies = make([]*Enemy, 0, ec.Cols*ec.Rows)
	for i := 0; i < ec.Cols; i++ {
		for j := 0; j < ec.Rows; j++ {
			pos := core.Pt(ec.Origin.X+i*ec.Spacing.X, ec.Origin.Y+j*ec.Spacing.Y)
			c.enemies = append(c.enemies, NewEnemy(pos, Shape(ec.Shape), enemyColor, motion))
		}
	}

	c.hitBox = HitBox{
		Center: core.Pt(c.cfg.Collision.Center.X, c.cfg.Collision.Center.Y),
		Radius: core.Pt(c.cfg.Collision.Radius.X, c.cfg.Collision.Radius.Y),
	}
}

// Ship returns the player ship.
func (c *Controller) Ship() *Ship {
	return c.ship
}

// Enemies returns the roster in formation order. Dead enemies stay in place.
func (c *Controller) Enemies() []*Enemy {
	return c.enemies
}

// Render draws the ship, its projectiles and every live enemy.
func (c *Controller) Render(dst core.Surface) {
	c.ship.Render(dst)
	for _, e := range c.enemies {
		if e.Alive() {
			e.Render(dst)
		}
	}
}

// Step advances the ship, then every enemy, then resolves collisions.
func (c *Controller) Step() core.StepResult {
	c.ship.Advance()
	for _, e := range c.enemies {
		e.Advance()
	}
	c.steps++

	killed, scoring := ResolveCollisions(c.ship.Projectiles(), c.enemies, c.hitBox)
	if c.cfg.Collision.ConsumeOnHit {
		c.ship.discard(scoring)
	}
	for _, idx := range killed {
		pos := c.enemies[idx].Position()
		c.logger.Debug("enemy destroyed", "frame", c.steps, "index", idx, "x", pos.X, "y", pos.Y)
	}

	return core.StepResult{State: c.State(), Killed: killed}
}

// State returns a summary of the scene.
func (c *Controller) State() core.SceneState {
	alive := 0
	for _, e := range c.enemies {
		if e.Alive() {
			alive++
		}
	}
	return core.SceneState{
		Frame:        c.steps,
		Projectiles:  len(c.ship.Projectiles()),
		EnemiesAlive: alive,
		EnemiesTotal: len(c.enemies),
	}
}

// FrameDelay returns the runtime override if set, otherwise the configured delay.
func (c *Controller) FrameDelay() time.Duration {
	if c.runtime.FrameDelay > 0 {
		return c.runtime.FrameDelay
	}
	return time.Duration(c.cfg.Timing.FrameDelayMS) * time.Millisecond
}
