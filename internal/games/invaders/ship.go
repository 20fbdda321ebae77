package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ShipSpec configures a Ship and the projectiles it fires.
type ShipSpec struct {
	Shape      Shape
	Color      core.Color
	Period     int // Frames per horizontal leg
	MinX, MaxX int // Hard horizontal bounds
	FireEvery  int // Fire once every N frames
	FireOffset core.Point
	FirePhase  config.FirePhase

	ShotGlyph   rune
	ShotColor   core.Color
	ShotExpiry  config.ExpiryMode
	FieldHeight int // Lower bound used by ExpireOffscreen
}

// Ship is the player ship. It patrols on its own, fires on a fixed cadence
// and exclusively owns the projectiles it has fired.
type Ship struct {
	pos         core.Point
	spec        ShipSpec
	frame       int
	projectiles []Projectile
}

// NewShip creates a ship at pos with no projectiles in flight.
func NewShip(pos core.Point, spec ShipSpec) *Ship {
	return &Ship{
		pos:         pos,
		spec:        spec,
		projectiles: make([]Projectile, 0, 16),
	}
}

// Position returns the top-left corner of the ship.
func (s *Ship) Position() core.Point {
	return s.pos
}

// Frame returns the number of frames the ship has moved.
func (s *Ship) Frame() int {
	return s.frame
}

// Projectiles returns the live projectiles in firing order.
// The slice is owned by the ship and is only valid until the next Advance.
func (s *Ship) Projectiles() []Projectile {
	return s.projectiles
}

// Advance moves the ship one frame: patrol step and clamp, fire on cadence,
// move every projectile, then drop the expired ones. Moving and filtering are
// separate passes so the slice is never modified while it is being walked.
func (s *Ship) Advance() {
	s.frame++
	s.pos.X += zigzagStep(s.frame, s.spec.Period)
	s.pos.X = core.Clamp(s.pos.X, s.spec.MinX, s.spec.MaxX)

	firing := s.frame%s.spec.FireEvery == 0
	if firing && s.spec.FirePhase != config.FireAfterPrune {
		s.Fire()
	}

	for i := range s.projectiles {
		s.projectiles[i].Advance()
	}
	s.prune()

	if firing && s.spec.FirePhase == config.FireAfterPrune {
		s.Fire()
	}
}

// Fire launches a projectile from the ship's nose.
func (s *Ship) Fire() {
	at := s.pos.Add(s.spec.FireOffset)
	s.projectiles = append(s.projectiles, NewProjectile(at, s.spec.ShotGlyph, s.spec.ShotColor))
}

// Expired reports whether a projectile at pos should be removed.
func (s *Ship) Expired(pos core.Point) bool {
	if pos.Y < 0 {
		return true
	}
	return s.spec.ShotExpiry == config.ExpireOffscreen && pos.Y > s.spec.FieldHeight
}

// prune removes expired projectiles, keeping the rest in firing order.
func (s *Ship) prune() {
	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !s.Expired(p.pos) {
			live = append(live, p)
		}
	}
	s.projectiles = live
}

// discard removes the projectiles at the given indices, keeping order.
func (s *Ship) discard(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	live := s.projectiles[:0]
	for i, p := range s.projectiles {
		if !drop[i] {
			live = append(live, p)
		}
	}
	s.projectiles = live
}

// Render draws the ship and then every projectile it owns.
func (s *Ship) Render(dst core.Surface) {
	s.spec.Shape.draw(dst, s.pos, s.spec.Color)
	for i := range s.projectiles {
		s.projectiles[i].Render(dst)
	}
}
