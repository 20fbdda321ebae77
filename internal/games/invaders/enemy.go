package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// EnemyMotion describes the scripted movement shared by a formation.
type EnemyMotion struct {
	Period       int  // Frames per horizontal leg
	DescentEvery int  // Drop one row every N frames (0 = never)
	Clamp        bool // Keep x within [MinX, MaxX]
	MinX, MaxX   int
}

// Enemy is a formation member. Once killed it stays in the roster but no
// longer moves or draws.
type Enemy struct {
	pos    core.Point
	shape  Shape
	color  core.Color
	motion EnemyMotion
	alive  bool
	frame  int
}

// NewEnemy creates a live enemy at pos.
func NewEnemy(pos core.Point, shape Shape, color core.Color, motion EnemyMotion) *Enemy {
	return &Enemy{
		pos:    pos,
		shape:  shape,
		color:  color,
		motion: motion,
		alive:  true,
	}
}

// Position returns the top-left corner of the enemy.
func (e *Enemy) Position() core.Point {
	return e.pos
}

// Alive reports whether the enemy has not been hit yet.
func (e *Enemy) Alive() bool {
	return e.alive
}

// Frame returns the number of frames this enemy has moved.
func (e *Enemy) Frame() int {
	return e.frame
}

// Kill marks the enemy dead. Killing a dead enemy does nothing.
func (e *Enemy) Kill() {
	e.alive = false
}

// Advance zig-zags horizontally and periodically descends one row.
func (e *Enemy) Advance() {
	if !e.alive {
		return
	}
	e.frame++
	e.pos.X += zigzagStep(e.frame, e.motion.Period)
	if e.motion.Clamp {
		e.pos.X = core.Clamp(e.pos.X, e.motion.MinX, e.motion.MaxX)
	}
	if e.motion.DescentEvery > 0 && e.frame%e.motion.DescentEvery == 0 {
		e.pos.Y++
	}
}

// Render draws the enemy shape. Dead enemies draw nothing.
func (e *Enemy) Render(dst core.Surface) {
	if !e.alive {
		return
	}
	e.shape.draw(dst, e.pos, e.color)
}
