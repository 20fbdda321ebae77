// Package invaders implements the shooter scene: an auto-moving, auto-firing
// ship, a formation of enemies with scripted movement, and the collision step
// that resolves projectile hits.
//
// Every entity keeps its own frame counter and moves without looking at any
// other entity. Only the Controller reads across entities, and only during
// collision resolution.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity is a simulated object with a position, a drawable shape and its own
// per-frame motion.
type Entity interface {
	// Position returns the top-left corner of the entity's shape.
	Position() core.Point

	// Render writes the entity's ink onto dst. Bounds are the surface's concern.
	Render(dst core.Surface)

	// Advance moves the entity by one frame.
	Advance()
}

var (
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Ship)(nil)
)

// Shape is a multi-line glyph, one string per row.
// Any rune other than space is ink; spaces are transparent.
type Shape []string

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the length of the longest row in runes.
func (s Shape) Width() int {
	w := 0
	for _, row := range s {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// draw writes every ink rune of the shape with its top-left corner at origin.
func (s Shape) draw(dst core.Surface, origin core.Point, c core.Color) {
	for dy, row := range s {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetCell(origin.X+dx, origin.Y+dy, r, c)
			}
			dx++
		}
	}
}

// zigzagStep returns the horizontal step for the given frame: +1 during even
// legs of length period, -1 during odd legs.
func zigzagStep(frame, period int) int {
	if (frame/period)%2 == 0 {
		return 1
	}
	return -1
}
