package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// HitBox is an axis-aligned proximity test around an enemy's visual center.
// It stands in for exact shape intersection.
type HitBox struct {
	Center core.Point // Offset from the enemy's origin to its visual center
	Radius core.Point // Exclusive distance thresholds per axis
}

// DefaultHitBox matches a 5x3 enemy shape.
var DefaultHitBox = HitBox{
	Center: core.Pt(2, 1),
	Radius: core.Pt(3, 2),
}

// Hits reports whether a shot at shot is close enough to an enemy whose
// origin is at enemy.
func (h HitBox) Hits(shot, enemy core.Point) bool {
	c := enemy.Add(h.Center)
	dx := core.Abs(shot.X - c.X)
	dy := core.Abs(shot.Y - c.Y)
	return dx < h.Radius.X && dy < h.Radius.Y
}

// ResolveCollisions tests every projectile against every live enemy and kills
// the enemies that are hit. It returns the roster indices of enemies killed by
// this call and the indices of projectiles that hit at least one enemy.
//
// The resulting alive flags do not depend on iteration order; which
// projectile is credited with a kill does. Projectiles are not removed here.
func ResolveCollisions(shots []Projectile, enemies []*Enemy, hb HitBox) (killed, scoring []int) {
	for i := range shots {
		hit := false
		for j, e := range enemies {
			if !e.Alive() {
				continue
			}
			if hb.Hits(shots[i].pos, e.pos) {
				e.Kill()
				killed = append(killed, j)
				hit = true
			}
		}
		if hit {
			scoring = append(scoring, i)
		}
	}
	return killed, scoring
}
