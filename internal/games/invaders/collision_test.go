package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHitBoxHits(t *testing.T) {
	// Enemy origin (21, 4) puts its center at (23, 5)
	enemy := core.Pt(21, 4)

	tests := []struct {
		name     string
		shot     core.Point
		expected bool
	}{
		{"center", core.Pt(23, 5), true},
		{"far right", core.Pt(30, 5), false},
		{"dx 2", core.Pt(25, 5), true},
		{"dx 3", core.Pt(26, 5), false},
		{"dx -2", core.Pt(21, 5), true},
		{"dx -3", core.Pt(20, 5), false},
		{"dy 1", core.Pt(23, 6), true},
		{"dy 2", core.Pt(23, 7), false},
		{"dy -1", core.Pt(23, 4), true},
		{"dy -2", core.Pt(23, 3), false},
		{"corner", core.Pt(25, 6), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DefaultHitBox.Hits(tc.shot, enemy); got != tc.expected {
				t.Errorf("Hits(%v, %v) = %v, expected %v", tc.shot, enemy, got, tc.expected)
			}
		})
	}
}

func TestResolveCollisionsKillsHitEnemy(t *testing.T) {
	enemies := []*Enemy{testEnemy(21, 4), testEnemy(40, 4)}
	shots := []Projectile{
		NewProjectile(core.Pt(30, 5), '^', core.ColorBlue),
		NewProjectile(core.Pt(23, 5), '^', core.ColorBlue),
	}

	killed, scoring := ResolveCollisions(shots, enemies, DefaultHitBox)

	if enemies[0].Alive() {
		t.Error("enemy 0 should be dead")
	}
	if !enemies[1].Alive() {
		t.Error("enemy 1 should be alive")
	}
	if len(killed) != 1 || killed[0] != 0 {
		t.Errorf("killed = %v, expected [0]", killed)
	}
	if len(scoring) != 1 || scoring[0] != 1 {
		t.Errorf("scoring = %v, expected [1]", scoring)
	}
}

func TestResolveCollisionsOneShotManyEnemies(t *testing.T) {
	// Overlapping enemies are all taken by the same shot.
	enemies := []*Enemy{testEnemy(21, 4), testEnemy(22, 4)}
	shots := []Projectile{NewProjectile(core.Pt(24, 5), '^', core.ColorBlue)}

	killed, scoring := ResolveCollisions(shots, enemies, DefaultHitBox)

	if len(killed) != 2 {
		t.Errorf("killed = %v, expected both enemies", killed)
	}
	if len(scoring) != 1 {
		t.Errorf("scoring = %v, expected one projectile", scoring)
	}
}

func TestResolveCollisionsSkipsDeadEnemies(t *testing.T) {
	e := testEnemy(21, 4)
	e.Kill()
	shots := []Projectile{NewProjectile(core.Pt(23, 5), '^', core.ColorBlue)}

	killed, scoring := ResolveCollisions(shots, []*Enemy{e}, DefaultHitBox)

	if e.Alive() {
		t.Error("dead enemy came back to life")
	}
	if len(killed) != 0 || len(scoring) != 0 {
		t.Errorf("killed = %v, scoring = %v, expected none", killed, scoring)
	}

	rec := newRecordingSurface()
	e.Render(rec)
	if len(rec.writes) != 0 {
		t.Errorf("dead enemy wrote %d cells", len(rec.writes))
	}
}

func TestResolveCollisionsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	origins := make([]core.Point, 12)
	for i := range origins {
		origins[i] = core.Pt(rng.Intn(40), rng.Intn(15))
	}
	shots := make([]Projectile, 20)
	for i := range shots {
		shots[i] = NewProjectile(core.Pt(rng.Intn(45), rng.Intn(18)), '^', core.ColorBlue)
	}

	alive := func(shots []Projectile) []bool {
		enemies := make([]*Enemy, len(origins))
		for i, o := range origins {
			enemies[i] = testEnemy(o.X, o.Y)
		}
		ResolveCollisions(shots, enemies, DefaultHitBox)
		out := make([]bool, len(enemies))
		for i, e := range enemies {
			out[i] = e.Alive()
		}
		return out
	}

	expected := alive(shots)
	for round := 0; round < 25; round++ {
		perm := make([]Projectile, len(shots))
		for i, j := range rng.Perm(len(shots)) {
			perm[i] = shots[j]
		}
		got := alive(perm)
		for i := range expected {
			if got[i] != expected[i] {
				t.Fatalf("round %d: enemy %d alive = %v, expected %v", round, i, got[i], expected[i])
			}
		}
	}
}
