package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestShapeDimensions(t *testing.T) {
	s := Shape{`    /\  `, `\  |==|  /`, ` ||====||`}
	if s.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", s.Height())
	}
	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
}

func TestShapeDrawSkipsSpaces(t *testing.T) {
	rec := newRecordingSurface()
	Shape{" A", "B "}.draw(rec, core.Pt(5, 7), core.ColorGreen)

	if len(rec.writes) != 2 {
		t.Fatalf("draw wrote %d cells, expected 2", len(rec.writes))
	}
	if got := rec.writes[core.Pt(6, 7)]; got.Rune != 'A' || got.Color != core.ColorGreen {
		t.Errorf("cell (6, 7) = %+v, expected green A", got)
	}
	if got := rec.writes[core.Pt(5, 8)]; got.Rune != 'B' {
		t.Errorf("cell (5, 8) = %+v, expected B", got)
	}
}

func TestZigzagStep(t *testing.T) {
	tests := []struct {
		frame, period, expected int
	}{
		{1, 15, 1},
		{14, 15, 1},
		{15, 15, -1},
		{29, 15, -1},
		{30, 15, 1},
		{44, 45, 1},
		{45, 45, -1},
	}

	for _, tc := range tests {
		if got := zigzagStep(tc.frame, tc.period); got != tc.expected {
			t.Errorf("zigzagStep(%d, %d) = %d, expected %d", tc.frame, tc.period, got, tc.expected)
		}
	}
}

func TestProjectileClimbsOneRowPerAdvance(t *testing.T) {
	p := NewProjectile(core.Pt(7, 3), '^', core.ColorBlue)

	for i := 1; i <= 10; i++ {
		before := p.Position()
		p.Advance()
		after := p.Position()
		if after.Y != before.Y-1 {
			t.Fatalf("advance %d: y went from %d to %d, expected a drop of exactly 1", i, before.Y, after.Y)
		}
		if after.X != before.X {
			t.Fatalf("advance %d: x changed from %d to %d", i, before.X, after.X)
		}
	}

	// No lower bound on the projectile itself
	if p.Position().Y != -7 {
		t.Errorf("Y = %d, expected -7", p.Position().Y)
	}
}

func TestProjectileRender(t *testing.T) {
	rec := newRecordingSurface()
	p := NewProjectile(core.Pt(4, 2), '^', core.ColorBrightBlue)
	p.Render(rec)

	if len(rec.writes) != 1 {
		t.Fatalf("Render wrote %d cells, expected 1", len(rec.writes))
	}
	if got := rec.writes[core.Pt(4, 2)]; got.Rune != '^' || got.Color != core.ColorBrightBlue {
		t.Errorf("cell = %+v, expected bright blue ^", got)
	}
}
