package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Projectile is a single-cell shot that climbs one row per frame.
type Projectile struct {
	pos   core.Point
	glyph rune
	color core.Color
}

// NewProjectile creates a projectile at pos.
func NewProjectile(pos core.Point, glyph rune, color core.Color) Projectile {
	return Projectile{pos: pos, glyph: glyph, color: color}
}

// Position returns the projectile's cell.
func (p *Projectile) Position() core.Point {
	return p.pos
}

// Advance moves the projectile up one row. There is no lower bound; the
// owning ship decides when it has expired.
func (p *Projectile) Advance() {
	p.pos.Y--
}

// Render draws the projectile glyph.
func (p *Projectile) Render(dst core.Surface) {
	dst.SetCell(p.pos.X, p.pos.Y, p.glyph, p.color)
}
