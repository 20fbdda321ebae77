package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// recordingSurface counts every call made on it.
type recordingSurface struct {
	writes   map[core.Point]core.Cell
	clears   int
	presents int
	err      error
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{writes: make(map[core.Point]core.Cell)}
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.writes = make(map[core.Point]core.Cell)
}

func (r *recordingSurface) SetCell(x, y int, ch rune, c core.Color) {
	r.writes[core.Pt(x, y)] = core.Cell{Rune: ch, Color: c}
}

func (r *recordingSurface) Present() error {
	r.presents++
	return r.err
}

// screenSurface presents nothing; it keeps the frame in a core.Screen for inspection.
type screenSurface struct {
	*core.Screen
}

func (s screenSurface) Present() error {
	return nil
}

var enemyShape = Shape{` /M\ `, `<-O->`, ` \_/ `}

func testEnemy(x, y int) *Enemy {
	return NewEnemy(core.Pt(x, y), enemyShape, core.ColorBrightRed, EnemyMotion{
		Period:       15,
		DescentEvery: 80,
	})
}
