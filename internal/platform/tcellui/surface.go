// Package tcellui runs scenes directly on a tcell screen. It is the
// lower-level alternative to the Bubble Tea frontend: the scene's own Run
// loop drives timing, and tcell only paints cells and reports keys.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// palette maps core.Color to the 256-color palette, matching the indices
// the Bubble Tea frontend uses.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:           tcell.PaletteColor(1),
	core.ColorGreen:         tcell.PaletteColor(2),
	core.ColorYellow:        tcell.PaletteColor(3),
	core.ColorBlue:          tcell.PaletteColor(4),
	core.ColorMagenta:       tcell.PaletteColor(5),
	core.ColorCyan:          tcell.PaletteColor(6),
	core.ColorWhite:         tcell.PaletteColor(7),
	core.ColorBrightRed:     tcell.PaletteColor(9),
	core.ColorBrightGreen:   tcell.PaletteColor(10),
	core.ColorBrightYellow:  tcell.PaletteColor(11),
	core.ColorBrightBlue:    tcell.PaletteColor(12),
	core.ColorBrightMagenta: tcell.PaletteColor(13),
	core.ColorBrightCyan:    tcell.PaletteColor(14),
	core.ColorBrightWhite:   tcell.PaletteColor(15),
	core.ColorOrange:        tcell.PaletteColor(208),
	core.ColorGray:          tcell.PaletteColor(245),
}

// StyleFor returns the tcell style used for c.
func StyleFor(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg)
}

// Surface draws onto a tcell screen.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized tcell screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Clear blanks the back buffer.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// SetCell writes one cell. Cells outside the screen are dropped.
func (s *Surface) SetCell(x, y int, r rune, c core.Color) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, StyleFor(c))
}

// Present flushes the back buffer to the terminal.
func (s *Surface) Present() error {
	s.screen.Show()
	return nil
}
