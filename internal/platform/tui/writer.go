package tui

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// cursorHome moves the cursor to the top-left corner without clearing,
// so each frame overwrites the previous one in place.
const cursorHome = "\x1b[H"

// WriterSurface buffers a frame in a Screen and writes it to an io.Writer
// on Present. It backs the streaming mode, where no full-screen program
// owns the terminal.
type WriterSurface struct {
	w      io.Writer
	screen *core.Screen
	color  bool
	frames int
}

// NewWriterSurface creates a surface of the given size writing to w.
// Without color, frames are written as plain text with no escape codes.
func NewWriterSurface(w io.Writer, width, height int, color bool) *WriterSurface {
	return &WriterSurface{
		w:      w,
		screen: core.NewScreen(width, height),
		color:  color,
	}
}

// Clear resets the buffered frame.
func (s *WriterSurface) Clear() {
	s.screen.Clear()
}

// SetCell writes one cell into the buffered frame. Out-of-range writes are dropped.
func (s *WriterSurface) SetCell(x, y int, r rune, c core.Color) {
	s.screen.SetCell(x, y, r, c)
}

// Present writes the buffered frame.
func (s *WriterSurface) Present() error {
	var out string
	if s.color {
		out = cursorHome + RenderScreen(s.screen) + "\n"
	} else {
		out = s.screen.String() + "\n"
	}
	if _, err := io.WriteString(s.w, out); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	s.frames++
	return nil
}

// Frames returns the number of frames presented so far.
func (s *WriterSurface) Frames() int {
	return s.frames
}

// Screen exposes the buffered frame.
func (s *WriterSurface) Screen() *core.Screen {
	return s.screen
}
