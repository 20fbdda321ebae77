package tcellui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 30)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	return screen
}

func newTestScene() *invaders.Controller {
	c := invaders.NewController(config.SceneInvaders, config.DefaultInvadersConfig())
	c.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, FrameDelay: time.Millisecond})
	return c
}

func TestSurfaceSetCell(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	s := NewSurface(screen)
	s.Clear()
	s.SetCell(3, 4, '^', core.ColorBrightBlue)
	s.SetCell(-1, 4, 'x', core.ColorRed)
	s.SetCell(80, 4, 'x', core.ColorRed)
	if err := s.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	mainc, _, style, _ := screen.GetContent(3, 4)
	if mainc != '^' {
		t.Errorf("Expected character '^', got %c", mainc)
	}
	if style != StyleFor(core.ColorBrightBlue) {
		t.Errorf("style = %v, expected bright blue", style)
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor(core.ColorDefault) != tcell.StyleDefault {
		t.Error("default color should use the default style")
	}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		if StyleFor(c) == tcell.StyleDefault {
			t.Errorf("no style for %v", c)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}

	for _, tc := range tests {
		if got := IsQuitKey(tc.ev); got != tc.expected {
			t.Errorf("IsQuitKey(%s) = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestRunOnFrames(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	scene := newTestScene()

	if err := RunOn(context.Background(), screen, scene, 5); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if scene.State().Frame != 5 {
		t.Errorf("Frame = %d, expected 5", scene.State().Frame)
	}

	// The last frame presented shows the ship after 4 steps, at x = 24
	mainc, _, style, _ := screen.GetContent(28, 24)
	if mainc != '/' {
		t.Errorf("Expected ship nose '/', got %c", mainc)
	}
	if style != StyleFor(core.ColorWhite) {
		t.Errorf("ship style = %v, expected white", style)
	}
}

func TestRunOnQuitKey(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()
	scene := newTestScene()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := RunOn(ctx, screen, scene, 0); err != nil {
		t.Fatalf("RunOn() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Error("quit key did not stop the scene before the deadline")
	}
}
