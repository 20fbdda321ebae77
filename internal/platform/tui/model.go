package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// chromeLines is the height taken by the status line and help footer.
const chromeLines = 2

// frame adapts a Screen to core.Surface. Bubble Tea presents through View,
// so Present has nothing to flush.
type frame struct {
	*core.Screen
}

func (frame) Present() error {
	return nil
}

// Model is the Bubble Tea model for watching a scene.
type Model struct {
	scene     registry.Scene
	screen    *core.Screen
	config    core.RuntimeConfig
	state     core.SceneState
	keys      KeyMap
	help      help.Model
	maxFrames int
	paused    bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given scene.
// maxFrames stops the program after that many steps (0 = no limit).
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, maxFrames int) Model {
	scene.Reset(cfg)
	return Model{
		scene:     scene,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeLines, 1)),
		config:    cfg,
		state:     scene.State(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		maxFrames: maxFrames,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.scene.FrameDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-chromeLines, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes the viewer controls.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		m.scene.Reset(m.config)
		m.state = m.scene.State()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick advances the scene by one step. The frame shown before the
// tick was scheduled has already been presented by View.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.scene.FrameDelay())
	}

	result := m.scene.Step()
	m.state = result.State

	if m.maxFrames > 0 && m.state.Frame >= m.maxFrames {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.scene.FrameDelay())
}

// State returns the scene summary after the last step.
func (m Model) State() core.SceneState {
	return m.state
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp))

	//nolint:errcheck // Best-effort save, the scene keeps running regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw clears the screen buffer and renders the scene onto it.
func (m Model) draw() {
	m.screen.Clear()
	m.scene.Render(frame{m.screen})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(StatusLine(m.scene.Title(), m.state, m.paused))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program for scene.
func Run(scene registry.Scene, cfg core.RuntimeConfig, maxFrames int) error {
	model := NewModel(scene, cfg, maxFrames)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
