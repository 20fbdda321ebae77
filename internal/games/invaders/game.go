package invaders

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var _ registry.Scene = (*Controller)(nil)

var (
	settingsMu sync.Mutex
	configPath string
	logger     *log.Logger
)

// SetConfigPath sets a custom YAML file used by scenes created afterwards.
// An empty path restores the default search order.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetLogger sets the logger handed to scenes created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

// New loads the configuration for sceneID and builds a controller.
func New(sceneID string) (*Controller, error) {
	settingsMu.Lock()
	path, l := configPath, logger
	settingsMu.Unlock()

	cfg, err := config.Load(sceneID, path)
	if err != nil {
		return nil, err
	}
	c := NewController(sceneID, cfg)
	c.SetLogger(l)
	return c, nil
}

func factory(sceneID string) registry.Factory {
	return func() (registry.Scene, error) {
		c, err := New(sceneID)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Register the scenes with the registry
func init() {
	registry.Register(config.SceneInvaders, "Invaders", factory(config.SceneInvaders))
	registry.Register(config.ScenePatrol, "Patrol", factory(config.ScenePatrol))
}
