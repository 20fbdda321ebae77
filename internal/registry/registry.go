// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Scene is the interface every simulated scene implements.
// Scenes contain pure logic; frontends own timing, input and display.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "invaders").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the scene in its starting formation.
	Reset(cfg core.RuntimeConfig)

	// Step advances every entity by one frame and resolves collisions.
	Step() core.StepResult

	// Render draws the current state onto dst. The caller clears dst first.
	Render(dst core.Surface)

	// State returns a summary of the current state.
	State() core.SceneState

	// FrameDelay is the pause between presenting a frame and advancing.
	FrameDelay() time.Duration

	// Run repeats clear, render, present, wait, step until ctx is cancelled
	// or maxFrames steps have run (0 = no limit).
	Run(ctx context.Context, dst core.Surface, pace core.Pacer, maxFrames int) error
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a scene.
type Factory func() (Scene, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene package's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string) (Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	s, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create scene %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
