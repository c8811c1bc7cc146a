// Package registry provides a global registry of front-ends.
// Front-ends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fifteen/internal/config"
	"github.com/vovakirdan/fifteen/internal/core"
	"github.com/vovakirdan/fifteen/internal/puzzle"
)

// Env carries everything a front-end needs to run a game.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Game    *puzzle.Game
	Logger  *log.Logger
}

// Frontend renders a game and feeds it input until the game terminates or
// ctx is cancelled.
type Frontend interface {
	// ID returns a unique identifier (e.g., "window", "terminal").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the game loop ends. Resources acquired by the
	// front-end are released before it returns.
	Run(ctx context.Context, env Env) error
}

// Info contains metadata about a registered front-end.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new front-end.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Panics if a front-end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered front-ends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a front-end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	return f(), nil
}

// Exists checks if a front-end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
