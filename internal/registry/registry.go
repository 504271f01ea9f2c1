// Package registry provides a global registry of game engine factories.
// Engines register themselves in init() functions, allowing the CLI to
// discover and instantiate them by id without hardcoded construction.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/core"
	"github.com/vovakirdan/arena-planner/internal/sim"
)

// Engine is a game engine with its field state type hidden.
// sim.Bind adapts any sim.Game to this interface.
type Engine interface {
	// ID returns the unique identifier of the game (e.g., "chargedup").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Simulate plans and scores a run.
	Simulate(instrs []arena.Runnable, locations []arena.Location, cal core.Calibration, animationRate float64) (sim.Result, error)
}

// GameInfo contains metadata about a registered engine.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new engine instance.
type Factory func() Engine

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an engine factory to the registry.
// Typically called from a game's init() function.
// Panics if an engine with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered engines, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new engine by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if an engine with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
