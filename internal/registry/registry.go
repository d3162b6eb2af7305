// Package registry holds the factories of the games the platform can run.
// Games register themselves in init(); the CLI creates them by ID after
// setting their package-level options.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mystery-maze/internal/core"
)

// Game is the interface between a game and the terminal platform.
// Games hold pure logic and never import Bubble Tea; the platform maps
// keys to actions, drives the fixed tick and draws the screen buffer.
type Game interface {
	// ID returns a unique identifier, stored with every recorded run.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the game from scratch for the given screen, tick rate
	// and seed. Called once at start and again when the platform restarts
	// it with a new seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the actions
	// collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the state after the last Step.
	State() core.GameState
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id.
// Panics if the id is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Title returns the display title of a registered game, or the id itself
// when it is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}

// IDs returns the registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
