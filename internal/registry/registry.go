// Package registry provides a registry of world presets.
// Presets register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface the platform drives.
// Games contain pure logic with no terminal dependencies (especially no Bubble Tea).
// The platform handles key mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier (e.g., "miner", "miner_small").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset generates a fresh world. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one tick with the held commands.
	// dt is the wall-clock time since the previous tick in seconds.
	Step(cmds core.CommandState, dt float64) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current score, fuel and termination status.
	State() core.GameState

	// Bindings returns the key bindings the game was configured with.
	Bindings() *core.Bindings

	// Dump returns a plain-text rendering of the world.
	Dump() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Registry maps game IDs to factories. The zero value is not usable;
// call New.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a game factory.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	r.factories[id] = f
	r.titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.factories))
	for id := range r.factories {
		result = append(result, GameInfo{ID: id, Title: r.titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

var std = New()

// Register adds a game factory to the process-wide registry.
// Typically called from a game's init() function.
func Register(id string, f Factory) { std.Register(id, f) }

// List returns all games in the process-wide registry.
func List() []GameInfo { return std.List() }

// Create instantiates a game from the process-wide registry.
func Create(id string) (Game, error) { return std.Create(id) }

// Exists checks the process-wide registry for id.
func Exists(id string) bool { return std.Exists(id) }
