// Package registry maps drill IDs to factories. Drill packages register
// themselves from init(); the CLI and the SSH server look drills
// up by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
)

// Game is the interface every drill implements. A drill only simulates and
// draws into a core.Screen; adapters own input, pacing and presentation.
type Game interface {
	// ID is the name used on the command line and in log lines.
	ID() string

	// Title is shown in listings.
	Title() string

	// Configure sets the trainer constants used by the next Reset.
	Configure(cfg config.TrainerConfig)

	// Config returns the trainer constants in effect.
	Config() config.TrainerConfig

	// Reset discards the current session and starts a new one seeded from rc.
	Reset(rc core.RuntimeConfig)

	// Step applies one tick of input and advances the simulation.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)

	// State returns the current counters.
	State() core.GameState
}

// GameInfo describes a registered drill.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh drill instance.
type Factory func() Game

// ErrUnknownDrill is returned by Create for unregistered IDs.
var ErrUnknownDrill = errors.New("unknown drill")

// entry is a registered drill.
type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a drill factory to the registry. Drills call it from init().
// The title is read once from a throwaway instance. Registering the same ID
// twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: drill %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns information about all registered drills, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new drill by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownDrill, id)
	}
	return e.factory(), nil
}

// Exists reports whether a drill with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
