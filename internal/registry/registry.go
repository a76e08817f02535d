// Package registry provides a global registry for lab mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridkit/internal/core"
)

// Mode is the interface every lab mode implements. Modes contain pure
// simulation logic over the engine packages, with no Bubble Tea or
// terminal dependencies; the platform handles input mapping, timing,
// and display.
type Mode interface {
	// ID returns a unique identifier for this mode (e.g., "path", "fov").
	// Used for CLI flags and bench case grouping.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the mode state. Called once at start
	// and again on restart. The RuntimeConfig provides screen dimensions
	// and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick under the frame's
	// editor actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// Modes clear the buffer themselves before drawing.
	Render(dst *core.Screen)

	// State returns the current mode state (status line, paused).
	State() core.ModeState
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Mode

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a mode's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	m := f()
	titles[id] = m.Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new mode by its ID.
// Returns an error if the mode ID is not registered.
func Create(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
