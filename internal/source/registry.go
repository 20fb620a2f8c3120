// Package source provides a global registry of frame sources: stand-ins for
// the external camera feed that the arena detects blobs in. Sources register
// themselves in init() functions, allowing the host to discover and create
// them without hardcoded dependencies.
package source

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hazard-arena/internal/arena"
)

// Source produces the external frame for each tick.
type Source interface {
	// ID returns the registry identifier (e.g. "spots").
	ID() string

	// Frame returns the frame for time t in seconds, or nil when there is
	// nothing to show. The frame may be reused by the next call.
	Frame(t float64) *arena.Frame

	// Close releases any resources held by the source.
	Close() error
}

// Options configures a source at creation.
type Options struct {
	Width  int     // Frame width in pixels, 0 for the source default
	Height int     // Frame height in pixels, 0 for the source default
	Seed   int64   // Seed for generated content
	Path   string  // Directory or file the source reads from
	Rate   float64 // Frames per second for sequence sources, 0 for the source default
	Count  int     // Number of generated objects, 0 for the source default
}

// Info contains metadata about a registered source.
type Info struct {
	ID    string
	Title string
}

// Factory creates a source instance.
type Factory func(opts Options) (Source, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from a source package's init() function.
// Panics if a source with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("source: %q already registered", info.ID))
	}

	factories[info.ID] = f
	titles[info.ID] = info.Title
}

// List returns information about all registered sources, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a source by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, opts Options) (Source, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("source: unknown source %q", id)
	}

	src, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", id, err)
	}
	return src, nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
