// Package registry provides a global registry for report exporters.
// Exporters register themselves in init() functions, allowing the CLI and
// the lab to discover output formats without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/parabola/internal/export"
)

// Exporter writes a trajectory report in one output format.
type Exporter interface {
	// ID returns a unique identifier for this format (e.g., "csv", "json").
	// Used for the --format flag.
	ID() string

	// Title returns a human-readable name for display (e.g., "CSV").
	Title() string

	// Write encodes the report to w.
	Write(w io.Writer, r export.Report) error
}

// ExporterInfo contains metadata about a registered exporter.
type ExporterInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new exporter.
type Factory func() Exporter

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an exporter factory to the registry.
// Typically called from an exporter's init() function.
// Panics if an exporter with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: exporter %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered exporters, sorted by ID.
func List() []ExporterInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ExporterInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ExporterInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an exporter by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown format %q", id)
	}

	return f(), nil
}

// Exists checks if an exporter with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
