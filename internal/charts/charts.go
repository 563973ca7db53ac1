// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

// Package charts turns slices of a loaded dataset snapshot into renderable
// SVG figures. Every builder is a pure, stateless transform: it reads only
// the snapshot it is given, never mutates it, and returns an empty Figure
// when the data it needs is absent so the rest of a report is unaffected.
package charts

import (
	"fmt"
	"html/template"
	"sync"

	"github.com/narrativelab/panorama/internal/dataset"
)

// Figure is one rendered chart ready for embedding in a page. A zero Figure
// means the builder had nothing to draw and the section should be omitted.
type Figure struct {
	ID    string
	Title string
	SVG   template.HTML
}

// Empty reports whether the figure holds no rendered markup.
func (f Figure) Empty() bool { return f.SVG == "" }

// Builder renders one chart from a loaded snapshot.
type Builder interface {
	// Name returns the unique name of this builder (e.g., "categories").
	Name() string

	// Build renders the figure. Missing or empty source data yields a zero
	// Figure, never an error: a blank section must not fail the report.
	Build(snap *dataset.Snapshot) Figure
}

// Order is the fixed report layout order for all builders.
var Order = []string{
	"overview",
	"categories",
	"subcategories",
	"intensity",
	"markers",
	"engagement",
	"media",
	"timeline",
	"views",
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Builder)
)

// Register adds a builder to the global registry.
// It panics if a builder with the same name is already registered.
func Register(b Builder) {
	mu.Lock()
	defer mu.Unlock()
	name := b.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("chart builder already registered: %s", name))
	}
	registry[name] = b
}

// Get returns the builder with the given name, or nil if not found.
func Get(name string) Builder {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered builders in no particular order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// BuildAll runs every registered builder in report order against snap and
// returns the non-empty figures.
func BuildAll(snap *dataset.Snapshot) []Figure {
	return Build(snap, Order...)
}

// Build runs the named builders against snap and returns the non-empty
// figures in the order given. Unknown names are skipped.
func Build(snap *dataset.Snapshot, names ...string) []Figure {
	figures := make([]Figure, 0, len(names))
	for _, name := range names {
		b := Get(name)
		if b == nil {
			continue
		}
		if fig := b.Build(snap); !fig.Empty() {
			figures = append(figures, fig)
		}
	}
	return figures
}