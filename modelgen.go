package modelgen

import (
	"sync"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/adapters"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/transformer"
)

// Definition aliases model.Definition for callers that only import the root
// package.
type Definition = model.Definition

// Adapter aliases adapter.Adapter.
type Adapter = adapter.Adapter

// TypeMapping aliases adapter.TypeMapping.
type TypeMapping = adapter.TypeMapping

// Registry aliases transformer.Registry.
type Registry = transformer.Registry

// ErrAdapterNotFound is returned (wrapped) when a target name is unknown.
var ErrAdapterNotFound = transformer.ErrAdapterNotFound

// NewModel starts a definition builder.
func NewModel(name string) *model.Builder {
	return model.New(name)
}

// NewRegistry returns a registry pre-loaded with the typescript, python and
// postgres adapters. Adapters passed through transformer.WithAdapters are
// registered afterwards and replace bundled ones sharing a name.
func NewRegistry(options ...transformer.Option) *transformer.Registry {
	opts := make([]transformer.Option, 0, len(options)+1)
	opts = append(opts, transformer.WithAdapters(adapters.Defaults()...))
	opts = append(opts, options...)
	return transformer.New(opts...)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *transformer.Registry
)

// DefaultRegistry returns the process wide registry used by Transform and
// Register. It is built on first use.
func DefaultRegistry() *transformer.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a to the default registry.
func Register(a adapter.Adapter) {
	DefaultRegistry().Register(a)
}

// Transform renders def with the named adapter from the default registry.
func Transform(def model.Definition, target string) (string, error) {
	return DefaultRegistry().Transform(def, target)
}
