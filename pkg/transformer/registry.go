package transformer

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Option customises a Registry.
type Option func(*Registry)

// WithLogger routes registry diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithAdapters registers adapters at construction time, in order.
func WithAdapters(adapters ...adapter.Adapter) Option {
	return func(r *Registry) {
		r.pending = append(r.pending, adapters...)
	}
}

// Registry stores adapters by name and dispatches transforms to them. It is
// safe for concurrent use; adapter Transform calls run outside the lock.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]adapter.Adapter
	logger   *zap.Logger
	pending  []adapter.Adapter
}

// New creates a registry. Without WithAdapters it starts empty.
func New(options ...Option) *Registry {
	r := &Registry{
		adapters: make(map[string]adapter.Adapter),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	pending := r.pending
	r.pending = nil
	for _, a := range pending {
		r.Register(a)
	}
	return r
}

// Register adds a keyed by a.Name(). An adapter already registered under the
// same name is replaced. Nil adapters are ignored.
func (r *Registry) Register(a adapter.Adapter) {
	if a == nil {
		return
	}
	name := a.Name()

	r.mu.Lock()
	_, replaced := r.adapters[name]
	r.adapters[name] = a
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("adapter replaced", zap.String("adapter", name))
		return
	}
	r.logger.Debug("adapter registered", zap.String("adapter", name))
}

// Unregister removes the adapter registered under name, reporting whether one
// was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.adapters[name]; !ok {
		return false
	}
	delete(r.adapters, name)
	return true
}

// Get retrieves an adapter by name.
func (r *Registry) Get(name string) (adapter.Adapter, error) {
	r.mu.RLock()
	a, ok := r.adapters[name]
	r.mu.RUnlock()

	if !ok {
		r.logger.Debug("adapter not found", zap.String("adapter", name))
		return nil, newAdapterNotFound(name, r.List())
	}
	return a, nil
}

// Has reports whether an adapter is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.adapters[name]
	return ok
}

// List returns the registered adapter names sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered adapters.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.adapters)
}

// Transform renders def with the adapter registered under name. The adapter's
// output and error are returned unchanged; an unknown name yields an
// AdapterNotFoundError and an empty string.
func (r *Registry) Transform(def model.Definition, name string) (string, error) {
	a, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return a.Transform(def)
}

// Output pairs a target name with its rendered text.
type Output struct {
	Adapter string
	Text    string
}

// TransformAll renders def with each named adapter in order. It stops at the
// first failure and returns the outputs produced so far.
func (r *Registry) TransformAll(def model.Definition, names ...string) ([]Output, error) {
	outputs := make([]Output, 0, len(names))
	for _, name := range names {
		text, err := r.Transform(def, name)
		if err != nil {
			return outputs, err
		}
		outputs = append(outputs, Output{Adapter: name, Text: text})
	}
	return outputs, nil
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
