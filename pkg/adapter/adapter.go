package adapter

import (
	"maps"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/model"
)

// TypeMapping translates abstract field types into target type names.
type TypeMapping map[model.FieldType]string

// Clone returns an independent copy of the mapping.
func (m TypeMapping) Clone() TypeMapping {
	if m == nil {
		return TypeMapping{}
	}
	return maps.Clone(m)
}

// Lookup returns the mapped name for t, reporting false when the entry is
// missing or blank.
func (m TypeMapping) Lookup(t model.FieldType) (string, bool) {
	name, ok := m[t]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Adapter renders model definitions into one target format.
type Adapter interface {
	// Name returns the identity used as the registry key.
	Name() string
	// TypeMapping returns the adapter's type table. Implementations return a
	// copy so callers cannot alter adapter state.
	TypeMapping() TypeMapping
	// Transform renders def. It must not mutate def or perform I/O.
	Transform(def model.Definition) (string, error)
}

// ResolveFieldTypeName maps t through the adapter's table, falling back to
// the field type's own name when no entry exists.
func ResolveFieldTypeName(a Adapter, t model.FieldType) string {
	if a == nil {
		return string(t)
	}
	return NewResolver(a.TypeMapping()).Resolve(t)
}

// Resolver applies the fallback policy against a fixed mapping snapshot. It
// lets a Transform take one TypeMapping copy and resolve every field from it.
type Resolver struct {
	mapping TypeMapping
}

// NewResolver captures mapping for repeated lookups.
func NewResolver(mapping TypeMapping) Resolver {
	return Resolver{mapping: mapping}
}

// Resolve returns the mapped type name or string(t) when unmapped.
func (r Resolver) Resolve(t model.FieldType) string {
	if name, ok := r.mapping.Lookup(t); ok {
		return name
	}
	return string(t)
}

// Mapping returns a copy of the captured table.
func (r Resolver) Mapping() TypeMapping {
	return r.mapping.Clone()
}

// Extensioner is implemented by adapters that know the file extension their
// output is usually saved under.
type Extensioner interface {
	Extension() string
}

// DefaultExtension is used for adapters that do not implement Extensioner.
const DefaultExtension = ".txt"

// ExtensionFor returns the adapter's preferred file extension, always with a
// leading dot.
func ExtensionFor(a Adapter) string {
	ext, ok := a.(Extensioner)
	if !ok {
		return DefaultExtension
	}
	return NormalizeExtension(ext.Extension())
}

// NormalizeExtension trims ext and ensures it carries a leading dot. Blank
// input yields DefaultExtension.
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
