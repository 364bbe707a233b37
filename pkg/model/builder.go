package model

import "strings"

// FieldOption configures optional field metadata.
type FieldOption func(*Field)

// Required marks the field as required.
func Required() FieldOption {
	return func(f *Field) {
		f.Required = true
	}
}

// Default records a default value for the field.
func Default(value any) FieldOption {
	return func(f *Field) {
		f.Default = value
	}
}

// Description attaches human readable documentation to the field.
func Description(text string) FieldOption {
	return func(f *Field) {
		f.Description = strings.TrimSpace(text)
	}
}

// Constraint stores an opaque constraint (enum, min, pattern...) on the field.
func Constraint(key string, value any) FieldOption {
	return func(f *Field) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		if f.Constraints == nil {
			f.Constraints = make(map[string]any)
		}
		f.Constraints[key] = value
	}
}

// Enum is shorthand for Constraint("enum", values).
func Enum(values ...any) FieldOption {
	return Constraint("enum", append([]any(nil), values...))
}

// Builder assembles a Definition field by field.
type Builder struct {
	def Definition
}

// New starts a definition named name.
func New(name string) *Builder {
	return &Builder{def: Definition{Name: strings.TrimSpace(name)}}
}

// Describe sets the definition description.
func (b *Builder) Describe(text string) *Builder {
	b.def.Description = strings.TrimSpace(text)
	return b
}

// Field adds or replaces a field. Re-using a name keeps the original
// position. Empty names are ignored.
func (b *Builder) Field(name string, typ FieldType, options ...FieldOption) *Builder {
	name = strings.TrimSpace(name)
	if name == "" {
		return b
	}
	field := Field{Name: name, Type: typ}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&field)
	}
	b.def.Fields.set(field)
	return b
}

// String adds a string field.
func (b *Builder) String(name string, options ...FieldOption) *Builder {
	return b.Field(name, FieldTypeString, options...)
}

// Number adds a number field.
func (b *Builder) Number(name string, options ...FieldOption) *Builder {
	return b.Field(name, FieldTypeNumber, options...)
}

// Boolean adds a boolean field.
func (b *Builder) Boolean(name string, options ...FieldOption) *Builder {
	return b.Field(name, FieldTypeBoolean, options...)
}

// Date adds a date field.
func (b *Builder) Date(name string, options ...FieldOption) *Builder {
	return b.Field(name, FieldTypeDate, options...)
}

// Array adds an array field.
func (b *Builder) Array(name string, options ...FieldOption) *Builder {
	return b.Field(name, FieldTypeArray, options...)
}

// Object adds an object field.
func (b *Builder) Object(name string, options ...FieldOption) *Builder {
	return b.Field(name, FieldTypeObject, options...)
}

// Build returns a copy of the accumulated definition. The builder can keep
// being used without affecting definitions already returned.
func (b *Builder) Build() Definition {
	return b.def.Clone()
}
