package model

import (
	"bytes"
	"encoding/json"
	"maps"
)

// FieldType is the closed set of abstract field kinds a definition may use.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

var fieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeNumber,
	FieldTypeBoolean,
	FieldTypeDate,
	FieldTypeArray,
	FieldTypeObject,
}

// FieldTypes returns every known field type in declaration order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// Valid reports whether t belongs to the known set.
func (t FieldType) Valid() bool {
	for _, known := range fieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t FieldType) String() string {
	return string(t)
}

// Field describes a single member of a definition. Struct tags let the yaml
// and openapi adapters serialise fields directly.
type Field struct {
	Name        string         `json:"-" yaml:"-"`
	Type        FieldType      `json:"type" yaml:"type"`
	Required    bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any            `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Constraints map[string]any `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// HasDefault reports whether a default value was supplied.
func (f Field) HasDefault() bool {
	return f.Default != nil
}

func (f Field) clone() Field {
	out := f
	if f.Constraints != nil {
		out.Constraints = maps.Clone(f.Constraints)
	}
	return out
}

// Definition is the top-level input handed to adapters.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Fields      Fields `json:"fields"`
}

// Clone returns a deep copy so callers can derive variants without touching
// the original.
func (d Definition) Clone() Definition {
	out := d
	out.Fields = d.Fields.clone()
	return out
}

// Field looks up a field by name.
func (d Definition) Field(name string) (Field, bool) {
	return d.Fields.Get(name)
}

// Empty reports whether the definition declares no fields.
func (d Definition) Empty() bool {
	return d.Fields.Len() == 0
}

// Fields holds field metadata keyed by name while preserving insertion order.
// The zero value is ready to use.
type Fields struct {
	list  []Field
	index map[string]int
}

// Len returns the number of fields.
func (f Fields) Len() int {
	return len(f.list)
}

// Get returns the field registered under name.
func (f Fields) Get(name string) (Field, bool) {
	i, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	return f.list[i].clone(), true
}

// Names returns field names in insertion order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f.list))
	for _, field := range f.list {
		names = append(names, field.Name)
	}
	return names
}

// All returns a copy of the fields in insertion order.
func (f Fields) All() []Field {
	out := make([]Field, 0, len(f.list))
	for _, field := range f.list {
		out = append(out, field.clone())
	}
	return out
}

// Each calls fn for every field in insertion order, stopping when fn returns
// false.
func (f Fields) Each(fn func(i int, field Field) bool) {
	for i, field := range f.list {
		if !fn(i, field.clone()) {
			return
		}
	}
}

// With returns a copy of f with field set. An existing name keeps its
// position and has its metadata replaced.
func (f Fields) With(field Field) Fields {
	out := f.clone()
	out.set(field)
	return out
}

func (f *Fields) set(field Field) {
	if f.index == nil {
		f.index = make(map[string]int)
	}
	if i, ok := f.index[field.Name]; ok {
		f.list[i] = field.clone()
		return
	}
	f.index[field.Name] = len(f.list)
	f.list = append(f.list, field.clone())
}

func (f Fields) clone() Fields {
	if len(f.list) == 0 {
		return Fields{}
	}
	out := Fields{
		list:  make([]Field, 0, len(f.list)),
		index: make(map[string]int, len(f.list)),
	}
	for i, field := range f.list {
		out.list = append(out.list, field.clone())
		out.index[field.Name] = i
	}
	return out
}

// MarshalJSON writes the fields as a JSON object keyed by field name in
// insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f.list {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
