// Package openapi renders definitions as OpenAPI 3 component schemas using
// kin-openapi's schema types. Output is JSON by default, YAML on request.
package openapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Name is the default registry key.
const Name = "openapi"

// FieldOrderExtension lists property names in declaration order, since the
// properties object itself is emitted with sorted keys.
const FieldOrderExtension = "x-field-order"

// DefaultTypeMapping returns the built-in OpenAPI type table.
func DefaultTypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{
		model.FieldTypeString:  openapi3.TypeString,
		model.FieldTypeNumber:  openapi3.TypeNumber,
		model.FieldTypeBoolean: openapi3.TypeBoolean,
		model.FieldTypeDate:    openapi3.TypeString,
		model.FieldTypeArray:   openapi3.TypeArray,
		model.FieldTypeObject:  openapi3.TypeObject,
	}
}

// Format selects the serialisation.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Option configures the adapter.
type Option func(*config)

type config struct {
	name    string
	mapping adapter.TypeMapping
	format  Format
}

// WithName overrides the registry key.
func WithName(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.name = name
		}
	}
}

// WithTypeMapping replaces the type table.
func WithTypeMapping(mapping adapter.TypeMapping) Option {
	return func(cfg *config) {
		cfg.mapping = mapping.Clone()
	}
}

// WithFormat switches between JSON and YAML output. Unknown values are
// ignored.
func WithFormat(format Format) Option {
	return func(cfg *config) {
		switch format {
		case FormatJSON, FormatYAML:
			cfg.format = format
		}
	}
}

// Adapter emits a components document holding one schema per definition.
type Adapter struct {
	cfg config
}

var _ adapter.Adapter = (*Adapter)(nil)

// New constructs the adapter.
func New(options ...Option) *Adapter {
	cfg := config{
		name:    Name,
		mapping: DefaultTypeMapping(),
		format:  FormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Adapter{cfg: cfg}
}

// Name returns the registry key.
func (a *Adapter) Name() string {
	return a.cfg.name
}

// TypeMapping returns a copy of the type table.
func (a *Adapter) TypeMapping() adapter.TypeMapping {
	return a.cfg.mapping.Clone()
}

// Extension follows the configured format.
func (a *Adapter) Extension() string {
	if a.cfg.format == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

type document struct {
	Components openapi3.Components `json:"components" yaml:"components"`
}

// Transform renders def under components.schemas.<Name>.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	schema := a.Schema(def)
	doc := document{
		Components: openapi3.Components{
			Schemas: openapi3.Schemas{
				def.Name: openapi3.NewSchemaRef("", schema),
			},
		},
	}

	switch a.cfg.format {
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("openapi: marshal yaml: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	default:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("openapi: marshal json: %w", err)
		}
		return string(out), nil
	}
}

// Schema builds the object schema for def without serialising it.
func (a *Adapter) Schema(def model.Definition) *openapi3.Schema {
	resolver := adapter.NewResolver(a.cfg.mapping)

	schema := &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeObject},
		Title:       def.Name,
		Description: def.Description,
		Properties:  make(openapi3.Schemas, def.Fields.Len()),
	}

	var required []string
	order := make([]any, 0, def.Fields.Len())
	def.Fields.Each(func(_ int, field model.Field) bool {
		schema.Properties[field.Name] = openapi3.NewSchemaRef("", propertySchema(field, resolver.Resolve(field.Type)))
		if field.Required {
			required = append(required, field.Name)
		}
		order = append(order, field.Name)
		return true
	})

	schema.Required = required
	if len(order) > 0 {
		schema.Extensions = map[string]any{FieldOrderExtension: order}
	}
	return schema
}

func propertySchema(field model.Field, targetType string) *openapi3.Schema {
	schema := &openapi3.Schema{
		Type:        &openapi3.Types{targetType},
		Description: field.Description,
		Default:     field.Default,
	}

	switch field.Type {
	case model.FieldTypeDate:
		if targetType == openapi3.TypeString {
			schema.Format = "date-time"
		}
	case model.FieldTypeArray:
		if targetType == openapi3.TypeArray {
			schema.Items = openapi3.NewSchemaRef("", &openapi3.Schema{})
		}
	}

	if enum, ok := field.Constraints["enum"].([]any); ok && len(enum) > 0 {
		schema.Enum = append([]any(nil), enum...)
	}
	return schema
}
