// Package yaml renders a definition as a YAML document whose fields mapping
// keeps declaration order.
package yaml

import (
	"bytes"
	"fmt"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Name is the default registry key.
const Name = "yaml"

// DefaultTypeMapping names each field type after the YAML core type it
// serialises to.
func DefaultTypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{
		model.FieldTypeString:  "str",
		model.FieldTypeNumber:  "float",
		model.FieldTypeBoolean: "bool",
		model.FieldTypeDate:    "timestamp",
		model.FieldTypeArray:   "seq",
		model.FieldTypeObject:  "map",
	}
}

// Option configures the adapter.
type Option func(*config)

type config struct {
	name    string
	mapping adapter.TypeMapping
	indent  int
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

// WithIndent sets the indentation width. Values below 2 are ignored.
func WithIndent(spaces int) Option {
	return func(cfg *config) {
		if spaces >= 2 {
			cfg.indent = spaces
		}
	}
}

// Adapter emits YAML.
type Adapter struct {
	cfg config
}

var _ adapter.Adapter = (*Adapter)(nil)

// New constructs the adapter.
func New(options ...Option) *Adapter {
	cfg := config{
		name:    Name,
		mapping: DefaultTypeMapping(),
		indent:  2,
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

// Extension returns the file extension for generated output.
func (a *Adapter) Extension() string {
	return ".yaml"
}

// Transform renders def. The trailing newline is trimmed.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	root, err := a.Node(def)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(a.cfg.indent)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("yaml: encode %s: %w", def.Name, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("yaml: encode %s: %w", def.Name, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Node builds the document node for def.
func (a *Adapter) Node(def model.Definition) (*yamlv3.Node, error) {
	resolver := adapter.NewResolver(a.cfg.mapping)

	root := mappingNode()
	appendScalar(root, "name", def.Name)
	if def.Description != "" {
		appendScalar(root, "description", def.Description)
	}

	fields := mappingNode()
	if def.Fields.Len() == 0 {
		fields.Style = yamlv3.FlowStyle
	}

	var encodeErr error
	def.Fields.Each(func(_ int, field model.Field) bool {
		entry := mappingNode()
		appendScalar(entry, "type", resolver.Resolve(field.Type))
		if field.Required {
			appendPair(entry, "required", &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!bool", Value: "true"})
		}
		if field.HasDefault() {
			value, err := encodeValue(field.Default)
			if err != nil {
				encodeErr = fmt.Errorf("yaml: field %s default: %w", field.Name, err)
				return false
			}
			appendPair(entry, "default", value)
		}
		if field.Description != "" {
			appendScalar(entry, "description", field.Description)
		}
		if enum, ok := field.Constraints["enum"].([]any); ok && len(enum) > 0 {
			value, err := encodeValue(enum)
			if err != nil {
				encodeErr = fmt.Errorf("yaml: field %s enum: %w", field.Name, err)
				return false
			}
			value.Style = yamlv3.FlowStyle
			appendPair(entry, "enum", value)
		}
		appendPair(fields, field.Name, entry)
		return true
	})
	if encodeErr != nil {
		return nil, encodeErr
	}

	appendPair(root, "fields", fields)
	return root, nil
}

func mappingNode() *yamlv3.Node {
	return &yamlv3.Node{Kind: yamlv3.MappingNode, Tag: "!!map"}
}

func appendScalar(node *yamlv3.Node, key, value string) {
	appendPair(node, key, &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: value})
}

func appendPair(node *yamlv3.Node, key string, value *yamlv3.Node) {
	node.Content = append(node.Content,
		&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func encodeValue(value any) (*yamlv3.Node, error) {
	var node yamlv3.Node
	if err := node.Encode(value); err != nil {
		return nil, err
	}
	return &node, nil
}
