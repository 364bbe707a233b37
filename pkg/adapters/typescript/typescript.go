// Package typescript renders definitions as TypeScript interface declarations.
package typescript

import (
	"strings"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Name is the default registry key.
const Name = "typescript"

// DefaultTypeMapping returns the built-in TypeScript type table.
func DefaultTypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{
		model.FieldTypeString:  "string",
		model.FieldTypeNumber:  "number",
		model.FieldTypeBoolean: "boolean",
		model.FieldTypeDate:    "Date",
		model.FieldTypeArray:   "any[]",
		model.FieldTypeObject:  "Record<string, any>",
	}
}

// Option configures the adapter.
type Option func(*config)

type config struct {
	name            string
	mapping         adapter.TypeMapping
	optionalMarkers bool
	export          bool
	docComments     bool
}

// WithName overrides the registry key.
func WithName(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.name = name
		}
	}
}

// WithTypeMapping replaces the type table. Entries left out fall back to the
// field type name.
func WithTypeMapping(mapping adapter.TypeMapping) Option {
	return func(cfg *config) {
		cfg.mapping = mapping.Clone()
	}
}

// WithOptionalMarkers emits `name?: type` for fields that are not required.
func WithOptionalMarkers() Option {
	return func(cfg *config) {
		cfg.optionalMarkers = true
	}
}

// WithExport prefixes the declaration with `export`.
func WithExport() Option {
	return func(cfg *config) {
		cfg.export = true
	}
}

// WithDocComments emits JSDoc comments from model and field descriptions.
func WithDocComments() Option {
	return func(cfg *config) {
		cfg.docComments = true
	}
}

// Adapter emits `interface Name { ... }` declarations.
type Adapter struct {
	cfg config
}

var _ adapter.Adapter = (*Adapter)(nil)

// New constructs the adapter.
func New(options ...Option) *Adapter {
	cfg := config{
		name:    Name,
		mapping: DefaultTypeMapping(),
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
	return ".ts"
}

// Transform renders def as an interface declaration with one member per line.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	resolver := adapter.NewResolver(a.cfg.mapping)
	var b strings.Builder

	if a.cfg.docComments {
		writeDoc(&b, "", def.Description)
	}
	if a.cfg.export {
		b.WriteString("export ")
	}
	b.WriteString("interface ")
	b.WriteString(def.Name)
	b.WriteString(" {\n")

	def.Fields.Each(func(_ int, field model.Field) bool {
		if a.cfg.docComments {
			writeDoc(&b, "  ", field.Description)
		}
		b.WriteString("  ")
		b.WriteString(field.Name)
		if a.cfg.optionalMarkers && !field.Required {
			b.WriteByte('?')
		}
		b.WriteString(": ")
		b.WriteString(resolver.Resolve(field.Type))
		b.WriteString(";\n")
		return true
	})

	b.WriteString("}")
	return b.String(), nil
}

func writeDoc(b *strings.Builder, indent, text string) {
	lines := adapter.CommentLines(text)
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, "*/", `*\/`)
	}
	if len(lines) == 0 {
		return
	}
	if len(lines) == 1 {
		b.WriteString(indent + "/** " + lines[0] + " */\n")
		return
	}
	b.WriteString(indent + "/**\n")
	for _, line := range lines {
		if line == "" {
			b.WriteString(indent + " *\n")
			continue
		}
		b.WriteString(indent + " * " + line + "\n")
	}
	b.WriteString(indent + " */\n")
}
