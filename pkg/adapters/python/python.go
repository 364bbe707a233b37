// Package python renders definitions as Python class declarations with typed
// attributes.
//
// Output is a class fragment: modules referenced by mapped types such as
// datetime.datetime, and the dataclass decorator, are only imported when
// WithImports is set.
package python

import (
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Name is the default registry key.
const Name = "python"

const indent = "    "

// DefaultTypeMapping returns the built-in Python type table.
func DefaultTypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{
		model.FieldTypeString:  "str",
		model.FieldTypeNumber:  "int",
		model.FieldTypeBoolean: "bool",
		model.FieldTypeDate:    "datetime.datetime",
		model.FieldTypeArray:   "list",
		model.FieldTypeObject:  "dict",
	}
}

// pythonKeywords are suffixed with an underscore when used as attribute names.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// Option configures the adapter.
type Option func(*config)

type config struct {
	name          string
	mapping       adapter.TypeMapping
	dataclass     bool
	docComments   bool
	escapeKeyword bool
	imports       bool
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

// WithDataclass decorates the class with @dataclass.
func WithDataclass() Option {
	return func(cfg *config) {
		cfg.dataclass = true
	}
}

// WithDocComments emits the model description as a class docstring.
func WithDocComments() Option {
	return func(cfg *config) {
		cfg.docComments = true
	}
}

// WithKeywordEscaping appends an underscore to attribute names that collide
// with Python keywords.
func WithKeywordEscaping() Option {
	return func(cfg *config) {
		cfg.escapeKeyword = true
	}
}

// WithImports prefixes the class with the import statements it needs: one
// `import <module>` per dotted type name and the dataclass import when
// WithDataclass is set.
func WithImports() Option {
	return func(cfg *config) {
		cfg.imports = true
	}
}

// Adapter emits `class Name:` blocks.
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
	return ".py"
}

// Transform renders def as a class with one annotated attribute per field.
// A definition without fields yields a `pass` body.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	resolver := adapter.NewResolver(a.cfg.mapping)

	var lines []string
	if a.cfg.imports {
		if header := a.importLines(def, resolver); len(header) > 0 {
			lines = append(lines, header...)
			lines = append(lines, "", "")
		}
	}
	if a.cfg.dataclass {
		lines = append(lines, "@dataclass")
	}
	lines = append(lines, "class "+def.Name+":")

	var body []string
	if a.cfg.docComments {
		body = append(body, docstring(def.Description)...)
	}
	body = append(body, adapter.Lines(def, resolver, func(field model.Field, targetType string) string {
		return a.attributeName(field.Name) + ": " + targetType
	})...)
	if def.Empty() {
		body = append(body, "pass")
	}

	lines = append(lines, adapter.Indent(indent, body)...)
	return strings.Join(lines, "\n"), nil
}

var moduleRef = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.[A-Za-z_]`)

func (a *Adapter) importLines(def model.Definition, resolver adapter.Resolver) []string {
	modules := make(map[string]bool)
	def.Fields.Each(func(_ int, field model.Field) bool {
		for _, match := range moduleRef.FindAllStringSubmatch(resolver.Resolve(field.Type), -1) {
			modules[match[1]] = true
		}
		return true
	})

	lines := make([]string, 0, len(modules)+1)
	for module := range modules {
		lines = append(lines, "import "+module)
	}
	sort.Strings(lines)
	if a.cfg.dataclass {
		lines = append(lines, "from dataclasses import dataclass")
	}
	return lines
}

func (a *Adapter) attributeName(name string) string {
	if a.cfg.escapeKeyword && pythonKeywords[name] {
		return name + "_"
	}
	return name
}

func docstring(text string) []string {
	lines := adapter.CommentLines(text)
	for i, line := range lines {
		lines[i] = escapeDocstring(line)
	}
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return []string{`"""` + lines[0] + `"""`}
	}
	out := []string{`"""`}
	out = append(out, lines...)
	return append(out, `"""`)
}

// escapeDocstring keeps text from terminating the surrounding triple quotes.
func escapeDocstring(line string) string {
	line = strings.ReplaceAll(line, `\`, `\\`)
	line = strings.ReplaceAll(line, `"""`, `\"\"\"`)
	if strings.HasSuffix(line, `"`) && !strings.HasSuffix(line, `\"`) {
		line = line[:len(line)-1] + `\"`
	}
	return line
}
