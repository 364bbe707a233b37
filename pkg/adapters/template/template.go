package template

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Option configures a template adapter before its source is compiled.
type Option func(*config)

type config struct {
	mapping     adapter.TypeMapping
	extension   string
	description string
	globals     map[string]any
	autoescape  bool
	files       fs.FS
}

// WithTypeMapping sets the type table used for target_type and typename.
func WithTypeMapping(mapping adapter.TypeMapping) Option {
	return func(cfg *config) {
		cfg.mapping = mapping.Clone()
	}
}

// WithExtension records the file extension for generated output.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(ext) != "" {
			cfg.extension = adapter.NormalizeExtension(ext)
		}
	}
}

// WithDescription attaches a short human readable summary.
func WithDescription(text string) Option {
	return func(cfg *config) {
		cfg.description = strings.TrimSpace(text)
	}
}

// WithGlobalData seeds values available to the template under their keys.
// Reserved keys (model, fields, typename) are overwritten at render time.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			if key = strings.TrimSpace(key); key != "" {
				cfg.globals[key] = value
			}
		}
	}
}

// WithAutoescape turns on HTML escaping of {{ }} output, including output of
// included and extended files. It is off by default since most targets are
// source code.
func WithAutoescape() Option {
	return func(cfg *config) {
		cfg.autoescape = true
	}
}

// WithFS resolves {% include %} and {% extends %} against files. Without it
// templates cannot reach the filesystem.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// Adapter renders definitions through a compiled pongo2 template.
type Adapter struct {
	name string
	cfg  config
	tpl  *pongo2.Template
}

var _ adapter.Adapter = (*Adapter)(nil)

// New compiles source once and returns an adapter registered under name.
func New(name, source string, options ...Option) (*Adapter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("template: adapter name required")
	}
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("template: adapter %q has an empty template", name)
	}

	cfg := config{
		mapping:   IdentityTypeMapping(),
		extension: adapter.DefaultExtension,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registerDefaultFilters()

	files := cfg.files
	if files == nil {
		files = embed.FS{}
	}
	mode := escapeMode(cfg.autoescape)
	// TrimBlocks and LStripBlocks stay off: pongo2 applies them by rewriting
	// tokens on every execution. Templates use {%- -%} instead.
	set := pongo2.NewSet("modelgen:"+name, escapeLoader{
		TemplateLoader: pongo2.NewFSLoader(files),
		mode:           mode,
	})

	tpl, err := set.FromString(withEscapeMode(source, mode))
	if err != nil {
		return nil, fmt.Errorf("template: parse %q: %w", name, err)
	}

	return &Adapter{name: name, cfg: cfg, tpl: tpl}, nil
}

// pongo2 reads its autoescape flag from a package global for every execution,
// included files among them. The mode is pinned per template instead by
// wrapping each source in an autoescape block.
var extendsTag = regexp.MustCompile(`\{%-?\s*extends\s`)

func escapeMode(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// withEscapeMode wraps src in an autoescape block. Sources that extend another
// template are returned as is: extends must sit at root level and their blocks
// render inside the (wrapped) base.
func withEscapeMode(src, mode string) string {
	if extendsTag.MatchString(src) {
		return src
	}
	return "{% autoescape " + mode + " %}" + src + "{% endautoescape %}"
}

// escapeLoader applies withEscapeMode to every file the set reads, so the mode
// holds for {% include %} and {% extends %} targets.
type escapeLoader struct {
	pongo2.TemplateLoader
	mode string
}

func (l escapeLoader) Get(path string) (io.Reader, error) {
	r, err := l.TemplateLoader.Get(path)
	if err != nil {
		return nil, err
	}
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(withEscapeMode(string(src), l.mode)), nil
}

// MustNew is New that panics on error, for package level declarations.
func MustNew(name, source string, options ...Option) *Adapter {
	a, err := New(name, source, options...)
	if err != nil {
		panic(err)
	}
	return a
}

// IdentityTypeMapping maps every field type to its own name.
func IdentityTypeMapping() adapter.TypeMapping {
	mapping := make(adapter.TypeMapping, len(model.FieldTypes()))
	for _, typ := range model.FieldTypes() {
		mapping[typ] = string(typ)
	}
	return mapping
}

// Name returns the registry key.
func (a *Adapter) Name() string {
	return a.name
}

// TypeMapping returns a copy of the type table.
func (a *Adapter) TypeMapping() adapter.TypeMapping {
	return a.cfg.mapping.Clone()
}

// Extension returns the configured output extension.
func (a *Adapter) Extension() string {
	return a.cfg.extension
}

// Description returns the optional summary.
func (a *Adapter) Description() string {
	return a.cfg.description
}

// Transform executes the template. Trailing newlines are trimmed so output
// matches the bundled adapters.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	out, err := a.tpl.Execute(a.context(def))
	if err != nil {
		return "", fmt.Errorf("template: execute %q for %s: %w", a.name, def.Name, err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func (a *Adapter) context(def model.Definition) pongo2.Context {
	resolver := adapter.NewResolver(a.cfg.mapping)

	ctx := make(pongo2.Context, len(a.cfg.globals)+3)
	for key, value := range a.cfg.globals {
		ctx[key] = value
	}

	fields := make([]map[string]any, 0, def.Fields.Len())
	var required []string
	def.Fields.Each(func(i int, field model.Field) bool {
		fields = append(fields, fieldContext(i, def.Fields.Len(), field, resolver.Resolve(field.Type)))
		if field.Required {
			required = append(required, field.Name)
		}
		return true
	})

	ctx["model"] = map[string]any{
		"name":        def.Name,
		"description": def.Description,
		"required":    required,
		"empty":       def.Fields.Len() == 0,
	}
	ctx["fields"] = fields
	ctx["typename"] = func(typ string) string {
		return resolver.Resolve(model.FieldType(typ))
	}
	return ctx
}

func fieldContext(index, total int, field model.Field, targetType string) map[string]any {
	constraints := make(map[string]any, len(field.Constraints))
	for key, value := range field.Constraints {
		constraints[key] = value
	}
	return map[string]any{
		"name":        field.Name,
		"type":        string(field.Type),
		"target_type": targetType,
		"required":    field.Required,
		"has_default": field.HasDefault(),
		"default":     field.Default,
		"description": field.Description,
		"constraints": constraints,
		"index":       index,
		"first":       index == 0,
		"last":        index == total-1,
	}
}
