// Package htmldoc renders a definition as an HTML reference table. Model and
// field descriptions may carry inline markup, which is sanitized before it is
// written out.
package htmldoc

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Name is the default registry key.
const Name = "html"

// DefaultTypeMapping returns the display names used in the type column.
func DefaultTypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{
		model.FieldTypeString:  "string",
		model.FieldTypeNumber:  "number",
		model.FieldTypeBoolean: "boolean",
		model.FieldTypeDate:    "datetime",
		model.FieldTypeArray:   "array",
		model.FieldTypeObject:  "object",
	}
}

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		descriptionPolicy = policy
	})
	return descriptionPolicy
}

// SanitizeDescription strips everything but a small set of inline elements.
func SanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(descriptionSanitizer().Sanitize(trimmed))
}

// Option configures the adapter.
type Option func(*config)

type config struct {
	name    string
	mapping adapter.TypeMapping
	class   string
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

// WithClass sets the class attribute on the wrapping section.
func WithClass(class string) Option {
	return func(cfg *config) {
		cfg.class = strings.TrimSpace(class)
	}
}

// Adapter emits an HTML fragment.
type Adapter struct {
	cfg config
}

var _ adapter.Adapter = (*Adapter)(nil)

// New constructs the adapter.
func New(options ...Option) *Adapter {
	cfg := config{
		name:    Name,
		mapping: DefaultTypeMapping(),
		class:   "model",
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
	return ".html"
}

// Transform renders def as a section holding a heading, the optional
// description and a field table.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	resolver := adapter.NewResolver(a.cfg.mapping)

	var b strings.Builder
	b.WriteString("<section")
	if a.cfg.class != "" {
		fmt.Fprintf(&b, ` class="%s"`, html.EscapeString(a.cfg.class))
	}
	fmt.Fprintf(&b, ` id="%s">`+"\n", html.EscapeString(AnchorID(def.Name)))
	fmt.Fprintf(&b, "  <h2>%s</h2>\n", html.EscapeString(def.Name))
	if desc := SanitizeDescription(def.Description); desc != "" {
		fmt.Fprintf(&b, "  <p>%s</p>\n", desc)
	}

	if def.Fields.Len() == 0 {
		b.WriteString("  <p class=\"empty\">No fields.</p>\n")
		b.WriteString("</section>")
		return b.String(), nil
	}

	b.WriteString("  <table>\n")
	b.WriteString("    <thead>\n")
	b.WriteString("      <tr><th>Field</th><th>Type</th><th>Required</th><th>Default</th><th>Description</th></tr>\n")
	b.WriteString("    </thead>\n")
	b.WriteString("    <tbody>\n")
	def.Fields.Each(func(_ int, field model.Field) bool {
		required := "no"
		if field.Required {
			required = "yes"
		}
		defaultValue := ""
		if field.HasDefault() {
			defaultValue = "<code>" + html.EscapeString(fmt.Sprint(field.Default)) + "</code>"
		}
		fmt.Fprintf(&b, "      <tr><td><code>%s</code></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(field.Name),
			html.EscapeString(resolver.Resolve(field.Type)),
			required,
			defaultValue,
			SanitizeDescription(field.Description),
		)
		return true
	})
	b.WriteString("    </tbody>\n")
	b.WriteString("  </table>\n")
	b.WriteString("</section>")
	return b.String(), nil
}

// AnchorID derives the section id from a model name.
func AnchorID(name string) string {
	id := strcase.ToKebab(strings.TrimSpace(name))
	if id == "" {
		return "model"
	}
	return "model-" + id
}
