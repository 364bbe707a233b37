// Package postgres renders definitions as PostgreSQL CREATE TABLE statements.
package postgres

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/strcase"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// Name is the default registry key.
const Name = "postgres"

const indent = "    "

// DefaultTypeMapping returns the built-in column type table.
func DefaultTypeMapping() adapter.TypeMapping {
	return adapter.TypeMapping{
		model.FieldTypeString:  "varchar(255)",
		model.FieldTypeNumber:  "integer",
		model.FieldTypeBoolean: "boolean",
		model.FieldTypeDate:    "timestamp",
		model.FieldTypeArray:   "jsonb",
		model.FieldTypeObject:  "jsonb",
	}
}

// Option configures the adapter.
type Option func(*config)

type config struct {
	name        string
	mapping     adapter.TypeMapping
	constraints bool
	snakeCase   bool
	quoted      bool
}

// WithName overrides the registry key.
func WithName(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.name = name
		}
	}
}

// WithTypeMapping replaces the column type table.
func WithTypeMapping(mapping adapter.TypeMapping) Option {
	return func(cfg *config) {
		cfg.mapping = mapping.Clone()
	}
}

// WithConstraints emits NOT NULL for required fields and DEFAULT clauses for
// scalar default values.
func WithConstraints() Option {
	return func(cfg *config) {
		cfg.constraints = true
	}
}

// WithSnakeCase converts table and column identifiers to snake_case.
func WithSnakeCase() Option {
	return func(cfg *config) {
		cfg.snakeCase = true
	}
}

// WithQuotedIdentifiers wraps identifiers in double quotes.
func WithQuotedIdentifiers() Option {
	return func(cfg *config) {
		cfg.quoted = true
	}
}

// Adapter emits CREATE TABLE statements.
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

// TypeMapping returns a copy of the column type table.
func (a *Adapter) TypeMapping() adapter.TypeMapping {
	return a.cfg.mapping.Clone()
}

// Extension returns the file extension for generated output.
func (a *Adapter) Extension() string {
	return ".sql"
}

// Transform renders def as a table whose columns follow field order. The
// model name is the table identifier.
func (a *Adapter) Transform(def model.Definition) (string, error) {
	resolver := adapter.NewResolver(a.cfg.mapping)
	columns := adapter.Lines(def, resolver, func(field model.Field, targetType string) string {
		return a.column(field, targetType)
	})

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(a.identifier(def.Name))
	b.WriteString(" (\n")
	if len(columns) > 0 {
		b.WriteString(strings.Join(adapter.Indent(indent, columns), ",\n"))
		b.WriteString("\n")
	}
	b.WriteString(");")
	return b.String(), nil
}

func (a *Adapter) column(field model.Field, targetType string) string {
	parts := []string{a.identifier(field.Name), targetType}
	if a.cfg.constraints {
		if field.Required {
			parts = append(parts, "NOT NULL")
		}
		if literal, ok := defaultLiteral(field.Default); ok {
			parts = append(parts, "DEFAULT "+literal)
		}
	}
	return strings.Join(parts, " ")
}

func (a *Adapter) identifier(name string) string {
	if a.cfg.snakeCase {
		name = strcase.ToSnake(name)
	}
	if a.cfg.quoted {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

// defaultLiteral renders scalar defaults. Composite values are skipped since
// their encoding depends on the column type the caller mapped them to.
func defaultLiteral(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return quoteLiteral(v), true
	case bool:
		if v {
			return "TRUE", true
		}
		return "FALSE", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		return quoteLiteral(v.UTC().Format(time.RFC3339)), true
	case fmt.Stringer:
		return quoteLiteral(v.String()), true
	default:
		return "", false
	}
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
