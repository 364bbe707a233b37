package adapter

import (
	"strings"

	"github.com/goliatone/go-modelgen/pkg/model"
)

// LineFunc renders one field. Returning an empty string skips the field.
type LineFunc func(field model.Field, targetType string) string

// Lines renders every field of def in insertion order using resolver for the
// target type name.
func Lines(def model.Definition, resolver Resolver, fn LineFunc) []string {
	if fn == nil {
		return nil
	}
	lines := make([]string, 0, def.Fields.Len())
	def.Fields.Each(func(_ int, field model.Field) bool {
		if line := fn(field, resolver.Resolve(field.Type)); line != "" {
			lines = append(lines, line)
		}
		return true
	})
	return lines
}

// Indent prefixes every line with prefix. Blank lines stay blank.
func Indent(prefix string, lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, prefix+line)
	}
	return out
}

// CommentLines splits text into trimmed lines suitable for wrapping in a
// target comment syntax.
func CommentLines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		out = append(out, strings.TrimSpace(line))
	}
	return out
}
