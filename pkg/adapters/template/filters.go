package template

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"
	"github.com/iancoleman/strcase"
)

var filtersOnce sync.Once

// Filters registered by every template adapter. pongo2 keeps filters in a
// process wide table, so names already taken are left alone.
var defaultFilters = map[string]pongo2.FilterFunction{
	"trim":       filterTrim,
	"lowerfirst": filterLowerFirst,
	"upperfirst": filterUpperFirst,
	"snake":      stringFilter(strcase.ToSnake),
	"camel":      stringFilter(strcase.ToLowerCamel),
	"pascal":     stringFilter(strcase.ToCamel),
	"kebab":      stringFilter(strcase.ToKebab),
	"screaming":  stringFilter(strcase.ToScreamingSnake),
}

func registerDefaultFilters() {
	filtersOnce.Do(func() {
		for name, fn := range defaultFilters {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})
}

func stringFilter(fn func(string) string) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

func filterLowerFirst(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(mapFirstRune(in.String(), strings.ToLower)), nil
}

func filterUpperFirst(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(mapFirstRune(in.String(), strings.ToUpper)), nil
}

// mapFirstRune applies fn to the first non-whitespace rune of s.
func mapFirstRune(s string, fn func(string) string) string {
	for i, r := range s {
		if strings.ContainsRune(" \t\n\r", r) {
			continue
		}
		size := utf8.RuneLen(r)
		return s[:i] + fn(string(r)) + s[i+size:]
	}
	return s
}
