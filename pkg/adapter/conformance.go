package adapter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-modelgen/pkg/model"
)

// Report summarises how well an adapter honours the contract.
type Report struct {
	Adapter string
	// Missing lists field types without a mapping entry.
	Missing []model.FieldType
	// Empty lists field types mapped to a blank string.
	Empty []model.FieldType
	// Unknown lists mapping keys outside the known field type set.
	Unknown []model.FieldType
	// NameMissing is set when the adapter reports an empty name.
	NameMissing bool
}

// OK reports whether the adapter passed every check.
func (r Report) OK() bool {
	return !r.NameMissing && len(r.Missing) == 0 && len(r.Empty) == 0
}

// Err converts a failing report into an error.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	var problems []string
	if r.NameMissing {
		problems = append(problems, "name is empty")
	}
	if len(r.Missing) > 0 {
		problems = append(problems, "missing mappings: "+joinTypes(r.Missing))
	}
	if len(r.Empty) > 0 {
		problems = append(problems, "empty mappings: "+joinTypes(r.Empty))
	}
	name := r.Adapter
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Errorf("adapter: %s: %s", name, strings.Join(problems, "; "))
}

// Check inspects a's name and type mapping. Unknown keys are reported but do
// not fail the check.
func Check(a Adapter) Report {
	if a == nil {
		return Report{NameMissing: true, Missing: model.FieldTypes()}
	}
	report := Report{Adapter: a.Name()}
	if strings.TrimSpace(report.Adapter) == "" {
		report.NameMissing = true
	}

	mapping := a.TypeMapping()
	for _, typ := range model.FieldTypes() {
		name, ok := mapping[typ]
		switch {
		case !ok:
			report.Missing = append(report.Missing, typ)
		case strings.TrimSpace(name) == "":
			report.Empty = append(report.Empty, typ)
		}
	}
	for typ := range mapping {
		if !typ.Valid() {
			report.Unknown = append(report.Unknown, typ)
		}
	}
	slices.Sort(report.Unknown)
	return report
}

func joinTypes(types []model.FieldType) string {
	parts := make([]string, 0, len(types))
	for _, typ := range types {
		parts = append(parts, string(typ))
	}
	return strings.Join(parts, ", ")
}
