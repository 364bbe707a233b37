package testsupport

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/catalog"
	"github.com/goliatone/go-modelgen/pkg/model"
)

// RunAdapterContract exercises the behaviour every adapter owes its callers:
// a non-empty name, a complete type mapping, deterministic output, untouched
// input, graceful handling of unknown field types and empty models.
func RunAdapterContract(t *testing.T, a adapter.Adapter) {
	t.Helper()

	t.Run("name", func(t *testing.T) {
		if strings.TrimSpace(a.Name()) == "" {
			t.Fatalf("adapter name is empty")
		}
	})

	t.Run("mapping covers every field type", func(t *testing.T) {
		if err := adapter.Check(a).Err(); err != nil {
			t.Fatalf("conformance: %v", err)
		}
		for _, typ := range model.FieldTypes() {
			if got := adapter.ResolveFieldTypeName(a, typ); strings.TrimSpace(got) == "" {
				t.Fatalf("field type %q resolved to an empty name", typ)
			}
		}
	})

	t.Run("mapping is stable", func(t *testing.T) {
		first := a.TypeMapping()
		first[model.FieldTypeString] = "tampered"
		second := a.TypeMapping()
		if second[model.FieldTypeString] == "tampered" {
			t.Fatalf("TypeMapping exposes internal state")
		}
	})

	for _, def := range catalog.All() {
		def := def
		t.Run("deterministic "+def.Name, func(t *testing.T) {
			before := mustJSON(t, def)

			first, err := a.Transform(def)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			second, err := a.Transform(def)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			if first != second {
				t.Fatalf("non-deterministic output:\nfirst:  %q\nsecond: %q", first, second)
			}
			if after := mustJSON(t, def); after != before {
				t.Fatalf("transform mutated the definition:\nbefore: %s\nafter:  %s", before, after)
			}
		})
	}

	t.Run("unknown field type falls back to its name", func(t *testing.T) {
		def := model.New("Sample").Field("token", model.FieldType("uuid")).Build()
		out, err := a.Transform(def)
		if err != nil {
			t.Fatalf("transform: %v", err)
		}
		if !strings.Contains(out, "uuid") {
			t.Fatalf("expected fallback type name in output, got:\n%s", out)
		}
	})

	t.Run("empty model", func(t *testing.T) {
		out, err := a.Transform(model.New("Empty").Build())
		if err != nil {
			t.Fatalf("transform: %v", err)
		}
		if !strings.Contains(out, "Empty") {
			t.Fatalf("expected model name in output, got:\n%s", out)
		}
	})
}

func mustJSON(t *testing.T, def model.Definition) string {
	t.Helper()
	payload, err := json.Marshal(def)
	if err != nil {
		t.Fatalf("marshal definition: %v", err)
	}
	return string(payload)
}
