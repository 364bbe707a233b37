package adapter_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

type stubAdapter struct {
	name    string
	mapping adapter.TypeMapping
}

func (s stubAdapter) Name() string                     { return s.name }
func (s stubAdapter) TypeMapping() adapter.TypeMapping { return s.mapping.Clone() }
func (s stubAdapter) Transform(def model.Definition) (string, error) {
	resolver := adapter.NewResolver(s.TypeMapping())
	lines := adapter.Lines(def, resolver, func(field model.Field, targetType string) string {
		return field.Name + " " + targetType
	})
	return strings.Join(lines, "\n"), nil
}

func TestResolveFieldTypeName_UsesMapping(t *testing.T) {
	a := stubAdapter{name: "stub", mapping: adapter.TypeMapping{model.FieldTypeNumber: "int"}}
	if got := adapter.ResolveFieldTypeName(a, model.FieldTypeNumber); got != "int" {
		t.Fatalf("expected int, got %q", got)
	}
}

func TestResolveFieldTypeName_FallsBackToTypeName(t *testing.T) {
	a := stubAdapter{name: "stub", mapping: adapter.TypeMapping{model.FieldTypeString: ""}}

	cases := map[model.FieldType]string{
		model.FieldTypeString: "string",
		model.FieldTypeDate:   "date",
		"uuid":                "uuid",
	}
	for typ, want := range cases {
		if got := adapter.ResolveFieldTypeName(a, typ); got != want {
			t.Fatalf("resolve %q: expected %q, got %q", typ, want, got)
		}
	}
}

func TestResolveFieldTypeName_NilAdapter(t *testing.T) {
	if got := adapter.ResolveFieldTypeName(nil, model.FieldTypeArray); got != "array" {
		t.Fatalf("expected array, got %q", got)
	}
}

func TestLines_InsertionOrderAndSkip(t *testing.T) {
	def := model.New("User").Number("id").String("secret").String("name").Build()
	resolver := adapter.NewResolver(adapter.TypeMapping{model.FieldTypeNumber: "integer"})

	got := adapter.Lines(def, resolver, func(field model.Field, targetType string) string {
		if field.Name == "secret" {
			return ""
		}
		return field.Name + ":" + targetType
	})

	want := []string{"id:integer", "name:string"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestIndent(t *testing.T) {
	got := adapter.Indent("  ", []string{"a", "", "b"})
	want := []string{"  a", "", "  b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("indent mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentLines(t *testing.T) {
	got := adapter.CommentLines("  first line \n second line  ")
	want := []string{"first line", "second line"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("comment lines mismatch (-want +got):\n%s", diff)
	}
	if adapter.CommentLines("   ") != nil {
		t.Fatalf("expected nil for blank text")
	}
}

func TestTypeMapping_CloneIsIndependent(t *testing.T) {
	original := adapter.TypeMapping{model.FieldTypeString: "text"}
	clone := original.Clone()
	clone[model.FieldTypeString] = "varchar"

	if original[model.FieldTypeString] != "text" {
		t.Fatalf("expected original mapping untouched")
	}
	if adapter.TypeMapping(nil).Clone() == nil {
		t.Fatalf("expected nil clone to return an empty map")
	}
}

func TestCheck(t *testing.T) {
	complete := adapter.TypeMapping{}
	for _, typ := range model.FieldTypes() {
		complete[typ] = "T"
	}
	if report := adapter.Check(stubAdapter{name: "full", mapping: complete}); !report.OK() {
		t.Fatalf("expected complete adapter to pass, got %v", report.Err())
	}

	partial := adapter.TypeMapping{
		model.FieldTypeString: "text",
		model.FieldTypeNumber: " ",
		"uuid":                "uuid",
	}
	report := adapter.Check(stubAdapter{name: "partial", mapping: partial})
	if report.OK() {
		t.Fatalf("expected partial adapter to fail")
	}
	wantMissing := []model.FieldType{
		model.FieldTypeBoolean,
		model.FieldTypeDate,
		model.FieldTypeArray,
		model.FieldTypeObject,
	}
	if diff := cmp.Diff(wantMissing, report.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.FieldType{model.FieldTypeNumber}, report.Empty); diff != "" {
		t.Fatalf("empty mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.FieldType{"uuid"}, report.Unknown); diff != "" {
		t.Fatalf("unknown mismatch (-want +got):\n%s", diff)
	}

	err := report.Err()
	if err == nil || !strings.Contains(err.Error(), "missing mappings: boolean, date, array, object") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_UnnamedAdapter(t *testing.T) {
	report := adapter.Check(stubAdapter{mapping: adapter.TypeMapping{}})
	if !report.NameMissing {
		t.Fatalf("expected NameMissing")
	}
	if err := report.Err(); err == nil || !strings.Contains(err.Error(), "<unnamed>") {
		t.Fatalf("unexpected error: %v", err)
	}
}

type extAdapter struct {
	stubAdapter
	ext string
}

func (e extAdapter) Extension() string { return e.ext }

func TestExtensionFor(t *testing.T) {
	cases := []struct {
		name string
		a    adapter.Adapter
		want string
	}{
		{name: "no extensioner", a: stubAdapter{name: "stub"}, want: adapter.DefaultExtension},
		{name: "leading dot kept", a: extAdapter{stubAdapter{name: "ts"}, ".ts"}, want: ".ts"},
		{name: "dot added", a: extAdapter{stubAdapter{name: "py"}, "py"}, want: ".py"},
		{name: "blank falls back", a: extAdapter{stubAdapter{name: "x"}, "  "}, want: adapter.DefaultExtension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := adapter.ExtensionFor(tc.a); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
