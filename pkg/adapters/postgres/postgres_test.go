package postgres_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-modelgen/pkg/adapters/postgres"
	"github.com/goliatone/go-modelgen/pkg/catalog"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/testsupport"
)

func TestAdapterContract(t *testing.T) {
	testsupport.RunAdapterContract(t, postgres.New())
}

func TestTransform_ColumnsCommaSeparated(t *testing.T) {
	def := model.New("User").Number("id").String("name").Build()

	out, err := postgres.New().Transform(def)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	want := "CREATE TABLE User (\n    id integer,\n    name varchar(255)\n);"
	if diff := testsupport.CompareGolden(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_EmptyModel(t *testing.T) {
	out, err := postgres.New().Transform(model.New("Nothing").Build())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if want := "CREATE TABLE Nothing (\n);"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestTransform_ConstraintsIgnoredByDefault(t *testing.T) {
	def := model.New("Flag").Boolean("enabled", model.Required(), model.Default(true)).Build()

	out, err := postgres.New().Transform(def)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if want := "CREATE TABLE Flag (\n    enabled boolean\n);"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestTransform_DefaultLiterals(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	def := model.New("Defaults").
		String("quote", model.Default("it's")).
		Number("ratio", model.Default(0.5)).
		Number("count", model.Default(int64(7))).
		Date("at", model.Default(at)).
		Object("meta", model.Default(map[string]any{"a": 1})).
		Build()

	out, err := postgres.New(postgres.WithConstraints()).Transform(def)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	want := "CREATE TABLE Defaults (\n" +
		"    quote varchar(255) DEFAULT 'it''s',\n" +
		"    ratio integer DEFAULT 0.5,\n" +
		"    count integer DEFAULT 7,\n" +
		"    at timestamp DEFAULT '2024-01-02T03:04:05Z',\n" +
		"    meta jsonb\n" +
		");"
	if diff := testsupport.CompareGolden(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestTransform_Golden(t *testing.T) {
	cases := []struct {
		name    string
		def     model.Definition
		options []postgres.Option
	}{
		{name: "user", def: catalog.User()},
		{name: "product", def: catalog.Product()},
		{
			name: "order_constraints",
			def:  catalog.Order(),
			options: []postgres.Option{
				postgres.WithConstraints(),
				postgres.WithSnakeCase(),
				postgres.WithQuotedIdentifiers(),
			},
		},
		{
			name:    "blogpost_snake",
			def:     catalog.BlogPost(),
			options: []postgres.Option{postgres.WithConstraints(), postgres.WithSnakeCase()},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := postgres.New(tc.options...).Transform(tc.def)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			testsupport.AssertGolden(t, filepath.Join("testdata", tc.name+".golden.sql"), out)
		})
	}
}
