package adapters

import (
	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/adapters/htmldoc"
	"github.com/goliatone/go-modelgen/pkg/adapters/openapi"
	"github.com/goliatone/go-modelgen/pkg/adapters/postgres"
	"github.com/goliatone/go-modelgen/pkg/adapters/python"
	"github.com/goliatone/go-modelgen/pkg/adapters/typescript"
	"github.com/goliatone/go-modelgen/pkg/adapters/yaml"
)

// Defaults returns the typescript, python and postgres adapters with their
// default configuration.
func Defaults() []adapter.Adapter {
	return []adapter.Adapter{
		typescript.New(),
		python.New(),
		postgres.New(),
	}
}

// Extended returns the document oriented adapters: openapi, yaml and html.
func Extended() []adapter.Adapter {
	return []adapter.Adapter{
		openapi.New(),
		yaml.New(),
		htmldoc.New(),
	}
}

// All returns Defaults followed by Extended.
func All() []adapter.Adapter {
	return append(Defaults(), Extended()...)
}
