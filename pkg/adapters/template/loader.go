package template

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/pkg/adapter"
	"github.com/goliatone/go-modelgen/pkg/model"
)

type definitionFile struct {
	Name         string            `json:"name" yaml:"name"`
	Description  string            `json:"description" yaml:"description"`
	Extension    string            `json:"extension" yaml:"extension"`
	TypeMapping  map[string]string `json:"typeMapping" yaml:"typeMapping"`
	Template     string            `json:"template" yaml:"template"`
	TemplateFile string            `json:"templateFile" yaml:"templateFile"`
}

// LoadFS walks fsys and builds one adapter per JSON/YAML definition file.
// A definition carries its template inline (template) or points at a file
// relative to itself (templateFile). Adapters are returned in walk order. Two
// files declaring the same name is an error; registering the result into a
// registry still follows last-write-wins against adapters already there.
func LoadFS(fsys fs.FS, options ...Option) ([]*Adapter, error) {
	if fsys == nil {
		return nil, nil
	}

	var (
		out  []*Adapter
		seen = make(map[string]string)
	)
	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", p, err)
		}
		doc, err := parseDefinition(data, p)
		if err != nil {
			return err
		}

		a, err := buildAdapter(fsys, doc, p, options)
		if err != nil {
			return err
		}
		if prev, exists := seen[a.Name()]; exists {
			return fmt.Errorf("template: duplicate adapter %q (files %s and %s)", a.Name(), prev, p)
		}
		seen[a.Name()] = p
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadDir is LoadFS over a directory on disk. Includes resolve inside dir.
func LoadDir(dir string, options ...Option) ([]*Adapter, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}
	return LoadFS(os.DirFS(dir), options...)
}

func buildAdapter(fsys fs.FS, doc definitionFile, source string, options []Option) (*Adapter, error) {
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return nil, fmt.Errorf("template: file %s defines no name", source)
	}

	body := doc.Template
	if file := strings.TrimSpace(doc.TemplateFile); file != "" {
		if body != "" {
			return nil, fmt.Errorf("template: file %s sets both template and templateFile", source)
		}
		ref := path.Join(path.Dir(source), file)
		data, err := fs.ReadFile(fsys, ref)
		if err != nil {
			return nil, fmt.Errorf("template: file %s: read templateFile %s: %w", source, ref, err)
		}
		body = string(data)
	}

	opts := []Option{WithFS(fsys)}
	if len(doc.TypeMapping) > 0 {
		mapping, err := normaliseMapping(doc.TypeMapping, source)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTypeMapping(mapping))
	}
	if doc.Extension != "" {
		opts = append(opts, WithExtension(doc.Extension))
	}
	if doc.Description != "" {
		opts = append(opts, WithDescription(doc.Description))
	}
	opts = append(opts, options...)

	a, err := New(name, body, opts...)
	if err != nil {
		return nil, fmt.Errorf("template: file %s: %w", source, err)
	}
	return a, nil
}

func normaliseMapping(raw map[string]string, source string) (adapter.TypeMapping, error) {
	out := make(adapter.TypeMapping, len(raw))
	for key, value := range raw {
		typ := strings.TrimSpace(key)
		if typ == "" {
			return nil, fmt.Errorf("template: file %s typeMapping has an empty key", source)
		}
		out[model.FieldType(typ)] = strings.TrimSpace(value)
	}
	return out, nil
}

func parseDefinition(data []byte, source string) (definitionFile, error) {
	var doc definitionFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return definitionFile{}, fmt.Errorf("template: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = definitionFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return definitionFile{}, fmt.Errorf("template: parse %s: invalid JSON or YAML", source)
}

func isDefinitionFile(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
