// Package loader reads machine wiring documents from YAML, TOML, JSON or
// Lua files.
package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/samaelod/enigma/lua"
	"github.com/samaelod/enigma/types"
)

//go:embed machine.schema.json
var schemaJSON []byte

const schemaURL = "machine.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Extensions lists the file types Load understands.
var Extensions = []string{".yaml", ".yml", ".toml", ".json", ".lua"}

// Supported reports whether path has a loadable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads and validates a wiring document, picking the format from
// the file extension.
func Load(path string) (*types.Machine, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		m   *types.Machine
		err error
	)
	if ext == ".lua" {
		m, err = lua.ReadLuaConfig(path)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		m, err = Parse(data, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if m.Name == "" {
		m.Name = filepath.Base(path)
	}
	return m, nil
}

// Parse decodes a YAML, TOML or JSON document. format is a file extension.
func Parse(data []byte, format string) (*types.Machine, error) {
	var doc any

	switch strings.ToLower(format) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		var tbl map[string]any
		if _, err := toml.Decode(string(data), &tbl); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		doc = tbl
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported wiring format %q", format)
	}

	// Normalize to JSON values so one schema serves every format.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	s, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(instance); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	var m types.Machine
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	m.Normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}
