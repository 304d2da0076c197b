package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaelod/enigma/loader"
	"github.com/samaelod/enigma/types"
)

var want = &types.Machine{
	Rotors: []string{
		"EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		"AJDKSIRUXBLHWTMCQGZNPYFVOE",
		"BDFHJLCPRTXVZNYEIWGAKMOUSQ",
	},
	Reflector: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	Positions: "MCK",
}

const yamlDoc = `
rotors:
  - EKMFLGDQVZNTOWYHXUSPAIBRCJ # I
  - ajdksiruxblhwtmcqgznpyfvoe
  - BDFHJLCPRTXVZNYEIWGAKMOUSQ
reflector: YRUHQSLDPXNGOKMIEBFZCWVJAT
positions: MCK
`

const tomlDoc = `
rotors = [
  "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
  "AJDKSIRUXBLHWTMCQGZNPYFVOE",
  "BDFHJLCPRTXVZNYEIWGAKMOUSQ",
]
reflector = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
positions = "MCK"
`

const jsonDoc = `{
  "rotors": ["EKMFLGDQVZNTOWYHXUSPAIBRCJ", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "BDFHJLCPRTXVZNYEIWGAKMOUSQ"],
  "reflector": "YRUHQSLDPXNGOKMIEBFZCWVJAT",
  "positions": "mck"
}`

const luaDoc = `return {
  rotors = {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "BDFHJLCPRTXVZNYEIWGAKMOUSQ"},
  reflector = "YRUHQSLDPXNGOKMIEBFZCWVJAT",
  positions = "MCK",
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"machine.yaml", yamlDoc},
		{"machine.yml", yamlDoc},
		{"machine.toml", tomlDoc},
		{"machine.json", jsonDoc},
		{"machine.lua", luaDoc},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			m, err := loader.Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.file, m.Name)
			m.Name = ""
			assert.Equal(t, want, m)
		})
	}
}

func TestLoadShippedMachine(t *testing.T) {
	m, err := loader.Load(filepath.Join("..", "machine.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "enigma-i", m.Name)
	assert.Len(t, m.Rotors, 3)
}

func TestParseReportsOffendingField(t *testing.T) {
	doc := `
rotors:
  - EKMFLGDQVZNTOWYHXUSPAIBRCJ
  - EKMFLGDQVZNTOWYHXUSPAIBRC
reflector: YRUHQSLDPXNGOKMIEBFZCWVJAT
`
	_, err := loader.Parse([]byte(doc), ".yaml")

	var fe *types.FieldError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, "rotors[1]", fe.Field)
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRC", fe.Value)
}

func TestParseSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing_reflector", `{"rotors": ["EKMFLGDQVZNTOWYHXUSPAIBRCJ"]}`},
		{"unknown_field", `{"rotors": ["EKMFLGDQVZNTOWYHXUSPAIBRCJ"], "reflector": "YRUHQSLDPXNGOKMIEBFZCWVJAT", "rings": "AAA"}`},
		{"rotor_not_string", `{"rotors": [42], "reflector": "YRUHQSLDPXNGOKMIEBFZCWVJAT"}`},
		{"empty_rotors", `{"rotors": [], "reflector": "YRUHQSLDPXNGOKMIEBFZCWVJAT"}`},
		{"not_object", `["EKMFLGDQVZNTOWYHXUSPAIBRCJ"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tt.doc), ".json")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema")
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	_, err := loader.Parse([]byte("rotors: [\n"), ".yaml")
	assert.ErrorContains(t, err, "parse yaml")

	_, err = loader.Parse([]byte("rotors = ["), ".toml")
	assert.ErrorContains(t, err, "parse toml")

	_, err = loader.Parse([]byte("{}"), ".ini")
	assert.ErrorContains(t, err, "unsupported")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSupported(t *testing.T) {
	assert.True(t, loader.Supported("a/b/Machine.YAML"))
	assert.True(t, loader.Supported("sheet.lua"))
	assert.False(t, loader.Supported("notes.txt"))
}
