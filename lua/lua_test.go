package lua_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaelod/enigma/lua"
	"github.com/samaelod/enigma/types"
)

const keySheet = `
local machine = {}
machine.name = "army"
machine.rotors = {
	"ekmflgdqvzntowyhxuspaibrcj", -- I
	"AJDKSIRUXBLHWTMCQGZNPYFVOE",
	"BDFHJLCPRTXVZNYEIWGAKMOUSQ",
}
machine.reflector = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
machine.positions = "abc"
machine.plugs = {"AB", "CD"}
return machine
`

func sample() *types.Machine {
	return &types.Machine{
		Name:      "army",
		Rotors:    []string{"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "BDFHJLCPRTXVZNYEIWGAKMOUSQ"},
		Reflector: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
		Positions: "ABC",
		Plugs:     []string{"AB", "CD"},
	}
}

func TestReadLuaString(t *testing.T) {
	m, err := lua.ReadLuaString(keySheet)
	require.NoError(t, err)
	assert.Equal(t, sample(), m)
}

func TestReadLuaRejectsBadSheets(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"not_a_table", `return 42`, "did not return a table"},
		{"syntax", `return {`, ""},
		{"bad_reflector", `return { rotors = {"ABCDEFGHIJKLMNOPQRSTUVWXYZ"}, reflector = "AB" }`, "reflector"},
		{"missing_rotors", `return { reflector = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" }`, "rotors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lua.ReadLuaString(tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadLuaReportsField(t *testing.T) {
	_, err := lua.ReadLuaString(`return { rotors = {"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "ABC"}, reflector = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" }`)

	var fe *types.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "rotors[1]", fe.Field)
	assert.Equal(t, "ABC", fe.Value)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lua.WriteConfig(&buf, sample()))

	m, err := lua.ReadLuaString(buf.String())
	require.NoError(t, err)
	assert.Equal(t, sample(), m)
}

func TestSaveToRecent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recent")
	sheet := sample()
	sheet.Name = "machine.yaml"

	first, err := lua.SaveToRecent(sheet, dir)
	require.NoError(t, err)
	second, err := lua.SaveToRecent(sheet, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "machine_1.lua"), first)
	assert.Equal(t, filepath.Join(dir, "machine_2.lua"), second)

	m, err := lua.ReadLuaConfig(second)
	require.NoError(t, err)
	assert.Equal(t, sheet.Rotors, m.Rotors)
	assert.Equal(t, "ABC", m.Positions)

	_, err = os.Stat(first)
	assert.NoError(t, err)
}
