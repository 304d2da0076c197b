package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaelod/enigma/types"
)

const testMachine = `name: test
rotors:
  - EKMFLGDQVZNTOWYHXUSPAIBRCJ
  - AJDKSIRUXBLHWTMCQGZNPYFVOE
  - BDFHJLCPRTXVZNYEIWGAKMOUSQ
reflector: YRUHQSLDPXNGOKMIEBFZCWVJAT
positions: AAA
`

func writeMachine(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func sheet() *types.Machine {
	return &types.Machine{
		Name:      "test",
		Rotors:    []string{"EKMFLGDQVZNTOWYHXUSPAIBRCJ", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "BDFHJLCPRTXVZNYEIWGAKMOUSQ"},
		Reflector: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
		Positions: "AAA",
	}
}

func TestEncipher(t *testing.T) {
	out, err := encipher(sheet(), "aaaaa")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO ", out)
}

func TestEncipherSkipsNonLetters(t *testing.T) {
	withNoise, err := encipher(sheet(), "a-a 1a\na.a!a")
	require.NoError(t, err)
	plain, err := encipher(sheet(), "AAAAA")
	require.NoError(t, err)
	assert.Equal(t, plain, withNoise)
}

func TestEncipherRoundTrip(t *testing.T) {
	s := sheet()
	s.Plugs = []string{"AB", "CD", "EF"}
	s.Positions = "QEV"

	cipher, err := encipher(s, "WETTERBERICHT")
	require.NoError(t, err)

	plain, err := encipher(s, cipher)
	require.NoError(t, err)
	assert.Equal(t, "WETTE RBERI CHT", strings.TrimSpace(plain))
}

func TestEncipherCommand(t *testing.T) {
	path := writeMachine(t, testMachine)

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"encipher", "-m", path, "-c", filepath.Join(t.TempDir(), "none.json")})
	cmd.SetIn(strings.NewReader("aaaaa aaaaa\n"))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "BDZGO WCXLT\n", out.String())
}

func TestEncipherCommandBadMachine(t *testing.T) {
	path := writeMachine(t, "rotors: [ABC]\nreflector: ABC\n")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"encipher", "-m", path})
	cmd.SetIn(strings.NewReader("a"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load machine")
}

func TestOptions(t *testing.T) {
	f := flags{debug: true, fast: true}
	assert.Equal(t, types.Options{Debug: true, Animate: false}, f.options())

	f = flags{secret: true, instruct: true}
	assert.Equal(t, types.Options{Secret: true, ShowInstructions: true, Animate: true}, f.options())
}
