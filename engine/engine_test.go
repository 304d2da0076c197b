package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaelod/enigma/engine"
)

func TestSession(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "test.log")
	outPath := filepath.Join(dir, "print", "msg.txt")

	cfg := sheet()
	cfg.Name = "test"
	cfg.Positions = "AAA"

	rec := &recorder{}
	s, err := engine.NewSession(cfg, logPath, 0, outPath, rec)
	require.NoError(t, err)

	m := s.Machine
	require.NoError(t, m.Handle(engine.EnterKey))
	press(t, m, "AAAAA")
	require.NoError(t, m.Handle(engine.EnterKey))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "BDZGO ", string(out))

	assert.Contains(t, rec.kinds(), engine.EventCommitted)

	key := s.KeySheet()
	assert.Equal(t, "test", key.Name)
	assert.Equal(t, "AAA", key.Positions)

	trace := s.Log.ReadAll()
	assert.Contains(t, trace, "Machine test loaded: 3 rotors, positions AAA, 0 plugs")
	assert.Contains(t, trace, "Message committed (5 letters)")
	assert.NotContains(t, trace, "Warning")

	s.Close()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, trace, string(data))
}

func TestSessionWarnsOnNonReciprocalReflector(t *testing.T) {
	cfg := sheet()
	cfg.Reflector = wiringI

	s, err := engine.NewSession(cfg, "", 10, filepath.Join(t.TempDir(), "msg.txt"), nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Contains(t, s.Log.ReadAll(), "Warning: reflector is not an involution")
}

func TestSessionRejectsBadMachine(t *testing.T) {
	cfg := sheet()
	cfg.Rotors[1] = "ABC"

	_, err := engine.NewSession(cfg, "", 10, "", nil)
	require.ErrorIs(t, err, engine.ErrInvalidWiring)
	assert.Contains(t, err.Error(), "rotors[1]")
}

func TestSessionFail(t *testing.T) {
	s, err := engine.NewSession(sheet(), "", 10, "", nil)
	require.NoError(t, err)
	defer s.Close()

	s.Fail(assert.AnError)
	assert.Contains(t, s.Log.ReadAll(), "Error: "+assert.AnError.Error())
}
