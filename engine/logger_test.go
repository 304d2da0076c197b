package engine_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaelod/enigma/engine"
)

func TestLoggerKeepsLastLines(t *testing.T) {
	log := engine.NewLogger("", 3)
	defer log.Close()

	for i := 1; i <= 5; i++ {
		log.Write(fmt.Sprintf("line %d", i))
	}

	assert.Equal(t, "line 3\nline 4\nline 5\n", log.ReadAll())
}

func TestLoggerMirrorsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "session.log")
	log := engine.NewLogger(path, 0)

	log.Write("first")
	log.Write("second")
	log.Close()
	log.Write("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
	assert.Equal(t, "first\nsecond\n", log.ReadAll())
}

func TestNilLogger(t *testing.T) {
	var log *engine.Logger
	log.Write("ignored")
	log.Close()
	assert.Equal(t, "", log.ReadAll())
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print", "msg.txt")
	sink := engine.FileSink{Path: path}

	require.NoError(t, sink.Write("ABCDE "))
	require.NoError(t, sink.Write("FGHIJ "))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "FGHIJ ", string(data))
}

func TestFileSinkFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "print")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err := engine.FileSink{Path: filepath.Join(blocker, "msg.txt")}.Write("X")
	assert.Error(t, err)
}
