package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samaelod/enigma/engine"
)

func TestFormatBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"partial_block", "ABC", "ABC"},
		{"one_block", "ABCDE", "ABCDE "},
		{
			"forty_five",
			strings.Repeat("ABCDE", 9),
			strings.Repeat("ABCDE ", 7) + "ABCDE\n" + "ABCDE ",
		},
		{"drops_breaks", "AB\nCDE\nFG", "ABCDE FG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.FormatBlocks(tt.in))
		})
	}
}

func TestMessageBuffer(t *testing.T) {
	var b engine.MessageBuffer
	for _, c := range strings.Repeat("Q", 60) {
		b.Append(c)
	}

	assert.Equal(t, 60, b.Len())
	lines := b.Lines()
	assert.Len(t, lines, 2)
	assert.Len(t, lines[0], 54)
	assert.Len(t, lines[1], 6)
	assert.True(t, strings.HasPrefix(b.Format(), "QQQQQ QQQQQ"))

	b.Clear()
	assert.Equal(t, "", b.Read())
	assert.Empty(t, b.Lines())
}
