package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/types"
)

func TestPlugboardConnectIsSymmetric(t *testing.T) {
	pb := engine.NewPlugboard()
	require.NoError(t, pb.Connect('A', 'B'))

	assert.Equal(t, 'B', pb.Map('A'))
	assert.Equal(t, 'A', pb.Map('B'))
	assert.Equal(t, 'C', pb.Map('C'))
	assert.Equal(t, 1, pb.Count())
	assert.True(t, pb.Plugged('A'))
	assert.True(t, pb.Plugged('B'))
	assert.False(t, pb.Plugged('C'))
}

func TestPlugboardRejectsBadConnections(t *testing.T) {
	pb := engine.NewPlugboard()
	require.NoError(t, pb.Connect('A', 'B'))

	tests := []struct {
		name string
		a, b rune
		want error
	}{
		{"self", 'C', 'C', engine.ErrSelfPlug},
		{"first_used", 'A', 'D', engine.ErrAlreadyPlugged},
		{"second_used", 'D', 'B', engine.ErrAlreadyPlugged},
		{"unknown", '1', 'D', engine.ErrUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, pb.Connect(tt.a, tt.b), tt.want)
			assert.Equal(t, 1, pb.Count())
		})
	}
}

func TestPlugboardCap(t *testing.T) {
	pb := engine.NewPlugboard()
	for i := 0; i < types.MaxPlugs; i++ {
		require.NoError(t, pb.Connect(rune('A'+2*i), rune('B'+2*i)))
	}
	require.True(t, pb.Full())

	assert.ErrorIs(t, pb.Connect('Y', 'Z'), engine.ErrPlugboardFull)
	assert.Equal(t, types.MaxPlugs, pb.Count())
	assert.Equal(t, 'Y', pb.Map('Y'))
}

func TestPlugboardPairsAndReset(t *testing.T) {
	pb := engine.NewPlugboard()
	require.NoError(t, pb.Connect('Q', 'D'))
	require.NoError(t, pb.Connect('Z', 'A'))

	assert.Equal(t, []string{"AZ", "DQ"}, pb.Pairs())

	pb.Reset()
	assert.Equal(t, 0, pb.Count())
	assert.Empty(t, pb.Pairs())
	assert.Equal(t, 'Q', pb.Map('Q'))
}
