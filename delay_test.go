package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayAllocRejectsNonPositiveSamples(t *testing.T) {
	s := newTestSynth()
	_, err := NewModule(s, nil, "delay/delay", -1, 0)
	assert.Error(t, err)
	_, err = NewModule(s, nil, "delay/delay", -1, -5)
	assert.Error(t, err)
}

// The read index always trails the write index by exactly one slot, so
// regardless of the requested buffer length this is a fixed one-sample
// delay rather than an n-sample delay line - the bug is preserved
// rather than corrected.
func TestDelayIsFixedOneSampleLagRegardlessOfLength(t *testing.T) {
	for _, n := range []int{2, 4, 16} {
		s := newTestSynth()
		m, err := NewModule(s, nil, "delay/delay", -1, n)
		require.NoError(t, err)

		in := make([]float32, BlockSize)
		in[0] = 1
		out := make([]float32, BlockSize)
		m.Type.Process(m, [][]float32{in, out})

		assert.Zero(t, out[0], "n=%d", n)
		assert.Equal(t, float32(1), out[1], "n=%d", n)
		for i := 2; i < BlockSize; i++ {
			assert.Zero(t, out[i], "n=%d index %d", n, i)
		}
	}
}

func TestDelayPassesThroughConstantSignalAtUnityGain(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "delay/delay", -1, 8)
	require.NoError(t, err)

	in := make([]float32, BlockSize)
	for i := range in {
		in[i] = 0.5
	}
	out := make([]float32, BlockSize)
	for i := 0; i < 3; i++ {
		m.Type.Process(m, [][]float32{in, out})
	}
	assert.Equal(t, float32(0.5), out[BlockSize-1])
}
