package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseAllocRejectsBadKind(t *testing.T) {
	s := newTestSynth()
	_, err := NewModule(s, nil, "osc/noise", -1, NoiseTypeNull)
	assert.Error(t, err)
	_, err = NewModule(s, nil, "osc/noise", -1, 999)
	assert.Error(t, err)
}

func TestNoiseKindsStayInUnitRange(t *testing.T) {
	kinds := []int{NoiseTypeWhite, NoiseTypeBrown, NoiseTypePink1, NoiseTypePink2}
	for _, kind := range kinds {
		s := newTestSynth()
		m, err := NewModule(s, nil, "osc/noise", -1, kind)
		require.NoError(t, err)

		var out [BlockSize]float32
		for i := 0; i < 20; i++ {
			m.Type.Process(m, [][]float32{out[:]})
		}
		for _, v := range out {
			assert.GreaterOrEqual(t, v, float32(-1.2), "kind %d", kind)
			assert.LessOrEqual(t, v, float32(1.2), "kind %d", kind)
		}
	}
}

func TestNoiseWhiteDefaultsAtConstruction(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/noise", -1)
	require.NoError(t, err)
	assert.Equal(t, NoiseTypeWhite, m.Priv.(*noise).kind)
}

func TestRNGDeterministicForSameSeed(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.next(), b.next())
	}
}

func TestRNGZeroSeedRemapped(t *testing.T) {
	r := newRNG(0)
	assert.NotZero(t, r.state)
}
