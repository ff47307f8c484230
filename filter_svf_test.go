package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVFAllocRejectsMissingOrBadType(t *testing.T) {
	s := newTestSynth()
	_, err := NewModule(s, nil, "filter/svf", -1)
	assert.Error(t, err)
	_, err = NewModule(s, nil, "filter/svf", -1, 999)
	assert.Error(t, err)
}

func TestSVFChamberlinLowpassAttenuatesHighFrequency(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "filter/svf", -1, SVFTypeChamberlin)
	require.NoError(t, err)
	EventIn(m, "cutoff", FloatEvent(200), nil)
	EventIn(m, "resonance", FloatEvent(0), nil)

	in := make([]float32, BlockSize)
	for i := range in {
		if i%2 == 0 {
			in[i] = 1
		} else {
			in[i] = -1
		}
	}
	out := make([]float32, BlockSize)
	for i := 0; i < 50; i++ {
		m.Type.Process(m, [][]float32{in, out})
	}

	var peak float32
	for _, v := range out {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	assert.Less(t, peak, float32(0.5), "nyquist-rate input should be heavily attenuated")
}

func TestSVFTrapezoidalPassesDCThroughAtUnityGain(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "filter/svf", -1, SVFTypeTrapezoidal)
	require.NoError(t, err)
	EventIn(m, "cutoff", FloatEvent(1000), nil)
	EventIn(m, "resonance", FloatEvent(0), nil)

	in := make([]float32, BlockSize)
	for i := range in {
		in[i] = 1
	}
	out := make([]float32, BlockSize)
	for i := 0; i < 200; i++ {
		m.Type.Process(m, [][]float32{in, out})
	}
	assert.InDelta(t, 1.0, float64(out[BlockSize-1]), 0.05)
}

func TestClampf(t *testing.T) {
	assert.Equal(t, float32(0), clampf(-5, 0, 1))
	assert.Equal(t, float32(1), clampf(5, 0, 1))
	assert.Equal(t, float32(0.5), clampf(0.5, 0, 1))
}
