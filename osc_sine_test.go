package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSineFrequencySetsPhaseStep(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/sine", -1)
	require.NoError(t, err)

	EventIn(m, "frequency", FloatEvent(440), nil)
	this := m.Priv.(*sine)
	assert.EqualValues(t, uint32(float64(440)*FrequencyScale), this.xstep)
}

func TestSineNegativeFrequencyClampsToZero(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/sine", -1)
	require.NoError(t, err)

	EventIn(m, "frequency", FloatEvent(-10), nil)
	this := m.Priv.(*sine)
	assert.Zero(t, this.xstep)
}

func TestSineResetSetsQuarterCyclePhase(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/sine", -1)
	require.NoError(t, err)

	this := m.Priv.(*sine)
	this.x = 12345
	EventIn(m, "reset", BoolEvent(true), nil)
	assert.EqualValues(t, QuarterCycle, this.x)
}

func TestSineProcessStaysAlwaysActiveAndInUnitRange(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/sine", -1)
	require.NoError(t, err)
	EventIn(m, "frequency", FloatEvent(440), nil)

	var out [BlockSize]float32
	active := m.Type.Process(m, [][]float32{out[:]})
	assert.True(t, active)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, float32(-1.01))
		assert.LessOrEqual(t, v, float32(1.01))
	}
}

func TestSineNotePortUsesMIDIToFrequency(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/sine", -1)
	require.NoError(t, err)

	EventIn(m, "note", FloatEvent(69), nil)
	this := m.Priv.(*sine)
	assert.InDelta(t, 440.0, float64(this.freq), 0.5)
}
