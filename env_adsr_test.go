package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestADSR(t *testing.T) (*Module, *adsr) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "env/adsr", -1)
	require.NoError(t, err)
	return m, m.Priv.(*adsr)
}

func runBlocks(m *Module, out []float32, n int) bool {
	active := false
	for i := 0; i < n; i++ {
		active = m.Type.Process(m, [][]float32{out})
	}
	return active
}

func TestADSRIdleByDefault(t *testing.T) {
	m, this := newTestADSR(t)
	var out [BlockSize]float32
	active := m.Type.Process(m, [][]float32{out[:]})
	assert.False(t, active)
	assert.Equal(t, adsrIdle, this.state)
	for _, v := range out {
		assert.Zero(t, v)
	}
}

func TestADSRGateOnReachesSustain(t *testing.T) {
	m, this := newTestADSR(t)
	EventIn(m, "attack", FloatEvent(0.002), nil)
	EventIn(m, "decay", FloatEvent(0.004), nil)
	EventIn(m, "sustain", FloatEvent(0.5), nil)
	EventIn(m, "gate", FloatEvent(1), nil)

	var out [BlockSize]float32
	var active bool
	for i := 0; i < 200; i++ {
		active = m.Type.Process(m, [][]float32{out[:]})
	}
	assert.True(t, active)
	assert.Equal(t, adsrSustain, this.state)
	assert.InDelta(t, 0.5, float64(this.val), 0.05)
}

func TestADSRGateOffReleasesToIdle(t *testing.T) {
	m, this := newTestADSR(t)
	EventIn(m, "attack", FloatEvent(0.002), nil)
	EventIn(m, "decay", FloatEvent(0.004), nil)
	EventIn(m, "release", FloatEvent(0.004), nil)
	EventIn(m, "sustain", FloatEvent(0.5), nil)
	EventIn(m, "gate", FloatEvent(1), nil)

	var out [BlockSize]float32
	runBlocks(m, out[:], 200)
	require.Equal(t, adsrSustain, this.state)

	EventIn(m, "gate", FloatEvent(0), nil)
	active := runBlocks(m, out[:], 400)
	assert.False(t, active)
	assert.Equal(t, adsrIdle, this.state)
	assert.Zero(t, this.val)
}

func TestADSRResetWhileActiveDecaysThenIdles(t *testing.T) {
	m, this := newTestADSR(t)
	EventIn(m, "attack", FloatEvent(0.002), nil)
	EventIn(m, "gate", FloatEvent(1), nil)

	var out [BlockSize]float32
	m.Type.Process(m, [][]float32{out[:]})
	require.NotEqual(t, adsrIdle, this.state)

	EventIn(m, "reset", BoolEvent(false), nil)
	assert.Equal(t, adsrReset, this.state)

	active := runBlocks(m, out[:], 400)
	assert.False(t, active)
	assert.Equal(t, adsrIdle, this.state)
}

func TestADSRHardResetIsImmediate(t *testing.T) {
	m, this := newTestADSR(t)
	EventIn(m, "gate", FloatEvent(1), nil)
	var out [BlockSize]float32
	m.Type.Process(m, [][]float32{out[:]})

	EventIn(m, "reset", BoolEvent(true), nil)
	assert.Equal(t, adsrIdle, this.state)
	assert.Zero(t, this.val)
}

func TestADSRZeroSustainGoesIdleAfterDecay(t *testing.T) {
	m, this := newTestADSR(t)
	EventIn(m, "attack", FloatEvent(0.002), nil)
	EventIn(m, "decay", FloatEvent(0.004), nil)
	EventIn(m, "sustain", FloatEvent(0), nil)
	EventIn(m, "gate", FloatEvent(1), nil)

	var out [BlockSize]float32
	active := runBlocks(m, out[:], 400)
	assert.False(t, active)
	assert.Equal(t, adsrIdle, this.state)
}

func TestGetKProducesCoefficientInUnitRange(t *testing.T) {
	k := getK(0.1)
	assert.Greater(t, k, float32(0))
	assert.Less(t, k, float32(1))
}
