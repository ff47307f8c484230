package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two fresh Karplus-Strong oscillators, plucked and driven identically,
// produce identical output: both seed their delay line from an rng
// constructed with the same fixed seed.
func TestKSDeterministicPluck(t *testing.T) {
	build := func() *Module {
		s := newTestSynth()
		m, err := NewModule(s, nil, "osc/ks", -1)
		require.NoError(t, err)
		EventIn(m, "frequency", FloatEvent(220), nil)
		EventIn(m, "gate", FloatEvent(1), nil)
		return m
	}

	a, b := build(), build()
	var outA, outB [BlockSize]float32
	for i := 0; i < 5; i++ {
		a.Type.Process(a, [][]float32{outA[:]})
		b.Type.Process(b, [][]float32{outB[:]})
		assert.Equal(t, outA, outB)
	}
}

func TestKSIdleBeforeAnyGate(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/ks", -1)
	require.NoError(t, err)

	var out [BlockSize]float32
	active := m.Type.Process(m, [][]float32{out[:]})
	assert.False(t, active)
}

func TestKSGateOnProducesSoundThenReleaseDecays(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/ks", -1)
	require.NoError(t, err)
	EventIn(m, "frequency", FloatEvent(220), nil)
	EventIn(m, "gate", FloatEvent(1), nil)

	var out [BlockSize]float32
	active := m.Type.Process(m, [][]float32{out[:]})
	assert.True(t, active)

	EventIn(m, "gate", FloatEvent(0), nil)
	this := m.Priv.(*ks)
	assert.Equal(t, ksStateRelease, this.state)
}

func TestKSZeroBufferLeavesLastSlotUntouched(t *testing.T) {
	// ksZeroBuffer zeroes indices [0, ksDelaySize-2] only, mirroring the
	// reference implementation's exact off-by-one.
	this := &ks{}
	for i := range this.delay {
		this.delay[i] = 1
	}
	ksZeroBuffer(this)
	for i := 0; i < ksDelaySize-1; i++ {
		assert.Zero(t, this.delay[i])
	}
	assert.Equal(t, float32(1), this.delay[ksDelaySize-1])
}

func TestKSHardResetClearsBufferAndGoesIdle(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/ks", -1)
	require.NoError(t, err)
	EventIn(m, "gate", FloatEvent(1), nil)

	EventIn(m, "reset", BoolEvent(true), nil)
	this := m.Priv.(*ks)
	assert.Equal(t, ksStateIdle, this.state)
	for i := 0; i < ksDelaySize-1; i++ {
		assert.Zero(t, this.delay[i])
	}
}
