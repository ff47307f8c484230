package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLFOShapeClampsToValidRange(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/lfo", -1)
	require.NoError(t, err)

	EventIn(m, "shape", IntEvent(-1), nil)
	assert.Equal(t, 0, m.Priv.(*lfo).shape)

	EventIn(m, "shape", IntEvent(999), nil)
	assert.Equal(t, lfoShapeMax-1, m.Priv.(*lfo).shape)
}

func TestLFOSyncResetsPhase(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/lfo", -1)
	require.NoError(t, err)
	this := m.Priv.(*lfo)
	this.x = 12345
	EventIn(m, "sync", BoolEvent(true), nil)
	assert.Zero(t, this.x)
}

func TestLFOAllShapesStayWithinDepthScaledRange(t *testing.T) {
	shapes := []int{
		lfoShapeTriangle, lfoShapeSawDown, lfoShapeSawUp,
		lfoShapeSquare, lfoShapeSine, lfoShapeSampleAndHold,
	}
	for _, shape := range shapes {
		s := newTestSynth()
		m, err := NewModule(s, nil, "osc/lfo", -1)
		require.NoError(t, err)
		EventIn(m, "shape", IntEvent(shape), nil)
		EventIn(m, "rate", FloatEvent(2), nil)
		EventIn(m, "depth", FloatEvent(1), nil)

		var out [BlockSize]float32
		m.Type.Process(m, [][]float32{out[:]})
		for _, v := range out {
			assert.GreaterOrEqual(t, v, float32(-1.01), "shape %d", shape)
			assert.LessOrEqual(t, v, float32(1.01), "shape %d", shape)
		}
	}
}

func TestLFONegativeRateAndDepthClampToZero(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/lfo", -1)
	require.NoError(t, err)
	EventIn(m, "rate", FloatEvent(-5), nil)
	EventIn(m, "depth", FloatEvent(-5), nil)
	this := m.Priv.(*lfo)
	assert.Zero(t, this.xstep)
	assert.Zero(t, this.depth)
}
