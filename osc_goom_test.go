package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoomDefaultShapeIsHalfHalf(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/goom", -1)
	require.NoError(t, err)
	this := m.Priv.(*goom)
	assert.Equal(t, float32(0.5), this.duty)
	assert.Equal(t, float32(0.5), this.slope)
}

func TestGoomDutyAndSlopeClampToUnitRange(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/goom", -1)
	require.NoError(t, err)

	EventIn(m, "duty", FloatEvent(5), nil)
	this := m.Priv.(*goom)
	assert.Equal(t, float32(1), this.duty)

	EventIn(m, "slope", FloatEvent(-5), nil)
	assert.Equal(t, float32(0), this.slope)
}

func TestGoomProcessStaysInUnitRange(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/goom", -1)
	require.NoError(t, err)
	EventIn(m, "frequency", FloatEvent(220), nil)

	var out [BlockSize]float32
	active := m.Type.Process(m, [][]float32{out[:]})
	assert.True(t, active)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, float32(-1.01))
		assert.LessOrEqual(t, v, float32(1.01))
	}
}

func TestGoomResetRestoresXResetPhase(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "osc/goom", -1)
	require.NoError(t, err)
	this := m.Priv.(*goom)
	this.x = 999999
	EventIn(m, "reset", BoolEvent(true), nil)
	assert.Equal(t, this.xreset, this.x)
}
