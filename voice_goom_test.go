package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoomVoiceBuildsFourChildren(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "voice/goom", -1)
	require.NoError(t, err)
	this := m.Priv.(*goomVoice)
	assert.NotNil(t, this.ampEnv)
	assert.NotNil(t, this.lpfEnv)
	assert.NotNil(t, this.osc)
	assert.NotNil(t, this.lpf)
	assert.Equal(t, SVFTypeTrapezoidal, this.lpf.Priv.(*svf).kind)
}

func TestGoomVoiceSilentUntilGated(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "voice/goom", -1)
	require.NoError(t, err)

	out := make([]float32, BlockSize)
	active := m.Type.Process(m, [][]float32{out})
	assert.False(t, active)
}

func TestGoomVoiceGateDrivesBothEnvelopes(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "voice/goom", -1)
	require.NoError(t, err)

	EventIn(m, "gate", FloatEvent(0.8), nil)
	this := m.Priv.(*goomVoice)
	assert.Equal(t, float32(0.8), this.vel)
	assert.Equal(t, adsrAttack, this.ampEnv.Priv.(*adsr).state)
	assert.Equal(t, adsrAttack, this.lpfEnv.Priv.(*adsr).state)

	out := make([]float32, BlockSize)
	active := m.Type.Process(m, [][]float32{out})
	assert.True(t, active)
}
