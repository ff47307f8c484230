package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMFProcessAlwaysReportsActive(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "seq/smf", -1)
	require.NoError(t, err)
	assert.True(t, m.Type.Process(m, nil))
}

func TestSMFCtrlTransitionsState(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "seq/smf", -1)
	require.NoError(t, err)
	this := m.Priv.(*smf)

	EventIn(m, "ctrl", IntEvent(SeqCtrlStart), nil)
	assert.Equal(t, smfStateRun, this.state)

	EventIn(m, "ctrl", IntEvent(SeqCtrlStop), nil)
	assert.Equal(t, smfStateStop, this.state)
}

func TestSMFBPMClamps(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "seq/smf", -1)
	require.NoError(t, err)
	EventIn(m, "bpm", FloatEvent(10000), nil)
	this := m.Priv.(*smf)
	assert.InDelta(t, SecsPerMinute/(MaxBeatsPerMin*TicksPerBeat), float64(this.secsPerTick), 1e-6)
}
