package ggm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetroAllocWiresSeqToMonoAndForwardsMIDIOut(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "root/metro", -1)
	require.NoError(t, err)
	require.NoError(t, s.SetRoot(m))

	var forwarded []Event
	s.MIDIOut = func(status, a0, a1 byte, idx int) {
		forwarded = append(forwarded, MIDIEvent(status, a0, a1))
	}

	for i := 0; i < 5000 && len(forwarded) == 0; i++ {
		s.Loop()
	}
	require.NotEmpty(t, forwarded, "metronome should eventually click a note")
	assert.Equal(t, byte(69), forwarded[0].A0, "the 4/4 pattern's first click is the accented downbeat")
}

func TestMetroConfigRegistersBPMAndADSREntries(t *testing.T) {
	s := newTestSynth()
	_, err := NewModule(s, nil, "root/metro", -1)
	require.NoError(t, err)

	found := false
	for _, c := range s.Config {
		if c.Path == "root.seq:bpm" {
			found = true
			assert.EqualValues(t, 60, c.FloatInit)
		}
	}
	assert.True(t, found)
}

func TestMetroProcessReportsInactiveWhenVoiceInactive(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "root/metro", -1)
	require.NoError(t, err)
	require.NoError(t, s.SetRoot(m))

	this := m.Priv.(*metro)
	EventIn(this.seq, "ctrl", IntEvent(SeqCtrlStop), nil)

	active := m.Type.Process(m, s.Bufs)
	assert.False(t, active)
}
