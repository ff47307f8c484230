package ggm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPan(t *testing.T, m *Module, in []float32) (out0, out1 []float32) {
	t.Helper()
	out0 = make([]float32, BlockSize)
	out1 = make([]float32, BlockSize)
	for i := 0; i < 200; i++ { // let the one-pole smoothing settle
		m.Type.Process(m, [][]float32{in, out0, out1})
	}
	return out0, out1
}

func TestPanConstantPowerAcrossPosition(t *testing.T) {
	in := make([]float32, BlockSize)
	for i := range in {
		in[i] = 1
	}

	for _, pos := range []float32{0, 0.25, 0.5, 0.75, 1} {
		s := newTestSynth()
		m, err := NewModule(s, nil, "mix/pan", -1)
		require.NoError(t, err)
		EventIn(m, "vol", FloatEvent(1), nil)
		EventIn(m, "pan", FloatEvent(pos), nil)

		out0, out1 := runPan(t, m, in)
		l, r := out0[BlockSize-1], out1[BlockSize-1]
		power := float64(l)*float64(l) + float64(r)*float64(r)
		assert.InDelta(t, 1.0, power, 0.05, "pan=%v", pos)
	}
}

func TestPanCenterSplitsEqually(t *testing.T) {
	s := newTestSynth()
	m, err := NewModule(s, nil, "mix/pan", -1)
	require.NoError(t, err)
	EventIn(m, "pan", FloatEvent(0.5), nil)

	in := make([]float32, BlockSize)
	for i := range in {
		in[i] = 1
	}
	out0, out1 := runPan(t, m, in)
	assert.InDelta(t, float64(out0[BlockSize-1]), float64(out1[BlockSize-1]), 0.01)
	assert.InDelta(t, math.Sqrt2/2, float64(out0[BlockSize-1]), 0.05)
}
