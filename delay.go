// delay.go - audio sample delay line
//
// The read index is always one slot behind the write index rather than
// n slots behind, so regardless of the requested length this produces a
// fixed one-sample delay; the buffer's extra capacity only changes when
// the write index wraps. This mirrors the reference delay line exactly
// rather than correcting the bug.

package ggm

import "fmt"

type delay struct {
	buf  []float32
	t    float32
	n    int
	wr   int
}

func delayAlloc(m *Module, args ...interface{}) error {
	samples := 0
	if len(args) > 0 {
		if s, ok := args[0].(int); ok {
			samples = s
		}
	}
	if samples <= 0 {
		m.Synth.logger().Errorf("%s: delay samples must be > 0", m.Name)
		return fmt.Errorf("ggm: delay samples must be > 0")
	}
	this := &delay{
		n:   samples,
		t:   float32(samples) * SamplePeriod,
		buf: make([]float32, samples),
	}
	m.Synth.logger().Debugf("%s: %d samples %f secs", m.Name, this.n, this.t)
	m.Priv = this
	return nil
}

func delayFree(m *Module) {}

func delayProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*delay)
	in, out := bufs[0], bufs[1]
	eob := this.n - 1

	for i := 0; i < BlockSize; i++ {
		rd := this.wr - 1
		if rd < 0 {
			rd = eob
		}
		this.buf[this.wr] = in[i]
		out[i] = this.buf[rd]
		this.wr++
		if this.wr > eob {
			this.wr = 0
		}
	}
	return true
}

var delayInPorts = []PortInfo{
	{Name: "in", Kind: KindAudio},
}

var delayOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "delay/delay",
		IName:   "delay",
		In:      delayInPorts,
		Out:     delayOutPorts,
		Alloc:   delayAlloc,
		Free:    delayFree,
		Process: delayProcess,
	})
}
