// filter_biquad.go - biquad filter skeleton
//
// http://www.earlevel.com/main/2003/02/28/biquads/
//
// The direct-form-2 processing loop is wired up, but the cutoff and
// resonance port handlers never compute a0, a1, a2, b1 and b2, so this
// filter is a pass-through-to-silence until a coefficient design is
// chosen.

package ggm

type biquad struct {
	a0, a1, a2 float32
	b1, b2     float32
	d1, d2     float32
}

func biquadPortCutoff(m *Module, e Event) {
	cutoff := clampf(e.F, 0, 0.5*SampleRate)
	m.Synth.logger().Infof("%s: set cutoff frequency %f Hz", m.Name, cutoff)
}

func biquadPortResonance(m *Module, e Event) {
	resonance := clampf(e.F, 0, 1)
	m.Synth.logger().Infof("%s: set resonance %f", m.Name, resonance)
}

func biquadAlloc(m *Module, args ...interface{}) error {
	m.Priv = &biquad{}
	return nil
}

func biquadFree(m *Module) {}

func biquadProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*biquad)
	in, out := bufs[0], bufs[1]
	a0, a1, a2 := this.a0, this.a1, this.a2
	b1, b2 := this.b1, this.b2
	d1, d2 := this.d1, this.d2

	for i := 0; i < BlockSize; i++ {
		d0 := in[i] - b1*d1 - b2*d2
		out[i] = a0*d0 + a1*d1 + a2*d2
		d1 = d0
		d2 = d1
	}

	this.d1, this.d2 = d1, d2
	return true
}

var biquadInPorts = []PortInfo{
	{Name: "in", Kind: KindAudio},
	{Name: "cutoff", Kind: KindFloat, PF: biquadPortCutoff},
	{Name: "resonance", Kind: KindFloat, PF: biquadPortResonance},
}

var biquadOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "filter/biquad",
		IName:   "biquad",
		In:      biquadInPorts,
		Out:     biquadOutPorts,
		Alloc:   biquadAlloc,
		Free:    biquadFree,
		Process: biquadProcess,
	})
}
