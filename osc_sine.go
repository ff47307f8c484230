// osc_sine.go - phase-accumulator sine oscillator

package ggm

type sine struct {
	freq  float32
	x     uint32
	xstep uint32
}

func sineSetFrequency(this *sine, freq float32) {
	if freq < 0 {
		freq = 0
	}
	this.freq = freq
	this.xstep = uint32(float64(freq) * FrequencyScale)
}

func sinePortReset(m *Module, e Event) {
	if e.B {
		this := m.Priv.(*sine)
		this.x = QuarterCycle
	}
}

func sinePortFrequency(m *Module, e Event) {
	sineSetFrequency(m.Priv.(*sine), e.F)
}

func sinePortNote(m *Module, e Event) {
	sineSetFrequency(m.Priv.(*sine), MIDIToFrequency(e.F))
}

func sineAlloc(m *Module, args ...interface{}) error {
	m.Priv = &sine{x: QuarterCycle}
	return nil
}

func sineFree(m *Module) {}

func sineProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*sine)
	out := bufs[0]
	for i := 0; i < BlockSize; i++ {
		out[i] = cosLookup(this.x)
		this.x += this.xstep
	}
	return true
}

var sineInPorts = []PortInfo{
	{Name: "reset", Kind: KindBool, PF: sinePortReset},
	{Name: "frequency", Kind: KindFloat, PF: sinePortFrequency},
	{Name: "note", Kind: KindFloat, PF: sinePortNote},
}

var sineOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "osc/sine",
		IName:   "sine",
		In:      sineInPorts,
		Out:     sineOutPorts,
		Alloc:   sineAlloc,
		Free:    sineFree,
		Process: sineProcess,
	})
}
