// osc_goom.go - Goom wave oscillator
//
// A Goom wave has four segments per period: a falling slope (1 to -1),
// a flat bottom, a rising slope (-1 to 1), and a flat top. duty splits
// the period between the falling and rising halves; slope splits each
// half between its sloped and flat portions.
//
// https://www.quinapalus.com/goom.html

package ggm

type goom struct {
	freq   float32
	duty   float32
	slope  float32
	tp     float32 // s0f0 to s1f1 transition point (phase units)
	k0     float32 // scaling factor for slope 0
	k1     float32 // scaling factor for slope 1
	x      uint32
	xstep  uint32
	xreset uint32
}

func goomSample(this *goom) float32 {
	var ofs uint32
	var x float32
	if float32(this.x) < this.tp {
		x = float32(this.x) * this.k0
	} else {
		x = (float32(this.x) - this.tp) * this.k1
		ofs = HalfCycle
	}
	if x > 1 {
		x = 1
	}
	return cosLookup(uint32(x*float32(HalfCycle)) + ofs)
}

func goomSetShape(this *goom, duty, slope float32) {
	this.duty = duty
	this.tp = float32(uint32(float32(FullCycle) * mapLin(duty, 0.05, 0.5)))
	this.slope = slope
	s := mapLin(slope, 0.1, 1.0)
	this.k0 = 1.0 / (this.tp * s)
	this.k1 = 1.0 / ((float32(FullCycle-1) - this.tp) * s)
	this.xreset = uint32(this.tp * s * 0.5)
}

func goomSetFrequency(this *goom, freq float32) {
	this.freq = freq
	this.xstep = uint32(float64(freq) * FrequencyScale)
}

func goomMidiDuty(e Event) Event  { return FloatEvent(float32(e.MIDICCValue()) / 127) }
func goomMidiSlope(e Event) Event { return FloatEvent(float32(e.MIDICCValue()) / 127) }

func goomPortFrequency(m *Module, e Event) {
	freq := e.F
	if freq < 0 {
		freq = 0
	}
	goomSetFrequency(m.Priv.(*goom), freq)
}

func goomPortNote(m *Module, e Event) {
	goomSetFrequency(m.Priv.(*goom), MIDIToFrequency(e.F))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func goomPortDuty(m *Module, e Event) {
	this := m.Priv.(*goom)
	goomSetShape(this, clamp01(e.F), this.slope)
}

func goomPortSlope(m *Module, e Event) {
	this := m.Priv.(*goom)
	goomSetShape(this, this.duty, clamp01(e.F))
}

func goomPortReset(m *Module, e Event) {
	if e.B {
		this := m.Priv.(*goom)
		this.x = this.xreset
	}
}

func goomAlloc(m *Module, args ...interface{}) error {
	this := &goom{}
	goomSetShape(this, 0.5, 0.5)
	this.x = this.xreset
	m.Priv = this
	return nil
}

func goomFree(m *Module) {}

func goomProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*goom)
	out := bufs[0]
	for i := 0; i < BlockSize; i++ {
		out[i] = goomSample(this)
		this.x += this.xstep
	}
	return true
}

var goomInPorts = []PortInfo{
	{Name: "frequency", Kind: KindFloat, PF: goomPortFrequency},
	{Name: "note", Kind: KindFloat, PF: goomPortNote},
	{Name: "duty", Kind: KindFloat, PF: goomPortDuty, MF: goomMidiDuty},
	{Name: "slope", Kind: KindFloat, PF: goomPortSlope, MF: goomMidiSlope},
	{Name: "reset", Kind: KindBool, PF: goomPortReset},
}

var goomOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "osc/goom",
		IName:   "goom",
		In:      goomInPorts,
		Out:     goomOutPorts,
		Alloc:   goomAlloc,
		Free:    goomFree,
		Process: goomProcess,
	})
}
