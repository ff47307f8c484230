// mix_pan.go - left/right pan and volume
//
// Takes a single audio stream and splits it into left/right channels
// with constant-power panning (l*l + r*r stays constant across pan).

package ggm

import "math"

type pan struct {
	vol, panPos      float32
	newVolL, newVolR float32
	volL, volR       float32
}

func panMIDICC(e Event) Event {
	return FloatEvent(float32(e.MIDICCValue()) / 127)
}

func panSet(this *pan) {
	this.newVolL = this.vol * float32(math.Cos(float64(this.panPos)))
	this.newVolR = this.vol * float32(math.Sin(float64(this.panPos)))
}

func panPortVol(m *Module, e Event) {
	this := m.Priv.(*pan)
	vol := clampf(e.F, 0, 1)
	m.Synth.logger().Infof("%s: vol %f", m.Name, vol)
	this.vol = mapExp(vol, 0, 1, -2)
	panSet(this)
}

func panPortPan(m *Module, e Event) {
	this := m.Priv.(*pan)
	p := clampf(e.F, 0, 1)
	m.Synth.logger().Infof("%s: pan %f", m.Name, p)
	this.panPos = p * (0.5 * math.Pi)
	panSet(this)
}

func panAlloc(m *Module, args ...interface{}) error {
	m.Priv = &pan{}
	EventIn(m, "vol", FloatEvent(1), nil)
	EventIn(m, "pan", FloatEvent(0.5), nil)
	return nil
}

func panFree(m *Module) {}

func panProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*pan)
	in, out0, out1 := bufs[0], bufs[1], bufs[2]

	for i := 0; i < BlockSize; i++ {
		this.volL += 0.01 * (this.newVolL - this.volL)
		this.volR += 0.01 * (this.newVolR - this.volR)
		out0[i] = in[i] * this.volL
		out1[i] = in[i] * this.volR
	}
	return true
}

var panInPorts = []PortInfo{
	{Name: "in", Kind: KindAudio},
	{Name: "vol", Kind: KindFloat, PF: panPortVol, MF: panMIDICC},
	{Name: "pan", Kind: KindFloat, PF: panPortPan, MF: panMIDICC},
}

var panOutPorts = []PortInfo{
	{Name: "out0", Kind: KindAudio},
	{Name: "out1", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "mix/pan",
		IName:   "pan",
		In:      panInPorts,
		Out:     panOutPorts,
		Alloc:   panAlloc,
		Free:    panFree,
		Process: panProcess,
	})
}
