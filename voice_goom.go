// voice_goom.go - Goom oscillator voice
//
// Combines a Goom oscillator, an amplitude ADSR envelope, and a state
// variable low-pass filter. A second ADSR (lpfEnv) is constructed
// alongside the amplitude envelope to track an eventual filter-cutoff
// sweep, but nothing wires its output into the filter's cutoff port
// yet — the filter currently runs at whatever cutoff was last set on
// it directly, same as the reference voice this is modeled on.

package ggm

type goomVoice struct {
	ampEnv *Module
	lpfEnv *Module
	osc    *Module
	lpf    *Module
	vel    float32
}

func goomVoicePortReset(m *Module, e Event) {
	this := m.Priv.(*goomVoice)
	EventIn(this.ampEnv, "reset", e, nil)
	EventIn(this.osc, "reset", e, nil)
}

func goomVoicePortGate(m *Module, e Event) {
	this := m.Priv.(*goomVoice)
	EventIn(this.ampEnv, "gate", e, nil)
	EventIn(this.lpfEnv, "gate", e, nil)
	this.vel = e.F
}

func goomVoicePortNote(m *Module, e Event) {
	EventIn(m.Priv.(*goomVoice).osc, "note", e, nil)
}

func goomVoiceAlloc(m *Module, args ...interface{}) error {
	this := &goomVoice{}
	m.Priv = this

	ampEnv, err := NewModule(m.Synth, m, "env/adsr", -1)
	if err != nil {
		return err
	}
	this.ampEnv = ampEnv

	lpfEnv, err := NewModule(m.Synth, m, "env/adsr", -1)
	if err != nil {
		DeleteModule(ampEnv)
		return err
	}
	this.lpfEnv = lpfEnv

	osc, err := NewModule(m.Synth, m, "osc/goom", -1)
	if err != nil {
		DeleteModule(ampEnv)
		DeleteModule(lpfEnv)
		return err
	}
	this.osc = osc

	lpf, err := NewModule(m.Synth, m, "filter/svf", -1, SVFTypeTrapezoidal)
	if err != nil {
		DeleteModule(ampEnv)
		DeleteModule(lpfEnv)
		DeleteModule(osc)
		return err
	}
	this.lpf = lpf
	EventIn(lpf, "cutoff", FloatEvent(4000), nil)
	EventIn(lpf, "resonance", FloatEvent(0), nil)

	return nil
}

func goomVoiceFree(m *Module) {
	this := m.Priv.(*goomVoice)
	DeleteModule(this.ampEnv)
	DeleteModule(this.lpfEnv)
	DeleteModule(this.osc)
	DeleteModule(this.lpf)
}

func goomVoiceProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*goomVoice)
	var env [BlockSize]float32
	active := this.ampEnv.Type.Process(this.ampEnv, [][]float32{env[:]})

	if active {
		out := bufs[0]
		var buf [BlockSize]float32

		this.osc.Type.Process(this.osc, [][]float32{buf[:]})
		this.lpf.Type.Process(this.lpf, [][]float32{buf[:], out})
		blockMul(out, env[:])
	}

	return active
}

var goomVoiceInPorts = []PortInfo{
	{Name: "reset", Kind: KindBool, PF: goomVoicePortReset},
	{Name: "gate", Kind: KindFloat, PF: goomVoicePortGate},
	{Name: "note", Kind: KindFloat, PF: goomVoicePortNote},
}

var goomVoiceOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "voice/goom",
		IName:   "goom",
		In:      goomVoiceInPorts,
		Out:     goomVoiceOutPorts,
		Alloc:   goomVoiceAlloc,
		Free:    goomVoiceFree,
		Process: goomVoiceProcess,
	})
}
