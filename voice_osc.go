// voice_osc.go - generic oscillator voice
//
// Wraps any tonal oscillator module with an ADSR amplitude envelope.
// The concrete oscillator kind is bound when the voice type is
// registered (registerOscVoice), so this voice code serves any simple
// (non-Goom, non-Karplus-Strong) oscillator type; "voice/sine" is the
// one registered.

package ggm

type osc struct {
	adsr     *Module
	osc      *Module
	gateFunc PortFunc
	freqFunc PortFunc
}

func oscPortReset(m *Module, e Event) {
	this := m.Priv.(*osc)
	EventIn(this.adsr, "reset", e, nil)
	EventIn(this.osc, "reset", e, nil)
}

func oscPortGate(m *Module, e Event) {
	this := m.Priv.(*osc)
	EventIn(this.adsr, "gate", e, &this.gateFunc)
}

func oscPortNote(m *Module, e Event) {
	this := m.Priv.(*osc)
	f := MIDIToFrequency(e.F)
	EventIn(this.osc, "frequency", FloatEvent(f), &this.freqFunc)
}

// newOscVoice returns the Alloc function of a voice bound to the given
// oscillator kind, e.g. newOscVoice("osc/sine") for a sine-wave voice.
func newOscVoice(oscKind string) func(m *Module, args ...interface{}) error {
	return func(m *Module, args ...interface{}) error {
		this := &osc{}
		m.Priv = this

		o, err := NewModule(m.Synth, m, oscKind, -1)
		if err != nil {
			return err
		}
		this.osc = o

		adsr, err := NewModule(m.Synth, m, "env/adsr", -1)
		if err != nil {
			DeleteModule(o)
			return err
		}
		this.adsr = adsr
		return nil
	}
}

func oscVoiceFree(m *Module) {
	this := m.Priv.(*osc)
	DeleteModule(this.osc)
	DeleteModule(this.adsr)
}

func oscVoiceProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*osc)
	var env [BlockSize]float32
	active := this.adsr.Type.Process(this.adsr, [][]float32{env[:]})

	if active {
		out := bufs[0]
		this.osc.Type.Process(this.osc, [][]float32{out})
		blockMul(out, env[:])
	}

	return active
}

var oscInPorts = []PortInfo{
	{Name: "reset", Kind: KindBool, PF: oscPortReset},
	{Name: "gate", Kind: KindFloat, PF: oscPortGate},
	{Name: "note", Kind: KindFloat, PF: oscPortNote},
}

var oscOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

// registerOscVoice registers a voice/osc instantiation bound to oscKind
// under its own registry name, e.g. "voice/sine".
func registerOscVoice(registryName, oscKind string) {
	registerModuleType(&ModuleType{
		MName:   registryName,
		IName:   "voice",
		In:      oscInPorts,
		Out:     oscOutPorts,
		Alloc:   newOscVoice(oscKind),
		Free:    oscVoiceFree,
		Process: oscVoiceProcess,
	})
}

func init() {
	registerOscVoice("voice/sine", "osc/sine")
}
