// root_poly.go - polyphonic root patch
//
// A 5-voice polyphonic manager feeding a stereo pan mixer. The voice
// type is chosen at construction time (not a runtime-switchable port),
// matching the reference patch's build-time selection between a plain
// sine oscillator-voice, a Goom-voice, and a bare Karplus-Strong voice.
package ggm

const polyMIDIChannel = 0

const (
	PolyVoiceGoom = "goom"
	PolyVoiceSine = "sine"
	PolyVoiceKS   = "ks"
)

func polyConfig(voiceKind string) []ConfigEntry {
	ch := polyMIDIChannel
	switch voiceKind {
	case PolyVoiceKS:
		return []ConfigEntry{
			FloatConfig("root.poly.ks*:attenuation", 1.0, MIDIID(ch, 1)),
			FloatConfig("root.pan:pan", 0.5, MIDIID(ch, 7)),
			FloatConfig("root.pan:vol", 0.8, MIDIID(ch, 8)),
		}
	case PolyVoiceSine:
		return []ConfigEntry{
			FloatConfig("root.poly.voice*.adsr:attack", 0.2, MIDIID(ch, 1)),
			FloatConfig("root.poly.voice*.adsr:decay", 0.1, MIDIID(ch, 2)),
			FloatConfig("root.poly.voice*.adsr:sustain", 0.3, MIDIID(ch, 3)),
			FloatConfig("root.poly.voice*.adsr:release", 0.3, MIDIID(ch, 4)),
			FloatConfig("root.pan:pan", 0.5, MIDIID(ch, 7)),
			FloatConfig("root.pan:vol", 0.8, MIDIID(ch, 8)),
		}
	default: // PolyVoiceGoom
		return []ConfigEntry{
			// voice/goom's IName is "goom" (not "voice"), so its
			// instances are root.poly.goom0..goom4 and their nested
			// oscillator is root.poly.goom<N>.goom.
			FloatConfig("root.poly.goom*.adsr:attack", 0.2, MIDIID(ch, 1)),
			FloatConfig("root.poly.goom*.adsr:decay", 0.1, MIDIID(ch, 2)),
			FloatConfig("root.poly.goom*.adsr:sustain", 0.3, MIDIID(ch, 3)),
			FloatConfig("root.poly.goom*.adsr:release", 0.3, MIDIID(ch, 4)),
			FloatConfig("root.poly.goom*.goom:duty", 0.5, MIDIID(ch, 5)),
			FloatConfig("root.poly.goom*.goom:slope", 0.5, MIDIID(ch, 6)),
			FloatConfig("root.pan:pan", 0.5, MIDIID(ch, 7)),
			FloatConfig("root.pan:vol", 0.8, MIDIID(ch, 8)),
		}
	}
}

func polyVoiceModuleKind(voiceKind string) string {
	switch voiceKind {
	case PolyVoiceKS:
		return "osc/ks"
	case PolyVoiceSine:
		return "voice/sine"
	default:
		return "voice/goom"
	}
}

type polyRoot struct {
	poly *Module
	pan  *Module
}

func polyRootPortMIDI(m *Module, e Event) {
	this := m.Priv.(*polyRoot)
	if m.Synth.DispatchMIDICC(e) {
		return
	}
	EventIn(this.poly, "midi", e, nil)
}

func polyRootAlloc(m *Module, args ...interface{}) error {
	voiceKind := PolyVoiceGoom
	if len(args) > 0 {
		if k, ok := args[0].(string); ok {
			voiceKind = k
		}
	}

	this := &polyRoot{}
	m.Priv = this
	m.Synth.Config = append(m.Synth.Config, polyConfig(voiceKind)...)

	poly, err := NewModule(m.Synth, m, "midi/poly", -1, polyMIDIChannel, polyVoiceModuleKind(voiceKind))
	if err != nil {
		return err
	}
	this.poly = poly

	pan, err := NewModule(m.Synth, m, "mix/pan", -1)
	if err != nil {
		DeleteModule(poly)
		return err
	}
	this.pan = pan

	return nil
}

func polyRootFree(m *Module) {
	this := m.Priv.(*polyRoot)
	DeleteModule(this.poly)
	DeleteModule(this.pan)
}

func polyRootProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*polyRoot)
	out0, out1 := bufs[0], bufs[1]
	var tmp [BlockSize]float32

	this.poly.Type.Process(this.poly, [][]float32{tmp[:]})
	this.pan.Type.Process(this.pan, [][]float32{tmp[:], out0, out1})
	return true
}

var polyRootInPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI, PF: polyRootPortMIDI},
}

var polyRootOutPorts = []PortInfo{
	{Name: "out0", Kind: KindAudio},
	{Name: "out1", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "root/poly",
		IName:   "root",
		In:      polyRootInPorts,
		Out:     polyRootOutPorts,
		Alloc:   polyRootAlloc,
		Free:    polyRootFree,
		Process: polyRootProcess,
	})
}
