// midi_mono.go - monophonic MIDI voice manager
//
// Wraps a single voice and translates note-on/note-off/pitch-wheel into
// the voice's gate/note ports; everything else on the channel passes
// through to the voice's own "midi" port untouched.

package ggm

type mono struct {
	ch    int
	note  int
	bend  float32
	voice *Module
}

func monoPortMIDI(m *Module, e Event) {
	this := m.Priv.(*mono)
	if e.MIDIChannel() != this.ch {
		return
	}
	voice := this.voice

	switch e.Status & 0xF0 {
	case MIDIStatusNoteOn:
		note := e.MIDINote()
		vel := float32(e.MIDIVelocity()) / 127
		if note != this.note {
			EventIn(voice, "note", FloatEvent(float32(note)+this.bend), nil)
			this.note = note
		}
		EventIn(voice, "gate", FloatEvent(vel), nil)
	case MIDIStatusNoteOff:
		EventIn(voice, "gate", FloatEvent(0), nil)
	case MIDIStatusPitchBend:
		this.bend = MIDIPitchBend(e.MIDIPitchBendValue())
		EventIn(voice, "note", FloatEvent(float32(this.note)+this.bend), nil)
	default:
		EventIn(voice, "midi", e, nil)
	}
}

func monoAlloc(m *Module, args ...interface{}) error {
	this := &mono{}
	if len(args) > 0 {
		if ch, ok := args[0].(int); ok {
			this.ch = ch
		}
	}
	m.Priv = this

	voiceKind := "voice/sine"
	if len(args) > 1 {
		if k, ok := args[1].(string); ok {
			voiceKind = k
		}
	}
	voice, err := NewModule(m.Synth, m, voiceKind, -1)
	if err != nil {
		return err
	}
	this.voice = voice
	return nil
}

func monoFree(m *Module) {
	DeleteModule(m.Priv.(*mono).voice)
}

func monoProcess(m *Module, bufs [][]float32) bool {
	voice := m.Priv.(*mono).voice
	return voice.Type.Process(voice, bufs)
}

var monoInPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI, PF: monoPortMIDI},
}

var monoOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "midi/mono",
		IName:   "mono",
		In:      monoInPorts,
		Out:     monoOutPorts,
		Alloc:   monoAlloc,
		Free:    monoFree,
		Process: monoProcess,
	})
}
