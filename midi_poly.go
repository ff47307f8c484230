// midi_poly.go - polyphonic MIDI voice manager
//
// Manages MaxPolyphony concurrent instances of a voice type with
// round-robin allocation: on an unmatched note-on, the next voice in
// the ring gets a hard reset and the note, while the voice after it
// gets a soft reset so it has finished decaying by the time its turn
// comes around again.

package ggm

type polyVoice struct {
	m     *Module
	note  int
	reset bool
}

type poly struct {
	ch    int
	voice [MaxPolyphony]polyVoice
	idx   int
	bend  float32
}

func polyVoiceLookup(this *poly, note int) *polyVoice {
	for i := range this.voice {
		v := &this.voice[i]
		if v.note == note && !v.reset {
			return v
		}
	}
	return nil
}

func polyVoiceAlloc(m *Module, this *poly, note int) *polyVoice {
	m.Synth.logger().Infof("%s: allocate voice %d to note %d", m.Name, this.idx, note)

	v := &this.voice[this.idx]
	this.idx++
	if this.idx == MaxPolyphony {
		this.idx = 0
	}

	EventIn(v.m, "reset", BoolEvent(true), nil)
	EventIn(v.m, "note", FloatEvent(float32(note)+this.bend), nil)
	v.note = note
	v.reset = false

	nextV := &this.voice[this.idx]
	EventIn(nextV.m, "reset", BoolEvent(false), nil)
	nextV.reset = true

	return v
}

func polyPortMIDI(m *Module, e Event) {
	this := m.Priv.(*poly)
	if e.MIDIChannel() != this.ch {
		return
	}

	switch e.Status & 0xF0 {
	case MIDIStatusNoteOn:
		note := e.MIDINote()
		vel := float32(e.MIDIVelocity()) / 127
		v := polyVoiceLookup(this, note)
		if v == nil {
			v = polyVoiceAlloc(m, this, note)
		}
		EventIn(v.m, "gate", FloatEvent(vel), nil)
	case MIDIStatusNoteOff:
		if v := polyVoiceLookup(this, e.MIDINote()); v != nil {
			EventIn(v.m, "gate", FloatEvent(0), nil)
		}
	case MIDIStatusPitchBend:
		this.bend = MIDIPitchBend(e.MIDIPitchBendValue())
		for i := range this.voice {
			v := &this.voice[i]
			EventIn(v.m, "note", FloatEvent(float32(v.note)+this.bend), nil)
		}
	default:
		for i := range this.voice {
			EventIn(this.voice[i].m, "midi", e, nil)
		}
	}
}

func polyAlloc(m *Module, args ...interface{}) error {
	this := &poly{}
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

	for i := range this.voice {
		vm, err := NewModule(m.Synth, m, voiceKind, i)
		if err != nil {
			for j := 0; j < i; j++ {
				DeleteModule(this.voice[j].m)
			}
			return err
		}
		this.voice[i].m = vm
	}
	return nil
}

func polyFree(m *Module) {
	this := m.Priv.(*poly)
	for i := range this.voice {
		DeleteModule(this.voice[i].m)
	}
}

func polyProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*poly)
	out := bufs[0]
	active := false

	blockZero(out)

	for i := range this.voice {
		vm := this.voice[i].m
		var vbuf [BlockSize]float32
		if vm.Type.Process(vm, [][]float32{vbuf[:]}) {
			blockAdd(out, vbuf[:])
			active = true
		}
	}

	return active
}

var polyInPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI, PF: polyPortMIDI},
}

var polyOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "midi/poly",
		IName:   "poly",
		In:      polyInPorts,
		Out:     polyOutPorts,
		Alloc:   polyAlloc,
		Free:    polyFree,
		Process: polyProcess,
	})
}
