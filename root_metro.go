// root_metro.go - metronome root patch
//
// A sine-wave voice clicking out a fixed 4/4 pattern through a
// sequencer, monophonic voice manager and stereo pan mixer. The
// sequencer's MIDI output both drives the voice and is forwarded out
// the patch's own "midi" port so a host can observe the clicks.

package ggm

const metroMIDIChannel = 0

func metroConfig() []ConfigEntry {
	ch := metroMIDIChannel
	return []ConfigEntry{
		FloatConfig("root.mono.voice.adsr:attack", 0.1, MIDIID(ch, 1)),
		FloatConfig("root.mono.voice.adsr:decay", 0.5, MIDIID(ch, 2)),
		FloatConfig("root.mono.voice.adsr:sustain", 0.8, MIDIID(ch, 3)),
		FloatConfig("root.mono.voice.adsr:release", 1.0, MIDIID(ch, 4)),
		FloatConfig("root.seq:bpm", 60, MIDIID(ch, 7)),
		FloatConfig("root.pan:vol", 0.8, MIDIID(ch, 8)),
	}
}

// metroSignature44 is the default 4/4 click pattern: an accented
// downbeat (note 69) followed by three plain clicks (note 60), each
// separated by a 12-tick rest and looping forever.
var metroSignature44 = joinOps(
	NoteOp(metroMIDIChannel, 69, 100, 4), RestOp(12),
	NoteOp(metroMIDIChannel, 60, 100, 4), RestOp(12),
	NoteOp(metroMIDIChannel, 60, 100, 4), RestOp(12),
	NoteOp(metroMIDIChannel, 60, 100, 4), RestOp(12),
	LoopOp(),
)

func joinOps(ops ...[]byte) []byte {
	var out []byte
	for _, op := range ops {
		out = append(out, op...)
	}
	return out
}

type metro struct {
	seq  *Module
	mono *Module
	pan  *Module
}

func metroPortMIDI(m *Module, e Event) {
	m.Synth.DispatchMIDICC(e)
}

func metroAlloc(m *Module, args ...interface{}) error {
	this := &metro{}
	m.Priv = this
	m.Synth.Config = append(m.Synth.Config, metroConfig()...)

	seq, err := NewModule(m.Synth, m, "seq/seq", -1, metroSignature44)
	if err != nil {
		return err
	}
	EventIn(seq, "bpm", FloatEvent(120), nil)
	EventIn(seq, "ctrl", IntEvent(SeqCtrlStart), nil)
	this.seq = seq

	mono, err := NewModule(m.Synth, m, "midi/mono", -1, metroMIDIChannel, "voice/sine")
	if err != nil {
		DeleteModule(seq)
		return err
	}
	this.mono = mono

	pan, err := NewModule(m.Synth, m, "mix/pan", -1)
	if err != nil {
		DeleteModule(seq)
		DeleteModule(mono)
		return err
	}
	this.pan = pan

	if err := PortForward(seq, "midi", m, 0); err != nil {
		return err
	}
	if err := PortConnect(seq, "midi", mono, "midi"); err != nil {
		return err
	}

	return nil
}

func metroFree(m *Module) {
	this := m.Priv.(*metro)
	DeleteModule(this.seq)
	DeleteModule(this.mono)
	DeleteModule(this.pan)
}

func metroProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*metro)
	var tmp [BlockSize]float32

	this.seq.Type.Process(this.seq, nil)

	active := this.mono.Type.Process(this.mono, [][]float32{tmp[:]})
	if active {
		out0, out1 := bufs[0], bufs[1]
		this.pan.Type.Process(this.pan, [][]float32{tmp[:], out0, out1})
	}

	return active
}

var metroInPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI, PF: metroPortMIDI},
}

var metroOutPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI},
	{Name: "out0", Kind: KindAudio},
	{Name: "out1", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "root/metro",
		IName:   "root",
		In:      metroInPorts,
		Out:     metroOutPorts,
		Alloc:   metroAlloc,
		Free:    metroFree,
		Process: metroProcess,
	})
}
