// seq_seq.go - byte-code sequencer
//
// Runs a tiny fixed opcode program (Bresenham-style tick scheduling
// against the audio block rate) and emits MIDI note events on its
// "midi" output port. Carries no audio of its own; process() always
// reports inactive.

package ggm

const (
	SeqOpNop = iota
	SeqOpLoop
	SeqOpNote
	SeqOpRest
	seqOpNum
)

const (
	SeqCtrlStop = iota
	SeqCtrlStart
	SeqCtrlReset
)

const (
	seqStateStop = iota
	seqStateRun
)

const (
	opStateInit = iota
	opStateWait
)

// NoteOp builds the 5-byte "note on/off" instruction: channel, note,
// velocity and a duration in ticks.
func NoteOp(chan_, note, vel, dur byte) []byte {
	return []byte{SeqOpNote, chan_, note, vel, dur}
}

// RestOp builds the 2-byte "rest" instruction.
func RestOp(dur byte) []byte {
	return []byte{SeqOpRest, dur}
}

// LoopOp builds the 1-byte "return to start" instruction.
func LoopOp() []byte { return []byte{SeqOpLoop} }

// NopOp builds the 1-byte no-op instruction.
func NopOp() []byte { return []byte{SeqOpNop} }

type seqSM struct {
	prog     []byte
	pc       int
	seqState int
	opState  int
	duration int
}

type seq struct {
	secsPerTick float32
	tickError   float32
	ticks       uint32
	sm          seqSM
	midiOutIdx  int
}

func seqOpNop(m *Module) int { return 1 }

func seqOpLoop(m *Module) int {
	this := m.Priv.(*seq)
	this.sm.pc = -1
	return 1
}

func seqOpNote(m *Module) int {
	this := m.Priv.(*seq)
	sm := &this.sm
	chan_, note, vel, dur := sm.prog[sm.pc+1], sm.prog[sm.pc+2], sm.prog[sm.pc+3], sm.prog[sm.pc+4]

	if sm.opState == opStateInit {
		sm.duration = int(dur)
		sm.opState = opStateWait
		m.Synth.logger().Infof("%s: note on %d (%d)", m.Name, note, this.ticks)
		e := MIDIEvent(MIDIStatusNoteOn|chan_, note, vel)
		EventPush(m.Synth, m, this.midiOutIdx, e)
	}
	sm.duration--
	if sm.duration == 0 {
		sm.opState = opStateInit
		m.Synth.logger().Infof("%s: note off (%d)", m.Name, this.ticks)
		e := MIDIEvent(MIDIStatusNoteOff|chan_, note, 0)
		EventPush(m.Synth, m, this.midiOutIdx, e)
		return 5
	}
	return 0
}

func seqOpRest(m *Module) int {
	this := m.Priv.(*seq)
	sm := &this.sm
	dur := sm.prog[sm.pc+1]

	if sm.opState == opStateInit {
		sm.duration = int(dur)
		sm.opState = opStateWait
	}
	sm.duration--
	if sm.duration == 0 {
		sm.opState = opStateInit
		return 2
	}
	return 0
}

var seqOpTable = [seqOpNum]func(m *Module) int{
	SeqOpNop:  seqOpNop,
	SeqOpLoop: seqOpLoop,
	SeqOpNote: seqOpNote,
	SeqOpRest: seqOpRest,
}

func seqTick(m *Module) {
	this := m.Priv.(*seq)
	sm := &this.sm

	if len(sm.prog) == 0 {
		sm.seqState = seqStateStop
	}
	if sm.seqState == seqStateRun {
		opcode := sm.prog[sm.pc]
		if int(opcode) >= len(seqOpTable) {
			m.Synth.logger().Errorf("%s: unknown opcode %d at pc %d", m.Name, opcode, sm.pc)
			sm.seqState = seqStateStop
			return
		}
		sm.pc += seqOpTable[opcode](m)
	}
}

func seqMIDIBPM(e Event) Event {
	return FloatEvent(mapLin(float32(e.MIDICCValue())/127, MinBeatsPerMin, MaxBeatsPerMin))
}

func seqPortBPM(m *Module, e Event) {
	this := m.Priv.(*seq)
	bpm := clampf(e.F, MinBeatsPerMin, MaxBeatsPerMin)
	m.Synth.logger().Infof("%s: bpm %f", m.Name, bpm)
	this.secsPerTick = SecsPerMinute / (bpm * TicksPerBeat)
}

func seqPortCtrl(m *Module, e Event) {
	this := m.Priv.(*seq)
	sm := &this.sm
	switch e.I {
	case SeqCtrlStop:
		m.Synth.logger().Infof("%s: ctrl stop", m.Name)
		sm.seqState = seqStateStop
	case SeqCtrlStart:
		m.Synth.logger().Infof("%s: ctrl start", m.Name)
		sm.seqState = seqStateRun
	case SeqCtrlReset:
		m.Synth.logger().Infof("%s: ctrl reset", m.Name)
		sm.seqState = seqStateStop
		sm.opState = opStateInit
		sm.pc = 0
	default:
		m.Synth.logger().Infof("%s: ctrl unknown value %d", m.Name, e.I)
	}
}

func seqAlloc(m *Module, args ...interface{}) error {
	this := &seq{}
	if len(args) > 0 {
		if p, ok := args[0].([]byte); ok {
			this.sm.prog = p
		}
	}
	m.Priv = this
	idx, _ := findPort(m.Type.Out, "midi")
	this.midiOutIdx = idx
	return nil
}

func seqFree(m *Module) {}

func seqProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*seq)

	this.tickError += float32(SecsPerBlock)
	if this.tickError > this.secsPerTick {
		this.tickError -= this.secsPerTick
		this.ticks++
		seqTick(m)
	}
	return false
}

var seqInPorts = []PortInfo{
	{Name: "bpm", Kind: KindFloat, PF: seqPortBPM, MF: seqMIDIBPM},
	{Name: "ctrl", Kind: KindInt, PF: seqPortCtrl},
}

var seqOutPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "seq/seq",
		IName:   "seq",
		In:      seqInPorts,
		Out:     seqOutPorts,
		Alloc:   seqAlloc,
		Free:    seqFree,
		Process: seqProcess,
	})
}
