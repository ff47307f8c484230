// seq_smf.go - standard MIDI file sequencer stub
//
// Shares seq/seq's bpm/ctrl port shape and "midi" output, but the
// standard-MIDI-file reader itself was never wired up: start/stop just
// flip a state flag and process is a no-op that reports active.

package ggm

const (
	smfStateStop = iota
	smfStateRun
)

type smf struct {
	secsPerTick float32
	state       int
}

func smfMIDIBPM(e Event) Event {
	return FloatEvent(mapLin(float32(e.MIDICCValue())/127, MinBeatsPerMin, MaxBeatsPerMin))
}

func smfPortBPM(m *Module, e Event) {
	this := m.Priv.(*smf)
	bpm := clampf(e.F, MinBeatsPerMin, MaxBeatsPerMin)
	m.Synth.logger().Infof("%s: bpm %f", m.Name, bpm)
	this.secsPerTick = SecsPerMinute / (bpm * TicksPerBeat)
}

func smfPortCtrl(m *Module, e Event) {
	this := m.Priv.(*smf)
	switch e.I {
	case SeqCtrlStop:
		m.Synth.logger().Infof("%s: ctrl stop", m.Name)
		this.state = smfStateStop
	case SeqCtrlStart:
		m.Synth.logger().Infof("%s: ctrl start", m.Name)
		this.state = smfStateRun
	case SeqCtrlReset:
		m.Synth.logger().Infof("%s: ctrl reset", m.Name)
		this.state = smfStateStop
	default:
		m.Synth.logger().Infof("%s: ctrl unknown value %d", m.Name, e.I)
	}
}

func smfAlloc(m *Module, args ...interface{}) error {
	m.Priv = &smf{}
	return nil
}

func smfFree(m *Module) {}

func smfProcess(m *Module, bufs [][]float32) bool {
	return true
}

var smfInPorts = []PortInfo{
	{Name: "bpm", Kind: KindFloat, PF: smfPortBPM, MF: smfMIDIBPM},
	{Name: "ctrl", Kind: KindInt, PF: smfPortCtrl},
}

var smfOutPorts = []PortInfo{
	{Name: "midi", Kind: KindMIDI},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "seq/smf",
		IName:   "smf",
		In:      smfInPorts,
		Out:     smfOutPorts,
		Alloc:   smfAlloc,
		Free:    smfFree,
		Process: smfProcess,
	})
}
