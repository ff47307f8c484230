// synth.go - the synth host object: event queue, MIDI-CC map, buffer pool

package ggm

import "fmt"

// ConfigEntry binds a glob path pattern (matched against
// "<module.name>:<port.name>") to an initial value and, optionally, a
// MIDI-CC id. Exactly one of the *Init fields is meaningful, selected
// by Kind.
type ConfigEntry struct {
	Path      string
	Kind      Kind
	FloatInit float32
	IntInit   int
	BoolInit  bool
	MIDIID    uint32
}

// FloatConfig builds a float-port configuration entry.
func FloatConfig(path string, init float32, midiID uint32) ConfigEntry {
	return ConfigEntry{Path: path, Kind: KindFloat, FloatInit: init, MIDIID: midiID}
}

// IntConfig builds an int-port configuration entry.
func IntConfig(path string, init int, midiID uint32) ConfigEntry {
	return ConfigEntry{Path: path, Kind: KindInt, IntInit: init, MIDIID: midiID}
}

// BoolConfig builds a bool-port configuration entry.
func BoolConfig(path string, init bool, midiID uint32) ConfigEntry {
	return ConfigEntry{Path: path, Kind: KindBool, BoolInit: init, MIDIID: midiID}
}

// qEvent is one entry in the deferred-outbound event queue.
type qEvent struct {
	m   *Module
	idx int
	e   Event
}

// eventQueue is a single-producer/single-consumer bounded ring.
// Capacity must be a power of two; NumEvents is the fixed choice.
type eventQueue struct {
	buf    [NumEvents]qEvent
	rd, wr uint32
}

func (q *eventQueue) push(m *Module, idx int, e Event) bool {
	// One slot is always left empty so a full queue is distinguishable
	// from an empty one (wr == rd) without a separate counter; usable
	// capacity is therefore NumEvents-1, not NumEvents.
	if q.wr-q.rd >= NumEvents-1 {
		return false
	}
	q.buf[q.wr&(NumEvents-1)] = qEvent{m: m, idx: idx, e: e}
	q.wr++
	return true
}

func (q *eventQueue) pop() (qEvent, bool) {
	if q.rd == q.wr {
		return qEvent{}, false
	}
	e := q.buf[q.rd&(NumEvents-1)]
	q.rd++
	return e, true
}

// midiMapEntry pairs a module instance with the input port a MIDI CC
// should drive.
type midiMapEntry struct {
	m  *Module
	pi *PortInfo
}

// midiMapSlot routes one (channel, cc) id to up to NumMIDIMapEntries ports.
type midiMapSlot struct {
	id      uint32
	entries [NumMIDIMapEntries]midiMapEntry
	n       int
}

// MIDIOutFunc is invoked once per MIDI event emitted on output MIDI
// port idx (§6, engine-to-host).
type MIDIOutFunc func(status, a0, a1 byte, idx int)

// Synth is the process-wide engine state: the module tree, the
// deferred event queue, the configuration table, the MIDI-CC
// routing map and the audio buffer pool.
type Synth struct {
	Root    *Module
	Config  []ConfigEntry
	MIDIOut MIDIOutFunc

	queue   eventQueue
	midiMap [NumMIDIMapSlots]midiMapSlot

	Bufs       [][]float32
	bufStorage []float32

	log Logger
}

// NewSynth allocates a synth with the given configuration table. The
// root module is installed afterward via SetRoot.
func NewSynth(config []ConfigEntry) *Synth {
	return &Synth{Config: config, log: defaultLogger}
}

// SetLogger overrides the logger this synth's errors are reported
// through; passing nil restores the package default.
func (s *Synth) SetLogger(l Logger) {
	if l == nil {
		l = defaultLogger
	}
	s.log = l
}

func (s *Synth) logger() Logger {
	if s.log != nil {
		return s.log
	}
	return defaultLogger
}

// SetRoot binds root as the synth's root module: validates its MIDI
// port counts, hooks any MIDI output ports to the synth's MIDIOut
// callback, and allocates the one contiguous audio buffer pool sized
// to the root's audio port count.
func (s *Synth) SetRoot(root *Module) error {
	if n := root.countInByKind(KindMIDI); n > MaxMIDIIn {
		return fmt.Errorf("ggm: root has %d midi inputs, max %d", n, MaxMIDIIn)
	}
	if n := root.countOutByKind(KindMIDI); n > MaxMIDIOut {
		return fmt.Errorf("ggm: root has %d midi outputs, max %d", n, MaxMIDIOut)
	}
	for i := range root.Type.Out {
		pi := &root.Type.Out[i]
		if pi.Kind != KindMIDI {
			continue
		}
		idx := i
		root.dst[i] = &outputDst{
			next: root.dst[i],
			dest: root,
			pf: func(m *Module, e Event) {
				if s.MIDIOut != nil {
					s.MIDIOut(e.Status, e.A0, e.A1, idx)
				}
			},
		}
	}

	nbufs := root.countInByKind(KindAudio) + root.countOutByKind(KindAudio)
	s.bufStorage = make([]float32, nbufs*BlockSize)
	s.Bufs = make([][]float32, nbufs)
	for i := 0; i < nbufs; i++ {
		s.Bufs[i] = s.bufStorage[i*BlockSize : (i+1)*BlockSize]
	}
	s.Root = root
	return nil
}

// Loop runs exactly one block: invoke the root's process, then drain
// the deferred event queue in FIFO order. Returns whether the root
// reported non-silent output.
func (s *Synth) Loop() bool {
	active := s.Root.Type.Process(s.Root, s.Bufs)
	for {
		qe, ok := s.queue.pop()
		if !ok {
			break
		}
		EventOut(qe.m, qe.idx, qe.e)
	}
	return active
}

// EventPush enqueues a deferred outbound event from inside process.
// A full queue is logged and the event is dropped; subsequent pushes
// still proceed normally.
func EventPush(s *Synth, m *Module, outIdx int, e Event) bool {
	if !s.queue.push(m, outIdx, e) {
		s.logger().Errorf("event queue overflow")
		return false
	}
	return true
}

// inputConfig runs the initial configuration pass for one input port
// of a freshly allocated module (§4.2): find the first matching config
// entry, deliver its initial value, and install a MIDI-CC map entry if
// the entry names one.
func (s *Synth) inputConfig(m *Module, pi *PortInfo) {
	path := m.Name + ":" + pi.Name
	for i := range s.Config {
		cfg := &s.Config[i]
		if cfg.Kind != pi.Kind || !globMatch(cfg.Path, path) {
			continue
		}
		switch pi.Kind {
		case KindFloat:
			EventIn(m, pi.Name, FloatEvent(cfg.FloatInit), nil)
		case KindInt:
			EventIn(m, pi.Name, IntEvent(cfg.IntInit), nil)
		case KindBool:
			EventIn(m, pi.Name, BoolEvent(cfg.BoolInit), nil)
		}
		if cfg.MIDIID != 0 {
			s.allocMIDIMapEntry(cfg.MIDIID, m, pi)
		}
		return
	}
}

// allocMIDIMapEntry finds (or claims) the map slot for id and appends
// a (module, port) pair to it. Running out of slots or entries is
// logged but never prevents startup.
func (s *Synth) allocMIDIMapEntry(id uint32, m *Module, pi *PortInfo) {
	slot := s.findOrAllocMIDIMapSlot(id)
	if slot == nil {
		s.logger().Errorf("midi map: no free slot for id %#x", id)
		return
	}
	if slot.n >= NumMIDIMapEntries {
		s.logger().Errorf("midi map: slot %#x full", id)
		return
	}
	slot.entries[slot.n] = midiMapEntry{m: m, pi: pi}
	slot.n++
}

func (s *Synth) findOrAllocMIDIMapSlot(id uint32) *midiMapSlot {
	for i := range s.midiMap {
		if s.midiMap[i].id == id {
			return &s.midiMap[i]
		}
	}
	for i := range s.midiMap {
		if s.midiMap[i].id == 0 {
			s.midiMap[i].id = id
			return &s.midiMap[i]
		}
	}
	return nil
}

// DispatchMIDICC routes an incoming MIDI Control Change event through
// the CC map: every (module, port) pair registered for this
// (channel, cc) receives the event, converted by the port's MIDIFunc.
// Reports whether any slot matched, so callers (e.g. root/poly) can
// decide whether to additionally forward the raw MIDI event.
func (s *Synth) DispatchMIDICC(e Event) bool {
	if !e.IsMIDICC() {
		return false
	}
	id := MIDIID(e.MIDIChannel(), e.MIDICCNumber())
	for i := range s.midiMap {
		slot := &s.midiMap[i]
		if slot.id != id {
			continue
		}
		for j := 0; j < slot.n; j++ {
			entry := slot.entries[j]
			pe := e
			if entry.pi.MF != nil {
				pe = entry.pi.MF(e)
			}
			entry.pi.PF(entry.m, pe)
		}
		return slot.n > 0
	}
	return false
}
