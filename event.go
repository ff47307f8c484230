// event.go - typed control events

package ggm

// Kind identifies the payload carried by an Event. A port's kind is
// invariant: a float-typed port only ever receives KindFloat events.
type Kind int

const (
	KindNull Kind = iota
	KindAudio
	KindFloat
	KindInt
	KindBool
	KindMIDI
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindMIDI:
		return "midi"
	default:
		return "null"
	}
}

// Event is a tagged variant carrying exactly one of a float, an int, a
// bool or a 3-byte MIDI message. Events are value types: they are
// copied by assignment, which is what lets them sit in the event queue
// without allocation.
type Event struct {
	Kind             Kind
	F                float32
	I                int
	B                bool
	Status, A0, A1 byte
}

// FloatEvent builds a float-kinded event.
func FloatEvent(v float32) Event { return Event{Kind: KindFloat, F: v} }

// IntEvent builds an int-kinded event.
func IntEvent(v int) Event { return Event{Kind: KindInt, I: v} }

// BoolEvent builds a bool-kinded event.
func BoolEvent(v bool) Event { return Event{Kind: KindBool, B: v} }

// MIDIEvent builds a MIDI-kinded event from a status byte and up to two
// data bytes.
func MIDIEvent(status, a0, a1 byte) Event {
	return Event{Kind: KindMIDI, Status: status, A0: a0, A1: a1}
}

// IsMIDICC reports whether e is a MIDI Control Change message.
func (e Event) IsMIDICC() bool {
	return e.Kind == KindMIDI && e.Status&0xF0 == MIDIStatusControlChange
}

// IsMIDINoteOn reports whether e is a MIDI Note On with nonzero velocity.
func (e Event) IsMIDINoteOn() bool {
	return e.Kind == KindMIDI && e.Status&0xF0 == MIDIStatusNoteOn && e.A1 != 0
}

// IsMIDINoteOff reports whether e is a MIDI Note Off, or a Note On with
// zero velocity (the conventional "running status" note-off idiom).
func (e Event) IsMIDINoteOff() bool {
	if e.Kind != KindMIDI {
		return false
	}
	status := e.Status & 0xF0
	return status == MIDIStatusNoteOff || (status == MIDIStatusNoteOn && e.A1 == 0)
}

// IsMIDIPitchBend reports whether e is a MIDI pitch-wheel message.
func (e Event) IsMIDIPitchBend() bool {
	return e.Kind == KindMIDI && e.Status&0xF0 == MIDIStatusPitchBend
}

// MIDIChannel extracts the channel number (0-15) from a channel-voice
// MIDI event.
func (e Event) MIDIChannel() int { return int(e.Status & 0x0F) }

// MIDICCNumber returns the controller number of a Control Change event.
func (e Event) MIDICCNumber() int { return int(e.A0) }

// MIDICCValue returns the controller value (0-127) of a Control Change event.
func (e Event) MIDICCValue() int { return int(e.A1) }

// MIDINote returns the note number of a Note On/Off event.
func (e Event) MIDINote() int { return int(e.A0) }

// MIDIVelocity returns the velocity of a Note On/Off event.
func (e Event) MIDIVelocity() int { return int(e.A1) }

// MIDIPitchBendValue reconstructs the 14-bit pitch-wheel value from the
// two 7-bit data bytes (arg0 = LSB, arg1 = MSB).
func (e Event) MIDIPitchBendValue() int {
	return int(e.A0) | (int(e.A1) << 7)
}
