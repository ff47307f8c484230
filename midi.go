// midi.go - MIDI status bytes, note/frequency conversion, CC id encoding

package ggm

import "fmt"

// Channel-voice status bytes (low nibble is the channel, masked off by callers).
const (
	MIDIStatusNoteOff         byte = 0x80
	MIDIStatusNoteOn          byte = 0x90
	MIDIStatusPolyPressure    byte = 0xA0
	MIDIStatusControlChange   byte = 0xB0
	MIDIStatusProgramChange   byte = 0xC0
	MIDIStatusChannelPressure byte = 0xD0
	MIDIStatusPitchBend       byte = 0xE0
)

// System common / realtime status bytes.
const (
	MIDIStatusSysEx         byte = 0xF0
	MIDIStatusTimeCodeQtr   byte = 0xF1
	MIDIStatusSongPosition  byte = 0xF2
	MIDIStatusSongSelect    byte = 0xF3
	MIDIStatusTuneRequest   byte = 0xF6
	MIDIStatusSysExEnd      byte = 0xF7
	MIDIStatusTimingClock   byte = 0xF8
	MIDIStatusStart         byte = 0xFA
	MIDIStatusContinue      byte = 0xFB
	MIDIStatusStop          byte = 0xFC
	MIDIStatusActiveSensing byte = 0xFE
	MIDIStatusSystemReset   byte = 0xFF
)

// MIDIMessageLen returns the number of bytes (including the status
// byte) a channel-voice or system message carries, per §6's host
// interface contract. SysEx (variable length, terminated by 0xF7) is
// reported as 1; callers that need to stream SysEx bytes must handle
// it outside this helper.
func MIDIMessageLen(status byte) int {
	switch status {
	case MIDIStatusTimingClock, MIDIStatusStart, MIDIStatusContinue,
		MIDIStatusStop, MIDIStatusActiveSensing, MIDIStatusSystemReset,
		MIDIStatusTuneRequest, MIDIStatusSysEx, MIDIStatusSysExEnd:
		return 1
	case MIDIStatusTimeCodeQtr, MIDIStatusSongSelect:
		return 2
	}
	switch status & 0xF0 {
	case MIDIStatusProgramChange, MIDIStatusChannelPressure:
		return 2
	case MIDIStatusNoteOff, MIDIStatusNoteOn, MIDIStatusPolyPressure,
		MIDIStatusControlChange, MIDIStatusPitchBend:
		return 3
	case 0xF0: // other system-common, treat conservatively as 3
		if status == MIDIStatusSongPosition {
			return 3
		}
	}
	return 3
}

// MIDIStatusName gives a best-effort human-readable name for a status
// byte, for logging and diagnostics only; it never affects routing.
func MIDIStatusName(status byte) string {
	if status >= 0xF0 {
		switch status {
		case MIDIStatusSysEx:
			return "SysEx"
		case MIDIStatusTimeCodeQtr:
			return "MTC Quarter Frame"
		case MIDIStatusSongPosition:
			return "Song Position"
		case MIDIStatusSongSelect:
			return "Song Select"
		case MIDIStatusTuneRequest:
			return "Tune Request"
		case MIDIStatusSysExEnd:
			return "SysEx End"
		case MIDIStatusTimingClock:
			return "Timing Clock"
		case MIDIStatusStart:
			return "Start"
		case MIDIStatusContinue:
			return "Continue"
		case MIDIStatusStop:
			return "Stop"
		case MIDIStatusActiveSensing:
			return "Active Sensing"
		case MIDIStatusSystemReset:
			return "System Reset"
		default:
			return fmt.Sprintf("Unknown(0x%02X)", status)
		}
	}
	switch status & 0xF0 {
	case MIDIStatusNoteOff:
		return "Note Off"
	case MIDIStatusNoteOn:
		return "Note On"
	case MIDIStatusPolyPressure:
		return "Poly Key Pressure"
	case MIDIStatusControlChange:
		return "Control Change"
	case MIDIStatusProgramChange:
		return "Program Change"
	case MIDIStatusChannelPressure:
		return "Channel Pressure"
	case MIDIStatusPitchBend:
		return "Pitch Bend"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", status)
	}
}

// MIDIToFrequency converts a (possibly fractional, pitch-bent) MIDI
// note number to Hertz using equal temperament with A4=440Hz at note 69.
func MIDIToFrequency(note float32) float32 {
	return 440.0 * pow2((note-69.0)/12.0)
}

// MIDIPitchBend converts a 14-bit pitch wheel value (0..8192..16383) to
// a signed semitone offset in [-2, 2].
func MIDIPitchBend(val int) float32 {
	return float32(val-8192) * (2.0 / 8192.0)
}

// MIDIID packs a channel and CC number into the 24-bit routing key used
// by the MIDI-CC map. The low byte is a fixed 0xFF marker so that a
// valid id is never zero (zero means "unset").
func MIDIID(channel, cc int) uint32 {
	return (uint32(channel) << 16) | (uint32(cc) << 8) | 0xFF
}
