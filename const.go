// const.go - engine-wide constants

package ggm

import "math"

// Block and sample-rate constants. The engine processes exactly one
// block of BlockSize samples per channel per call; SampleRate is fixed
// at build time.
const (
	BlockSize  = 128
	SampleRate = 48000

	SamplePeriod   = 1.0 / SampleRate
	SecsPerBlock   = BlockSize / float64(SampleRate)
	SecsPerMinute  = 60.0
)

// Port, buffer and queue sizing limits.
const (
	MaxAudioIn    = 2
	MaxAudioOut   = 2
	MaxMIDIIn     = 1
	MaxMIDIOut    = 1
	MaxAudioPorts = MaxAudioIn + MaxAudioOut

	NumPortFwd = 8 // bound on output-to-output forwarder index

	NumEvents = 16 // event queue capacity, must be a power of two

	NumMIDIMapSlots   = 8
	NumMIDIMapEntries = 8

	MaxPolyphony = 5

	TicksPerBeat  = 16
	MinBeatsPerMin = 35
	MaxBeatsPerMin = 350
)

// Phase-accumulator constants shared by every tonal oscillator. Phase is
// a uint32 that wraps naturally; these constants translate between
// phase units, radians and Hertz.
const (
	FullCycle    = 1 << 32
	HalfCycle    = 1 << 31
	QuarterCycle = 1 << 30
)

var (
	// FrequencyScale converts Hertz to a phase step: xstep = freq * FrequencyScale.
	FrequencyScale = float64(FullCycle) / float64(SampleRate)
	// PhaseScale converts radians to phase units.
	PhaseScale = float64(FullCycle) / (2 * math.Pi)
)

// epsilon is the "close enough to target" threshold used throughout the
// ADSR envelope's state-transition rules.
const epsilon = 1e-3
