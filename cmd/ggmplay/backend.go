// backend.go - audio output backend interface
//
// audioBackend abstracts the real-time audio sink so this binary
// builds and runs (silently) in environments without an audio device,
// e.g. CI containers, via the "headless" build tag.

package main

type audioBackend interface {
	// Start begins pulling stereo float32 samples from pull until Stop
	// is called. pull is invoked with a frame count and must return
	// exactly that many interleaved left/right sample pairs.
	Start(pull func(frames int) []float32) error
	Stop()
}
