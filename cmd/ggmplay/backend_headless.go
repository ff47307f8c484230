//go:build headless

// backend_headless.go - no-op audio backend for environments without a device

package main

import "time"

type headlessBackend struct {
	stop chan struct{}
}

func newAudioBackend(sampleRate int) (audioBackend, error) {
	return &headlessBackend{stop: make(chan struct{})}, nil
}

// Start drains pull on a timer so callbacks and sequencer state still
// advance, without touching any real audio device.
func (b *headlessBackend) Start(pull func(frames int) []float32) error {
	const frames = 128
	go func() {
		t := time.NewTicker(time.Second * frames / 44100)
		defer t.Stop()
		for {
			select {
			case <-b.stop:
				return
			case <-t.C:
				pull(frames)
			}
		}
	}()
	return nil
}

func (b *headlessBackend) Stop() {
	close(b.stop)
}
