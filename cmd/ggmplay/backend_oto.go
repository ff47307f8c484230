//go:build !headless

// backend_oto.go - oto/v3 audio output backend

package main

import (
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
)

type otoBackend struct {
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex

	pull      func(frames int) []float32
	sampleBuf []float32
}

func newAudioBackend(sampleRate int) (audioBackend, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0, // let oto pick a sensible default
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &otoBackend{ctx: ctx}, nil
}

// Read implements io.Reader for oto.NewPlayer: p holds interleaved
// stereo float32 samples as raw little-endian bytes.
func (b *otoBackend) Read(p []byte) (int, error) {
	frames := len(p) / 8 // 2 channels * 4 bytes
	if cap(b.sampleBuf) < frames*2 {
		b.sampleBuf = make([]float32, frames*2)
	}
	samples := b.pull(frames)
	n := copy(b.sampleBuf[:frames*2], samples)
	floatsToBytes(p, b.sampleBuf[:n])
	return n * 4, nil
}

func (b *otoBackend) Start(pull func(frames int) []float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pull = pull
	b.player = b.ctx.NewPlayer(b)
	b.player.Play()
	return nil
}

func (b *otoBackend) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
}

func floatsToBytes(dst []byte, src []float32) {
	for i, v := range src {
		bits := math.Float32bits(v)
		dst[i*4] = byte(bits)
		dst[i*4+1] = byte(bits >> 8)
		dst[i*4+2] = byte(bits >> 16)
		dst[i*4+3] = byte(bits >> 24)
	}
}
