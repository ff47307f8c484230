// osc_noise.go - white/brown/pink noise generator
//
// https://noisehack.com/generate-noise-web-audio-api/
// http://www.musicdsp.org/files/pink.txt

package ggm

import "fmt"

// Noise color constants, passed as the constructor argument to
// NewModule(synth, parent, "osc/noise", id, noiseType).
const (
	NoiseTypeNull = iota
	NoiseTypeWhite
	NoiseTypeBrown
	NoiseTypePink1
	NoiseTypePink2
	noiseTypeMax
)

type noise struct {
	kind               int
	rng                rng
	b0, b1, b2, b3     float32
	b4, b5, b6         float32
}

func (this *noise) generateWhite(out []float32) {
	for i := range out {
		out[i] = this.rng.float()
	}
}

func (this *noise) generateBrown(out []float32) {
	b0 := this.b0
	for i := range out {
		white := this.rng.float()
		b0 = (b0 + 0.02*white) * (1.0 / 1.02)
		out[i] = b0 * (1.0 / 0.38)
	}
	this.b0 = b0
}

func (this *noise) generatePink1(out []float32) {
	b0, b1, b2 := this.b0, this.b1, this.b2
	for i := range out {
		white := this.rng.float()
		b0 = 0.99765*b0 + white*0.0990460
		b1 = 0.96300*b1 + white*0.2965164
		b2 = 0.57000*b2 + white*1.0526913
		pink := b0 + b1 + b2 + white*0.1848
		out[i] = pink * (1.0 / 10.4)
	}
	this.b0, this.b1, this.b2 = b0, b1, b2
}

func (this *noise) generatePink2(out []float32) {
	b0, b1, b2, b3 := this.b0, this.b1, this.b2, this.b3
	b4, b5, b6 := this.b4, this.b5, this.b6
	for i := range out {
		white := this.rng.float()
		b0 = 0.99886*b0 + white*0.0555179
		b1 = 0.99332*b1 + white*0.0750759
		b2 = 0.96900*b2 + white*0.1538520
		b3 = 0.86650*b3 + white*0.3104856
		b4 = 0.55000*b4 + white*0.5329522
		b5 = -0.7616*b5 - white*0.0168980
		pink := b0 + b1 + b2 + b3 + b4 + b5 + b6 + white*0.5362
		b6 = white * 0.115926
		out[i] = pink * (1.0 / 10.2)
	}
	this.b0, this.b1, this.b2, this.b3 = b0, b1, b2, b3
	this.b4, this.b5, this.b6 = b4, b5, b6
}

func noisePortNull(m *Module, e Event) {}

func noiseAlloc(m *Module, args ...interface{}) error {
	kind := NoiseTypeWhite
	if len(args) > 0 {
		if k, ok := args[0].(int); ok {
			kind = k
		}
	}
	if kind <= NoiseTypeNull || kind >= noiseTypeMax {
		m.Synth.logger().Errorf("%s: bad noise type %d", m.Name, kind)
		return fmt.Errorf("ggm: bad noise type %d", kind)
	}
	m.Priv = &noise{kind: kind, rng: *newRNG(0)}
	return nil
}

func noiseFree(m *Module) {}

func noiseProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*noise)
	out := bufs[0]
	switch this.kind {
	case NoiseTypePink1:
		this.generatePink1(out)
	case NoiseTypePink2:
		this.generatePink2(out)
	case NoiseTypeWhite:
		this.generateWhite(out)
	case NoiseTypeBrown:
		this.generateBrown(out)
	default:
		m.Synth.logger().Errorf("%s: bad noise type %d", m.Name, this.kind)
	}
	return true
}

var noiseInPorts = []PortInfo{
	{Name: "reset", Kind: KindBool, PF: noisePortNull},
	{Name: "frequency", Kind: KindFloat, PF: noisePortNull},
}

var noiseOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "osc/noise",
		IName:   "noise",
		In:      noiseInPorts,
		Out:     noiseOutPorts,
		Alloc:   noiseAlloc,
		Free:    noiseFree,
		Process: noiseProcess,
	})
}
