// filter_svf.go - state variable filters
//
// SVFTypeChamberlin: Hal Chamberlin's "Musical Applications of
// Microprocessors" pp.489-492.
//
// SVFTypeTrapezoidal: https://cytomic.com/files/dsp/SvfLinearTrapOptimised2.pdf

package ggm

import (
	"fmt"
	"math"
)

const (
	SVFTypeNull = iota
	SVFTypeChamberlin
	SVFTypeTrapezoidal
	svfTypeMax
)

type svf struct {
	kind int
	// SVFTypeChamberlin
	kf, kq float32
	bp, lp float32
	// SVFTypeTrapezoidal
	g, k         float32
	ic1eq, ic2eq float32
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func svfFilterChamberlin(this *svf, in, out []float32) {
	lp, bp := this.lp, this.bp
	kf, kq := this.kf, this.kq
	for i := 0; i < BlockSize; i++ {
		lp += kf * bp
		hp := in[i] - lp - kq*bp
		bp += kf * hp
		out[i] = lp
	}
	this.lp, this.bp = lp, bp
}

func svfFilterTrapezoidal(this *svf, in, out []float32) {
	ic1eq, ic2eq := this.ic1eq, this.ic2eq
	a1 := 1.0 / (1.0 + this.g*(this.g+this.k))
	a2 := this.g * a1
	a3 := this.g * a2
	for i := 0; i < BlockSize; i++ {
		v0 := in[i]
		v3 := v0 - ic2eq
		v1 := a1*ic1eq + a2*v3
		v2 := ic2eq + a2*ic1eq + a3*v3
		ic1eq = 2*v1 - ic1eq
		ic2eq = 2*v2 - ic2eq
		// low := v2
		// band := v1
		// high := v0 - (this.k * v1) - v2
		// notch := v0 - (this.k * v1)
		// peak := v0 - (this.k * v1) - (2 * v2)
		// all := v0 - (2 * this.k * v1)
		out[i] = v2
	}
	this.ic1eq, this.ic2eq = ic1eq, ic2eq
}

func svfPortCutoff(m *Module, e Event) {
	this := m.Priv.(*svf)
	cutoff := clampf(e.F, 0, 0.5*SampleRate)
	m.Synth.logger().Infof("%s: set cutoff frequency %f Hz", m.Name, cutoff)
	switch this.kind {
	case SVFTypeChamberlin:
		this.kf = 2 * float32(math.Sin(math.Pi*float64(cutoff)*SamplePeriod))
	case SVFTypeTrapezoidal:
		this.g = float32(math.Tan(math.Pi * float64(cutoff) * SamplePeriod))
	default:
		m.Synth.logger().Errorf("%s: bad filter type %d", m.Name, this.kind)
	}
}

func svfPortResonance(m *Module, e Event) {
	this := m.Priv.(*svf)
	resonance := clampf(e.F, 0, 1)
	m.Synth.logger().Infof("%s: set resonance %f", m.Name, resonance)
	switch this.kind {
	case SVFTypeChamberlin:
		this.kq = 2 - 2*resonance
	case SVFTypeTrapezoidal:
		this.k = 2 - 2*resonance
	default:
		m.Synth.logger().Errorf("%s: bad filter type %d", m.Name, this.kind)
	}
}

func svfAlloc(m *Module, args ...interface{}) error {
	this := &svf{}
	if len(args) > 0 {
		if k, ok := args[0].(int); ok {
			this.kind = k
		}
	}
	if this.kind <= SVFTypeNull || this.kind >= svfTypeMax {
		m.Synth.logger().Errorf("%s: bad filter type %d", m.Name, this.kind)
		return fmt.Errorf("ggm: bad filter type %d", this.kind)
	}
	m.Priv = this
	return nil
}

func svfFree(m *Module) {}

func svfProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*svf)
	in, out := bufs[0], bufs[1]
	switch this.kind {
	case SVFTypeChamberlin:
		svfFilterChamberlin(this, in, out)
	case SVFTypeTrapezoidal:
		svfFilterTrapezoidal(this, in, out)
	default:
		m.Synth.logger().Errorf("%s: bad filter type %d", m.Name, this.kind)
	}
	return true
}

var svfInPorts = []PortInfo{
	{Name: "in", Kind: KindAudio},
	{Name: "cutoff", Kind: KindFloat, PF: svfPortCutoff},
	{Name: "resonance", Kind: KindFloat, PF: svfPortResonance},
}

var svfOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "filter/svf",
		IName:   "svf",
		In:      svfInPorts,
		Out:     svfOutPorts,
		Alloc:   svfAlloc,
		Free:    svfFree,
		Process: svfProcess,
	})
}
