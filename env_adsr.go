// env_adsr.go - 5-state ADSR envelope generator

package ggm

import "math"

type adsrState int

const (
	adsrIdle adsrState = iota
	adsrAttack
	adsrDecay
	adsrSustain
	adsrRelease
	adsrReset
)

const (
	adsrMinAttack  = 0.002
	adsrMinDecay   = 0.004
	adsrMinRelease = 0.004
	adsrResetTime  = 0.030
)

// getK returns the per-sample coefficient that drives a first-order
// exponential segment to within epsilon of its target in t seconds at
// the engine's sample rate.
func getK(t float32) float32 {
	return float32(1 - math.Exp(math.Log(epsilon)/(float64(t)*SampleRate)))
}

type adsr struct {
	state   adsrState
	val     float32
	sustain float32
	ka      float32 // attack coefficient
	kd      float32 // decay coefficient
	kr      float32 // release coefficient
}

var kReset = getK(adsrResetTime)

func adsrSetAttack(this *adsr, t float32) {
	if t < adsrMinAttack {
		t = adsrMinAttack
	}
	this.ka = getK(t)
}

func adsrSetDecay(this *adsr, t float32) {
	if t < adsrMinDecay {
		t = adsrMinDecay
	}
	this.kd = getK(t)
}

func adsrSetRelease(this *adsr, t float32) {
	if t < adsrMinRelease {
		t = adsrMinRelease
	}
	this.kr = getK(t)
}

func adsrPortReset(m *Module, e Event) {
	this := m.Priv.(*adsr)
	if e.B {
		this.state = adsrIdle
		this.val = 0
	} else if this.state != adsrIdle {
		this.state = adsrReset
	}
}

func adsrPortGate(m *Module, e Event) {
	this := m.Priv.(*adsr)
	gate := e.F
	if gate > 0 {
		this.state = adsrAttack
		return
	}
	if this.state == adsrIdle {
		return
	}
	if this.kr >= 1 {
		this.state = adsrIdle
		this.val = 0
		return
	}
	this.state = adsrRelease
}

func adsrPortAttack(m *Module, e Event)  { adsrSetAttack(m.Priv.(*adsr), e.F) }
func adsrPortDecay(m *Module, e Event)   { adsrSetDecay(m.Priv.(*adsr), e.F) }
func adsrPortSustain(m *Module, e Event) { m.Priv.(*adsr).sustain = e.F }
func adsrPortRelease(m *Module, e Event) { adsrSetRelease(m.Priv.(*adsr), e.F) }

func adsrMidiAttack(e Event) Event {
	return FloatEvent(mapLin(float32(e.MIDICCValue())/127, adsrMinAttack, 1.0))
}

func adsrMidiDecay(e Event) Event {
	return FloatEvent(mapLin(float32(e.MIDICCValue())/127, adsrMinDecay, 2.0))
}

func adsrMidiSustain(e Event) Event {
	return FloatEvent(float32(e.MIDICCValue()) / 127)
}

func adsrMidiRelease(e Event) Event {
	return FloatEvent(mapLin(float32(e.MIDICCValue())/127, adsrMinRelease, 1.0))
}

func adsrAlloc(m *Module, args ...interface{}) error {
	this := &adsr{sustain: 0.8}
	adsrSetAttack(this, 0.05)
	adsrSetDecay(this, 0.1)
	adsrSetRelease(this, 0.1)
	m.Priv = this
	return nil
}

func adsrFree(m *Module) {}

func adsrProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*adsr)
	out := bufs[0]
	for i := 0; i < BlockSize; i++ {
		switch this.state {
		case adsrIdle:
			this.val = 0
		case adsrAttack:
			if this.val < 1-epsilon {
				this.val += this.ka * (1 - this.val)
			} else {
				this.val = 1
				this.state = adsrDecay
			}
		case adsrDecay:
			trigger := this.sustain + (1-this.sustain)*epsilon
			if this.val > trigger {
				this.val += this.kd * (this.sustain - this.val)
			} else if this.sustain == 0 {
				this.val = 0
				this.state = adsrIdle
			} else {
				this.val = this.sustain
				this.state = adsrSustain
			}
		case adsrSustain:
			// hold
		case adsrRelease:
			if this.val > this.sustain*epsilon {
				this.val += this.kr * (0 - this.val)
			} else {
				this.val = 0
				this.state = adsrIdle
			}
		case adsrReset:
			if this.val > this.sustain*epsilon {
				this.val += kReset * (0 - this.val)
			} else {
				this.val = 0
				this.state = adsrIdle
			}
		default:
			m.Synth.logger().Errorf("%s: bad adsr state %d", m.Name, this.state)
			this.val = 0
			this.state = adsrIdle
		}
		out[i] = this.val
	}
	return this.state != adsrIdle
}

var adsrInPorts = []PortInfo{
	{Name: "reset", Kind: KindBool, PF: adsrPortReset},
	{Name: "gate", Kind: KindFloat, PF: adsrPortGate},
	{Name: "attack", Kind: KindFloat, PF: adsrPortAttack, MF: adsrMidiAttack},
	{Name: "decay", Kind: KindFloat, PF: adsrPortDecay, MF: adsrMidiDecay},
	{Name: "sustain", Kind: KindFloat, PF: adsrPortSustain, MF: adsrMidiSustain},
	{Name: "release", Kind: KindFloat, PF: adsrPortRelease, MF: adsrMidiRelease},
}

var adsrOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "env/adsr",
		IName:   "adsr",
		In:      adsrInPorts,
		Out:     adsrOutPorts,
		Alloc:   adsrAlloc,
		Free:    adsrFree,
		Process: adsrProcess,
	})
}
