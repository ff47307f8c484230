// pm_breath.go - breath excitation for wind instruments
//
// Mixes white noise with an ADSR envelope to approximate
// the turbulent air stream a reed or embouchure produces: out = ((noise
// * env * kn) + env) * kd.

package ggm

type breath struct {
	noise *Module
	adsr  *Module
	kn    float32
	ka    float32
	kd    float32
}

func breathSetScale(this *breath, kn, ka float32) {
	this.kn = kn
	this.ka = ka
	this.kd = ka / (1 + kn)
}

func breathPortReset(m *Module, e Event)   { EventIn(m.Priv.(*breath).adsr, "reset", e, nil) }
func breathPortGate(m *Module, e Event)    { EventIn(m.Priv.(*breath).adsr, "gate", e, nil) }
func breathPortAttack(m *Module, e Event)  { EventIn(m.Priv.(*breath).adsr, "attack", e, nil) }
func breathPortDecay(m *Module, e Event)   { EventIn(m.Priv.(*breath).adsr, "decay", e, nil) }
func breathPortSustain(m *Module, e Event) { EventIn(m.Priv.(*breath).adsr, "sustain", e, nil) }
func breathPortRelease(m *Module, e Event) { EventIn(m.Priv.(*breath).adsr, "release", e, nil) }

func breathPortKn(m *Module, e Event) {
	this := m.Priv.(*breath)
	kn := e.F
	if kn < 0 {
		kn = 0
	}
	m.Synth.logger().Debugf("%s: set kn %f", m.Name, kn)
	breathSetScale(this, kn, this.ka)
}

func breathPortKa(m *Module, e Event) {
	this := m.Priv.(*breath)
	ka := e.F
	if ka < 0 {
		ka = 0
	}
	m.Synth.logger().Debugf("%s: set ka %f", m.Name, ka)
	breathSetScale(this, this.kn, ka)
}

func breathAlloc(m *Module, args ...interface{}) error {
	this := &breath{}
	m.Priv = this
	breathSetScale(this, 0.5, 1)

	noise, err := NewModule(m.Synth, m, "osc/noise", -1, NoiseTypeWhite)
	if err != nil {
		return err
	}
	this.noise = noise

	adsr, err := NewModule(m.Synth, m, "env/adsr", -1)
	if err != nil {
		DeleteModule(noise)
		return err
	}
	EventIn(adsr, "attack", FloatEvent(0.1), nil)
	EventIn(adsr, "decay", FloatEvent(0.5), nil)
	EventIn(adsr, "sustain", FloatEvent(0.85), nil)
	EventIn(adsr, "release", FloatEvent(1), nil)
	this.adsr = adsr

	return nil
}

func breathFree(m *Module) {
	this := m.Priv.(*breath)
	DeleteModule(this.noise)
	DeleteModule(this.adsr)
}

func breathProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*breath)
	var env [BlockSize]float32
	active := this.adsr.Type.Process(this.adsr, [][]float32{env[:]})

	if active {
		out := bufs[0]
		this.noise.Type.Process(this.noise, [][]float32{out})
		blockMul(out, env[:])
		blockMulK(out, this.kn)
		blockAdd(out, env[:])
		blockMulK(out, this.kd)
	}

	return active
}

var breathInPorts = []PortInfo{
	{Name: "reset", Kind: KindBool, PF: breathPortReset},
	{Name: "gate", Kind: KindFloat, PF: breathPortGate},
	{Name: "attack", Kind: KindFloat, PF: breathPortAttack},
	{Name: "decay", Kind: KindFloat, PF: breathPortDecay},
	{Name: "sustain", Kind: KindFloat, PF: breathPortSustain},
	{Name: "release", Kind: KindFloat, PF: breathPortRelease},
	{Name: "kn", Kind: KindFloat, PF: breathPortKn},
	{Name: "ka", Kind: KindFloat, PF: breathPortKa},
}

var breathOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "pm/breath",
		IName:   "breath",
		In:      breathInPorts,
		Out:     breathOutPorts,
		Alloc:   breathAlloc,
		Free:    breathFree,
		Process: breathProcess,
	})
}
