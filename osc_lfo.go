// osc_lfo.go - low frequency oscillator with six wave shapes

package ggm

const (
	lfoShapeNull = iota
	lfoShapeTriangle
	lfoShapeSawDown
	lfoShapeSawUp
	lfoShapeSquare
	lfoShapeSine
	lfoShapeSampleAndHold
	lfoShapeMax
)

type lfo struct {
	shape     int
	depth     float32
	x, xstep  uint32
	randState uint32
}

func lfoSample(this *lfo) float32 {
	var sample int32

	switch this.shape {
	case lfoShapeTriangle:
		x := this.x + (1 << 30)
		sample = int32(x >> 6)
		sample ^= -int32(x >> 31)
		sample &= (1 << 25) - 1
		sample -= 1 << 24
	case lfoShapeSawDown:
		sample = -int32(this.x) >> 7
	case lfoShapeSawUp:
		sample = int32(this.x) >> 7
	case lfoShapeSquare:
		sample = int32(this.x & (1 << 31))
		sample = (sample >> 6) | (1 << 24)
	case lfoShapeSine:
		return cosLookup(this.x - (1 << 30))
	case lfoShapeSampleAndHold:
		if this.x < this.xstep {
			this.randState = ((this.randState * 179) + 17) & 0xff
		}
		sample = int32(this.randState<<24) >> 7
	}

	return float32(sample) / float32(1<<24)
}

func lfoPortRate(m *Module, e Event) {
	this := m.Priv.(*lfo)
	rate := e.F
	if rate < 0 {
		rate = 0
	}
	this.xstep = uint32(float64(rate) * FrequencyScale)
}

func lfoPortDepth(m *Module, e Event) {
	this := m.Priv.(*lfo)
	depth := e.F
	if depth < 0 {
		depth = 0
	}
	this.depth = depth
}

func lfoPortShape(m *Module, e Event) {
	this := m.Priv.(*lfo)
	shape := e.I
	if shape < 0 {
		shape = 0
	}
	if shape > lfoShapeMax-1 {
		shape = lfoShapeMax - 1
	}
	this.shape = shape
}

func lfoPortSync(m *Module, e Event) {
	if e.B {
		m.Priv.(*lfo).x = 0
	}
}

func lfoAlloc(m *Module, args ...interface{}) error {
	m.Priv = &lfo{}
	return nil
}

func lfoFree(m *Module) {}

func lfoProcess(m *Module, bufs [][]float32) bool {
	this := m.Priv.(*lfo)
	out := bufs[0]
	for i := 0; i < BlockSize; i++ {
		this.x += this.xstep
		out[i] = this.depth * lfoSample(this)
	}
	return true
}

var lfoInPorts = []PortInfo{
	{Name: "rate", Kind: KindFloat, PF: lfoPortRate},
	{Name: "depth", Kind: KindFloat, PF: lfoPortDepth},
	{Name: "shape", Kind: KindInt, PF: lfoPortShape},
	{Name: "sync", Kind: KindBool, PF: lfoPortSync},
}

var lfoOutPorts = []PortInfo{
	{Name: "out", Kind: KindAudio},
}

func init() {
	registerModuleType(&ModuleType{
		MName:   "osc/lfo",
		IName:   "lfo",
		In:      lfoInPorts,
		Out:     lfoOutPorts,
		Alloc:   lfoAlloc,
		Free:    lfoFree,
		Process: lfoProcess,
	})
}
