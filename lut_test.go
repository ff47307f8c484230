package ggm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCosLookupAgainstMathCos(t *testing.T) {
	for i := 0; i < 16; i++ {
		x := uint32(i) * (FullCycle / 16)
		want := math.Cos(2 * math.Pi * float64(i) / 16)
		got := cosLookup(x)
		assert.InDelta(t, want, float64(got), 0.01, "phase step %d", i)
	}
}

func TestCosLookupPeriodicEndpoints(t *testing.T) {
	assert.InDelta(t, 1.0, float64(cosLookup(0)), 0.01)
	assert.InDelta(t, -1.0, float64(cosLookup(HalfCycle)), 0.01)
}

func TestPow2AgainstMathExp2(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float32Range(-8, 8).Draw(t, "x")
		want := math.Exp2(float64(x))
		got := pow2(x)
		assert.InDelta(t, want, float64(got), want*0.01+1e-4)
	})
}

func TestMapLin(t *testing.T) {
	assert.Equal(t, float32(0), mapLin(0, 0, 10))
	assert.Equal(t, float32(10), mapLin(1, 0, 10))
	assert.Equal(t, float32(5), mapLin(0.5, 0, 10))
}

func TestMapExpEndpoints(t *testing.T) {
	got0 := mapExp(0, 2, 20, -4)
	got1 := mapExp(1, 2, 20, -4)
	assert.InDelta(t, 2.0, float64(got0), 0.05)
	assert.InDelta(t, 20.0, float64(got1), 0.05)
}

func TestMapExpZeroCurvatureFallsBackToLinear(t *testing.T) {
	assert.Equal(t, mapLin(0.3, 1, 9), mapExp(0.3, 1, 9, 0))
}
