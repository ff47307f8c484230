// lut.go - interpolated lookup tables for cosine and power-of-two

package ggm

import "math"

// cosLUTBits controls the resolution of the cosine table: the top
// cosLUTBits bits of a 32-bit phase select a table entry, the
// remaining bits drive linear interpolation against a precomputed
// first difference. This mirrors the engine's general "compute once
// at startup, interpolate on the hot path" approach to transcendental
// functions rather than hand-transcribing a literal table.
const (
	cosLUTBits  = 7
	cosLUTSize  = 1 << cosLUTBits
	cosFracBits = 32 - cosLUTBits
	cosFracMask = (1 << cosFracBits) - 1
)

var (
	cosLUT     [cosLUTSize]float32
	cosLUTDiff [cosLUTSize]float32
)

func init() {
	for i := 0; i < cosLUTSize; i++ {
		cosLUT[i] = float32(math.Cos(2 * math.Pi * float64(i) / cosLUTSize))
	}
	for i := 0; i < cosLUTSize; i++ {
		cosLUTDiff[i] = cosLUT[(i+1)%cosLUTSize] - cosLUT[i]
	}
}

// cosLookup returns cos(2*pi*x/2^32) for a 32-bit phase value x, via
// table lookup plus linear interpolation.
func cosLookup(x uint32) float32 {
	idx := x >> cosFracBits
	frac := float32(x&cosFracMask) / float32(cosFracMask+1)
	return cosLUT[idx] + cosLUTDiff[idx]*frac
}

// pow2FracBits sizes the fractional power-of-two table; 2^pow2FracBits
// entries span [0,1) with linear interpolation between them.
const (
	pow2FracBits = 8
	pow2FracSize = 1 << pow2FracBits
)

var (
	pow2FracLUT     [pow2FracSize + 1]float64
	pow2FracLUTDiff [pow2FracSize]float64
)

func init() {
	for i := 0; i <= pow2FracSize; i++ {
		pow2FracLUT[i] = math.Exp2(float64(i) / pow2FracSize)
	}
	for i := 0; i < pow2FracSize; i++ {
		pow2FracLUTDiff[i] = pow2FracLUT[i+1] - pow2FracLUT[i]
	}
}

// pow2 computes 2^x by splitting x into an integer part (scaled
// exactly via math.Ldexp) and a fractional part resolved through the
// interpolated table above.
func pow2(x float32) float32 {
	xf := float64(x)
	nf := math.Floor(xf)
	ff := xf - nf
	idx := int(ff * pow2FracSize)
	if idx >= pow2FracSize {
		idx = pow2FracSize - 1
	}
	frac := ff*pow2FracSize - float64(idx)
	fracVal := pow2FracLUT[idx] + pow2FracLUTDiff[idx]*frac
	return float32(math.Ldexp(fracVal, int(nf)))
}

// mapLin linearly maps x onto [y0,y1] assuming x is itself in [0,1].
func mapLin(x, y0, y1 float32) float32 {
	return (y1-y0)*x + y0
}

// mapExp exponentially maps x in [0,1] onto [y0,y1] with curvature k.
// k == 0 is a caller error and falls back to the linear map.
func mapExp(x, y0, y1, k float32) float32 {
	if k == 0 {
		return mapLin(x, y0, y1)
	}
	a := (y0 - y1) / (1 - pow2(k))
	b := y0 - a
	return a*pow2(k*x) + b
}
