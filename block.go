// block.go - fixed-length vector operations on audio blocks

package ggm

// blockZero clears a block to silence.
func blockZero(out []float32) {
	for i := range out {
		out[i] = 0
	}
}

// blockCopy copies src into out.
func blockCopy(out, src []float32) {
	copy(out, src)
}

// blockCopyMulK copies src*k into out.
func blockCopyMulK(out, src []float32, k float32) {
	for i := range out {
		out[i] = src[i] * k
	}
}

// blockAdd accumulates src into out: out[i] += src[i].
func blockAdd(out, src []float32) {
	for i := range out {
		out[i] += src[i]
	}
}

// blockMul multiplies out by src element-wise: out[i] *= src[i].
func blockMul(out, src []float32) {
	for i := range out {
		out[i] *= src[i]
	}
}

// blockMulK scales out by a scalar: out[i] *= k.
func blockMulK(out []float32, k float32) {
	for i := range out {
		out[i] *= k
	}
}

// blockAddK adds a scalar to every element of out.
func blockAddK(out []float32, k float32) {
	for i := range out {
		out[i] += k
	}
}
