// Package accel registers the algo-vecmath backed float64 kernels.
//
// algo-vecmath performs its own SIMD dispatch (SSE2/AVX2/NEON with a pure Go
// fallback), so the entry requires no particular SIMD level and is only
// skipped when generic kernels are forced.
package accel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "vecmath",
		SIMDLevel:   cpu.SIMDNone,
		Accelerated: true,
		Priority:    10,
		AddBlock:    vecmath.AddBlock,
		SubBlock:    subBlock,
		NegBlock:    negBlock,
		MulBlock:    vecmath.MulBlock,
		ScaleBlock:  vecmath.ScaleBlock,
		Dot:         vecmath.DotProduct,
		Sum:         vecmath.Sum,
	})
}

var scratch = sync.Pool{New: func() any { return new([]float64) }}

// subBlock computes dst[i] = a[i] + (-b[i]). The negation goes through a
// scratch buffer since dst may alias a or b.
func subBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	buf := scratch.Get().(*[]float64)
	if cap(*buf) < len(b) {
		*buf = make([]float64, len(b))
	}
	neg := (*buf)[:len(b)]
	vecmath.ScaleBlock(neg, b, -1)
	vecmath.AddBlock(dst, a, neg)
	scratch.Put(buf)
}

// negBlock computes dst[i] = src[i] * -1. Signed zeros flip; NaNs stay NaN.
func negBlock(dst, src []float64) {
	vecmath.ScaleBlock(dst, src, -1)
}
