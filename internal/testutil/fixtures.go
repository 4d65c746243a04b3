package testutil

import "github.com/cwbudde/algo-linalg/internal/randvec"

// Ramp returns n values i*step + offset.
func Ramp(n int, step, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)*step + offset
	}
	return out
}

// Constant returns n copies of value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicNoise returns n uniform values in [-amplitude, amplitude)
// drawn from a fixed seed.
func DeterministicNoise(seed uint64, amplitude float64, n int) []float64 {
	r := randvec.Source(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = (r.Float64()*2 - 1) * amplitude
	}
	return out
}
