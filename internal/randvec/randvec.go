// Package randvec generates deterministic pseudo-random element slices for
// property checks and benchmarks.
//
// Generators favor values that stress the arithmetic laws: zeros of both
// signs, extremes, and mixed magnitudes, alongside ordinary values.
package randvec

import (
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Source returns a seeded generator. Equal seeds produce equal streams.
func Source(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Float64s returns n values; roughly one in eight is a special value.
func Float64s(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64Value(r)
	}
	return out
}

func float64Value(r *rand.Rand) float64 {
	if r.IntN(8) == 0 {
		specials := [...]float64{0, math.Copysign(0, -1), 1, -1, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64}
		return specials[r.IntN(len(specials))]
	}
	// Mixed magnitudes: mantissa in [-1, 1) scaled by 10^[-6, 6].
	return (r.Float64()*2 - 1) * math.Pow(10, float64(r.IntN(13)-6))
}

// Float32s returns n values with the same distribution as Float64s,
// rounded to float32.
func Float32s(r *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		v := float64Value(r)
		if math.Abs(v) > math.MaxFloat32 {
			v = math.Copysign(math.MaxFloat32, v)
		}
		out[i] = float32(v)
	}
	return out
}

// Complex128s returns n values with independently drawn components.
func Complex128s(r *rand.Rand, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(float64Value(r), float64Value(r))
	}
	return out
}

// Int64s returns n values spanning the full int64 range, including the
// extremes.
func Int64s(r *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		switch r.IntN(8) {
		case 0:
			specials := [...]int64{0, 1, -1, math.MaxInt64, math.MinInt64}
			out[i] = specials[r.IntN(len(specials))]
		case 1, 2, 3:
			out[i] = r.Int64N(2001) - 1000
		default:
			out[i] = int64(r.Uint64())
		}
	}
	return out
}

// Decimals returns n decimals with up to 18 integer digits and up to 12
// fractional digits.
func Decimals(r *rand.Rand, n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		coef := r.Int64N(1_000_000_000_000_000_000)
		if r.IntN(2) == 0 {
			coef = -coef
		}
		out[i] = decimal.New(coef, -int32(r.IntN(13)))
	}
	return out
}
