// Package vectortest runs the arithmetic theory as Go subtests.
//
// Element types plugged into package scalar can reuse the full property
// suite in their own tests:
//
//	func TestMyRing(t *testing.T) {
//		vectortest.Run(t, theory.FromElements(myRing{}, genElems), vectortest.Config{})
//	}
package vectortest

import (
	"errors"
	"slices"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-linalg/internal/randvec"
	"github.com/cwbudde/algo-linalg/scalar"
	"github.com/cwbudde/algo-linalg/vector/theory"
)

// Generators for the rings in package scalar.
var (
	Float64    = theory.FromElements[float64](scalar.Float64{}, randvec.Float64s)
	Float32    = theory.FromElements[float32](scalar.Float32{}, randvec.Float32s)
	Complex128 = theory.FromElements[complex128](scalar.Complex128{}, randvec.Complex128s)
	Int64      = theory.FromElements[int64](scalar.Int64{}, randvec.Int64s)
	Decimal    = theory.FromElements[decimal.Decimal](scalar.Decimal{}, randvec.Decimals)
)

// Config tunes Run. Zero fields take the defaults noted below.
type Config struct {
	Seed     uint64 // default 1
	Trials   int    // operand pairs per property, default 100
	MaxLen   int    // maximum vector length, default 64
	MaxIndex int    // leading elements compared, 0 = all
}

func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Trials <= 0 {
		c.Trials = 100
	}
	if c.MaxLen <= 0 {
		c.MaxLen = 64
	}
	return c
}

// Pairs draws the operand pairs Run uses for cfg.
func Pairs[T any](gen theory.Generator[T], cfg Config) []theory.Case[T] {
	cfg = cfg.withDefaults()
	return slices.Collect(theory.Pairs(gen, cfg.Seed, cfg.Trials, cfg.MaxLen))
}

// Run checks every theory property over generated pairs, one subtest per
// property. Pairs outside a property's assumption are skipped silently.
func Run[T any](t *testing.T, gen theory.Generator[T], cfg Config) {
	t.Helper()
	cfg = cfg.withDefaults()
	checker := theory.Checker[T]{MaxIndex: cfg.MaxIndex}
	cases := Pairs(gen, cfg)

	for _, p := range theory.Properties {
		t.Run(string(p), func(t *testing.T) {
			for i, cs := range cases {
				err := checker.Check(p, cs.A, cs.B)
				if err == nil || errors.Is(err, theory.ErrAssumption) {
					continue
				}
				t.Errorf("case %d (len %d, %d): %v", i, cs.A.Len(), cs.B.Len(), err)
			}
		})
	}
}
