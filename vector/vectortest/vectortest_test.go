package vectortest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64Theory(t *testing.T) {
	Run(t, Float64, Config{Trials: 200})
}

func TestFloat32Theory(t *testing.T) {
	Run(t, Float32, Config{Seed: 2})
}

func TestComplex128Theory(t *testing.T) {
	Run(t, Complex128, Config{Seed: 3})
}

func TestInt64Theory(t *testing.T) {
	Run(t, Int64, Config{Seed: 4})
}

func TestDecimalTheory(t *testing.T) {
	Run(t, Decimal, Config{Seed: 5, Trials: 50})
}

// Long vectors with only the first 20 elements compared.
func TestCappedComparison(t *testing.T) {
	Run(t, Float64, Config{Seed: 6, MaxLen: 200, MaxIndex: 20})
}

func TestPairsDeterministic(t *testing.T) {
	cfg := Config{Seed: 9, Trials: 20}
	a := Pairs(Int64, cfg)
	b := Pairs(Int64, cfg)

	assert.Len(t, a, 20)
	for i := range a {
		assert.True(t, a[i].A.Equal(b[i].A), "case %d A", i)
		assert.True(t, a[i].B.Equal(b[i].B), "case %d B", i)
	}
}

func TestPairsIncludeMismatchedLengths(t *testing.T) {
	var mismatched int
	for _, cs := range Pairs(Float64, Config{Trials: 500}) {
		if cs.A.Len() != cs.B.Len() {
			mismatched++
		}
	}
	assert.Positive(t, mismatched)
}
