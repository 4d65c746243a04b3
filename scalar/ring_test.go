package scalar

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

// ringCase bundles the checks shared by every ring.
type ringCase[T any] struct {
	ring    Ring[T]
	samples []T
	bad     []string
}

func (c ringCase[T]) run(t *testing.T) {
	t.Helper()
	r := c.ring

	for _, x := range c.samples {
		if got := r.Neg(r.Neg(x)); !r.Equal(got, x) {
			t.Errorf("%s: Neg(Neg(%s)) = %s", r.Name(), r.Format(x), r.Format(got))
		}
		if got := r.Add(x, r.Zero()); !r.Equal(got, x) {
			t.Errorf("%s: %s + 0 = %s", r.Name(), r.Format(x), r.Format(got))
		}
		if !r.Equal(x, x) {
			t.Errorf("%s: %s not equal to itself", r.Name(), r.Format(x))
		}

		text := r.Format(x)
		parsed, err := r.Parse(text)
		if err != nil {
			t.Errorf("%s: Parse(%q): %v", r.Name(), text, err)
			continue
		}
		if !r.Equal(parsed, x) {
			t.Errorf("%s: Parse(Format(%s)) = %s", r.Name(), text, r.Format(parsed))
		}
		if !bytes.Equal(r.AppendKey(nil, parsed), r.AppendKey(nil, x)) {
			t.Errorf("%s: key of parsed %s differs", r.Name(), text)
		}
	}

	for _, s := range c.bad {
		if _, err := r.Parse(s); !errors.Is(err, ErrParse) {
			t.Errorf("%s: Parse(%q) error = %v, want ErrParse", r.Name(), s, err)
		}
	}
}

func TestRings(t *testing.T) {
	t.Run("float64", ringCase[float64]{
		ring:    Float64{},
		samples: []float64{0, 1, -2.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.NaN()},
		bad:     []string{"", "abc", "1,5"},
	}.run)
	t.Run("float32", ringCase[float32]{
		ring:    Float32{},
		samples: []float32{0, 1, -2.5, math.MaxFloat32, float32(math.Inf(-1)), float32(math.NaN())},
		bad:     []string{"", "x"},
	}.run)
	t.Run("complex128", ringCase[complex128]{
		ring:    Complex128{},
		samples: []complex128{0, 1 + 2i, -3.5 - 0.25i, complex(math.NaN(), 1)},
		bad:     []string{"", "1+", "(1+2i"},
	}.run)
	t.Run("int64", ringCase[int64]{
		ring:    Int64{},
		samples: []int64{0, 1, -7, math.MaxInt64, math.MinInt64},
		bad:     []string{"", "1.5", "9223372036854775808"},
	}.run)
	t.Run("decimal", ringCase[decimal.Decimal]{
		ring:    Decimal{},
		samples: []decimal.Decimal{decimal.Zero, decimal.NewFromInt(42), decimal.RequireFromString("-0.001"), decimal.RequireFromString("12345678901234567890.5")},
		bad:     []string{"", "one", "1..2"},
	}.run)
}

func TestFloat64SignedZeroAndNaN(t *testing.T) {
	var r Float64
	negZero := math.Copysign(0, -1)

	if !r.Equal(0, negZero) {
		t.Fatal("0 and -0 must be equal")
	}
	if !bytes.Equal(r.AppendKey(nil, 0), r.AppendKey(nil, negZero)) {
		t.Fatal("0 and -0 must share a hash key")
	}

	nan1 := math.NaN()
	nan2 := math.Float64frombits(math.Float64bits(nan1) | 1)
	if !r.Equal(nan1, nan2) {
		t.Fatal("NaN payloads must compare equal")
	}
	if !bytes.Equal(r.AppendKey(nil, nan1), r.AppendKey(nil, nan2)) {
		t.Fatal("NaN payloads must share a hash key")
	}
	if r.Equal(1, nan1) {
		t.Fatal("1 must not equal NaN")
	}
}

func TestFloat32SignedZero(t *testing.T) {
	var r Float32
	negZero := float32(math.Copysign(0, -1))
	if !r.Equal(0, negZero) || !bytes.Equal(r.AppendKey(nil, 0), r.AppendKey(nil, negZero)) {
		t.Fatal("0 and -0 must be equal with equal keys")
	}
}

func TestInt64NegationWraps(t *testing.T) {
	var r Int64
	if got := r.Neg(math.MinInt64); got != math.MinInt64 {
		t.Fatalf("Neg(MinInt64) = %d, want MinInt64", got)
	}
}

func TestDecimalNumericEquality(t *testing.T) {
	var r Decimal
	a := decimal.RequireFromString("1.0")
	b := decimal.RequireFromString("1.00")

	if !r.Equal(a, b) {
		t.Fatal("1.0 and 1.00 must be equal")
	}
	if !bytes.Equal(r.AppendKey(nil, a), r.AppendKey(nil, b)) {
		t.Fatalf("keys differ: %q vs %q", r.AppendKey(nil, a), r.AppendKey(nil, b))
	}
	if got := r.Add(a, r.Neg(b)); !got.IsZero() {
		t.Fatalf("1.0 - 1.00 = %s, want 0", got)
	}
}

func TestFloat64BlockKernels(t *testing.T) {
	var r Float64
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	dst := make([]float64, 3)

	r.AddBlock(dst, a, b)
	assertFloats(t, "AddBlock", dst, []float64{5, 7, 9})

	r.SubBlock(dst, a, b)
	assertFloats(t, "SubBlock", dst, []float64{-3, -3, -3})

	r.NegBlock(dst, a)
	assertFloats(t, "NegBlock", dst, []float64{-1, -2, -3})

	r.MulBlock(dst, a, b)
	assertFloats(t, "MulBlock", dst, []float64{4, 10, 18})

	r.ScaleBlock(dst, a, 2)
	assertFloats(t, "ScaleBlock", dst, []float64{2, 4, 6})

	if got := r.Dot(a, b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := r.Sum(b); got != 15 {
		t.Errorf("Sum = %v, want 15", got)
	}
}

func assertFloats(t *testing.T, name string, got, want []float64) {
	t.Helper()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
		}
	}
}
