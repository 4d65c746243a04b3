package scalar

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-linalg/internal/kernel"
)

// Canonical bit patterns used for hash keys.
var (
	canonicalNaN64 = math.Float64bits(math.NaN())
	canonicalNaN32 = math.Float32bits(float32(math.NaN()))
)

// Float64 is the ring of float64 values. Slice operations run on the
// CPU-dispatched block kernels.
type Float64 struct{}

var (
	_ Ring[float64]      = Float64{}
	_ BlockRing[float64] = Float64{}
)

func (Float64) Name() string             { return "float64" }
func (Float64) Zero() float64            { return 0 }
func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Neg(a float64) float64    { return -a }
func (Float64) Mul(a, b float64) float64 { return a * b }

// Equal treats NaN as equal to NaN and -0 as equal to +0.
func (Float64) Equal(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (Float64) AppendKey(dst []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, float64Key(v))
}

func (Float64) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (Float64) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: float64 %q: %w", ErrParse, s, err)
	}
	return v, nil
}

func (Float64) AddBlock(dst, a, b []float64)             { kernel.AddBlock(dst, a, b) }
func (Float64) SubBlock(dst, a, b []float64)             { kernel.SubBlock(dst, a, b) }
func (Float64) NegBlock(dst, src []float64)              { kernel.NegBlock(dst, src) }
func (Float64) MulBlock(dst, a, b []float64)             { kernel.MulBlock(dst, a, b) }
func (Float64) ScaleBlock(dst, src []float64, s float64) { kernel.ScaleBlock(dst, src, s) }
func (Float64) Dot(a, b []float64) float64               { return kernel.Dot(a, b) }
func (Float64) Sum(x []float64) float64                  { return kernel.Sum(x) }

func float64Key(v float64) uint64 {
	switch {
	case v == 0:
		return 0
	case math.IsNaN(v):
		return canonicalNaN64
	default:
		return math.Float64bits(v)
	}
}

// Float32 is the ring of float32 values.
type Float32 struct{}

var _ Ring[float32] = Float32{}

func (Float32) Name() string             { return "float32" }
func (Float32) Zero() float32            { return 0 }
func (Float32) Add(a, b float32) float32 { return a + b }
func (Float32) Neg(a float32) float32    { return -a }
func (Float32) Mul(a, b float32) float32 { return a * b }

// Equal treats NaN as equal to NaN and -0 as equal to +0.
func (Float32) Equal(a, b float32) bool {
	return a == b || (math.IsNaN(float64(a)) && math.IsNaN(float64(b)))
}

func (Float32) AppendKey(dst []byte, v float32) []byte {
	var bits uint32
	switch {
	case v == 0:
		bits = 0
	case math.IsNaN(float64(v)):
		bits = canonicalNaN32
	default:
		bits = math.Float32bits(v)
	}
	return binary.LittleEndian.AppendUint32(dst, bits)
}

func (Float32) Format(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (Float32) Parse(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: float32 %q: %w", ErrParse, s, err)
	}
	return float32(v), nil
}

// Complex128 is the ring of complex128 values. Equality and hash keys are
// taken component-wise with the Float64 rules.
type Complex128 struct{}

var _ Ring[complex128] = Complex128{}

func (Complex128) Name() string                   { return "complex128" }
func (Complex128) Zero() complex128               { return 0 }
func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Neg(a complex128) complex128    { return -a }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }

func (Complex128) Equal(a, b complex128) bool {
	var f Float64
	return f.Equal(real(a), real(b)) && f.Equal(imag(a), imag(b))
}

func (Complex128) AppendKey(dst []byte, v complex128) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, float64Key(real(v)))
	return binary.LittleEndian.AppendUint64(dst, float64Key(imag(v)))
}

func (Complex128) Format(v complex128) string {
	return strconv.FormatComplex(v, 'g', -1, 128)
}

func (Complex128) Parse(s string) (complex128, error) {
	v, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("%w: complex128 %q: %w", ErrParse, s, err)
	}
	return v, nil
}
