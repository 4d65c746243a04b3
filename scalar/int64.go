package scalar

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Int64 is the ring of int64 values with two's-complement wrap-around.
// Neg(math.MinInt64) is math.MinInt64, so double negation is still the identity.
type Int64 struct{}

var _ Ring[int64] = Int64{}

func (Int64) Name() string          { return "int64" }
func (Int64) Zero() int64           { return 0 }
func (Int64) Add(a, b int64) int64  { return a + b }
func (Int64) Neg(a int64) int64     { return -a }
func (Int64) Mul(a, b int64) int64  { return a * b }
func (Int64) Equal(a, b int64) bool { return a == b }
func (Int64) Format(v int64) string { return strconv.FormatInt(v, 10) }

func (Int64) AppendKey(dst []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

func (Int64) Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: int64 %q: %w", ErrParse, s, err)
	}
	return v, nil
}
