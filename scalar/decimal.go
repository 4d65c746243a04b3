package scalar

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal is the ring of arbitrary-precision decimals.
//
// Equality is numeric, so 1.0 and 1.00 are equal; the hash key is the
// normalized string form, which drops trailing fractional zeros.
type Decimal struct{}

var _ Ring[decimal.Decimal] = Decimal{}

func (Decimal) Name() string                             { return "decimal" }
func (Decimal) Zero() decimal.Decimal                    { return decimal.Zero }
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (Decimal) Equal(a, b decimal.Decimal) bool          { return a.Equal(b) }
func (Decimal) Format(v decimal.Decimal) string          { return v.String() }

func (Decimal) AppendKey(dst []byte, v decimal.Decimal) []byte {
	return append(dst, v.String()...)
}

func (Decimal) Parse(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: decimal %q: %w", ErrParse, s, err)
	}
	return v, nil
}
