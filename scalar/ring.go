// Package scalar defines the element algebras vectors are built over.
//
// A Ring supplies everything the vector layer needs from an element type:
// a zero value, addition, additive inverse, multiplication, equality, a
// canonical hash key, and text formatting/parsing. The vector code is written
// once against Ring; element types plug in by implementing it.
//
// # Equality
//
// Equality is value equality as seen by the algebra, not Go's == operator:
// the floating-point rings treat NaN as equal to NaN and -0 as equal to +0,
// and the decimal ring compares numerically (1.0 equals 1.00). AppendKey
// must produce identical bytes for any two values Equal reports as equal.
//
// # Block kernels
//
// A ring may additionally implement BlockRing to process whole slices at
// once. The vector layer detects this with a type assertion and falls back
// to per-element calls otherwise.
package scalar

import "errors"

// ErrParse is returned (wrapped) when element text cannot be parsed.
var ErrParse = errors.New("scalar: parse error")

// Ring is the element algebra of a vector.
type Ring[T any] interface {
	// Name identifies the algebra, e.g. "float64".
	Name() string

	// Zero returns the additive identity.
	Zero() T

	// Add returns a + b.
	Add(a, b T) T

	// Neg returns the additive inverse of a.
	Neg(a T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Equal reports whether a and b are the same value.
	Equal(a, b T) bool

	// AppendKey appends a canonical byte encoding of v to dst.
	// Values that are Equal must encode identically.
	AppendKey(dst []byte, v T) []byte

	// Format returns the text form of v; Parse(Format(v)) must be Equal to v.
	Format(v T) string

	// Parse reads a value in the form produced by Format.
	Parse(s string) (T, error)
}

// BlockRing is a Ring with slice kernels. All slices passed to the kernels
// have equal length; implementations may panic otherwise. dst may alias
// any input.
type BlockRing[T any] interface {
	Ring[T]

	// AddBlock performs dst[i] = a[i] + b[i].
	AddBlock(dst, a, b []T)

	// SubBlock performs dst[i] = a[i] + Neg(b[i]).
	SubBlock(dst, a, b []T)

	// NegBlock performs dst[i] = Neg(src[i]).
	NegBlock(dst, src []T)

	// MulBlock performs dst[i] = a[i] * b[i].
	MulBlock(dst, a, b []T)

	// ScaleBlock performs dst[i] = src[i] * s.
	ScaleBlock(dst, src []T, s T)

	// Dot returns the sum of a[i] * b[i].
	Dot(a, b []T) T

	// Sum returns the sum of x[i].
	Sum(x []T) T
}
