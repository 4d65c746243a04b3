package vector

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-linalg/scalar"
)

// Errors returned by vector operations. Returned errors wrap these with
// operation context; match them with errors.Is.
var (
	// ErrDimensionMismatch indicates operands (or operand and destination)
	// of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrIndexOutOfRange indicates an element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrNilVector indicates a nil *Vector operand or destination.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNilRing indicates a constructor was called without an element ring.
	ErrNilRing = errors.New("vector: nil ring")

	// ErrInvalidLength indicates a negative length at construction.
	ErrInvalidLength = errors.New("vector: invalid length")

	// ErrInvalidNorm indicates a norm order p that is neither >= 1 nor +Inf.
	ErrInvalidNorm = errors.New("vector: invalid norm order")

	// ErrParse indicates malformed vector text. It is the same sentinel as
	// scalar.ErrParse, so element parse failures match it too.
	ErrParse = scalar.ErrParse
)

// vectorErrorf wraps err with the name of the failing operation.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// indexErrorf wraps ErrIndexOutOfRange with the offending index and length.
func indexErrorf(method string, i, n int) error {
	return fmt.Errorf("Vector.%s(%d): len %d: %w", method, i, n, ErrIndexOutOfRange)
}
