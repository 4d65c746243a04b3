package vector

import "fmt"

// validateUnary checks a single-operand operation writing into dst.
func validateUnary[T any](src, dst *Vector[T]) error {
	if src == nil || dst == nil {
		return ErrNilVector
	}
	if len(src.data) != len(dst.data) {
		return fmt.Errorf("%w: operand %d, destination %d", ErrDimensionMismatch, len(src.data), len(dst.data))
	}
	return nil
}

// validatePair checks that a and b are usable together in a binary operation.
func validatePair[T any](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a.data), len(b.data))
	}
	return nil
}

// validateBinary checks a binary operation writing into dst.
func validateBinary[T any](a, b, dst *Vector[T]) error {
	if err := validatePair(a, b); err != nil {
		return err
	}
	if dst == nil {
		return ErrNilVector
	}
	if len(dst.data) != len(a.data) {
		return fmt.Errorf("%w: operands %d, destination %d", ErrDimensionMismatch, len(a.data), len(dst.data))
	}
	return nil
}
