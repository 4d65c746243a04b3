package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm returns the L-p norm of a float64 vector: sum(|v[i]|^p)^(1/p), or
// max|v[i]| for p = +Inf. p must be >= 1 or +Inf.
func Norm(v *Vector[float64], p float64) (float64, error) {
	if v == nil {
		return 0, vectorErrorf("Norm", ErrNilVector)
	}
	if err := validateNormOrder(p); err != nil {
		return 0, vectorErrorf("Norm", err)
	}
	if len(v.data) == 0 {
		return 0, nil
	}
	return floats.Norm(v.data, p), nil
}

// Distance returns the L-p norm of a - b. p must be >= 1 or +Inf.
func Distance(a, b *Vector[float64], p float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, vectorErrorf("Distance", err)
	}
	if err := validateNormOrder(p); err != nil {
		return 0, vectorErrorf("Distance", err)
	}
	if len(a.data) == 0 {
		return 0, nil
	}
	return floats.Distance(a.data, b.data, p), nil
}

func validateNormOrder(p float64) error {
	if math.IsNaN(p) || (p < 1 && !math.IsInf(p, 1)) {
		return fmt.Errorf("%w: %v", ErrInvalidNorm, p)
	}
	return nil
}
