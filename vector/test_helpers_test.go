package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-linalg/scalar"
	"github.com/cwbudde/algo-linalg/vector"
)

// mustFloat64s builds a float64 vector or fails the test.
func mustFloat64s(t *testing.T, values ...float64) *vector.Vector[float64] {
	t.Helper()
	v, err := vector.FromSlice(scalar.Float64{}, values)
	require.NoError(t, err)
	return v
}

// mustInt64s builds an int64 vector or fails the test.
func mustInt64s(t *testing.T, values ...int64) *vector.Vector[int64] {
	t.Helper()
	v, err := vector.FromSlice(scalar.Int64{}, values)
	require.NoError(t, err)
	return v
}
