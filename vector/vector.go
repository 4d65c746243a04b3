package vector

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-linalg/internal/par"
	"github.com/cwbudde/algo-linalg/scalar"
)

// Vector is a fixed-length sequence of T over the algebra ring.
//
// The length never changes after construction. Use New, FromSlice or Parse
// to create vectors; the zero Vector has no ring and is not usable.
type Vector[T any] struct {
	ring scalar.Ring[T]
	data []T
	cfg  config
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a zero-filled vector of length n. n == 0 is allowed.
func New[T any](ring scalar.Ring[T], n int, opts ...Option) (*Vector[T], error) {
	if ring == nil {
		return nil, vectorErrorf("New", ErrNilRing)
	}
	if n < 0 {
		return nil, vectorErrorf("New", fmt.Errorf("%w: %d", ErrInvalidLength, n))
	}

	data := make([]T, n)
	zero := ring.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Vector[T]{ring: ring, data: data, cfg: buildConfig(opts)}, nil
}

// FromSlice returns a vector holding a copy of values.
func FromSlice[T any](ring scalar.Ring[T], values []T, opts ...Option) (*Vector[T], error) {
	if ring == nil {
		return nil, vectorErrorf("FromSlice", ErrNilRing)
	}

	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{ring: ring, data: data, cfg: buildConfig(opts)}, nil
}

// newLike allocates an uninitialized vector with v's ring, length and policy.
func newLike[T any](v *Vector[T]) *Vector[T] {
	return &Vector[T]{ring: v.ring, data: make([]T, len(v.data)), cfg: v.cfg}
}

// Ring returns the element algebra.
func (v *Vector[T]) Ring() scalar.Ring[T] {
	if v == nil {
		return nil
	}
	return v.ring
}

// Len returns the number of elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, vectorErrorf("At", ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return zero, indexErrorf("At", i, len(v.data))
	}
	return v.data[i], nil
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, x T) error {
	if v == nil {
		return vectorErrorf("Set", ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return indexErrorf("Set", i, len(v.data))
	}
	v.data[i] = x
	return nil
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns an independent copy of v with the same elements and policy.
// Clone of a nil vector is nil.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	out := newLike(v)
	copy(out.data, v.data)
	return out
}

// CopyTo copies v's elements into dst, which must have the same length.
func (v *Vector[T]) CopyTo(dst *Vector[T]) error {
	if err := validateUnary(v, dst); err != nil {
		return vectorErrorf("CopyTo", err)
	}
	copy(dst.data, v.data)
	return nil
}

// Clear sets every element to the ring's zero.
func (v *Vector[T]) Clear() {
	if v == nil {
		return
	}
	zero := v.ring.Zero()
	for i := range v.data {
		v.data[i] = zero
	}
}

// Equal reports whether v and u have the same length and pairwise equal
// elements under v's ring. Two nil vectors are equal.
func (v *Vector[T]) Equal(u *Vector[T]) bool {
	if v == u {
		return true
	}
	if v == nil || u == nil || len(v.data) != len(u.data) {
		return false
	}
	for i := range v.data {
		if !v.ring.Equal(v.data[i], u.data[i]) {
			return false
		}
	}
	return true
}

// String formats v as "[e0, e1, ...]" using the ring's element format.
// The output is accepted by Parse.
func (v *Vector[T]) String() string {
	if v == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(fmtSep)
		}
		sb.WriteString(v.ring.Format(x))
	}
	sb.WriteString(fmtClose)
	return sb.String()
}

// forRange runs fn over v's index range using v's execution policy.
func (v *Vector[T]) forRange(fn func(lo, hi int)) {
	par.For(len(v.data), v.cfg.parallelThreshold, v.cfg.maxWorkers, fn)
}
