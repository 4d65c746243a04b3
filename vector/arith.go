package vector

import "github.com/cwbudde/algo-linalg/scalar"

// Plus returns a copy of v (unary plus). v is not modified. Plus of a nil
// vector is nil.
func Plus[T any](v *Vector[T]) *Vector[T] {
	return v.Clone()
}

// Negate returns a new vector with out[i] = -v[i]. v is not modified.
// Negate of a nil vector is nil.
func Negate[T any](v *Vector[T]) *Vector[T] {
	if v == nil {
		return nil
	}
	out := newLike(v)
	negate(out, v)
	return out
}

// NegateInto writes -v[i] into dst[i]. dst may be v.
func NegateInto[T any](dst, v *Vector[T]) error {
	if err := validateUnary(v, dst); err != nil {
		return vectorErrorf("NegateInto", err)
	}
	negate(dst, v)
	return nil
}

// Add returns a new vector with out[i] = a[i] + b[i].
func Add[T any](a, b *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf("Add", err)
	}
	out := newLike(a)
	add(out, a, b)
	return out, nil
}

// AddInto writes a[i] + b[i] into dst[i]. dst may be a or b.
func AddInto[T any](dst, a, b *Vector[T]) error {
	if err := validateBinary(a, b, dst); err != nil {
		return vectorErrorf("AddInto", err)
	}
	add(dst, a, b)
	return nil
}

// Subtract returns a new vector with out[i] = a[i] + (-b[i]).
func Subtract[T any](a, b *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf("Subtract", err)
	}
	out := newLike(a)
	subtract(out, a, b)
	return out, nil
}

// SubtractInto writes a[i] + (-b[i]) into dst[i]. dst may be a or b.
func SubtractInto[T any](dst, a, b *Vector[T]) error {
	if err := validateBinary(a, b, dst); err != nil {
		return vectorErrorf("SubtractInto", err)
	}
	subtract(dst, a, b)
	return nil
}

// Scale returns a new vector with out[i] = v[i] * s. Scale of a nil vector
// is nil.
func Scale[T any](v *Vector[T], s T) *Vector[T] {
	if v == nil {
		return nil
	}
	out := newLike(v)
	scale(out, v, s)
	return out
}

// ScaleInto writes v[i] * s into dst[i]. dst may be v.
func ScaleInto[T any](dst, v *Vector[T], s T) error {
	if err := validateUnary(v, dst); err != nil {
		return vectorErrorf("ScaleInto", err)
	}
	scale(dst, v, s)
	return nil
}

// PointwiseMultiply returns a new vector with out[i] = a[i] * b[i].
func PointwiseMultiply[T any](a, b *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf("PointwiseMultiply", err)
	}
	out := newLike(a)
	pointwiseMultiply(out, a, b)
	return out, nil
}

// PointwiseMultiplyInto writes a[i] * b[i] into dst[i]. dst may be a or b.
func PointwiseMultiplyInto[T any](dst, a, b *Vector[T]) error {
	if err := validateBinary(a, b, dst); err != nil {
		return vectorErrorf("PointwiseMultiplyInto", err)
	}
	pointwiseMultiply(dst, a, b)
	return nil
}

// Dot returns the sum of a[i] * b[i]. The sum is accumulated sequentially in
// index order.
func Dot[T any](a, b *Vector[T]) (T, error) {
	if err := validatePair(a, b); err != nil {
		var zero T
		return zero, vectorErrorf("Dot", err)
	}
	if br, ok := a.ring.(scalar.BlockRing[T]); ok {
		return br.Dot(a.data, b.data), nil
	}
	acc := a.ring.Zero()
	for i := range a.data {
		acc = a.ring.Add(acc, a.ring.Mul(a.data[i], b.data[i]))
	}
	return acc, nil
}

// Sum returns the sum of v's elements; the ring's zero for an empty vector.
// Sum of a nil vector is the zero value of T.
func Sum[T any](v *Vector[T]) T {
	if v == nil {
		var zero T
		return zero
	}
	if br, ok := v.ring.(scalar.BlockRing[T]); ok {
		return br.Sum(v.data)
	}
	acc := v.ring.Zero()
	for _, x := range v.data {
		acc = v.ring.Add(acc, x)
	}
	return acc
}

// The helpers below assume validated, equal-length arguments. Work is split
// according to dst's execution policy; each chunk touches only its own range.

func negate[T any](dst, v *Vector[T]) {
	r := v.ring
	br, fast := r.(scalar.BlockRing[T])
	dst.forRange(func(lo, hi int) {
		if fast {
			br.NegBlock(dst.data[lo:hi], v.data[lo:hi])
			return
		}
		for i := lo; i < hi; i++ {
			dst.data[i] = r.Neg(v.data[i])
		}
	})
}

func add[T any](dst, a, b *Vector[T]) {
	r := a.ring
	br, fast := r.(scalar.BlockRing[T])
	dst.forRange(func(lo, hi int) {
		if fast {
			br.AddBlock(dst.data[lo:hi], a.data[lo:hi], b.data[lo:hi])
			return
		}
		for i := lo; i < hi; i++ {
			dst.data[i] = r.Add(a.data[i], b.data[i])
		}
	})
}

func subtract[T any](dst, a, b *Vector[T]) {
	r := a.ring
	br, fast := r.(scalar.BlockRing[T])
	dst.forRange(func(lo, hi int) {
		if fast {
			br.SubBlock(dst.data[lo:hi], a.data[lo:hi], b.data[lo:hi])
			return
		}
		for i := lo; i < hi; i++ {
			dst.data[i] = r.Add(a.data[i], r.Neg(b.data[i]))
		}
	})
}

func scale[T any](dst, v *Vector[T], s T) {
	r := v.ring
	br, fast := r.(scalar.BlockRing[T])
	dst.forRange(func(lo, hi int) {
		if fast {
			br.ScaleBlock(dst.data[lo:hi], v.data[lo:hi], s)
			return
		}
		for i := lo; i < hi; i++ {
			dst.data[i] = r.Mul(v.data[i], s)
		}
	})
}

func pointwiseMultiply[T any](dst, a, b *Vector[T]) {
	r := a.ring
	br, fast := r.(scalar.BlockRing[T])
	dst.forRange(func(lo, hi int) {
		if fast {
			br.MulBlock(dst.data[lo:hi], a.data[lo:hi], b.data[lo:hi])
			return
		}
		for i := lo; i < hi; i++ {
			dst.data[i] = r.Mul(a.data[i], b.data[i])
		}
	})
}
