package theory

import (
	"iter"
	"math/rand/v2"

	"github.com/cwbudde/algo-linalg/internal/randvec"
	"github.com/cwbudde/algo-linalg/scalar"
	"github.com/cwbudde/algo-linalg/vector"
)

// Generator returns a vector of length n drawn from r.
type Generator[T any] func(r *rand.Rand, n int) *vector.Vector[T]

// FromElements builds a Generator from an element slice generator.
func FromElements[T any](ring scalar.Ring[T], elems func(r *rand.Rand, n int) []T) Generator[T] {
	return func(r *rand.Rand, n int) *vector.Vector[T] {
		v, err := vector.FromSlice(ring, elems(r, n))
		if err != nil {
			panic(err) // only a nil ring can fail here
		}
		return v
	}
}

// Pairs yields trials operand pairs with lengths in [0, maxLen], drawn
// deterministically from seed. One pair in ten gets an independently drawn
// second length so that binary assumptions are exercised too.
func Pairs[T any](gen Generator[T], seed uint64, trials, maxLen int) iter.Seq[Case[T]] {
	return func(yield func(Case[T]) bool) {
		r := randvec.Source(seed)
		for i := 0; i < trials; i++ {
			n := r.IntN(maxLen + 1)
			m := n
			if r.IntN(10) == 0 {
				m = r.IntN(maxLen + 1)
			}
			if !yield(Case[T]{A: gen(r, n), B: gen(r, m)}) {
				return
			}
		}
	}
}
