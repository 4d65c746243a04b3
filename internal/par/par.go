// Package par splits element-wise loops into contiguous chunks and runs them
// concurrently.
package par

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps chunks large enough that goroutine overhead stays small
// relative to the work per chunk.
const minChunk = 4096

// For calls fn over [0, n) split into contiguous half-open ranges.
//
// When n < threshold, threshold <= 0 or workers == 1, fn runs once on the
// whole range in the calling goroutine. Otherwise the range is cut into at
// most workers chunks (workers <= 0 means GOMAXPROCS) that run concurrently;
// For returns after every chunk has finished. fn must only touch indices in
// its own range.
func For(n, threshold, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if threshold <= 0 || n < threshold || workers == 1 {
		fn(0, n)
		return
	}

	chunks := Chunks(n, workers)
	if len(chunks) == 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, c := range chunks {
		g.Go(func() error {
			fn(c.Lo, c.Hi)
			return nil
		})
	}
	_ = g.Wait() // chunks never fail
}

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Chunks partitions [0, n) into at most parts contiguous ranges of near-equal
// size, none smaller than minChunk unless n itself is.
func Chunks(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := (n + minChunk - 1) / minChunk; parts > maxParts {
		parts = maxParts
	}

	out := make([]Range, 0, parts)
	size := n / parts
	rem := n % parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, Range{Lo: lo, Hi: hi})
		lo = hi
	}
	return out
}
