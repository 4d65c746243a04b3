package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-linalg/internal/randvec"
	"github.com/cwbudde/algo-linalg/scalar"
	"github.com/cwbudde/algo-linalg/vector/theory"
)

// checkParams configures one theory run.
type checkParams struct {
	seed     uint64
	trials   int
	size     int
	maxIndex int
}

// elementType binds the CLI operations to one scalar ring.
type elementType struct {
	name  string
	eval  func(args []string) (string, error)
	check func(ctx context.Context, p checkParams) (theory.Report, error)
}

var elementTypes = map[string]elementType{}

func registerType[T any](ring scalar.Ring[T], elems func(r *rand.Rand, n int) []T) {
	gen := theory.FromElements(ring, elems)
	elementTypes[ring.Name()] = elementType{
		name: ring.Name(),
		eval: func(args []string) (string, error) {
			return evaluate(ring, args)
		},
		check: func(ctx context.Context, p checkParams) (theory.Report, error) {
			c := theory.Checker[T]{MaxIndex: p.maxIndex}
			return theory.Run(ctx, c, theory.Pairs(gen, p.seed, p.trials, p.size))
		},
	}
}

func init() {
	registerType[float64](scalar.Float64{}, randvec.Float64s)
	registerType[float32](scalar.Float32{}, randvec.Float32s)
	registerType[complex128](scalar.Complex128{}, randvec.Complex128s)
	registerType[int64](scalar.Int64{}, randvec.Int64s)
	registerType[decimal.Decimal](scalar.Decimal{}, randvec.Decimals)
}

func typeNames() []string {
	names := make([]string, 0, len(elementTypes))
	for name := range elementTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupType(name string) (elementType, error) {
	et, ok := elementTypes[strings.ToLower(name)]
	if !ok {
		return elementType{}, fmt.Errorf("unknown element type %q (known: %s)", name, strings.Join(typeNames(), ", "))
	}
	return et, nil
}
