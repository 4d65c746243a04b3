package theory

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/cwbudde/algo-linalg/vector"
)

// Case is one operand pair. Unary properties use A only.
type Case[T any] struct {
	A, B *vector.Vector[T]
}

// Result aggregates the outcomes of one property over all cases.
type Result struct {
	Property Property
	Passed   int
	Failed   int
	Skipped  int
	// Failures holds the first few violations, in case order.
	Failures []error
}

// Report is the outcome of Run.
type Report struct {
	Cases   int
	Results []Result
}

// Failed reports whether any property was violated.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Failed > 0 {
			return true
		}
	}
	return false
}

// maxRecordedFailures bounds Result.Failures.
const maxRecordedFailures = 5

// Run evaluates every property against every case. It stops early when ctx
// is done and returns the partial report together with ctx's error.
func Run[T any](ctx context.Context, c Checker[T], cases iter.Seq[Case[T]]) (Report, error) {
	report := Report{Results: make([]Result, len(Properties))}
	for i, p := range Properties {
		report.Results[i].Property = p
	}

	for cs := range cases {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("theory: run interrupted after %d cases: %w", report.Cases, err)
		}
		report.Cases++

		for i, p := range Properties {
			res := &report.Results[i]
			err := c.Check(p, cs.A, cs.B)
			switch {
			case err == nil:
				res.Passed++
			case errors.Is(err, ErrAssumption):
				res.Skipped++
			default:
				res.Failed++
				if len(res.Failures) < maxRecordedFailures {
					res.Failures = append(res.Failures, fmt.Errorf("case %d: %w", report.Cases-1, err))
				}
			}
		}
	}

	return report, nil
}
