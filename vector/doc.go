// Package vector provides a fixed-length vector value type over any element
// algebra from package scalar, with element-wise arithmetic.
//
// Every arithmetic operation comes in two forms:
//
//   - Expression form (Add, Subtract, Negate, Scale, ...) allocates and
//     returns a new vector. Operands are never modified and the result never
//     shares storage with them.
//   - In-place form (AddInto, SubtractInto, NegateInto, ...) writes into a
//     caller-owned destination, which must have the operands' length. The
//     destination may be one of the operands; accumulating into an input is
//     the intended way to avoid allocations.
//
// Binary operations require equal lengths. A mismatch is reported as
// ErrDimensionMismatch before any element is read or written, so a failed
// call never leaves a partially updated destination. Element access outside
// [0, Len()) returns ErrIndexOutOfRange.
//
// # Usage
//
//	a, _ := vector.FromSlice(scalar.Float64{}, []float64{1, 2, 3})
//	b, _ := vector.FromSlice(scalar.Float64{}, []float64{4, 5, 6})
//	sum, err := vector.Add(a, b)       // [5, 7, 9]
//	diff, err := vector.Subtract(a, b) // [-3, -3, -3]
//	neg := vector.Negate(a)            // [-1, -2, -3]
//
// # Execution
//
// Rings implementing scalar.BlockRing (scalar.Float64 does) run on slice
// kernels; other rings are mapped element by element. Vectors of at least
// DefaultParallelThreshold elements are split into chunks processed
// concurrently; see WithParallelThreshold and WithMaxWorkers. Results do not
// depend on the execution path.
//
// # Concurrency
//
// Vectors are not synchronized. Any number of goroutines may read a vector
// and use it as an operand concurrently; a destination must be owned by a
// single caller for the duration of an in-place call.
package vector
