// Package theory checks the arithmetic laws of vector operations.
//
// A Checker evaluates one property at a time against concrete operands:
//
//   - UnaryPlus: Plus(v) equals v, is a distinct instance, and leaves v unchanged.
//   - UnaryMinus: Negate(v)[i] == Neg(v[i]), Negate(Negate(v)) equals v, v unchanged.
//   - Add / AddInPlace: result[i] == a[i] + b[i]; a and b unchanged; result
//     is neither a nor b. The in-place form accumulates into a clone of a.
//   - Subtract / SubtractInPlace: as Add with a[i] + Neg(b[i]).
//
// "Unchanged" is observed through Vector.Hash. Binary properties assume
// equal operand lengths; other inputs yield ErrAssumption rather than a
// violation.
package theory

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-linalg/vector"
)

var (
	// ErrViolation marks a broken property.
	ErrViolation = errors.New("theory: property violated")

	// ErrAssumption marks operands the property does not apply to.
	ErrAssumption = errors.New("theory: assumption not met")
)

// Property names one arithmetic law.
type Property string

const (
	UnaryPlus       Property = "UnaryPlus"
	UnaryMinus      Property = "UnaryMinus"
	Add             Property = "Add"
	AddInPlace      Property = "AddInPlace"
	Subtract        Property = "Subtract"
	SubtractInPlace Property = "SubtractInPlace"
)

// Properties lists every property in evaluation order.
var Properties = []Property{UnaryPlus, UnaryMinus, Add, AddInPlace, Subtract, SubtractInPlace}

// Checker evaluates properties for vectors over T.
type Checker[T any] struct {
	// MaxIndex caps the number of leading elements compared against the
	// ring's scalar result. 0 compares every element.
	MaxIndex int
}

// Check evaluates p. Unary properties use a only.
func (c Checker[T]) Check(p Property, a, b *vector.Vector[T]) error {
	switch p {
	case UnaryPlus:
		return c.CheckUnaryPlus(a)
	case UnaryMinus:
		return c.CheckUnaryMinus(a)
	case Add:
		return c.CheckAdd(a, b)
	case AddInPlace:
		return c.CheckAddInPlace(a, b)
	case Subtract:
		return c.CheckSubtract(a, b)
	case SubtractInPlace:
		return c.CheckSubtractInPlace(a, b)
	default:
		return fmt.Errorf("theory: unknown property %q", p)
	}
}

// CheckAll evaluates every property and joins the failures.
func (c Checker[T]) CheckAll(a, b *vector.Vector[T]) error {
	var errs []error
	for _, p := range Properties {
		if err := c.Check(p, a, b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CheckUnaryPlus verifies that Plus clones without touching its operand.
func (c Checker[T]) CheckUnaryPlus(v *vector.Vector[T]) error {
	if v == nil {
		return assumptionf(UnaryPlus, "nil operand")
	}
	hash := v.Hash()

	result := vector.Plus(v)

	if v.Hash() != hash {
		return violationf(UnaryPlus, "operand modified")
	}
	if result == v {
		return violationf(UnaryPlus, "result is the operand itself")
	}
	if !result.Equal(v) {
		return violationf(UnaryPlus, "result %s differs from operand %s", result, v)
	}
	return nil
}

// CheckUnaryMinus verifies element-wise negation and that it is an involution.
func (c Checker[T]) CheckUnaryMinus(v *vector.Vector[T]) error {
	if v == nil {
		return assumptionf(UnaryMinus, "nil operand")
	}
	hash := v.Hash()

	result := vector.Negate(v)

	if v.Hash() != hash {
		return violationf(UnaryMinus, "operand modified")
	}
	if result == v {
		return violationf(UnaryMinus, "result is the operand itself")
	}
	if !vector.Negate(result).Equal(v) {
		return violationf(UnaryMinus, "double negation of %s is not the identity", v)
	}

	ring := v.Ring()
	return c.compare(UnaryMinus, result, v.Len(), func(i int) (T, error) {
		x, err := v.At(i)
		return ring.Neg(x), err
	})
}

// CheckAdd verifies the expression form of addition.
func (c Checker[T]) CheckAdd(a, b *vector.Vector[T]) error {
	return c.checkBinary(Add, a, b, vector.Add[T], c.sum(a))
}

// CheckAddInPlace verifies AddInto accumulating into a clone of a.
func (c Checker[T]) CheckAddInPlace(a, b *vector.Vector[T]) error {
	return c.checkBinary(AddInPlace, a, b, inPlace(vector.AddInto[T]), c.sum(a))
}

// CheckSubtract verifies the expression form of subtraction.
func (c Checker[T]) CheckSubtract(a, b *vector.Vector[T]) error {
	return c.checkBinary(Subtract, a, b, vector.Subtract[T], c.difference(a))
}

// CheckSubtractInPlace verifies SubtractInto accumulating into a clone of a.
func (c Checker[T]) CheckSubtractInPlace(a, b *vector.Vector[T]) error {
	return c.checkBinary(SubtractInPlace, a, b, inPlace(vector.SubtractInto[T]), c.difference(a))
}

type binaryOp[T any] func(a, b *vector.Vector[T]) (*vector.Vector[T], error)

type scalarOp[T any] func(x, y T) T

// inPlace adapts an in-place operation to the expression signature by
// accumulating into a clone of the first operand.
func inPlace[T any](into func(dst, a, b *vector.Vector[T]) error) binaryOp[T] {
	return func(a, b *vector.Vector[T]) (*vector.Vector[T], error) {
		result := a.Clone()
		if err := into(result, result, b); err != nil {
			return nil, err
		}
		return result, nil
	}
}

func (c Checker[T]) sum(a *vector.Vector[T]) scalarOp[T] {
	ring := a.Ring()
	if ring == nil {
		return nil
	}
	return ring.Add
}

func (c Checker[T]) difference(a *vector.Vector[T]) scalarOp[T] {
	ring := a.Ring()
	if ring == nil {
		return nil
	}
	return func(x, y T) T { return ring.Add(x, ring.Neg(y)) }
}

func (c Checker[T]) checkBinary(p Property, a, b *vector.Vector[T], op binaryOp[T], want scalarOp[T]) error {
	if a == nil || b == nil {
		return assumptionf(p, "nil operand")
	}
	if a.Len() != b.Len() {
		return assumptionf(p, "operand lengths %d and %d differ", a.Len(), b.Len())
	}
	hashA, hashB := a.Hash(), b.Hash()

	result, err := op(a, b)
	if err != nil {
		return violationf(p, "unexpected error: %v", err)
	}

	if a.Hash() != hashA {
		return violationf(p, "first operand modified")
	}
	if b.Hash() != hashB {
		return violationf(p, "second operand modified")
	}
	if result == a || result == b {
		return violationf(p, "result is an operand")
	}

	return c.compare(p, result, a.Len(), func(i int) (T, error) {
		x, err := a.At(i)
		if err != nil {
			return x, err
		}
		y, err := b.At(i)
		return want(x, y), err
	})
}

// compare checks result[i] against expected(i) for the leading indices.
func (c Checker[T]) compare(p Property, result *vector.Vector[T], n int, expected func(i int) (T, error)) error {
	if result.Len() != n {
		return violationf(p, "result length %d, want %d", result.Len(), n)
	}

	ring := result.Ring()
	limit := n
	if c.MaxIndex > 0 && c.MaxIndex < limit {
		limit = c.MaxIndex
	}

	for i := 0; i < limit; i++ {
		want, err := expected(i)
		if err != nil {
			return violationf(p, "index %d: %v", i, err)
		}
		got, err := result.At(i)
		if err != nil {
			return violationf(p, "index %d: %v", i, err)
		}
		if !ring.Equal(got, want) {
			return violationf(p, "index %d: got %s, want %s", i, ring.Format(got), ring.Format(want))
		}
	}
	return nil
}

func violationf(p Property, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrViolation, p, fmt.Sprintf(format, args...))
}

func assumptionf(p Property, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrAssumption, p, fmt.Sprintf(format, args...))
}
