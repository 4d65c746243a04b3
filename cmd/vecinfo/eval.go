package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-linalg/scalar"
	"github.com/cwbudde/algo-linalg/vector"
)

var errUnknownOp = errors.New("unknown operator")

func newEvalCmd() *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "eval <vector> <op> <vector> | eval <op> <vector>",
		Short: "Evaluate a vector expression",
		Long: `Evaluate a unary or binary vector expression and print the result.

Binary operators: + (add), - (subtract), * (pointwise multiply), . (dot product)
Unary operators:  plus, neg, sum, hash

Vectors are written as [e0, e1, ...] using the element type's literal syntax.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, err := lookupType(typeName)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"type": et.name, "args": args}).Debug("evaluating")

			out, err := et.eval(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "float64", "Element type")
	return cmd
}

// evaluate parses args as "<op> <vec>" or "<vec> <op> <vec>" and formats
// the result with the ring.
func evaluate[T any](ring scalar.Ring[T], args []string) (string, error) {
	switch len(args) {
	case 2:
		v, err := vector.Parse(ring, args[1])
		if err != nil {
			return "", err
		}
		return evalUnary(ring, args[0], v)
	case 3:
		a, err := vector.Parse(ring, args[0])
		if err != nil {
			return "", fmt.Errorf("left operand: %w", err)
		}
		b, err := vector.Parse(ring, args[2])
		if err != nil {
			return "", fmt.Errorf("right operand: %w", err)
		}
		return evalBinary(ring, args[1], a, b)
	default:
		return "", fmt.Errorf("expected 2 or 3 arguments, got %d", len(args))
	}
}

func evalUnary[T any](ring scalar.Ring[T], op string, v *vector.Vector[T]) (string, error) {
	switch op {
	case "plus", "+":
		return vector.Plus(v).String(), nil
	case "neg", "-":
		return vector.Negate(v).String(), nil
	case "sum":
		return ring.Format(vector.Sum(v)), nil
	case "hash":
		return "0x" + strconv.FormatUint(uint64(v.Hash()), 16), nil
	default:
		return "", fmt.Errorf("%w %q", errUnknownOp, op)
	}
}

func evalBinary[T any](ring scalar.Ring[T], op string, a, b *vector.Vector[T]) (string, error) {
	var (
		r   *vector.Vector[T]
		err error
	)

	switch op {
	case "+":
		r, err = vector.Add(a, b)
	case "-":
		r, err = vector.Subtract(a, b)
	case "*":
		r, err = vector.PointwiseMultiply(a, b)
	case ".":
		d, err := vector.Dot(a, b)
		if err != nil {
			return "", err
		}
		return ring.Format(d), nil
	default:
		return "", fmt.Errorf("%w %q", errUnknownOp, op)
	}

	if err != nil {
		return "", err
	}
	return r.String(), nil
}
