package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-linalg/vector/theory"
)

var errViolations = errors.New("arithmetic laws violated")

type checkOptions struct {
	typeName string
	params   checkParams
	timeout  time.Duration
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the vector arithmetic laws over random operand pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "float64", "Element type")
	cmd.Flags().IntVar(&opts.params.size, "size", 64, "Maximum vector length")
	cmd.Flags().IntVar(&opts.params.trials, "trials", 1000, "Number of operand pairs")
	cmd.Flags().Uint64Var(&opts.params.seed, "seed", 1, "Seed for operand generation")
	cmd.Flags().IntVar(&opts.params.maxIndex, "max-index", 0, "Compare only the first N elements (0 = all)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort the run after this long (0 = no limit)")
	return cmd
}

func runCheck(ctx context.Context, out io.Writer, opts *checkOptions) error {
	et, err := lookupType(opts.typeName)
	if err != nil {
		return err
	}
	if opts.params.size < 0 || opts.params.trials < 0 || opts.params.maxIndex < 0 {
		return fmt.Errorf("size, trials and max-index must be non-negative")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	log := logrus.WithFields(logrus.Fields{
		"type":   et.name,
		"seed":   opts.params.seed,
		"trials": opts.params.trials,
		"size":   opts.params.size,
	})
	log.Info("checking arithmetic laws")

	start := time.Now()
	report, runErr := et.check(ctx, opts.params)
	log.WithField("elapsed", time.Since(start)).Debug("check finished")

	if err := printReport(out, et.name, report); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if report.Failed() {
		return errViolations
	}
	return nil
}

func printReport(out io.Writer, typeName string, report theory.Report) error {
	fmt.Fprintf(out, "Type:  %s\n", typeName)
	fmt.Fprintf(out, "Cases: %d\n\n", report.Cases)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Property\tPassed\tSkipped\tFailed")
	fmt.Fprintln(tw, "--------\t------\t-------\t------")
	for _, res := range report.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", res.Property, res.Passed, res.Skipped, res.Failed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, res := range report.Results {
		for _, f := range res.Failures {
			fmt.Fprintf(out, "FAIL %s: %v\n", res.Property, f)
		}
	}
	return nil
}
