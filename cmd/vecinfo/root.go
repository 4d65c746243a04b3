package main

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	generic  bool
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package variables, so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "vecinfo",
		Short:         "Inspect kernels, evaluate vector expressions and check arithmetic laws",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())

			if opts.generic {
				features := cpu.DetectFeatures()
				features.ForceGeneric = true
				cpu.SetForcedFeatures(features)
				logrus.Debug("forcing generic kernels")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().BoolVar(&opts.generic, "generic", false, "Disable accelerated float64 kernels")

	root.AddCommand(newKernelsCmd(), newEvalCmd(), newCheckCmd())

	return root
}
