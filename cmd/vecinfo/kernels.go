package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-linalg/internal/kernel"
)

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "Show CPU features and the float64 kernel selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printKernels(cmd.OutOrStdout())
		},
	}
}

func printKernels(out io.Writer) error {
	f := cpu.DetectFeatures()
	fmt.Fprintf(out, "Architecture:  %s\n", f.Architecture)
	fmt.Fprintf(out, "SSE2:          %v\n", f.HasSSE2)
	fmt.Fprintf(out, "AVX2:          %v\n", f.HasAVX2)
	fmt.Fprintf(out, "NEON:          %v\n", f.HasNEON)
	fmt.Fprintf(out, "Force generic: %v\n", f.ForceGeneric)
	fmt.Fprintln(out)

	selected := kernel.Name()

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Kernel\tSIMD\tAccelerated\tPriority\tSelected")
	fmt.Fprintln(tw, "------\t----\t-----------\t--------\t--------")
	for _, e := range kernel.Entries() {
		mark := ""
		if e.Name == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%v\t%v\t%d\t%s\n", e.Name, e.SIMDLevel, e.Accelerated, e.Priority, mark)
	}
	return tw.Flush()
}
