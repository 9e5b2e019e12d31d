// Command sudoku-bench is the batch-evaluation harness around the triad
// solver: CPU warm-up, a one-off solve, and aggregate throughput/guess
// statistics over a puzzle corpus file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sudoku-bench",
		Short: "Batch evaluation harness for the triad SIMD Sudoku solver",
	}
	root.AddCommand(warmupCmd())
	root.AddCommand(solveCmd())
	root.AddCommand(benchCmd())
	return root
}
