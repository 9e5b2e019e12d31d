package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"svw.info/sudoku/internal/triad/simd"
)

// warmupCmd spins idle CPU work for a short duration before the first
// timed batch, so the frequency-scaling ramp-up at process start doesn't
// pollute throughput numbers, then reports CPU features and which
// internal/triad/simd loop-shape backend got selected.
func warmupCmd() *cobra.Command {
	var ms int
	cmd := &cobra.Command{
		Use:   "warmup",
		Short: "Spin the CPU briefly and report detected features",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			deadline := time.Now().Add(time.Duration(ms) * time.Millisecond)
			var sink uint64
			for time.Now().Before(deadline) {
				sink += sink*2 + 1
			}
			logger.Info("warmup complete",
				"duration_ms", ms,
				"avx2", cpu.X86.HasAVX2,
				"ssse3", cpu.X86.HasSSSE3,
				"asimd", cpu.ARM64.HasASIMD,
				"simd_backend", simd.Backend(),
				"sink", sink,
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&ms, "ms", 300, "warm-up duration in milliseconds")
	return cmd
}
