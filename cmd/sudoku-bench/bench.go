package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku/internal/triad"
	"svw.info/sudoku/internal/triad/codec"
)

// benchCmd loads a whitespace-separated puzzle corpus (one puzzle per
// line; '#' or '//' introduce comments; blank lines and a trailing
// difficulty label are ignored) and reports aggregate throughput, guesses,
// and solved/unsolved/invalid counts.
func benchCmd() *cobra.Command {
	var limit int
	var lenient bool
	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Solve a puzzle corpus and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var (
				total, solved, unsolved, invalid int
				totalGuesses                     int
			)

			start := time.Now()
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
					continue
				}
				fields := strings.Fields(line)
				raw := fields[0]
				if lenient {
					raw = codec.NormalizeLenient(raw)
				}
				if len(raw) != 81 {
					invalid++
					continue
				}
				puzzle, err := parsePuzzle(raw)
				if err != nil {
					invalid++
					continue
				}
				total++
				var sol [81]byte
				solutions, guesses := triad.Solve(puzzle, &sol, limit)
				totalGuesses += guesses
				if solutions >= 1 {
					solved++
				} else {
					unsolved++
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}
			elapsed := time.Since(start)

			var rate float64
			if elapsed > 0 {
				rate = float64(total) / elapsed.Seconds()
			}
			var avgGuesses float64
			if total > 0 {
				avgGuesses = float64(totalGuesses) / float64(total)
			}

			logger.Info("bench complete",
				"total", total,
				"solved", solved,
				"unsolved", unsolved,
				"invalid", invalid,
				"elapsed", elapsed,
				"puzzles_per_sec", fmt.Sprintf("%.1f", rate),
				"avg_guesses", fmt.Sprintf("%.2f", avgGuesses),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1, "solution limit per puzzle")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "accept '0'/' '/'-' as empty cells")
	return cmd
}
