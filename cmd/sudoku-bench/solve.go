package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku/internal/triad"
	"svw.info/sudoku/internal/triad/codec"
)

// solveCmd decodes a single 81-character puzzle (from an argument, or "-"
// to read the first non-blank line of stdin), solves it with limit=2 to
// additionally detect multiple solutions, and prints the outcome.
func solveCmd() *cobra.Command {
	var lenient bool
	cmd := &cobra.Command{
		Use:   "solve <puzzle|->",
		Short: "Solve a single puzzle and print its solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

			raw, err := readPuzzleArg(args[0])
			if err != nil {
				return err
			}
			if lenient {
				raw = codec.NormalizeLenient(raw)
			}
			puzzle, err := parsePuzzle(raw)
			if err != nil {
				return err
			}

			start := time.Now()
			var sol [81]byte
			solutions, guesses := triad.Solve(puzzle, &sol, 2)
			elapsed := time.Since(start)

			switch solutions {
			case 0:
				fmt.Println("no solution")
			case 1:
				// With limit 2 only a second solution is captured, so a
				// unique puzzle is solved again with limit 1 to obtain it.
				triad.Solve(puzzle, &sol, 1)
				fmt.Println(string(sol[:]))
			default:
				fmt.Println("multiple solutions")
			}
			logger.Info("solved", "solutions", solutions, "guesses", guesses, "elapsed", elapsed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "accept '0'/' '/'-' as empty cells")
	return cmd
}

func readPuzzleArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return "", errors.New("no puzzle line found on stdin")
}

func parsePuzzle(s string) (*[81]byte, error) {
	if len(s) != 81 {
		return nil, fmt.Errorf("puzzle must be 81 characters, got %d", len(s))
	}
	var p [81]byte
	for i := 0; i < 81; i++ {
		b := s[i]
		if b != '.' && (b < '1' || b > '9') {
			return nil, fmt.Errorf("invalid puzzle byte %q at position %d", b, i)
		}
		p[i] = b
	}
	return &p, nil
}
