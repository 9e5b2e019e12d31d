// Package triad is the public entry point of the DPLL + Triad SIMD Sudoku
// solver: decode a clue string, seed-propagate to fixpoint, and run the
// recursive DPLL search up to a caller-supplied solution limit.
package triad

import (
	"svw.info/sudoku/internal/triad/codec"
	"svw.info/sudoku/internal/triad/search"
	"svw.info/sudoku/internal/triad/state"
)

// Solver holds one solve's counters and its captured solution state. It
// collapses the source's BasicSolver base (num_guesses_ plus a display
// helper) into its own fields, per the spec's explicit note that the
// inheritance there is not worth reproducing in Go.
type Solver struct {
	numGuesses   int
	numSolutions int
}

// NumGuesses returns the number of branch decisions taken by the most
// recent Solve call.
func (s *Solver) NumGuesses() int { return s.numGuesses }

// Solve decodes puzzle, propagates to fixpoint, and searches for up to
// limit solutions. solution is filled with the limit-th solution found, if
// any; it is left unchanged if fewer than limit solutions exist.
func (s *Solver) Solve(puzzle *[81]byte, solution *[81]byte, limit int) (solutions, guesses int) {
	s.numGuesses = 0
	s.numSolutions = 0

	st := state.New()
	if !codec.Decode(puzzle, st) {
		return 0, 0
	}
	if !search.SeedPropagate(st) {
		return 0, 0
	}

	c := &search.Counters{Limit: limit}
	search.Count(st, c)

	s.numGuesses = c.NumGuesses
	s.numSolutions = c.NumSolutions
	if c.ResultState != nil {
		codec.Encode(c.ResultState, solution)
	}
	return c.NumSolutions, c.NumGuesses
}

// Solve is the free-function form of Solver.Solve, for one-off callers
// that don't need to reuse counters across calls (mirrors the source's
// public gudoku_solver C entry point).
func Solve(puzzle *[81]byte, solution *[81]byte, limit int) (solutions, guesses int) {
	var s Solver
	return s.Solve(puzzle, solution, limit)
}
