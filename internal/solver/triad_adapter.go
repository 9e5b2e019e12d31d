package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku/internal/domain"
	"svw.info/sudoku/internal/ports"
	"svw.info/sudoku/internal/triad"
)

// TriadSolver adapts the DPLL + Triad SIMD core (internal/triad) to
// ports.Solver, translating between domain.Board's [9][9]uint8 grid and the
// core's packed [81]byte clue/solution strings.
type TriadSolver struct{}

func NewTriadSolver() *TriadSolver { return &TriadSolver{} }

// Name identifies this engine as ports.Solver's Name().
func (s *TriadSolver) Name() string { return "triad" }

func boardToPuzzle(b *domain.Board) (*[81]byte, error) {
	var p [81]byte
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v == 0 {
				p[r*9+c] = '.'
				continue
			}
			if v < 1 || v > 9 {
				return nil, errors.New("invalid given")
			}
			p[r*9+c] = '0' + v
		}
	}
	return &p, nil
}

func puzzleToBoard(sol *[81]byte) *domain.Board {
	var b domain.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = sol[r*9+c] - '0'
		}
	}
	return &b
}

func (s *TriadSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	puzzle, err := boardToPuzzle(b)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	var sv triad.Solver
	var sol [81]byte
	solutions, guesses := sv.Solve(puzzle, &sol, 1)
	if solutions < 1 {
		return nil, ports.Stats{Nodes: guesses, Duration: time.Since(start)}, errors.New("no solution")
	}
	return puzzleToBoard(&sol), ports.Stats{Nodes: guesses, Duration: time.Since(start)}, nil
}

func (s *TriadSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	puzzle, err := boardToPuzzle(b)
	if err != nil {
		return false, ports.Stats{}, err
	}
	var sv triad.Solver
	var sol [81]byte
	solutions, guesses := sv.Solve(puzzle, &sol, 2)
	return solutions == 1, ports.Stats{Nodes: guesses, Duration: time.Since(start)}, nil
}
