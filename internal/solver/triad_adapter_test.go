package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku/internal/domain"
)

// A classic, solvable Sudoku (0 = empty) — shared with backtrack_solve_test.go's fixture shape.
var triadSample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// TestTriadAgreesWithOracle checks TriadSolver's result against the
// independent BacktrackingSolver oracle on the fixed triadSample puzzle.
func TestTriadAgreesWithOracle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	triadS := NewTriadSolver()
	oracle := NewBacktrackingSolver()

	board := &domain.Board{Values: triadSample}

	gotOut, _, gotErr := triadS.Solve(ctx, board)
	wantOut, _, wantErr := oracle.Solve(ctx, board)

	require.NoError(t, gotErr)
	require.NoError(t, wantErr)
	require.Equal(t, wantOut.Values, gotOut.Values)
}

func TestTriadUniqueAgreesWithOracle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	triadS := NewTriadSolver()
	oracle := NewBacktrackingSolver()

	board := &domain.Board{Values: triadSample}

	gotUnique, _, gotErr := triadS.Unique(ctx, board)
	wantUnique, _, wantErr := oracle.Unique(ctx, board)

	require.NoError(t, gotErr)
	require.NoError(t, wantErr)
	require.Equal(t, wantUnique, gotUnique)
}

func TestTriadSolveInvalidGiven(t *testing.T) {
	ctx := context.Background()
	triadS := NewTriadSolver()
	board := &domain.Board{}
	board.Values[0][0] = 10
	_, _, err := triadS.Solve(ctx, board)
	require.Error(t, err)
}
