package propagate

import (
	"testing"

	"svw.info/sudoku/internal/triad/bitops"
	"svw.info/sudoku/internal/triad/simd"
	"svw.info/sudoku/internal/triad/state"
)

func TestAssertionsToEliminationsSameBoxExclusion(t *testing.T) {
	var assertions simd.V16
	assertions.Lanes[0] = 1 << 2 // cell (0,0) asserted to digit 3

	boxElims, _, _ := AssertionsToEliminations(assertions, 0, 0)

	for _, lane := range []int{1, 2, 4, 5, 6, 8, 9, 10} {
		if boxElims.Lanes[lane]&(1<<2) == 0 {
			t.Fatalf("lane %d should have digit 3 eliminated by the box assertion", lane)
		}
	}
	if boxElims.Lanes[0] != 0 {
		t.Fatalf("the asserted cell's own lane should not be self-eliminated, got %#x", boxElims.Lanes[0])
	}
	if boxElims.Lanes[3]&(1<<2) == 0 {
		t.Fatalf("row-0 negative triad lane should lose digit 3")
	}
	if boxElims.Lanes[12]&(1<<2) == 0 {
		t.Fatalf("col-0 negative triad lane should lose digit 3")
	}
}

func TestBoxRestrictDetectsContradiction(t *testing.T) {
	st := state.New()
	incoming := simd.BroadcastV16(bitops.ALL)
	incoming.Lanes[0] = 0 // restrict cell (0,0) to no candidates at all

	if BoxRestrict(st, state.Horizontal, 0, incoming) {
		t.Fatalf("BoxRestrict should report failure when a cell is restricted to zero candidates")
	}
}

func TestBandEliminateNoOpWhenNothingPending(t *testing.T) {
	st := state.New()
	if !BandEliminate(st, state.Horizontal, 0, 0) {
		t.Fatalf("BandEliminate should succeed trivially with no pending eliminations")
	}
}
