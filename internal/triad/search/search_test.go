package search

import (
	"testing"

	"svw.info/sudoku/internal/triad/state"
)

func TestChooseBandAndValueOnFreshState(t *testing.T) {
	st := state.New()
	orient, bandIdx, valueMask, ok := ChooseBandAndValue(st)
	if !ok {
		t.Fatalf("a fresh state has 54 live possibilities per band, ChooseBandAndValue should find one")
	}
	if orient != state.Horizontal && orient != state.Vertical {
		t.Fatalf("unexpected orientation %v", orient)
	}
	if bandIdx < 0 || bandIdx > 2 {
		t.Fatalf("unexpected band index %d", bandIdx)
	}
	if valueMask == 0 || valueMask&(valueMask-1) != 0 {
		t.Fatalf("valueMask %#x should be a single-bit digit mask", valueMask)
	}
}

func TestChooseBandAndValueReportsSolvedWhenEveryBandIsFixed(t *testing.T) {
	st := state.New()
	for o := 0; o < 2; o++ {
		for i := 0; i < 3; i++ {
			// Collapse every band to a single alive configuration per digit,
			// i.e. PopCountTotal == 9: simulate "fixed" by zeroing five of
			// the six configuration lanes.
			band := &st.Bands[o][i]
			for k := 1; k < 6; k++ {
				band.Configurations.Lanes[k] = 0
			}
		}
	}
	_, _, _, ok := ChooseBandAndValue(st)
	if ok {
		t.Fatalf("ChooseBandAndValue should report solved (ok=false) once every band is fixed")
	}
}

func TestSeedPropagateOnFreshStateSucceeds(t *testing.T) {
	st := state.New()
	if !SeedPropagate(st) {
		t.Fatalf("SeedPropagate on a fully open state (no eliminations pending) should never fail")
	}
}
