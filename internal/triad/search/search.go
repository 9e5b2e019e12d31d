// Package search implements branch selection and the recursive DPLL
// search over propagation State: choose_band_and_value and count.
package search

import (
	"svw.info/sudoku/internal/triad/propagate"
	"svw.info/sudoku/internal/triad/simd"
	"svw.info/sudoku/internal/triad/state"
)

// Counters accumulates the DPLL search's outcome: number of branch
// decisions taken, solutions found so far, the caller's solution limit,
// and (once reached) the state snapshot of the limit-th solution.
type Counters struct {
	NumGuesses   int
	NumSolutions int
	Limit        int
	ResultState  *state.State
}

// ChooseBandAndValue picks the band with the fewest alive configurations
// (skipping already-fixed bands) and, within it, a digit present in the
// fewest configurations. ok is false once every band is fixed, meaning the
// puzzle is solved.
func ChooseBandAndValue(st *state.State) (orient state.Orientation, bandIdx int, valueMask uint16, ok bool) {
	bestCount := -1
	bestOrient := state.Horizontal
	bestBand := -1

	for o := 0; o < 2; o++ {
		for i := 0; i < 3; i++ {
			count := st.Bands[o][i].Configurations.PopCountTotal()
			if count <= 9 {
				continue
			}
			if bestBand == -1 || count < bestCount {
				bestCount = count
				bestOrient = state.Orientation(o)
				bestBand = i
			}
		}
	}
	if bestBand == -1 {
		return 0, 0, 0, false
	}

	band := &st.Bands[bestOrient][bestBand]
	bestDigit, bestAlive := -1, 0
	for pref := 2; pref <= 4; pref++ {
		for v := 0; v < 9; v++ {
			mask := uint16(1) << v
			alive := 0
			for k := 0; k < 6; k++ {
				if band.Configurations.Lanes[k]&mask != 0 {
					alive++
				}
			}
			if alive == pref {
				bestDigit = v
				bestAlive = alive
				break
			}
		}
		if bestDigit != -1 {
			break
		}
	}
	if bestDigit == -1 {
		for v := 0; v < 9; v++ {
			mask := uint16(1) << v
			alive := 0
			for k := 0; k < 6; k++ {
				if band.Configurations.Lanes[k]&mask != 0 {
					alive++
				}
			}
			if alive >= 2 && (bestDigit == -1 || alive < bestAlive) {
				bestDigit = v
				bestAlive = alive
			}
		}
	}

	return bestOrient, bestBand, uint16(1) << uint(bestDigit), true
}

// Count runs the recursive DPLL search over st, recording solutions (and,
// at the caller's limit, a snapshot of the solving state) into c.
func Count(st *state.State, c *Counters) {
	orient, bandIdx, valueMask, ok := ChooseBandAndValue(st)
	if !ok {
		c.NumSolutions++
		if c.NumSolutions == c.Limit {
			c.ResultState = st.Clone()
		}
		return
	}
	c.NumGuesses++

	band := &st.Bands[orient][bandIdx]
	var valueConfigs simd.V8
	for k := 0; k < 6; k++ {
		valueConfigs.Lanes[k] = band.Configurations.Lanes[k] & valueMask
	}
	if valueConfigs.IsAllZero() {
		return
	}
	// Each lane of valueConfigs is either 0 or exactly valueMask (a single
	// bit), so GetLowBit/ClearLowBit's "first nonzero lane" semantics pick
	// out the lowest-indexed alive configuration k0 directly.
	lowBit := valueConfigs.GetLowBit()
	commitElim := valueConfigs.ClearLowBit()
	negateElim := lowBit

	branchState := st.Clone()
	bb := &branchState.Bands[orient][bandIdx]
	bb.Eliminations = bb.Eliminations.Or(commitElim)
	if propagate.BandEliminate(branchState, orient, bandIdx, 0) {
		Count(branchState, c)
		if c.NumSolutions == c.Limit {
			return
		}
	}

	ob := &st.Bands[orient][bandIdx]
	ob.Eliminations = ob.Eliminations.Or(negateElim)
	if propagate.BandEliminate(st, orient, bandIdx, 0) {
		Count(st, c)
	}
}

// SeedPropagate runs the six initial band-elimination passes solve()
// performs right after decode, sweeping clue eliminations staged by
// init_clue to a fixpoint before search begins.
func SeedPropagate(st *state.State) bool {
	for i := 0; i < 3; i++ {
		if !propagate.BandEliminate(st, state.Horizontal, i, 0) {
			return false
		}
		if !propagate.BandEliminate(st, state.Vertical, i, 0) {
			return false
		}
	}
	return true
}
