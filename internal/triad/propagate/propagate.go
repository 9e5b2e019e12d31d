// Package propagate implements the triad solver's propagation fixpoint:
// box restriction, assertion-to-elimination translation, and band
// elimination, dispatched back and forth until no vector changes.
package propagate

import (
	"svw.info/sudoku/internal/triad/simd"
	"svw.info/sudoku/internal/triad/state"
	"svw.info/sudoku/internal/triad/tables"
)

// triadMin is the minimum population a triad lane (negative-triad mask)
// may hold: a triad's three cells cover three digits at minimum, so at
// least six of the nine "allowed absent" bits must remain.
const triadMin = 6

func laneMin(lane int) int {
	switch lane {
	case 3, 7, 11, 12, 13, 14:
		return triadMin
	case 15:
		return 0
	default:
		return 1
	}
}

// laneMinInts and laneMinVec are laneMin's per-lane minimums precomputed
// into the two shapes runFixpoint's vectorized checks need: a []int for
// simd.V16.HasAnyLessThan, and a V16 for simd.V16.WhichIsEqual.
var (
	laneMinInts [16]int
	laneMinVec  simd.V16
)

func init() {
	for lane := 0; lane < 16; lane++ {
		m := laneMin(lane)
		laneMinInts[lane] = m
		laneMinVec.Lanes[lane] = uint16(m)
	}
}

// AssertionsToEliminations takes the newly-triggered literals within a box
// (cell assertions and negative-triad assertions) and derives the three
// elimination vectors they imply: further same-box cell/triad eliminations,
// and configuration eliminations for the box's horizontal and vertical peer
// bands.
func AssertionsToEliminations(assertions simd.V16, boxX, boxY int) (newBoxElims simd.V16, newHElims, newVElims simd.V8) {
	t := tables.Get()

	var positiveByRow, negByRow [3]uint16
	var positiveByCol, negByCol [3]uint16

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := assertions.Lanes[r*4+c]
			if v != 0 {
				positiveByRow[r] |= v
				positiveByCol[c] |= v
			}
		}
		negByRow[r] = assertions.Lanes[r*4+3]
	}
	for c := 0; c < 3; c++ {
		negByCol[c] = assertions.Lanes[12+c]
	}

	var boxElim simd.V16
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			asserted := assertions.Lanes[r*4+c]
			if asserted == 0 {
				continue
			}
			for rr := 0; rr < 3; rr++ {
				for cc := 0; cc < 3; cc++ {
					if rr == r && cc == c {
						continue
					}
					boxElim.Lanes[rr*4+cc] |= asserted
				}
			}
			boxElim.Lanes[r*4+3] |= asserted
			boxElim.Lanes[12+c] |= asserted
		}
	}
	newBoxElims = boxElim

	for r := 0; r < 3; r++ {
		pos, neg := positiveByRow[r], negByRow[r]
		if pos == 0 && neg == 0 {
			continue
		}
		for k := 0; k < 6; k++ {
			if t.ConfigMatrix[k][boxX] == r {
				newHElims.Lanes[k] |= neg
			} else {
				newHElims.Lanes[k] |= pos
			}
		}
	}
	for c := 0; c < 3; c++ {
		pos, neg := positiveByCol[c], negByCol[c]
		if pos == 0 && neg == 0 {
			continue
		}
		for k := 0; k < 6; k++ {
			if t.ConfigMatrix[k][boxY] == c {
				newVElims.Lanes[k] |= neg
			} else {
				newVElims.Lanes[k] |= pos
			}
		}
	}
	return
}

// triadDefinitionClauses finds, per row and per column of the box, any
// candidate appearing in exactly one of the four lanes spanning it (the
// three cells plus the triad lane) — an exactly-one constraint that forces
// the candidate into that lane.
func triadDefinitionClauses(box *state.Box) simd.V16 {
	var out simd.V16
	for r := 0; r < 3; r++ {
		lanes := [4]int{r*4 + 0, r*4 + 1, r*4 + 2, r*4 + 3}
		for v := 0; v < 9; v++ {
			mask := uint16(1) << v
			count, which := 0, -1
			for i, lane := range lanes {
				if box.V.Lanes[lane]&mask != 0 {
					count++
					which = i
				}
			}
			if count == 1 {
				out.Lanes[lanes[which]] |= mask
			}
		}
	}
	for c := 0; c < 3; c++ {
		lanes := [4]int{c, c + 4, c + 8, 12 + c}
		for v := 0; v < 9; v++ {
			mask := uint16(1) << v
			count, which := 0, -1
			for i, lane := range lanes {
				if box.V.Lanes[lane]&mask != 0 {
					count++
					which = i
				}
			}
			if count == 1 {
				out.Lanes[lanes[which]] |= mask
			}
		}
	}
	return out
}

// runFixpoint repeatedly derives triggered assertions from box boxIdx's
// current candidates, merges the band-level consequences into the
// surrounding bands' pending eliminations, and tightens the box until no
// further narrowing occurs. It reports false on a contradiction (a lane
// dropping below its minimum population).
func runFixpoint(st *state.State, boxIdx int) bool {
	box := &st.Boxes[boxIdx]
	boxY, boxX := boxIdx/3, boxIdx%3

	for {
		counts := box.V.PopCounts()
		var countsVec simd.V16
		for lane, c := range counts {
			countsVec.Lanes[lane] = uint16(c)
		}
		if countsVec.HasAnyLessThan(laneMinInts) {
			return false
		}
		triggered := countsVec.WhichIsEqual(laneMinVec)
		triggered.Lanes[15] = 0 // the padding lane is always "at minimum"; never a real trigger

		allAssertions := box.V.And(triggered)
		allAssertions = allAssertions.Or(triadDefinitionClauses(box))

		newBoxElims, newHElims, newVElims := AssertionsToEliminations(allAssertions, boxX, boxY)
		st.Bands[0][boxY].Eliminations = st.Bands[0][boxY].Eliminations.Or(newHElims)
		st.Bands[1][boxX].Eliminations = st.Bands[1][boxX].Eliminations.Or(newVElims)

		if box.V.And(newBoxElims).IsAllZero() {
			return true
		}
		box.V = box.V.AndNot(newBoxElims)
	}
}

// SettleBox runs box boxIdx's internal fixpoint without dispatching to its
// peer bands — used by codec.Decode right after clue eliminations have
// been staged directly into the box, before the caller runs the band-level
// seed propagation.
func SettleBox(st *state.State, boxIdx int) bool {
	return runFixpoint(st, boxIdx)
}

// BoxRestrict restricts box boxIdx to lie within incoming, runs the box's
// internal fixpoint, and dispatches resulting band eliminations. from names
// the orientation of the peer that sent this message.
func BoxRestrict(st *state.State, from state.Orientation, boxIdx int, incoming simd.V16) bool {
	box := &st.Boxes[boxIdx]
	if box.V.IsSubsetOf(incoming) {
		return true
	}
	box.V = box.V.And(incoming)

	if !runFixpoint(st, boxIdx) {
		return false
	}

	boxY, boxX := boxIdx/3, boxIdx%3
	if from == state.Vertical {
		if !BandEliminate(st, state.Horizontal, boxY, boxX) {
			return false
		}
		return BandEliminate(st, state.Vertical, boxX, boxY)
	}
	if !BandEliminate(st, state.Vertical, boxX, boxY) {
		return false
	}
	return BandEliminate(st, state.Horizontal, boxY, boxX)
}

func peerBoxIdx(orient state.Orientation, bandIdx, peer int) int {
	if orient == state.Horizontal {
		return bandIdx*3 + peer
	}
	return peer*3 + bandIdx
}

func triadLaneForRow(orient state.Orientation, row int) int {
	if orient == state.Horizontal {
		return row*4 + 3
	}
	return 12 + row
}

// BandEliminate clears band bandIdx's pending eliminations, derives forced
// triad placements from the surviving configurations, and dispatches box
// restriction messages to the band's three peer boxes, revisiting fromPeer
// itself last.
func BandEliminate(st *state.State, orient state.Orientation, bandIdx int, fromPeer int) bool {
	band := &st.Bands[orient][bandIdx]
	if !band.Configurations.HasIntersects(band.Eliminations) {
		return true
	}
	band.Configurations = band.Configurations.AndNot(band.Eliminations)
	band.Eliminations = simd.V8{}

	t := tables.Get()
	var forcedAtRow [3][3]uint16

	for v := 0; v < 9; v++ {
		mask := uint16(1) << v
		var alive uint8
		for k := 0; k < 6; k++ {
			if band.Configurations.Lanes[k]&mask != 0 {
				alive |= 1 << uint(k)
			}
		}
		if alive == 0 {
			return false
		}
		for p := 0; p < 3; p++ {
			seen := -1
			consistent := true
			for k := 0; k < 6; k++ {
				if alive&(1<<uint(k)) == 0 {
					continue
				}
				r := t.ConfigMatrix[k][p]
				if seen == -1 {
					seen = r
				} else if seen != r {
					consistent = false
					break
				}
			}
			if consistent && seen != -1 {
				forcedAtRow[p][seen] |= mask
			}
		}
	}

	order := [3]int{(fromPeer + 1) % 3, (fromPeer + 2) % 3, fromPeer}
	for _, p := range order {
		incoming := simd.BroadcastV16(0x01FF)
		for r := 0; r < 3; r++ {
			forced := forcedAtRow[p][r]
			if forced == 0 {
				continue
			}
			lane := triadLaneForRow(orient, r)
			incoming.Lanes[lane] &^= forced
			// A digit forced into minirow r cannot sit in the box's other minirows.
			for other := 0; other < 3; other++ {
				if other == r {
					continue
				}
				for i := 0; i < 3; i++ {
					if orient == state.Horizontal {
						incoming.Lanes[other*4+i] &^= forced
					} else {
						incoming.Lanes[i*4+other] &^= forced
					}
				}
			}
		}
		if !BoxRestrict(st, orient, peerBoxIdx(orient, bandIdx, p), incoming) {
			return false
		}
	}
	return true
}
