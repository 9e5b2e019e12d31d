// Package codec decodes an 81-character clue string into a propagation
// State and encodes a solved State back into a clue string.
package codec

import (
	"svw.info/sudoku/internal/triad/bitops"
	"svw.info/sudoku/internal/triad/propagate"
	"svw.info/sudoku/internal/triad/state"
	"svw.info/sudoku/internal/triad/tables"
)

// Decode resets st to fully-open, stages every clue in puzzle, and runs the
// box-level fixpoint those clues trigger. It reports whether the staged
// clues are consistent so far (false on an immediate contradiction, e.g.
// two clues in the same row asserting the same digit).
func Decode(puzzle *[81]byte, st *state.State) bool {
	*st = *state.New()
	for i, b := range puzzle {
		if b == '.' {
			continue
		}
		InitClue(st, i, b)
	}
	for boxIdx := range st.Boxes {
		if !propagate.SettleBox(st, boxIdx) {
			return false
		}
	}
	return true
}

// InitClue stages the eliminations implied by asserting digit at position
// pos, without propagating. digit must be '1'..'9'.
func InitClue(st *state.State, pos int, digit byte) {
	t := tables.Get()
	bp := t.BoxIndexing[pos]
	v := int(digit - '1')
	mask := bitops.DigitToMask(digit)

	box := &st.Boxes[bp.BoxIdx]
	elim := t.CellAssignmentEliminations[v][bp.CellLane]
	for lane := 0; lane < 16; lane++ {
		box.V.Lanes[lane] &^= elim[lane]
	}

	hBand := &st.Bands[0][bp.BoxY]
	hSel := t.PeerElemMask[bp.BoxX][bp.CellY]
	for k := 0; k < 6; k++ {
		hBand.Eliminations.Lanes[k] |= hSel.Lanes[k] & mask
	}

	vBand := &st.Bands[1][bp.BoxX]
	vSel := t.PeerElemMask[bp.BoxY][bp.CellX]
	for k := 0; k < 6; k++ {
		vBand.Eliminations.Lanes[k] |= vSel.Lanes[k] & mask
	}
}

// Encode writes the fully-solved state's cell candidates into solution as
// '1'..'9' digits in reading order.
func Encode(st *state.State, solution *[81]byte) {
	t := tables.Get()
	for pos := 0; pos < 81; pos++ {
		bp := t.BoxIndexing[pos]
		mask := st.Boxes[bp.BoxIdx].V.Lanes[bp.CellLane]
		solution[pos] = t.BitmaskToDigit[mask&0x01FF]
	}
}

// NormalizeLenient is a harness-only convenience: it maps the lenient
// empty-cell spellings ('0', ' ', '-') the original loader also accepted to
// the core decoder's strict '.'. It is never called from Decode/InitClue.
func NormalizeLenient(s string) string {
	out := []byte(s)
	for i, b := range out {
		switch b {
		case '0', ' ', '-':
			out[i] = '.'
		}
	}
	return string(out)
}
