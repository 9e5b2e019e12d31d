// Package tables builds the process-wide precomputed lookup tables the
// triad solver's propagation algebra runs against: box-position indexing,
// the six-configuration permutation matrix, per-digit assignment
// eliminations, band peer-selector masks, and the bitmask-to-digit decode
// table. Construct once via Get and treat as immutable.
package tables

import (
	"sync"

	"svw.info/sudoku/internal/triad/bitops"
	"svw.info/sudoku/internal/triad/simd"
)

// BoxPosition is the precomputed record for one of the 81 puzzle positions.
type BoxPosition struct {
	BoxX, BoxY   int
	BoxIdx       int
	CellX, CellY int
	CellLane     int
}

// Tables is the process-wide immutable lookup record. Build with Get.
type Tables struct {
	// BoxIndexing[pos] is the box-position record for puzzle position pos (0..80).
	BoxIndexing [81]BoxPosition

	// ConfigMatrix[k][peer] is the row (0..2) where configuration k places
	// the peer's positive triad.
	ConfigMatrix [6][3]int

	// CellAssignmentEliminations[v][cellLane] is the 16-lane elimination
	// vector applied to a box when digit v is asserted at cellLane.
	CellAssignmentEliminations [9][16][16]uint16

	// PeerElemMask[peer][row] selects (0xFFFF per lane) the configuration
	// lanes inconsistent with placing peer's positive triad at row.
	PeerElemMask [3][3]simd.V8

	// BitmaskToDigit maps a singleton 9-bit candidate mask to its ASCII
	// digit; zero for non-singleton or empty masks.
	BitmaskToDigit [512]byte
}

var (
	once     sync.Once
	instance *Tables
)

// Get returns the process-wide Tables singleton, building it on first use.
func Get() *Tables {
	once.Do(func() {
		instance = build()
	})
	return instance
}

func build() *Tables {
	t := &Tables{
		ConfigMatrix: [6][3]int{
			{0, 1, 2},
			{1, 2, 0},
			{2, 0, 1},
			{2, 1, 0},
			{0, 2, 1},
			{1, 0, 2},
		},
	}

	for pos := 0; pos < 81; pos++ {
		row := pos / 9
		col := pos % 9
		boxX := col / 3
		boxY := row / 3
		cellX := col % 3
		cellY := row % 3
		t.BoxIndexing[pos] = BoxPosition{
			BoxX:     boxX,
			BoxY:     boxY,
			BoxIdx:   boxY*3 + boxX,
			CellX:    cellX,
			CellY:    cellY,
			CellLane: cellY*4 + cellX,
		}
	}

	for v := 0; v < 9; v++ {
		mask := uint16(1) << v
		for cellLane := 0; cellLane < 16; cellLane++ {
			t.CellAssignmentEliminations[v][cellLane] = buildCellAssignmentElims(mask, cellLane)
		}
	}

	for peer := 0; peer < 3; peer++ {
		for row := 0; row < 3; row++ {
			var v simd.V8
			for k := 0; k < 6; k++ {
				if t.ConfigMatrix[k][peer] != row {
					v.Lanes[k] = 0xFFFF
				}
			}
			t.PeerElemMask[peer][row] = v
		}
	}

	for mask := 0; mask < 512; mask++ {
		if bitops.PopCount16(uint16(mask)) == 1 {
			v := bitops.TrailingZero16(uint16(mask))
			t.BitmaskToDigit[mask] = byte('1' + v)
		}
	}

	return t
}

// buildCellAssignmentElims computes the per-lane elimination vector applied
// to a box when digit mask is asserted at cellLane: the asserted cell is
// pinned to mask, every other cell in the box loses mask, and the two
// triad lanes covering the asserted cell's row/column lose mask.
func buildCellAssignmentElims(mask uint16, cellLane int) [16]uint16 {
	var elim [16]uint16
	row := cellLane / 4
	col := cellLane % 4

	if row < 3 && col < 3 {
		// cellLane is a genuine cell; pin it and clear mask elsewhere.
		for lane := 0; lane < 16; lane++ {
			if lane == cellLane {
				elim[lane] = bitops.ALL &^ mask
				continue
			}
			r := lane / 4
			c := lane % 4
			if r < 3 && c < 3 {
				elim[lane] = mask
			}
		}
		elim[row*4+3] = mask
		elim[12+col] = mask
	}
	return elim
}
