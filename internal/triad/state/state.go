// Package state defines the propagation state the triad solver mutates:
// nine Boxes laid out as 4x4 lane grids, and six Bands (two orientations of
// three) tracking which digit-placement configurations remain feasible.
package state

import (
	"svw.info/sudoku/internal/triad/bitops"
	"svw.info/sudoku/internal/triad/simd"
)

// Orientation names which axis of bands a box message is addressed to.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Box is a box's 16-lane candidate vector: cells 0,1,2 / H0 at 3, cells
// 4,5,6 / H1 at 7, cells 8,9,10 / H2 at 11, V0,V1,V2 at 12,13,14, pad at 15.
type Box struct {
	V simd.V16
}

// Cell returns the candidate mask at box-local row r, column c (0..2).
func (b *Box) Cell(r, c int) uint16 { return b.V.Lanes[r*4+c] }

// H returns the negative horizontal-triad mask for box-local row r.
func (b *Box) H(r int) uint16 { return b.V.Lanes[r*4+3] }

// VLane returns the negative vertical-triad mask for box-local column c.
func (b *Box) VLane(c int) uint16 { return b.V.Lanes[12+c] }

// Band tracks, for one horizontal or vertical stripe of three boxes, which
// of the six placement configurations remain feasible per digit.
type Band struct {
	Configurations simd.V8
	Eliminations   simd.V8
}

// State is the full propagation state: two orientations of three bands,
// and nine boxes.
type State struct {
	Bands [2][3]Band
	Boxes [9]Box
}

// New returns a fully-open State: every candidate bit set, no eliminations
// pending.
func New() *State {
	s := &State{}
	full := simd.BroadcastV16(bitops.ALL)
	for i := range s.Boxes {
		s.Boxes[i].V = full
		s.Boxes[i].V.Lanes[15] = 0
	}
	cfgs := simd.BroadcastV8(bitops.ALL)
	cfgs.Lanes[6] = 0
	cfgs.Lanes[7] = 0
	for o := 0; o < 2; o++ {
		for i := 0; i < 3; i++ {
			s.Bands[o][i] = Band{Configurations: cfgs}
		}
	}
	return s
}

// Clone returns a deep value copy of s, safe to mutate independently — the
// copy semantics a branch point in the search needs.
func (s *State) Clone() *State {
	ns := *s
	return &ns
}

// BoxIdx returns the flat box index for box-local coordinates.
func BoxIdx(boxY, boxX int) int { return boxY*3 + boxX }
