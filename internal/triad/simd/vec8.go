// Package simd implements the two vector abstractions the triad solver's
// propagation algebra is built on: V8 (eight 16-bit lanes, one per Band
// configuration slot) and V16 (sixteen 16-bit lanes, the full 4x4 logical
// layout of a Box). Bulk lane-wise operators dispatch through dispatch.go;
// everything else is a direct, portable per-lane loop, matching the
// "portable per-lane fallback" the specification explicitly sanctions for
// any substitute of the original's AVX2/SSSE3 intrinsics.
package simd

import "svw.info/sudoku/internal/triad/bitops"

// V8 holds eight 16-bit lanes: a Band's six configuration masks (lanes 0..5)
// plus two zero-padding lanes (6, 7).
type V8 struct {
	Lanes [8]uint16
}

// BroadcastV8 returns a vector with every lane set to mask.
func BroadcastV8(mask uint16) V8 {
	var v V8
	for i := range v.Lanes {
		v.Lanes[i] = mask
	}
	return v
}

func (v V8) And(o V8) V8 {
	var r V8
	lanesAnd(r.Lanes[:], v.Lanes[:], o.Lanes[:])
	return r
}

func (v V8) Or(o V8) V8 {
	var r V8
	lanesOr(r.Lanes[:], v.Lanes[:], o.Lanes[:])
	return r
}

func (v V8) AndNot(o V8) V8 {
	var r V8
	lanesAndNot(r.Lanes[:], v.Lanes[:], o.Lanes[:])
	return r
}

// IsAllZero reports whether every lane is zero.
func (v V8) IsAllZero() bool {
	for _, l := range v.Lanes {
		if l != 0 {
			return false
		}
	}
	return true
}

// HasIntersects reports whether any lane-wise AND with o is nonzero.
func (v V8) HasIntersects(o V8) bool {
	for i := range v.Lanes {
		if v.Lanes[i]&o.Lanes[i] != 0 {
			return true
		}
	}
	return false
}

// PopCountTotal returns the sum of per-lane popcounts across lanes 0..5 (the
// total number of (config, digit) possibilities still alive in a band).
func (v V8) PopCountTotal() int {
	total := 0
	for i := 0; i < 6; i++ {
		total += bitops.PopCount16(v.Lanes[i])
	}
	return total
}

// GetLowBit returns a vector with only the lowest set bit of the first
// nonzero lane kept; every other lane is zero.
func (v V8) GetLowBit() V8 {
	var r V8
	for i, l := range v.Lanes {
		if l != 0 {
			r.Lanes[i] = bitops.LowBit16(l)
			break
		}
	}
	return r
}

// ClearLowBit clears, in the first nonzero lane, its lowest set bit;
// every other lane is passed through unchanged.
func (v V8) ClearLowBit() V8 {
	r := v
	for i, l := range v.Lanes {
		if l != 0 {
			r.Lanes[i] = bitops.ClearLowBit16(l)
			break
		}
	}
	return r
}
