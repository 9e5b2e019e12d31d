package simd

import "svw.info/sudoku/internal/triad/bitops"

// V16 holds sixteen 16-bit lanes: a Box's 4x4 logical layout (nine cells,
// three horizontal triads, three vertical triads, one padding lane).
type V16 struct {
	Lanes [16]uint16
}

// BroadcastV16 returns a vector with every lane set to mask.
func BroadcastV16(mask uint16) V16 {
	var v V16
	for i := range v.Lanes {
		v.Lanes[i] = mask
	}
	return v
}

func (v V16) And(o V16) V16 {
	var r V16
	lanesAnd(r.Lanes[:], v.Lanes[:], o.Lanes[:])
	return r
}

func (v V16) Or(o V16) V16 {
	var r V16
	lanesOr(r.Lanes[:], v.Lanes[:], o.Lanes[:])
	return r
}

func (v V16) AndNot(o V16) V16 {
	var r V16
	lanesAndNot(r.Lanes[:], v.Lanes[:], o.Lanes[:])
	return r
}

// IsAllZero reports whether every lane is zero.
func (v V16) IsAllZero() bool {
	for _, l := range v.Lanes {
		if l != 0 {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every lane of v is a subset of the
// corresponding lane of o.
func (v V16) IsSubsetOf(o V16) bool {
	for i := range v.Lanes {
		if v.Lanes[i]&^o.Lanes[i] != 0 {
			return false
		}
	}
	return true
}

// PopCounts returns the per-lane popcount (0..9) of every lane.
func (v V16) PopCounts() [16]int {
	var counts [16]int
	for i, l := range v.Lanes {
		counts[i] = bitops.PopCount16(l)
	}
	return counts
}

// WhichIsEqual returns a mask vector with 0xFFFF in every lane where v and
// o agree, 0 elsewhere.
func (v V16) WhichIsEqual(o V16) V16 {
	var r V16
	for i := range v.Lanes {
		if v.Lanes[i] == o.Lanes[i] {
			r.Lanes[i] = 0xFFFF
		}
	}
	return r
}

// HasAnyLessThan reports whether any lane of v is less than the
// corresponding lane of mins.
func (v V16) HasAnyLessThan(mins [16]int) bool {
	for i, l := range v.Lanes {
		if int(l) < mins[i] {
			return true
		}
	}
	return false
}

