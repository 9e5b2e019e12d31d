package simd

import "testing"

func TestV16AndOrAndNot(t *testing.T) {
	a := BroadcastV16(0b1100)
	b := BroadcastV16(0b1010)

	if got := a.And(b); got.Lanes[0] != 0b1000 {
		t.Errorf("And: lane 0 = %#b, want %#b", got.Lanes[0], 0b1000)
	}
	if got := a.Or(b); got.Lanes[0] != 0b1110 {
		t.Errorf("Or: lane 0 = %#b, want %#b", got.Lanes[0], 0b1110)
	}
	if got := a.AndNot(b); got.Lanes[0] != 0b0100 {
		t.Errorf("AndNot: lane 0 = %#b, want %#b", got.Lanes[0], 0b0100)
	}
}

func TestV16IsAllZeroAndIsSubsetOf(t *testing.T) {
	var v V16
	if !v.IsAllZero() {
		t.Fatalf("zero-value V16 should report IsAllZero")
	}
	full := BroadcastV16(0x01FF)
	if !v.IsSubsetOf(full) {
		t.Fatalf("the zero vector is a subset of everything")
	}
	if full.IsSubsetOf(v) {
		t.Fatalf("a nonzero vector should not be a subset of the zero vector")
	}

	var a, b V16
	a.Lanes[0] = 0b0011
	b.Lanes[0] = 0b0111
	if !a.IsSubsetOf(b) {
		t.Fatalf("0b0011 should be a subset of 0b0111")
	}
	if b.IsSubsetOf(a) {
		t.Fatalf("0b0111 should not be a subset of 0b0011")
	}
}

func TestV16PopCounts(t *testing.T) {
	v := BroadcastV16(0b10101)
	counts := v.PopCounts()
	for i, c := range counts {
		if c != 3 {
			t.Fatalf("PopCounts: lane %d = %d, want 3", i, c)
		}
	}
}

func TestV16WhichIsEqual(t *testing.T) {
	var a, b V16
	a.Lanes[0], b.Lanes[0] = 5, 5
	a.Lanes[1], b.Lanes[1] = 5, 6

	got := a.WhichIsEqual(b)
	if got.Lanes[0] != 0xFFFF {
		t.Fatalf("WhichIsEqual: lane 0 = %#x, want 0xFFFF (values match)", got.Lanes[0])
	}
	if got.Lanes[1] != 0 {
		t.Fatalf("WhichIsEqual: lane 1 = %#x, want 0 (values differ)", got.Lanes[1])
	}
}

func TestV16HasAnyLessThan(t *testing.T) {
	v := BroadcastV16(5)
	mins := [16]int{}
	for i := range mins {
		mins[i] = 5
	}
	if v.HasAnyLessThan(mins) {
		t.Fatalf("every lane equals its minimum; HasAnyLessThan should be false")
	}
	mins[7] = 6
	if !v.HasAnyLessThan(mins) {
		t.Fatalf("lane 7 is below its minimum; HasAnyLessThan should be true")
	}
}
