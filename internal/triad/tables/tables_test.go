package tables

import "testing"

func TestConfigMatrixIsAPermutationPerRow(t *testing.T) {
	tb := Get()
	for k, row := range tb.ConfigMatrix {
		seen := map[int]bool{}
		for _, peer := range row {
			if peer < 0 || peer > 2 || seen[peer] {
				t.Fatalf("config %d: row %v is not a permutation of {0,1,2}", k, row)
			}
			seen[peer] = true
		}
	}
}

func TestBoxIndexingCoversEveryPosition(t *testing.T) {
	tb := Get()
	seen := map[[2]int]bool{} // (BoxIdx, CellLane) -> seen
	for pos, bp := range tb.BoxIndexing {
		row, col := pos/9, pos%9
		if bp.BoxY*3+bp.CellY != row {
			t.Fatalf("pos %d: box/cell row mismatch, got boxY=%d cellY=%d, want row %d", pos, bp.BoxY, bp.CellY, row)
		}
		if bp.BoxX*3+bp.CellX != col {
			t.Fatalf("pos %d: box/cell col mismatch, got boxX=%d cellX=%d, want col %d", pos, bp.BoxX, bp.CellX, col)
		}
		key := [2]int{bp.BoxIdx, bp.CellLane}
		if seen[key] {
			t.Fatalf("pos %d: (box %d, lane %d) already claimed by another position", pos, bp.BoxIdx, bp.CellLane)
		}
		seen[key] = true
	}
	if len(seen) != 81 {
		t.Fatalf("got %d distinct (box, lane) pairs, want 81", len(seen))
	}
}

func TestBitmaskToDigitOnlyMapsSingletons(t *testing.T) {
	tb := Get()
	for mask := 0; mask < 512; mask++ {
		got := tb.BitmaskToDigit[mask]
		popcount := 0
		for m := mask; m != 0; m &= m - 1 {
			popcount++
		}
		if popcount != 1 {
			if got != 0 {
				t.Fatalf("mask %#x: popcount %d, want BitmaskToDigit==0, got %q", mask, popcount, got)
			}
			continue
		}
		if got < '1' || got > '9' {
			t.Fatalf("mask %#x is a singleton but BitmaskToDigit=%q", mask, got)
		}
	}
}

func TestPeerElemMaskSelectsExactlyTheInconsistentConfigs(t *testing.T) {
	tb := Get()
	for peer := 0; peer < 3; peer++ {
		for row := 0; row < 3; row++ {
			v := tb.PeerElemMask[peer][row]
			for k := 0; k < 6; k++ {
				want := tb.ConfigMatrix[k][peer] != row
				got := v.Lanes[k] == 0xFFFF
				if got != want {
					t.Fatalf("PeerElemMask[%d][%d] lane %d = %#x, want selected=%v", peer, row, k, v.Lanes[k], want)
				}
			}
			for k := 6; k < 8; k++ {
				if v.Lanes[k] != 0 {
					t.Fatalf("PeerElemMask[%d][%d] padding lane %d = %#x, want 0", peer, row, k, v.Lanes[k])
				}
			}
		}
	}
}

func TestGetIsASingleton(t *testing.T) {
	if Get() != Get() {
		t.Fatalf("Get() returned different instances across calls")
	}
}
