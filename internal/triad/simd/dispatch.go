package simd

import "golang.org/x/sys/cpu"

// wideBackend selects between two functionally identical implementations of
// the bulk lane-wise operators: a 4-wide unrolled loop (the shape a compiler
// is most likely to lower onto packed SSE/AVX instructions on an AVX2-capable
// host) and a plain per-lane loop. Both must produce bit-for-bit identical
// results; wideBackend only picks which loop shape runs, mirroring the
// clearSIMD/andNotSIMD dispatch pattern of bitset_simd_amd64.go, but without
// the inline assembly — Go's compiler already auto-vectorizes the unrolled
// shape well on amd64/arm64, so no unsafe or assembly is required to benefit
// from it.
var wideBackend = cpu.X86.HasAVX2 || cpu.X86.HasSSSE3 || cpu.ARM64.HasASIMD

// Backend reports which bulk-operator loop shape was selected at startup,
// for diagnostics (surfaced by cmd/sudoku-bench warmup).
func Backend() string {
	if wideBackend {
		return "wide (4-lane unrolled)"
	}
	return "scalar (per-lane)"
}

// lanesAnd computes dst[i] = a[i] & b[i] over equal-length slices.
func lanesAnd(dst, a, b []uint16) {
	if wideBackend {
		lanesAndWide(dst, a, b)
		return
	}
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func lanesAndWide(dst, a, b []uint16) {
	n := len(dst)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] & b[i]
		dst[i+1] = a[i+1] & b[i+1]
		dst[i+2] = a[i+2] & b[i+2]
		dst[i+3] = a[i+3] & b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] & b[i]
	}
}

// lanesOr computes dst[i] = a[i] | b[i].
func lanesOr(dst, a, b []uint16) {
	if wideBackend {
		lanesOrWide(dst, a, b)
		return
	}
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func lanesOrWide(dst, a, b []uint16) {
	n := len(dst)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] | b[i]
		dst[i+1] = a[i+1] | b[i+1]
		dst[i+2] = a[i+2] | b[i+2]
		dst[i+3] = a[i+3] | b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] | b[i]
	}
}

// lanesAndNot computes dst[i] = a[i] &^ b[i].
func lanesAndNot(dst, a, b []uint16) {
	if wideBackend {
		lanesAndNotWide(dst, a, b)
		return
	}
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

func lanesAndNotWide(dst, a, b []uint16) {
	n := len(dst)
	i := 0
	for ; i <= n-4; i += 4 {
		dst[i] = a[i] &^ b[i]
		dst[i+1] = a[i+1] &^ b[i+1]
		dst[i+2] = a[i+2] &^ b[i+2]
		dst[i+3] = a[i+3] &^ b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] &^ b[i]
	}
}
