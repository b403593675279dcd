//go:build purego

package fixvec

import "github.com/cwbudde/algo-fixpoint/internal/fixmath"

// AddSat16 performs element-wise saturating addition: dst[i] = sat(a[i] + b[i]).
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go reference implementation.
func AddSat16(dst, a, b []int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("fixvec: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fixmath.AddSat16(a[i], b[i])
	}
}

// AddSat32 performs element-wise saturating addition: dst[i] = sat(a[i] + b[i]).
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go reference implementation.
func AddSat32(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("fixvec: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fixmath.AddSat32(a[i], b[i])
	}
}
