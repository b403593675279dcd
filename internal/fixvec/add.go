//go:build !purego

package fixvec

import "github.com/cwbudde/algo-fixpoint/internal/fixmath"

// AddSat16 performs element-wise saturating addition: dst[i] = sat(a[i] + b[i]).
// Slices must have equal length. Panics if lengths differ.
// Processes 4 elements per iteration with a scalar tail.
func AddSat16(dst, a, b []int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("fixvec: slice length mismatch")
	}
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = fixmath.AddSat16(a[i], b[i])
		dst[i+1] = fixmath.AddSat16(a[i+1], b[i+1])
		dst[i+2] = fixmath.AddSat16(a[i+2], b[i+2])
		dst[i+3] = fixmath.AddSat16(a[i+3], b[i+3])
	}
	for ; i < len(dst); i++ {
		dst[i] = fixmath.AddSat16(a[i], b[i])
	}
}

// AddSat32 performs element-wise saturating addition: dst[i] = sat(a[i] + b[i]).
// Slices must have equal length. Panics if lengths differ.
// Processes 4 elements per iteration with a scalar tail.
func AddSat32(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("fixvec: slice length mismatch")
	}
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = fixmath.AddSat32(a[i], b[i])
		dst[i+1] = fixmath.AddSat32(a[i+1], b[i+1])
		dst[i+2] = fixmath.AddSat32(a[i+2], b[i+2])
		dst[i+3] = fixmath.AddSat32(a[i+3], b[i+3])
	}
	for ; i < len(dst); i++ {
		dst[i] = fixmath.AddSat32(a[i], b[i])
	}
}
