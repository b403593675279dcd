//go:build !purego

package fixvec

import "github.com/cwbudde/algo-fixpoint/internal/fixmath"

// ShiftSat16 shifts every element of src left by bits positions into dst,
// saturating on overflow; negative bits shift right arithmetically.
// Slices must have equal length. Panics if lengths differ.
// Processes 4 elements per iteration with a scalar tail.
func ShiftSat16(dst, src []int16, bits int) {
	if len(dst) != len(src) {
		panic("fixvec: slice length mismatch")
	}
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = fixmath.ShiftSat16(src[i], bits)
		dst[i+1] = fixmath.ShiftSat16(src[i+1], bits)
		dst[i+2] = fixmath.ShiftSat16(src[i+2], bits)
		dst[i+3] = fixmath.ShiftSat16(src[i+3], bits)
	}
	for ; i < len(dst); i++ {
		dst[i] = fixmath.ShiftSat16(src[i], bits)
	}
}

// ShiftSat32 shifts every element of src left by bits positions into dst,
// saturating on overflow; negative bits shift right arithmetically.
// Slices must have equal length. Panics if lengths differ.
// Processes 4 elements per iteration with a scalar tail.
func ShiftSat32(dst, src []int32, bits int) {
	if len(dst) != len(src) {
		panic("fixvec: slice length mismatch")
	}
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = fixmath.ShiftSat32(src[i], bits)
		dst[i+1] = fixmath.ShiftSat32(src[i+1], bits)
		dst[i+2] = fixmath.ShiftSat32(src[i+2], bits)
		dst[i+3] = fixmath.ShiftSat32(src[i+3], bits)
	}
	for ; i < len(dst); i++ {
		dst[i] = fixmath.ShiftSat32(src[i], bits)
	}
}
