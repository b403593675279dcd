//go:build purego

package fixvec

import "github.com/cwbudde/algo-fixpoint/internal/fixmath"

// ShiftSat16 shifts every element of src left by bits positions into dst,
// saturating on overflow; negative bits shift right arithmetically.
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go reference implementation.
func ShiftSat16(dst, src []int16, bits int) {
	if len(dst) != len(src) {
		panic("fixvec: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fixmath.ShiftSat16(src[i], bits)
	}
}

// ShiftSat32 shifts every element of src left by bits positions into dst,
// saturating on overflow; negative bits shift right arithmetically.
// Slices must have equal length. Panics if lengths differ.
// This is the pure Go reference implementation.
func ShiftSat32(dst, src []int32, bits int) {
	if len(dst) != len(src) {
		panic("fixvec: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fixmath.ShiftSat32(src[i], bits)
	}
}
