//go:build purego

package fixvec

// Fill16 sets every element of dst to v.
// This is the pure Go reference implementation.
func Fill16(dst []int16, v int16) {
	for i := range dst {
		dst[i] = v
	}
}

// Fill32 sets every element of dst to v.
// This is the pure Go reference implementation.
func Fill32(dst []int32, v int32) {
	for i := range dst {
		dst[i] = v
	}
}
