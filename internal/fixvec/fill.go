//go:build !purego

package fixvec

// Fill16 sets every element of dst to v.
// Processes 4 elements per iteration with a scalar tail.
func Fill16(dst []int16, v int16) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

// Fill32 sets every element of dst to v.
// Processes 4 elements per iteration with a scalar tail.
func Fill32(dst []int32, v int32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}
