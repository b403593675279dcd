//go:build purego

package fixvec

// Implementation names the kernel variant compiled into this binary.
func Implementation() string {
	return "purego"
}
