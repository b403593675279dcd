// Package cpu reports SIMD capabilities of the current processor.
//
// The buffer kernels in this module are selected at build time (see
// internal/fixvec), never at runtime, so this package exists purely for
// diagnostics: the bufinfo command prints what the hardware could offer a
// vectorized kernel build.
package cpu

import "sync"

// Features describes the SIMD capabilities relevant to fixed-point
// block kernels.
type Features struct {
	HasSSE2 bool // x86-64 baseline 128-bit integer SIMD
	HasAVX2 bool // 256-bit integer SIMD
	HasNEON bool // ARM Advanced SIMD

	Architecture string // runtime.GOARCH
}

var (
	detected   Features
	detectOnce sync.Once
)

// DetectFeatures returns the CPU features of the current system.
// Detection runs once and is cached; safe for concurrent use.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}
