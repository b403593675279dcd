package q15

import (
	"github.com/cwbudde/algo-fixpoint/dsp/noise"
	"github.com/cwbudde/algo-fixpoint/internal/fixmath"
)

// Rectify writes the absolute value of every sample into dst.
// |MinQ15| saturates to MaxQ15. Lengths must match.
func (b Buffer) Rectify(dst Buffer) {
	for i, v := range b.samples {
		dst.samples[i] = fixmath.AbsSat16(v)
	}
}

// RectifyInPlace replaces every sample with its absolute value.
func (b Buffer) RectifyInPlace() {
	b.Rectify(b)
}

// Reverse writes the samples in reversed order into dst. Lengths must match.
func (b Buffer) Reverse(dst Buffer) {
	n := len(b.samples)
	for i, v := range b.samples {
		dst.samples[n-1-i] = v
	}
}

// ReverseInPlace reverses the sample order within the buffer.
func (b Buffer) ReverseInPlace() {
	for i, j := 0, len(b.samples)-1; i < j; i, j = i+1, j-1 {
		b.samples[i], b.samples[j] = b.samples[j], b.samples[i]
	}
}

// Reciprocal writes the Q1.15 reciprocal of every sample into dst.
// The true reciprocal of any |x| < 1 lies outside [-1, 1), so results
// saturate unless x is exactly -1. Zero maps to MaxQ15 instead of
// trapping. Lengths must match.
func (b Buffer) Reciprocal(dst Buffer) {
	for i, v := range b.samples {
		dst.samples[i] = reciprocalSample(v)
	}
}

// ReciprocalInPlace replaces every sample with its Q1.15 reciprocal.
func (b Buffer) ReciprocalInPlace() {
	b.Reciprocal(b)
}

func reciprocalSample(v int16) int16 {
	if v == 0 {
		return fixmath.MaxQ15
	}
	// 1/(v/2^15) expressed in Q15 is 2^30/v.
	const oneQ30 = int64(1) << 30
	q := oneQ30 / int64(v)
	if q > fixmath.MaxQ15 {
		return fixmath.MaxQ15
	}
	if q < fixmath.MinQ15 {
		return fixmath.MinQ15
	}
	return int16(q)
}

// Negate writes the saturating negation of every sample into dst.
// Lengths must match.
func (b Buffer) Negate(dst Buffer) {
	for i, v := range b.samples {
		dst.samples[i] = fixmath.NegSat16(v)
	}
}

// NegateInPlace replaces every sample with its saturating negation.
func (b Buffer) NegateInPlace() {
	b.Negate(b)
}

// Noise fills the buffer with uniform pseudo-random values covering
// [-1, 1) in Q1.15. A nil src uses the process-wide noise.Default.
func (b Buffer) Noise(src *noise.Source) {
	if src == nil {
		src = noise.Default
	}
	for i := range b.samples {
		b.samples[i] = src.Int16()
	}
}

// NoiseRange fills the buffer with uniform pseudo-random values in
// [min, max). A nil src uses the process-wide noise.Default.
func (b Buffer) NoiseRange(src *noise.Source, min, max int16) {
	if src == nil {
		src = noise.Default
	}
	for i := range b.samples {
		b.samples[i] = src.Int16Range(min, max)
	}
}
