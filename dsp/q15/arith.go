package q15

import (
	"github.com/cwbudde/algo-fixpoint/internal/fixmath"
	"github.com/cwbudde/algo-fixpoint/internal/fixvec"
)

// Add writes the element-wise saturating sum of the buffer and operand2
// into dst. All three buffers must have the same length.
func (b Buffer) Add(operand2, dst Buffer) {
	fixvec.AddSat16(dst.samples, b.samples, operand2.samples)
}

// AddInPlace adds operand2 to the buffer element-wise, saturating.
func (b Buffer) AddInPlace(operand2 Buffer) {
	fixvec.AddSat16(b.samples, b.samples, operand2.samples)
}

// AddScalar adds scalar to every sample, saturating.
func (b Buffer) AddScalar(scalar int16) {
	for i, v := range b.samples {
		b.samples[i] = fixmath.AddSat16(v, scalar)
	}
}

// Subtract writes the element-wise saturating difference of the buffer and
// operand2 into dst. All three buffers must have the same length.
func (b Buffer) Subtract(operand2, dst Buffer) {
	for i, v := range b.samples {
		dst.samples[i] = fixmath.SubSat16(v, operand2.samples[i])
	}
}

// SubtractInPlace subtracts operand2 from the buffer element-wise, saturating.
func (b Buffer) SubtractInPlace(operand2 Buffer) {
	b.Subtract(operand2, b)
}

// SubtractScalar subtracts scalar from every sample, saturating.
func (b Buffer) SubtractScalar(scalar int16) {
	for i, v := range b.samples {
		b.samples[i] = fixmath.SubSat16(v, scalar)
	}
}

// Multiply writes the element-wise Q1.15 product of the buffer and operand2
// into dst: sat((a*b) >> 15). All three buffers must have the same length.
func (b Buffer) Multiply(operand2, dst Buffer) {
	for i, v := range b.samples {
		dst.samples[i] = fixmath.MulQ15(v, operand2.samples[i])
	}
}

// MultiplyInPlace multiplies the buffer by operand2 element-wise in the
// Q1.15 domain.
func (b Buffer) MultiplyInPlace(operand2 Buffer) {
	b.Multiply(operand2, b)
}

// MultiplyScalar multiplies every sample by scalar in the Q1.15 domain.
func (b Buffer) MultiplyScalar(scalar int16) {
	for i, v := range b.samples {
		b.samples[i] = fixmath.MulQ15(v, scalar)
	}
}

// Scale multiplies every sample by a Q1.15 factor, applies a further
// arithmetic shift to the Q2.30 intermediate product, and saturates the
// result back to Q1.15 into dst. Lengths must match.
func (b Buffer) Scale(factor int16, shift int8, dst Buffer) {
	for i, v := range b.samples {
		dst.samples[i] = scaleSample(v, factor, shift)
	}
}

// ScaleInPlace is the in-place form of Scale.
func (b Buffer) ScaleInPlace(factor int16, shift int8) {
	b.Scale(factor, shift, b)
}

func scaleSample(v, factor int16, shift int8) int16 {
	wide := int64(v) * int64(factor) // Q2.30
	if shift >= 0 {
		// |wide| <= 2^30, so shifts beyond 32 already saturate; clamping
		// here keeps the int64 intermediate from overflowing.
		s := uint(shift)
		if s > 32 {
			s = 32
		}
		wide <<= s
	} else {
		s := uint(-int(shift))
		if s > 62 {
			s = 62
		}
		wide >>= s
	}
	return fixmath.Sat16(int32(clampWide(wide >> 15)))
}

func clampWide(v int64) int64 {
	if v > fixmath.MaxQ31 {
		return fixmath.MaxQ31
	}
	if v < fixmath.MinQ31 {
		return fixmath.MinQ31
	}
	return v
}

// Clip clamps every sample into [-rng, rng].
func (b Buffer) Clip(rng int16) {
	b.ClipRange(fixmath.NegSat16(rng), rng)
}

// ClipRange clamps every sample into [min, max].
func (b Buffer) ClipRange(min, max int16) {
	for i, v := range b.samples {
		b.samples[i] = fixmath.Clamp16(v, min, max)
	}
}
