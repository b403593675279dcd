package q15

import "github.com/cwbudde/algo-fixpoint/internal/fixmath"

// Convolve writes the full linear convolution of the buffer and operand2
// into dst. dst must hold at least Len()+operand2.Len()-1 samples.
//
// Each output sample is the Q2.30 sum of products accumulated in 64 bits,
// shifted back to Q1.15 and saturated. This is the direct O(N*M) form;
// on the narrow fixed-point path there is no transform-domain shortcut.
func (b Buffer) Convolve(operand2, dst Buffer) {
	b.ConvolvePartial(operand2, dst, 0, len(b.samples)+len(operand2.samples)-1)
}

// ConvolvePartial computes only the output samples in
// [offset, offset+samples) of the full convolution, leaving every other
// destination position untouched. The computed samples are identical to
// the corresponding slice of a full convolution. Behavior is undefined if
// offset+samples exceeds the destination length.
func (b Buffer) ConvolvePartial(operand2, dst Buffer, offset, samples int) {
	a := b.samples
	k := operand2.samples
	for n := offset; n < offset+samples; n++ {
		var acc int64
		jLo := n - len(a) + 1
		if jLo < 0 {
			jLo = 0
		}
		jHi := n
		if jHi > len(k)-1 {
			jHi = len(k) - 1
		}
		for j := jLo; j <= jHi; j++ {
			acc += int64(a[n-j]) * int64(k[j])
		}
		dst.samples[n] = fixmath.Sat16(int32(clampWide(acc >> 15)))
	}
}

// Correlate writes the cross-correlation of the buffer and operand2 into
// dst, zeroing dst first. dst must hold at least
// 2*max(Len(), operand2.Len())-1 samples.
func (b Buffer) Correlate(operand2, dst Buffer) {
	dst.Clear()
	b.CorrelateInitialized(operand2, dst)
}

// CorrelateInitialized accumulates the cross-correlation of the buffer and
// operand2 into dst, which the caller must have zero-filled beforehand.
// Accumulating into an already-populated destination sums correlations
// across segments. dst must hold at least 2*max(Len(), operand2.Len())-1
// samples.
//
// Correlation is convolution with operand2 reversed in time: output index
// m+n receives the product of samples m of the buffer and len2-1-n of
// operand2.
func (b Buffer) CorrelateInitialized(operand2, dst Buffer) {
	a := b.samples
	o := operand2.samples
	len2 := len(o)
	for n := 0; n < len(a)+len2-1; n++ {
		var acc int64
		jLo := n - len(a) + 1
		if jLo < 0 {
			jLo = 0
		}
		jHi := n
		if jHi > len2-1 {
			jHi = len2 - 1
		}
		for j := jLo; j <= jHi; j++ {
			acc += int64(a[n-j]) * int64(o[len2-1-j])
		}
		dst.samples[n] = fixmath.AddSat16(dst.samples[n], fixmath.Sat16(int32(clampWide(acc>>15))))
	}
}
