package q31

import (
	"github.com/cwbudde/algo-fixpoint/internal/fixvec"
)

// Buffer is a non-owning view over contiguous 32-bit fixed-point storage.
// Copying a Buffer copies the view, not the samples.
type Buffer struct {
	samples []int32
}

// New returns a Buffer over freshly allocated, zero-filled storage.
func New(length int) Buffer {
	if length < 0 {
		length = 0
	}
	return Buffer{samples: make([]int32, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []int32) Buffer {
	return Buffer{samples: s}
}

// Samples returns the underlying slice, for element access and raw-storage
// interop.
func (b Buffer) Samples() []int32 {
	return b.samples
}

// Len returns the number of samples in the view.
func (b Buffer) Len() int {
	return len(b.samples)
}

// Sub returns an aliasing view of length samples starting at offset.
// No samples are copied; the view must not outlive the storage it aliases.
func (b Buffer) Sub(offset, length int) Buffer {
	return Buffer{samples: b.samples[offset : offset+length]}
}

// Equal reports whether b and other have the same length and identical
// sample sequences.
func (b Buffer) Equal(other Buffer) bool {
	if len(b.samples) != len(other.samples) {
		return false
	}
	for i, v := range b.samples {
		if v != other.samples[i] {
			return false
		}
	}
	return true
}

// Fill sets every sample to v.
func (b Buffer) Fill(v int32) {
	fixvec.Fill32(b.samples, v)
}

// Clear sets every sample to 0.
func (b Buffer) Clear() {
	b.Fill(0)
}

// Add writes the element-wise saturating sum of the buffer and operand2
// into dst. All three buffers must have the same length.
func (b Buffer) Add(operand2, dst Buffer) {
	fixvec.AddSat32(dst.samples, b.samples, operand2.samples)
}

// AddInPlace adds operand2 to the buffer element-wise, saturating.
func (b Buffer) AddInPlace(operand2 Buffer) {
	fixvec.AddSat32(b.samples, b.samples, operand2.samples)
}

// Shift shifts every sample left by bits positions (negative bits shift
// right arithmetically), saturating left shifts that would overflow.
func (b Buffer) Shift(bits int) {
	fixvec.ShiftSat32(b.samples, b.samples, bits)
}
