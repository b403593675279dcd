package q15

import (
	"github.com/cwbudde/algo-fixpoint/internal/fixvec"
)

// Buffer is a non-owning view over contiguous Q1.15 sample storage.
// Copying a Buffer copies the view, not the samples.
type Buffer struct {
	samples []int16
}

// New returns a Buffer over freshly allocated, zero-filled storage.
func New(length int) Buffer {
	if length < 0 {
		length = 0
	}
	return Buffer{samples: make([]int16, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []int16) Buffer {
	return Buffer{samples: s}
}

// Samples returns the underlying slice. This is both the element accessor
// (index and assign through it) and the raw-storage view for interop with
// code that expects a flat array.
func (b Buffer) Samples() []int16 {
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
func (b Buffer) Fill(v int16) {
	fixvec.Fill16(b.samples, v)
}

// Clear sets every sample to 0.
func (b Buffer) Clear() {
	b.Fill(0)
}

// CopyTo copies the buffer contents into dst. Lengths must match.
func (b Buffer) CopyTo(dst Buffer) {
	copy(dst.samples, b.samples)
}

// CopyToSlice copies the buffer contents into raw int16 storage.
// dst must hold at least Len() samples.
func (b Buffer) CopyToSlice(dst []int16) {
	copy(dst, b.samples)
}

// CopyFrom copies src contents into the buffer. Lengths must match.
func (b Buffer) CopyFrom(src Buffer) {
	copy(b.samples, src.samples)
}

// CopyFromSlice copies raw int16 storage into the buffer.
// src must hold at least Len() samples.
func (b Buffer) CopyFromSlice(src []int16) {
	copy(b.samples, src)
}

// Insert copies samples elements from the start of src to destOffset
// within the buffer.
func (b Buffer) Insert(src Buffer, destOffset, samples int) {
	copy(b.samples[destOffset:destOffset+samples], src.samples[:samples])
}

// InsertFrom copies samples elements starting at srcOffset of src to
// destOffset within the buffer.
func (b Buffer) InsertFrom(src Buffer, srcOffset, destOffset, samples int) {
	copy(b.samples[destOffset:destOffset+samples], src.samples[srcOffset:srcOffset+samples])
}

// Move copies length samples from fromIndex to toIndex within the buffer.
// Source and destination ranges may overlap.
func (b Buffer) Move(fromIndex, toIndex, length int) {
	copy(b.samples[toIndex:toIndex+length], b.samples[fromIndex:fromIndex+length])
}

// Shift shifts every sample left by bits positions (negative bits shift
// right arithmetically), saturating left shifts that would overflow.
func (b Buffer) Shift(bits int) {
	fixvec.ShiftSat16(b.samples, b.samples, bits)
}
