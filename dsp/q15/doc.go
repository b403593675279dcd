// Package q15 provides a 16-bit fixed-point (Q1.15) sample buffer and the
// saturating arithmetic, statistics, and convolution operations used on the
// primary audio path.
//
// Buffer is a non-owning view over contiguous int16 storage: a slice header
// that can be copied by value without duplicating samples. Views created
// with FromSlice or Sub alias their source storage; mutations through any
// view are visible through every other view of the same storage.
//
// All arithmetic saturates to the Q1.15 range [-32768, 32767] instead of
// wrapping, so output magnitude stays bounded on the real-time path. Size
// preconditions (matching operand lengths, destination capacity) are caller
// contracts, not checked errors: violating them panics via slice bounds or
// yields unspecified buffer contents. Operations never allocate outside the
// explicit construction paths and never block, so they are safe to call
// from a periodic audio callback.
package q15
