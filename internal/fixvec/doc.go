// Package fixvec contains the fixed-point block kernels behind the buffer
// packages' fill, add, and shift operations.
//
// Two implementations exist behind identical signatures, selected at build
// time: the default build uses 4-way unrolled loops, and the purego build
// tag selects plain scalar reference loops. Both produce bit-exact results;
// the unrolled variant exists purely as the accelerated code path, so
// swapping builds never changes numeric behavior.
package fixvec
