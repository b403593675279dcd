// Package q31 provides a 32-bit fixed-point sample buffer used for
// higher-precision accumulation and intermediate results.
//
// Buffer carries the same non-owning view semantics and lifecycle contract
// as the q15 package but deliberately exposes a reduced surface: fill,
// equality, raw access, saturating add, and saturating shift. Statistics,
// convolution, and the unary transforms live on the narrow Q1.15 path only.
package q31
