// Package fixmath provides scalar fixed-point arithmetic helpers shared by
// the Q15 and Q31 buffer packages.
//
// All helpers saturate to the representable range of the target format
// instead of wrapping. Saturation keeps output magnitude bounded on the
// real-time path without branching into error handling.
package fixmath

// Q15 format limits.
const (
	MaxQ15 = 32767
	MinQ15 = -32768
)

// Q31 format limits.
const (
	MaxQ31 = 2147483647
	MinQ31 = -2147483648
)

// Sat16 saturates a 32-bit value to the int16 range.
func Sat16(v int32) int16 {
	if v > MaxQ15 {
		return MaxQ15
	}
	if v < MinQ15 {
		return MinQ15
	}
	return int16(v)
}

// Sat32 saturates a 64-bit value to the int32 range.
func Sat32(v int64) int32 {
	if v > MaxQ31 {
		return MaxQ31
	}
	if v < MinQ31 {
		return MinQ31
	}
	return int32(v)
}

// AddSat16 returns a+b saturated to the int16 range.
func AddSat16(a, b int16) int16 {
	return Sat16(int32(a) + int32(b))
}

// SubSat16 returns a-b saturated to the int16 range.
func SubSat16(a, b int16) int16 {
	return Sat16(int32(a) - int32(b))
}

// AddSat32 returns a+b saturated to the int32 range.
func AddSat32(a, b int32) int32 {
	return Sat32(int64(a) + int64(b))
}

// MulQ15 returns the Q1.15 product of a and b: (a*b) >> 15, saturated.
// Saturation only triggers for a == b == MinQ15.
func MulQ15(a, b int16) int16 {
	return Sat16((int32(a) * int32(b)) >> 15)
}

// NegSat16 returns -a saturated to the int16 range, so that
// NegSat16(MinQ15) == MaxQ15 instead of wrapping.
func NegSat16(a int16) int16 {
	return Sat16(-int32(a))
}

// AbsSat16 returns |a| saturated to the int16 range.
func AbsSat16(a int16) int16 {
	if a < 0 {
		return NegSat16(a)
	}
	return a
}

// Clamp16 limits v to the inclusive range [min, max].
func Clamp16(v, min, max int16) int16 {
	if min > max {
		min, max = max, min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ShiftSat16 shifts v left by bits positions (arithmetic right shift for
// negative bits), saturating left shifts that would overflow int16.
func ShiftSat16(v int16, bits int) int16 {
	if bits == 0 {
		return v
	}
	if bits < 0 {
		if bits <= -16 {
			bits = -15
		}
		return int16(v >> uint(-bits))
	}
	if bits >= 16 {
		if v > 0 {
			return MaxQ15
		}
		if v < 0 {
			return MinQ15
		}
		return 0
	}
	return Sat16(int32(v) << uint(bits))
}

// ShiftSat32 shifts v left by bits positions (arithmetic right shift for
// negative bits), saturating left shifts that would overflow int32.
func ShiftSat32(v int32, bits int) int32 {
	if bits == 0 {
		return v
	}
	if bits < 0 {
		if bits <= -32 {
			bits = -31
		}
		return v >> uint(-bits)
	}
	if bits >= 32 {
		if v > 0 {
			return MaxQ31
		}
		if v < 0 {
			return MinQ31
		}
		return 0
	}
	return Sat32(int64(v) << uint(bits))
}

// Sqrt64 returns the integer square root of v, the largest s with s*s <= v.
// Negative inputs return 0.
func Sqrt64(v int64) int64 {
	if v <= 0 {
		return 0
	}

	// Digit-by-digit method over bit pairs.
	var res int64
	bit := int64(1) << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}
