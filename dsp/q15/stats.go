package q15

import "github.com/cwbudde/algo-fixpoint/internal/fixmath"

// Min returns the minimum sample value and the index of its first
// occurrence. The buffer must not be empty.
func (b Buffer) Min() (int16, int) {
	value := b.samples[0]
	index := 0
	for i, v := range b.samples {
		if v < value {
			value = v
			index = i
		}
	}
	return value, index
}

// Max returns the maximum sample value and the index of its first
// occurrence. The buffer must not be empty.
func (b Buffer) Max() (int16, int) {
	value := b.samples[0]
	index := 0
	for i, v := range b.samples {
		if v > value {
			value = v
			index = i
		}
	}
	return value, index
}

// MinValue returns the minimum sample value.
func (b Buffer) MinValue() int16 {
	v, _ := b.Min()
	return v
}

// MaxValue returns the maximum sample value.
func (b Buffer) MaxValue() int16 {
	v, _ := b.Max()
	return v
}

// MinIndex returns the index of the first occurrence of the minimum value.
func (b Buffer) MinIndex() int {
	_, i := b.Min()
	return i
}

// MaxIndex returns the index of the first occurrence of the maximum value.
func (b Buffer) MaxIndex() int {
	_, i := b.Max()
	return i
}

// Power returns the sum of squared samples as a Q2.30-scaled 64-bit
// accumulator. The wide accumulator keeps long buffers from overflowing.
func (b Buffer) Power() int64 {
	var acc int64
	for _, v := range b.samples {
		acc += int64(v) * int64(v)
	}
	return acc
}

// Mean returns the arithmetic mean of the samples in Q1.15.
// Returns 0 for an empty buffer.
func (b Buffer) Mean() int16 {
	n := len(b.samples)
	if n == 0 {
		return 0
	}
	var sum int64
	for _, v := range b.samples {
		sum += int64(v)
	}
	return int16(sum / int64(n))
}

// Rms returns the root mean square of the samples in Q1.15.
// Returns 0 for an empty buffer.
func (b Buffer) Rms() int16 {
	n := len(b.samples)
	if n == 0 {
		return 0
	}
	// Mean square is Q2.30; its integer square root is Q1.15.
	return fixmath.Sat16(int32(fixmath.Sqrt64(b.Power() / int64(n))))
}

// Variance returns the sample variance (n-1 divisor) expressed in Q1.15.
// Returns 0 for buffers with fewer than two samples.
func (b Buffer) Variance() int16 {
	return fixmath.Sat16(int32(clampWide(b.varianceQ30() >> 15)))
}

// StandardDeviation returns the sample standard deviation in Q1.15.
// Returns 0 for buffers with fewer than two samples.
func (b Buffer) StandardDeviation() int16 {
	return fixmath.Sat16(int32(fixmath.Sqrt64(b.varianceQ30())))
}

// varianceQ30 returns the sample variance in the Q2.30 domain.
func (b Buffer) varianceQ30() int64 {
	n := int64(len(b.samples))
	if n < 2 {
		return 0
	}
	var sum, sumSq int64
	for _, v := range b.samples {
		sum += int64(v)
		sumSq += int64(v) * int64(v)
	}
	return (sumSq - sum*sum/n) / (n - 1)
}
