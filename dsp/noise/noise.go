// Package noise provides the pseudo-random source used for noise fill.
//
// Source is a 32-bit linear congruential generator with the classic audio
// codec constants, cheap enough for per-sample use on a real-time path.
// A process-wide Default source exists for convenience; callers that need
// reproducible output should own a Source and seed it themselves, or call
// Seed before the first fill. The Default source is initialized once and
// never reset automatically.
package noise

// Source is a deterministic pseudo-random generator.
// The zero value is a valid source with seed 0.
type Source struct {
	seed int32
}

// NewSource returns a Source starting from the given seed.
func NewSource(seed int32) *Source {
	return &Source{seed: seed}
}

// Seed resets the source to the given seed.
func (s *Source) Seed(seed int32) {
	s.seed = seed
}

// Next advances the generator and returns the next 32-bit state.
// All other outputs are derived from this value.
func (s *Source) Next() int32 {
	s.seed = s.seed*196314165 + 907633515
	return s.seed
}

// Int16 returns the next value as an int16, uniformly distributed over
// the full Q1.15 range [-32768, 32767], i.e. [-1, 1) in Q15.
func (s *Source) Int16() int16 {
	return int16(s.Next() >> 16)
}

// Int16Range returns the next value uniformly distributed in [min, max).
// min must be less than max.
func (s *Source) Int16Range(min, max int16) int16 {
	span := uint32(int32(max) - int32(min))
	v := uint32(s.Next()) % span
	return int16(int32(min) + int32(v))
}

// Default is the process-wide source consulted when callers pass no
// explicit generator.
var Default = NewSource(0)

// Seed reseeds the process-wide Default source for deterministic tests.
func Seed(seed int32) {
	Default.Seed(seed)
}
