// Package prng supplies a seedable, injectable pseudo-random source for the
// biased engines. Neither the treap nor the skip list binds to a
// process-wide generator; both take a Source at construction, so tests can
// substitute a deterministic sequence instead of a live generator.
package prng

import "math/rand"

// Source produces the two shapes of randomness the biased engines need:
// a uniform float in [0,1) for priority/height sampling, and a bounded int
// for anything that needs a coin flip or a modulus.
type Source interface {
	// Float64 returns a pseudo-random number in [0,1).
	Float64() float64
	// Intn returns a pseudo-random number in [0,n).
	Intn(n int) int
}

// mathRandSource adapts *rand.Rand to Source.
type mathRandSource struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically with seed. Two Sources
// built from the same seed produce identical sequences.
func New(seed int64) Source {
	return &mathRandSource{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandSource) Float64() float64 {
	return m.r.Float64()
}

func (m *mathRandSource) Intn(n int) int {
	return m.r.Intn(n)
}

// Fixed returns a Source that always yields the given float and always
// returns 0 from Intn. Useful for pinning a single priority/height value in
// a test without standing up a full sequence.
func Fixed(f float64) Source {
	return fixedSource{f: f}
}

type fixedSource struct {
	f float64
}

func (f fixedSource) Float64() float64 { return f.f }
func (f fixedSource) Intn(int) int     { return 0 }

// Sequence returns a Source that replays the given floats in order, then
// repeats the final value forever. Intn always returns 0. Useful for
// pinning an exact priority/height sequence across several inserts in a
// test.
func Sequence(values ...float64) Source {
	if len(values) == 0 {
		return Fixed(0)
	}
	return &sequenceSource{values: values}
}

type sequenceSource struct {
	values []float64
	i      int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}

func (s *sequenceSource) Intn(int) int { return 0 }
