package core

import "math/rand"

// RandomSource produces uniformly distributed floats in [0, 1)
type RandomSource interface {
	Float64() float64
}

// RandomStream is a seeded, restartable pseudorandom sequence
type RandomStream struct {
	seed   int64
	random *rand.Rand
}

// NewRandomStream creates a stream that always yields the same sequence for the same seed
func NewRandomStream(seed int64) *RandomStream {
	return &RandomStream{
		seed:   seed,
		random: rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was created with
func (s *RandomStream) Seed() int64 {
	return s.seed
}

// Float64 returns the next value in [0, 1)
func (s *RandomStream) Float64() float64 {
	return s.random.Float64()
}

// Reset restarts the stream from its seed
func (s *RandomStream) Reset() {
	s.random = rand.New(rand.NewSource(s.seed))
}

// Take returns the next n values of the stream
func (s *RandomStream) Take(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = s.Float64()
	}
	return values
}

// Jitter returns an offset in [-0.5, 0.5)
func Jitter(random RandomSource) float64 {
	return random.Float64() - 0.5
}

// FixedSequence replays a fixed list of values, cycling when exhausted.
// An empty sequence always yields 0.5.
type FixedSequence struct {
	Values []float64
	next   int
}

// NewFixedSequence creates a sequence over values
func NewFixedSequence(values ...float64) *FixedSequence {
	return &FixedSequence{Values: values}
}

// Float64 returns the next value of the sequence
func (f *FixedSequence) Float64() float64 {
	if len(f.Values) == 0 {
		return 0.5
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
