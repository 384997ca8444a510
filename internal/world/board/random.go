package board

import (
	"math/rand"
	"time"
)

// RandomSource draws uniform integers from a half-open range.
// IntRange is only called with lo < hi.
type RandomSource interface {
	IntRange(lo, hi int) int
}

// RandSource is a RandomSource backed by math/rand. Not safe for concurrent use.
type RandSource struct {
	rng  *rand.Rand
	seed int64
}

// NewRandSource creates a RandSource for the given seed (0 = use current time)
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// IntRange returns a uniform integer in [lo, hi)
func (s *RandSource) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

// Seed returns the seed actually used, so time-seeded boards can be replayed
func (s *RandSource) Seed() int64 {
	return s.seed
}

// intRange short-circuits empty ranges instead of asking the source for them
func intRange(src RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return src.IntRange(lo, hi)
}
