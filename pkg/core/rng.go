package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It is the only source of randomness used during world generation and is not
// safe for concurrent use.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p. Values outside [0, 1] are clamped.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// IntRange returns a uniform integer in [lo, hi). It returns lo when the range
// is empty.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Child derives an independent generator from r. Deriving children in a fixed
// order yields the same children for the same parent seed.
func (r *RNG) Child() *RNG {
	return NewRNG(int64(r.IntRange(0, 1000000)))
}

// Shuffle permutes s in place and returns it.
func Shuffle[T any](r *RNG, s []T) []T {
	r.r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s
}

// Pick returns a uniformly chosen element of s. ok is false when s is empty.
func Pick[T any](r *RNG, s []T) (item T, ok bool) {
	if len(s) == 0 {
		return item, false
	}
	return s[r.r.IntN(len(s))], true
}
