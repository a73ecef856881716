package core

import "math/rand/v2"

// Random is the subset of a random source the game logic draws from.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func Chance(src Random, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}

// IntRange returns a uniform int in [lo, hi].
func IntRange(src Random, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
