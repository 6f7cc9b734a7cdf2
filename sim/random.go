package sim

import "math/rand"

// RandSource is the single pseudo-random source behind spawn jitter, vertical
// placement and every other randomized choice. *rand.Rand satisfies it.
type RandSource interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// NewRand returns a seeded math/rand source
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// uniform draws from [lo, hi). An inverted or empty range yields lo.
func uniform(r RandSource, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// uniformInt draws an integer from [lo, hi] inclusive
func uniformInt(r RandSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(r.Float64()*float64(hi-lo+1))
	if n > hi {
		n = hi
	}
	return n
}

// chance returns true with probability p
func chance(r RandSource, p float64) bool {
	return r.Float64() < p
}
