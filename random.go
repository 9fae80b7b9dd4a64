package landscape

import (
	"math/rand/v2"
)

// seedMix decorrelates the second PCG word from the first.
const seedMix = 0x9e3779b97f4a7c15

// NewRand returns a generator seeded deterministically from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}

// keyedRand returns a generator seeded from an integer layout key. Layouts
// that must reproduce the same draws for the same parameters use one of
// these instead of the session stream.
func keyedRand(key int64) *rand.Rand {
	return NewRand(uint64(key)) // #nosec G115 -- bit pattern reuse is intended
}

// randRange returns a value in [lo, lo+n); n <= 0 yields lo.
func randRange(r *rand.Rand, lo, n int) int {
	if n <= 0 {
		return lo
	}
	return lo + r.IntN(n)
}

// randInclusive returns a value in [lo, hi].
func randInclusive(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// randUniform returns a value in [lo, hi).
func randUniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
