package core

import "math/rand/v2"

// Rand is the single seedable random source threaded through a match.
// Every randomized operation takes it explicitly so runs can be replayed.
type Rand struct {
	src *rand.Rand
}

// NewRand creates a generator from a seed.
func NewRand(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))} //#nosec G115 G404 -- gameplay RNG
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.IntN(n)
}

// IntRange returns a value in [min, max], both inclusive.
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.IntN(max-min+1)
}

// Range returns a value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return min + (max-min)*r.src.Float64()
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.src.Float64() < p
}

// Bool returns true or false with equal probability.
func (r *Rand) Bool() bool {
	return r.src.IntN(2) == 1
}

// Sign returns -1 or 1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.Bool() {
		return 1
	}
	return -1
}
