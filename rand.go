package groebner

import "math/rand/v2"

// RandSource supplies the uniform choices made while reducing and selecting pairs.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	// IntN returns a uniform integer in [0, n). n > 0.
	IntN(n int) int
}

// NewRand returns a reproducible PCG-backed source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
