package sampling

import (
	"math/rand/v2"
)

// NewSource returns a PCG random source. A zero seed draws a fresh
// seed from the global generator, so unseeded runs differ.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return rand.NewPCG(seed, seed)
}
