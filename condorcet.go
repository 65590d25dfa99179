package jury

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MajorityProbability returns the exact probability that a strict majority
// of k independent experts, each correct with probability p, is correct.
// This is the Condorcet jury probability for a homogeneous jury.
func MajorityProbability(k int, p float64) float64 {
	switch {
	case k <= 0:
		return 0
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}

	b := distuv.Binomial{N: float64(k), P: p}
	return 1 - b.CDF(math.Floor(float64(k)/2))
}
