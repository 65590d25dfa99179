package jury

import (
	"github.com/timpalpant/go-jury/internal/vec"
)

// BestKAccuracies returns the number of instances in the batch for which
// a strict majority of the k most competent experts answered correctly.
//
// The top-k experts are the last k rows of the batch. The majority test is
// sum > k/2 in real arithmetic, so for even k a tie is not a majority.
// If k exceeds the number of experts, all rows vote but the threshold
// is still k/2. The caller must ensure 1 <= k <= b.NumExperts().
func BestKAccuracies(b *Batch, k int) int {
	counts := make([]int32, b.numInstances)
	return bestKAccuracies(b, k, counts)
}

// bestKAccuracies is BestKAccuracies using counts as scratch space.
// len(counts) must equal b.numInstances.
func bestKAccuracies(b *Batch, k int, counts []int32) int {
	vec.Zero(counts)
	start := b.numExperts - k
	if start < 0 {
		start = 0
	}

	for r := start; r < b.numExperts; r++ {
		vec.AddUint8(counts, b.Row(r))
	}

	return vec.CountAbove(counts, float64(k)/2)
}
