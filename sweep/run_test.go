package sweep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/go-jury"
	"github.com/timpalpant/go-jury/sampling"
)

type recordingObserver struct {
	batches int
	cells   map[string]int
}

func (r *recordingObserver) ObserveBatch(dist string, n, batchSize int, tally jury.Tally, elapsed time.Duration) {
	r.batches++
	r.cells[dist] += batchSize
}

func smallConfig() *Config {
	return &Config{
		BatchSize:     1000,
		Iterations:    3,
		ProgressEvery: 1,
		NValues:       []int{3, 7},
		Distributions: []sampling.Config{
			{Name: "perfect", Kind: sampling.ConstantKind, Value: 1},
			{Name: "hopeless", Kind: sampling.ConstantKind, Value: 0},
		},
		Policies: []jury.KPolicy{
			{Name: "const1", Kind: jury.ConstK, Value: 1},
			{Name: "n/2", Kind: jury.PowK, Scale: .5, Exponent: 1},
		},
		OutputDir: "unused",
		Seed:      1,
	}
}

func TestRun_DegenerateDistributions(t *testing.T) {
	obs := &recordingObserver{cells: make(map[string]int)}
	rows, err := Run(smallConfig(), obs)
	require.NoError(t, err)

	expected := []Row{
		{Dist: "perfect", N: 3, Runs: 3000, Counts: jury.Tally{"const1": 3000, "n/2": 3000}},
		{Dist: "perfect", N: 7, Runs: 3000, Counts: jury.Tally{"const1": 3000, "n/2": 3000}},
		{Dist: "hopeless", N: 3, Runs: 3000, Counts: jury.Tally{"const1": 0, "n/2": 0}},
		{Dist: "hopeless", N: 7, Runs: 3000, Counts: jury.Tally{"const1": 0, "n/2": 0}},
	}
	assert.Equal(t, expected, rows)
	assert.Equal(t, 12, obs.batches)
	assert.Equal(t, map[string]int{"perfect": 6000, "hopeless": 6000}, obs.cells)
}

func TestRun_NilObserver(t *testing.T) {
	rows, err := Run(smallConfig(), nil)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

// Cells share one experiment, so later cells must not see state left
// behind by a larger pool.
func TestRun_ShrinkingPools(t *testing.T) {
	const p = 0.7
	cfg := smallConfig()
	cfg.BatchSize = 4000
	cfg.Iterations = 5
	cfg.NValues = []int{9, 3, 1}
	cfg.Distributions = []sampling.Config{{Kind: sampling.ConstantKind, Value: p}}

	rows, err := Run(cfg, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i, n := range cfg.NValues {
		assert.Equal(t, n, rows[i].N)
		for _, pol := range cfg.Policies {
			k := pol.K(n)
			got := float64(rows[i].Counts[pol.Name]) / float64(rows[i].Runs)
			assert.InDelta(t, jury.MajorityProbability(k, p), got, 0.02, "n=%d, %s (k=%d)", n, pol.Name, k)
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Policies = append(cfg.Policies, jury.KPolicy{Name: "const5", Kind: jury.ConstK, Value: 5})
	_, err := Run(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `k-policy "const5" selects k=5 experts for n=3`)
}

func TestRun_InvalidDistribution(t *testing.T) {
	cfg := smallConfig()
	cfg.Distributions = []sampling.Config{{Kind: sampling.UniformKind, Min: .9, Max: .1}}
	_, err := Run(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distribution 0")
}

func TestRun_Reproducible(t *testing.T) {
	cfg := smallConfig()
	cfg.Distributions = []sampling.Config{{Kind: sampling.BetaKind, Alpha: 2, Beta: 2}}
	cfg.Seed = 1234

	a, err := Run(cfg, nil)
	require.NoError(t, err)
	b, err := Run(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// A homogeneous jury reproduces the Condorcet jury probability.
func TestRun_MatchesCondorcet(t *testing.T) {
	const p = 0.7
	cfg := &Config{
		BatchSize:  20000,
		Iterations: 10,
		NValues:    []int{9},
		Distributions: []sampling.Config{
			{Kind: sampling.ConstantKind, Value: p},
		},
		Policies: []jury.KPolicy{
			{Name: "const1", Kind: jury.ConstK, Value: 1},
			{Name: "const3", Kind: jury.ConstK, Value: 3},
			{Name: "n^.4", Kind: jury.PowK, Exponent: .4},
			{Name: "all", Kind: jury.ConstK, Value: 9},
		},
		OutputDir: "unused",
		Seed:      42,
	}

	rows, err := Run(cfg, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	for _, pol := range cfg.Policies {
		k := pol.K(9)
		got := float64(rows[0].Counts[pol.Name]) / float64(rows[0].Runs)
		assert.InDelta(t, jury.MajorityProbability(k, p), got, 0.01, "%s (k=%d)", pol.Name, k)
	}
}
