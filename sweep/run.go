package sweep

import (
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-jury"
	"github.com/timpalpant/go-jury/sampling"
)

// Observer is notified after each simulated batch.
type Observer interface {
	ObserveBatch(dist string, n, batchSize int, tally jury.Tally, elapsed time.Duration)
}

// Row is the accumulated result of one (distribution, n) cell.
type Row struct {
	Dist string
	N    int
	// Runs is the number of simulated juries.
	Runs   int
	Counts jury.Tally
}

// Run simulates every cell of the sweep, distributions in the outer loop
// and pool sizes in the inner loop. obs may be nil.
func Run(cfg *Config, obs Observer) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := sampling.NewSource(cfg.Seed)
	rows := make([]Row, 0, len(cfg.Distributions)*len(cfg.NValues))
	var exp *jury.Experiment
	for i, dc := range cfg.Distributions {
		dist, err := sampling.New(dc, src)
		if err != nil {
			return nil, errors.Wrapf(err, "distribution %d", i)
		}

		for _, n := range cfg.NValues {
			if exp == nil {
				exp = jury.NewExperiment(n, cfg.Policies, dist, cfg.BatchSize, src)
			} else {
				exp.Reset(n, dist)
			}

			rows = append(rows, runCell(cfg, exp, dist, n, obs))
		}
	}

	return rows, nil
}

func runCell(cfg *Config, exp *jury.Experiment, dist jury.CompetenceSampler, n int, obs Observer) Row {
	counts := make(jury.Tally, len(cfg.Policies))
	for _, p := range cfg.Policies {
		counts[p.Name] = 0
	}

	for i := 0; i < cfg.Iterations; i++ {
		if cfg.ProgressEvery > 0 && i%cfg.ProgressEvery == 0 {
			glog.Infof("%s, n=%d: Iteration %d", dist.Name(), n, i)
		}

		start := time.Now()
		tally := exp.Run()
		elapsed := time.Since(start)
		glog.V(1).Infof("%s, n=%d: batch %d tally %v in %v", dist.Name(), n, i, tally, elapsed)
		if obs != nil {
			obs.ObserveBatch(dist.Name(), n, cfg.BatchSize, tally, elapsed)
		}

		counts.Add(tally)
	}

	return Row{
		Dist:   dist.Name(),
		N:      n,
		Runs:   cfg.TotalRuns(),
		Counts: counts,
	}
}
