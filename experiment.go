package jury

import (
	"math/rand/v2"
	"slices"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat/distuv"
)

// Tally counts, per k-policy name, the simulated instances in which
// the majority of the top-k experts was correct.
type Tally map[string]int

// Add accumulates the counts of other into t.
func (t Tally) Add(other Tally) {
	for name, count := range other {
		t[name] += count
	}
}

// Experiment simulates batches of juries with n experts each.
// Buffers are reused between calls to Run and Reset, so an Experiment
// is not safe for concurrent use.
type Experiment struct {
	n         int
	batchSize int
	policies  []KPolicy
	ks        []int
	dist      CompetenceSampler
	src       rand.Source

	// Competencies are stored instance-major ([instance][expert]) so
	// that each jury can be sorted in place.
	competencies []Competence
	batch        *Batch
	counts       []int32
}

// NewExperiment prepares an experiment over juries of n experts whose
// competencies are drawn from dist. The jury size of every policy is
// resolved once, up front.
func NewExperiment(n int, policies []KPolicy, dist CompetenceSampler, batchSize int, src rand.Source) *Experiment {
	e := &Experiment{
		batchSize: batchSize,
		policies:  policies,
		ks:        make([]int, len(policies)),
		src:       src,
		batch:     &Batch{},
	}

	e.Reset(n, dist)
	return e
}

// Reset switches the experiment to juries of n experts drawn from dist,
// keeping its policies, batch size and random source. Buffers grow in
// place and are reused when they are already large enough.
func (e *Experiment) Reset(n int, dist CompetenceSampler) {
	e.n = n
	e.dist = dist
	for i, p := range e.policies {
		e.ks[i] = p.K(n)
	}

	e.competencies = extendFloat64(e.competencies, n*e.batchSize)
	e.batch.resize(n, e.batchSize)
	e.counts = extendInt32(e.counts, e.batchSize)
	glog.V(2).Infof("%s, n=%d: %d competencies (capacity %d), k=%v",
		dist.Name(), n, len(e.competencies), cap(e.competencies), e.ks)
}

// Run simulates one batch and scores it under every policy.
func (e *Experiment) Run() Tally {
	e.sample()

	result := make(Tally, len(e.policies))
	for i, p := range e.policies {
		result[p.Name] = bestKAccuracies(e.batch, e.ks[i], e.counts)
	}

	return result
}

// sample draws the competencies of every jury in the batch, orders each
// jury by ascending competence and draws one Bernoulli outcome per expert.
func (e *Experiment) sample() {
	e.dist.Sample(e.competencies)
	for i := 0; i < e.batchSize; i++ {
		jury := e.competencies[i*e.n : (i+1)*e.n]
		slices.Sort(jury)
		for r, p := range jury {
			correct := distuv.Bernoulli{P: p, Src: e.src}.Rand()
			e.batch.Set(r, i, correct == 1)
		}
	}
}

// RunExperiment simulates a single batch of batchSize juries of n experts
// and returns the number of majority-correct instances for each policy.
func RunExperiment(n int, policies []KPolicy, dist CompetenceSampler, batchSize int, src rand.Source) Tally {
	return NewExperiment(n, policies, dist, batchSize, src).Run()
}
