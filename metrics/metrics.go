// Package metrics records sweep progress in a private Prometheus registry.
//
// The harness runs as a batch job without a server, so collected metrics
// are written once at the end in the text exposition format, suitable for
// the node exporter textfile collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/timpalpant/go-jury"
)

// Collector implements sweep.Observer using Prometheus collectors.
type Collector struct {
	registry        *prometheus.Registry
	instances       *prometheus.CounterVec
	majorityCorrect *prometheus.CounterVec
	batchDuration   *prometheus.HistogramVec
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Collector{
		registry: reg,
		instances: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jury_instances_simulated_total",
				Help: "Total number of simulated jury instances.",
			},
			[]string{"dist", "n"},
		),
		majorityCorrect: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jury_majority_correct_total",
				Help: "Simulated instances in which the top-k majority was correct.",
			},
			[]string{"dist", "n", "policy"},
		),
		batchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jury_batch_duration_seconds",
				Help:    "Time to simulate and score one batch.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"dist"},
		),
	}
}

// ObserveBatch records the outcome of one simulated batch.
func (c *Collector) ObserveBatch(dist string, n, batchSize int, tally jury.Tally, elapsed time.Duration) {
	nLabel := strconv.Itoa(n)
	c.instances.WithLabelValues(dist, nLabel).Add(float64(batchSize))
	for policy, count := range tally {
		c.majorityCorrect.WithLabelValues(dist, nLabel, policy).Add(float64(count))
	}

	c.batchDuration.WithLabelValues(dist).Observe(elapsed.Seconds())
}

// Registry returns the registry holding the collected metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all collected metrics to path.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}

	return nil
}
