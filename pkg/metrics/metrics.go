// Package metrics exposes generator counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theory-cloud/idtheory"
)

// StatsSource is the part of a generator the collector reads on each
// scrape. A *idtheory.LockedFlaker satisfies it.
type StatsSource interface {
	Stats() idtheory.Stats
	Worker() idtheory.WorkerID
}

// Collector reads a generator's counters on each scrape.
type Collector struct {
	source StatsSource

	generated           *prometheus.Desc
	clockRegressions    *prometheus.Desc
	sequenceExhaustions *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a Collector labeled with the generator's worker
// identifier.
func NewCollector(source StatsSource) *Collector {
	labels := prometheus.Labels{"worker": source.Worker().String()}
	return &Collector{
		source: source,
		generated: prometheus.NewDesc(
			"idtheory_ids_generated_total",
			"Total number of IDs generated.",
			nil, labels,
		),
		clockRegressions: prometheus.NewDesc(
			"idtheory_clock_regressions_total",
			"Total number of draws rejected because the clock ran backwards.",
			nil, labels,
		),
		sequenceExhaustions: prometheus.NewDesc(
			"idtheory_sequence_exhaustions_total",
			"Total number of draws rejected because a millisecond ran out of sequence numbers.",
			nil, labels,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.generated
	ch <- c.clockRegressions
	ch <- c.sequenceExhaustions
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.generated, prometheus.CounterValue, float64(stats.Generated))
	ch <- prometheus.MustNewConstMetric(c.clockRegressions, prometheus.CounterValue, float64(stats.ClockRegressions))
	ch <- prometheus.MustNewConstMetric(c.sequenceExhaustions, prometheus.CounterValue, float64(stats.SequenceExhaustions))
}

// Register attaches a collector for src to reg.
func Register(reg prometheus.Registerer, src StatsSource) {
	reg.MustRegister(NewCollector(src))
}
