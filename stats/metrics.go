// SPDX-License-Identifier: MIT

package stats

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the collectors updated once per finished trial.
// A nil *metrics is valid and records nothing.
type metrics struct {
	trials    prometheus.Counter
	threshold prometheus.Histogram
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "percolate",
			Name:      "trials_total",
			Help:      "Completed percolation trials.",
		}),
		threshold: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "percolate",
			Name:      "threshold",
			Help:      "Fraction of open sites at the moment the grid percolated.",
			Buckets:   prometheus.LinearBuckets(0.40, 0.02, 20),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "percolate",
			Name:      "trial_duration_seconds",
			Help:      "Wall time of a single trial.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	m.trials = register(reg, m.trials)
	m.threshold = register(reg, m.threshold)
	m.duration = register(reg, m.duration)

	return m
}

// register adds c to reg, returning the collector already registered under
// the same descriptor when there is one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}

	return c
}

func (m *metrics) observe(threshold, seconds float64) {
	if m == nil {
		return
	}
	m.trials.Inc()
	m.threshold.Observe(threshold)
	m.duration.Observe(seconds)
}
