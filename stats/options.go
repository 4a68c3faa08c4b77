// SPDX-License-Identifier: MIT

package stats

import (
	"log/slog"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultSeed is the base seed used when WithSeed is not given.
const DefaultSeed int64 = 1

// Option customizes a Run. Option constructors panic on meaningless values;
// Run itself never panics.
type Option func(*config)

type config struct {
	seed     int64
	workers  int
	logger   *slog.Logger
	registry prometheus.Registerer
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:    DefaultSeed,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the base seed. Equal seeds give equal thresholds.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithWorkers bounds the number of trials simulated concurrently.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("stats: WithWorkers(k<1)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithLogger routes run and trial events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics registers trial collectors on reg. Collectors already present
// on reg are reused. Panics on nil.
func WithMetrics(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("stats: WithMetrics(nil)")
	}
	return func(c *config) {
		c.registry = reg
	}
}
