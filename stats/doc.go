// SPDX-License-Identifier: MIT

// Package stats estimates the percolation threshold by Monte Carlo simulation.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random sites
// (repeats allowed) until the grid percolates, and records the fraction of
// open sites. Run aggregates the sample mean, the sample standard deviation
// and a 95% confidence interval mean ± 1.96·s/√T.
//
// Trials run on a bounded worker pool. Every trial owns its grid and an RNG
// stream derived from (seed, trial index), so a fixed seed reproduces the
// same thresholds regardless of worker count or scheduling.
//
// Options:
//
//   - WithSeed:    base seed (default DefaultSeed).
//   - WithWorkers: pool size (default runtime.GOMAXPROCS(0)).
//   - WithLogger:  *slog.Logger for run/trial events (default: discard).
//   - WithMetrics: prometheus.Registerer for trial counters and histograms.
//
// Errors:
//
//   - ErrInvalidSize:   n ≤ 0.
//   - ErrInvalidTrials: trials ≤ 0.
//   - context errors from cancellation, wrapped.
package stats
