// SPDX-License-Identifier: MIT

package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/percolation"
)

const (
	methodRun = "Run"

	// z95 is the two-sided 95% normal quantile.
	z95 = 1.96

	// cancelCheckInterval is how many Open calls a trial makes between
	// context checks.
	cancelCheckInterval = 4096
)

// Result holds the per-trial thresholds of a Run and their summary statistics.
type Result struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
}

// Run performs trials independent experiments on an n×n grid.
// Returns ErrInvalidSize if n ≤ 0, ErrInvalidTrials if trials ≤ 0, and the
// context error if ctx is done before every trial finished.
// Complexity: O(trials · n² · α(n²)) time, O(workers · n² + trials) memory.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRun, n, ErrInvalidSize)
	}
	if trials < 1 {
		return nil, fmt.Errorf("%s: trials=%d: %w", methodRun, trials, ErrInvalidTrials)
	}
	cfg := newConfig(opts...)
	m := newMetrics(cfg.registry)
	log := cfg.logger.With(slog.Int("n", n), slog.Int("trials", trials))
	log.Info("percolation run started", slog.Int64("seed", cfg.seed), slog.Int("workers", cfg.workers))

	start := time.Now()
	thresholds := make([]float64, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			t0 := time.Now()
			th, err := runTrial(gctx, n, trialRNG(cfg.seed, i))
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			thresholds[i] = th
			m.observe(th, time.Since(t0).Seconds())
			log.Debug("trial finished", slog.Int("trial", i), slog.Float64("threshold", th))

			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// The loop may have stopped scheduling without any trial failing.
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("percolation run aborted", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	res := newResult(n, thresholds)
	log.Info("percolation run finished",
		slog.Float64("mean", res.mean),
		slog.Float64("stddev", res.stddev),
		slog.Duration("elapsed", time.Since(start)))

	return res, nil
}

// runTrial opens random sites of a fresh grid until it percolates and returns
// the open fraction.
func runTrial(ctx context.Context, n int, rng *rand.Rand) (float64, error) {
	grid, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	for step := 0; !grid.Percolates(); step++ {
		if step%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if err := grid.Open(1+rng.Intn(n), 1+rng.Intn(n)); err != nil {
			return 0, err
		}
	}

	return float64(grid.NumberOfOpenSites()) / float64(n*n), nil
}

func newResult(n int, thresholds []float64) *Result {
	r := &Result{n: n, thresholds: thresholds}

	var sum float64
	for _, x := range thresholds {
		sum += x
	}
	r.mean = sum / float64(len(thresholds))

	// Sample deviation is undefined for a single observation.
	if len(thresholds) < 2 {
		r.stddev = math.NaN()
		return r
	}
	var ss float64
	for _, x := range thresholds {
		d := x - r.mean
		ss += d * d
	}
	r.stddev = math.Sqrt(ss / float64(len(thresholds)-1))

	return r
}

// N returns the grid size the trials ran on.
func (r *Result) N() int { return r.n }

// Trials returns the number of completed trials.
func (r *Result) Trials() int { return len(r.thresholds) }

// Thresholds returns a copy of the per-trial open fractions, in trial order.
func (r *Result) Thresholds() []float64 {
	out := make([]float64, len(r.thresholds))
	copy(out, r.thresholds)

	return out
}

// Mean returns the sample mean of the percolation threshold.
func (r *Result) Mean() float64 { return r.mean }

// Stddev returns the sample standard deviation of the threshold (n−1
// denominator); NaN when only one trial ran.
func (r *Result) Stddev() float64 { return r.stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (r *Result) ConfidenceLo() float64 {
	return r.mean - r.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (r *Result) ConfidenceHi() float64 {
	return r.mean + r.halfWidth()
}

func (r *Result) halfWidth() float64 {
	return z95 * r.stddev / math.Sqrt(float64(len(r.thresholds)))
}
