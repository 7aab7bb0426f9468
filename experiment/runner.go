// SPDX-License-Identifier: MIT

// Package experiment wires the loader, both solvers and the evaluator into
// one reproducible run: build M once, solve it exactly, then for every walk
// count sample an estimate and score its top-K error against the exact
// vector.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvrank/config"
	"github.com/katalvlaran/lvrank/edgelist"
	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/montecarlo"
	"github.com/katalvlaran/lvrank/power"
	"github.com/katalvlaran/lvrank/report"
	"github.com/katalvlaran/lvrank/topk"
)

// ErrNilReporter is returned by Run when no Reporter is set.
var ErrNilReporter = errors.New("experiment: nil reporter")

// Runner executes one experiment. Config must be valid (config.Load).
type Runner struct {
	Config   config.Config
	Logger   zerolog.Logger
	Reporter report.Reporter

	// now is swapped in tests.
	now func() time.Time
}

// Sample is one Monte Carlo run and its evaluation.
type Sample struct {
	Walks    int
	Seed     int64
	Duration time.Duration
	Estimate montecarlo.Estimate
	Errors   []topk.Result
}

// Summary is everything Run computed.
type Summary struct {
	Transition    *matrix.Transition
	Exact         power.Result
	ExactDuration time.Duration
	Samples       []Sample
}

// Run reads src, builds M and executes the experiment. Every result is
// handed to the Reporter as soon as it is available.
func (r *Runner) Run(src edgelist.Source) (Summary, error) {
	return r.RunContext(context.Background(), src)
}

// RunContext is Run with cancellation of the sampling stage. Results
// already reported stay reported; the returned error wraps ctx.Err().
func (r *Runner) RunContext(ctx context.Context, src edgelist.Source) (Summary, error) {
	if r.Reporter == nil {
		return Summary{}, fmt.Errorf("Run: %w", ErrNilReporter)
	}
	cfg := r.Config
	log := r.Logger.With().Int("nodes", cfg.Nodes).Logger()
	now := r.now
	if now == nil {
		now = time.Now
	}

	start := now()
	t, err := matrix.Build(src, cfg.Nodes, cfg.MatrixOptions()...)
	if err != nil {
		return Summary{}, fmt.Errorf("Run: %w", err)
	}
	log.Debug().
		Int("edges", t.Edges()).
		Int("dangling", t.DanglingCount()).
		Str("policy", t.Policy().String()).
		Dur("elapsed", now().Sub(start)).
		Msg("transition matrix built")
	for _, k := range cfg.TopK {
		if k > t.N() {
			return Summary{}, fmt.Errorf("Run: K=%d N=%d: %w", k, t.N(), topk.ErrBadK)
		}
	}

	start = now()
	exact, err := power.Solve(t, cfg.PowerOptions())
	if err != nil {
		return Summary{}, fmt.Errorf("Run: %w", err)
	}
	sum := Summary{Transition: t, Exact: exact, ExactDuration: now().Sub(start)}
	log.Debug().
		Int("iterations", exact.Iterations).
		Float64("residual", exact.Residual).
		Msg("power iteration done")

	if err := r.Reporter.Exact(report.ExactRun{
		Duration:   sum.ExactDuration,
		Iterations: exact.Iterations,
		Residual:   exact.Residual,
		Converged:  exact.Converged,
		Rank:       exact.Rank,
	}); err != nil {
		return Summary{}, fmt.Errorf("Run: report exact: %w", err)
	}

	for i, walks := range cfg.Walks {
		s, err := r.sample(ctx, t, exact.Rank, i, walks, now)
		if err != nil {
			return Summary{}, fmt.Errorf("Run: walks=%d: %w", walks, err)
		}
		sum.Samples = append(sum.Samples, s)
		log.Debug().Int("walks", walks).Int64("steps", s.Estimate.Steps).Msg("sampling done")

		if err := r.Reporter.Sampled(report.SampledRun{
			Walks:    walks,
			Seed:     s.Seed,
			Duration: s.Duration,
			Steps:    s.Estimate.Steps,
			Errors:   s.Errors,
		}); err != nil {
			return Summary{}, fmt.Errorf("Run: report walks=%d: %w", walks, err)
		}
	}
	log.Info().Int("runs", len(sum.Samples)).Msg("experiment finished")

	return sum, nil
}

// sample runs the run-th walk count and scores it.
func (r *Runner) sample(ctx context.Context, t *matrix.Transition, exact []float64, run, walks int, now func() time.Time) (Sample, error) {
	seed := montecarlo.RunSeed(r.Config.Seed, run)
	s, err := montecarlo.NewSampler(t, r.Config.SamplerOptions(seed)...)
	if err != nil {
		return Sample{}, err
	}

	start := now()
	est, err := s.EstimateContext(ctx, walks)
	if err != nil {
		return Sample{}, err
	}
	elapsed := now().Sub(start)

	var errs []topk.Result
	if len(r.Config.TopK) > 0 {
		errs, err = topk.Evaluate(exact, est.Rank, r.Config.TopK, r.Config.TopKOptions()...)
		if err != nil {
			return Sample{}, err
		}
	}

	return Sample{Walks: walks, Seed: seed, Duration: elapsed, Estimate: est, Errors: errs}, nil
}

