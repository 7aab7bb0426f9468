// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvrank/matrix"
)

var (
	// ErrNilTransition indicates that NewSampler got a nil matrix.
	ErrNilTransition = errors.New("montecarlo: nil transition")

	// ErrBadWalks indicates a walk count < 1.
	ErrBadWalks = errors.New("montecarlo: walks per node must be >= 1")
)

// Estimate is the outcome of one sampling run.
type Estimate struct {
	// Rank is τ · Hits / (N · Walks).
	Rank []float64

	// Hits are the raw visit counters per node.
	Hits []int64

	// Steps is the total number of link-following moves.
	Steps int64

	// Walks is the per-node walk count used.
	Walks int
}

// Sampler runs Monte Carlo walks over a fixed Transition.
// A Sampler holds no mutable state and may be reused for several walk
// counts; each walk count is reproducible on its own.
type Sampler struct {
	t   *matrix.Transition
	cfg samplerConfig
}

// NewSampler binds t and resolves options.
func NewSampler(t *matrix.Transition, opts ...Option) (*Sampler, error) {
	if t == nil {
		return nil, fmt.Errorf("NewSampler: %w", ErrNilTransition)
	}

	return &Sampler{t: t, cfg: newSamplerConfig(opts...)}, nil
}

// Seed returns the resolved base seed.
func (s *Sampler) Seed() int64 { return s.cfg.seed }

// Estimate runs `walks` walks from every node and normalizes the hits.
func (s *Sampler) Estimate(walks int) (Estimate, error) {
	return s.EstimateContext(context.Background(), walks)
}

// EstimateContext is Estimate with cancellation. Workers check ctx between
// start nodes; on cancellation no partial estimate is returned.
func (s *Sampler) EstimateContext(ctx context.Context, walks int) (Estimate, error) {
	if walks < 1 {
		return Estimate{}, fmt.Errorf("Estimate: walks=%d: %w", walks, ErrBadWalks)
	}

	n := s.t.N()
	workers := min(s.cfg.workers, n)
	partHits := make([][]int64, workers)
	partSteps := make([]int64, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		partHits[w] = make([]int64, n)
		g.Go(func() error {
			steps, err := s.walkRange(gctx, lo, hi, walks, partHits[w])
			partSteps[w] = steps
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Estimate{}, fmt.Errorf("EstimateContext: %w", err)
	}

	est := Estimate{Hits: partHits[0], Steps: partSteps[0], Walks: walks}
	for w := 1; w < workers; w++ {
		for i, h := range partHits[w] {
			est.Hits[i] += h
		}
		est.Steps += partSteps[w]
	}

	scale := s.cfg.teleport / float64(n*walks)
	est.Rank = make([]float64, n)
	for i, h := range est.Hits {
		est.Rank[i] = float64(h) * scale
	}

	return est, nil
}

// walkRange runs the walks of start nodes [lo, hi) into hits and returns
// the number of moves taken, or ctx.Err() once ctx is done.
func (s *Sampler) walkRange(ctx context.Context, lo, hi, walks int, hits []int64) (int64, error) {
	var (
		n      = s.t.N()
		tau    = s.cfg.teleport
		absorb = s.t.Policy() == matrix.DanglingAbsorb
		steps  int64
	)
	for c := lo; c < hi; c++ {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		rng := nodeRNG(s.cfg.seed, c)
		for r := 0; r < walks; r++ {
			cur := c
			if s.cfg.startVisit {
				hits[cur]++
			}
			for rng.Float64() >= tau {
				if s.t.Dangling(cur) {
					if absorb {
						break
					}
					cur = rng.IntN(n)
				} else {
					nb := s.t.Neighbors(cur)
					cur = nb[rng.IntN(len(nb))]
				}
				hits[cur]++
				steps++
			}
		}
	}

	return steps, nil
}
