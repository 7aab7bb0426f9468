// SPDX-License-Identifier: MIT
// Package: lvrank/montecarlo
//
// options.go - functional options for the sampler.
//
// Contract (strict):
//   • Options are functional (type Option func(*samplerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Sampling itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package montecarlo

import "math/rand/v2"

// Defaults (named, no magic numbers).
const (
	DefaultTeleport   = 0.2
	DefaultWorkers    = 1
	DefaultStartVisit = true
)

// samplerConfig aggregates all sampler knobs. Resolved once in NewSampler.
type samplerConfig struct {
	teleport   float64    // τ ∈ (0,1)
	seed       int64      // base seed for per-node streams
	base       *rand.Rand // when non-nil, seed is drawn from it once
	workers    int        // >= 1
	startVisit bool       // credit the start node before the first step
}

// Option customizes a Sampler.
type Option func(*samplerConfig)

// WithTeleport sets τ. Panics unless 0 < τ < 1.
func WithTeleport(tau float64) Option {
	if !(tau > 0 && tau < 1) {
		panic("montecarlo: WithTeleport(tau) requires 0 < tau < 1")
	}
	return func(c *samplerConfig) {
		c.teleport = tau
	}
}

// WithSeed fixes the base seed. Use this in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *samplerConfig) {
		c.seed = seed
		c.base = nil
	}
}

// WithRand injects an RNG; NewSampler draws the base seed from it once.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("montecarlo: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.base = r
	}
}

// WithWorkers sets the number of parallel walkers. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("montecarlo: WithWorkers(k<1)")
	}
	return func(c *samplerConfig) {
		c.workers = k
	}
}

// WithStartVisit toggles crediting the start node of every walk.
func WithStartVisit(on bool) Option {
	return func(c *samplerConfig) {
		c.startVisit = on
	}
}

// newSamplerConfig applies opts over deterministic defaults (last wins).
// Complexity: O(len(opts)).
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		teleport:   DefaultTeleport,
		seed:       defaultRNGSeed,
		workers:    DefaultWorkers,
		startVisit: DefaultStartVisit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.base != nil {
		cfg.seed = cfg.base.Int64()
		cfg.base = nil
	}

	return cfg
}
