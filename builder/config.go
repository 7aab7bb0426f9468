// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng        = nil    (pure/deterministic unless seeded)
//   • selfLoops  = false

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Allow i → i edges in RandomSparse.
	selfLoops bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		selfLoops: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
