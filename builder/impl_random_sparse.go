// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: include each ordered pair (i,j)
//     independently with prob p; self-loops only under WithSelfLoops(true).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - e.Rand() must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n nodes with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(e *Emitter) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := e.Rand()
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		e.Grow(n)
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				if i == j && !e.SelfLoops() {
					continue
				}
				switch {
				case p == probMin:
				case p == probMax:
					e.Link(i, j)
				case rng.Float64() < p:
					e.Link(i, j)
				}
			}
		}

		return nil
	}
}
