// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_ring.go - Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3, links i → i+1 for i=1..n-1 and n → 1.
//   • Path:  n ≥ 2, links i → i+1 for i=1..n-1; node n has no out-links.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) edges. Space: O(1) extra.
//
// Determinism:
//   • Edge emission order by increasing i.

package builder

import "fmt"

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor for the directed ring C_n.
func Cycle(n int) Constructor {
	return func(e *Emitter) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		e.Grow(n)
		for i := 1; i <= n; i++ {
			e.Link(i, i%n+1)
		}

		return nil
	}
}

// Path returns a Constructor for the directed path P_n.
func Path(n int) Constructor {
	return func(e *Emitter) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		e.Grow(n)
		for i := 1; i < n; i++ {
			e.Link(i, i+1)
		}

		return nil
	}
}
