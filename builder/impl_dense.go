// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_dense.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star:     n ≥ 2, hub is node 1; emits 1 → j then j → 1 for j=2..n.
//   • Complete: n ≥ 1, every ordered pair (i, j) with i ≠ j, i asc then j asc.
//     Complete(1) is a single dangling node.
//
// Complexity:
//   • Star O(n) edges; Complete O(n²) edges.

package builder

import "fmt"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
	hubNode          = 1
)

// Star returns a Constructor for a bidirectional star around node 1.
func Star(n int) Constructor {
	return func(e *Emitter) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		e.Grow(n)
		for j := hubNode + 1; j <= n; j++ {
			e.Link(hubNode, j)
			e.Link(j, hubNode)
		}

		return nil
	}
}

// Complete returns a Constructor for the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(e *Emitter) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		e.Grow(n)
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				if i != j {
					e.Link(i, j)
				}
			}
		}

		return nil
	}
}
