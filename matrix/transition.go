// SPDX-License-Identifier: MIT

// Package matrix - column-stochastic transition matrix & its loader.
//
// Purpose:
//   - Turn an edge list over ids 1..N into M where M[d, s] = 1/outdeg(s)
//     for every link s → d (0-based indices).
//   - Keep the dangling column policy explicit (options.go).
//   - Keep a per-column neighbor index (ascending rows) for O(1) sampling.
//
// Determinism:
//   - Neighbor lists are sorted ascending after loading, independent of
//     edge order in the source.
//
// Complexity quicksheet:
//   - Build: O(N² + E log E) time, O(N² + E) memory.
//   - At/OutDegree/Neighbors/Dangling: O(1); Column: O(N); MulVec: O(N²).

package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvrank/edgelist"
)

const (
	methodBuild  = "Build"
	methodMulVec = "MulVec"
)

// pairKey is an ordered (source, destination) pair of 0-based indices used
// to detect repeated links.
type pairKey struct {
	u int // source column index
	v int // destination row index
}

// Transition is an immutable N×N column-stochastic matrix.
//   - m holds the values; column j is node j's out-distribution.
//   - neighbors[j] lists the destination rows of node j in ascending order.
//   - dangling[j] is true when node j has no out-links.
type Transition struct {
	n             int
	m             *mat.Dense
	neighbors     [][]int
	dangling      []bool
	danglingCount int
	edges         int
	policy        DanglingPolicy
}

// Build consumes src and returns the transition matrix for n nodes.
//
// Implementation:
//   - Stage 1: validate n and src.
//   - Stage 2: stream edges; range-check ids; apply duplicate policy.
//   - Stage 3: apply the dangling policy to zero out-degree columns.
//   - Stage 4: normalize every linked column by its out-degree.
//
// Errors:
//   - ErrBadNodeCount, ErrNilSource, ErrNodeOutOfRange, ErrDuplicateEdge,
//     ErrDanglingNode, or the source's own error, all wrapped with context.
//
// Complexity: O(N² + E log E) time, O(N² + E) memory.
func Build(src edgelist.Source, n int, opts ...Option) (*Transition, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrBadNodeCount)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilSource)
	}
	o := gatherOptions(opts...)

	neighbors := make([][]int, n)
	seen := make(map[pairKey]struct{})
	edges := 0
	for {
		e, ok := src.Next()
		if !ok {
			break
		}
		if e.From < 1 || e.From > n || e.To < 1 || e.To > n {
			return nil, fmt.Errorf("%s: edge %s outside [1,%d]: %w", methodBuild, e, n, ErrNodeOutOfRange)
		}
		key := pairKey{u: e.From - 1, v: e.To - 1}
		if _, dup := seen[key]; dup {
			if o.duplicates == DuplicateReject {
				return nil, fmt.Errorf("%s: edge %s: %w", methodBuild, e, ErrDuplicateEdge)
			}
			continue
		}
		seen[key] = struct{}{}
		neighbors[key.u] = append(neighbors[key.u], key.v)
		edges++
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	t := &Transition{
		n:         n,
		m:         mat.NewDense(n, n, nil),
		neighbors: neighbors,
		dangling:  make([]bool, n),
		edges:     edges,
		policy:    o.dangling,
	}

	uniform := 1.0 / float64(n)
	for j := 0; j < n; j++ {
		col := neighbors[j]
		if len(col) == 0 {
			t.dangling[j] = true
			t.danglingCount++
			switch o.dangling {
			case DanglingReject:
				return nil, fmt.Errorf("%s: node %d has no out-links: %w", methodBuild, j+1, ErrDanglingNode)
			case DanglingUniform:
				for i := 0; i < n; i++ {
					t.m.Set(i, j, uniform)
				}
			}
			continue
		}
		sort.Ints(col)
		w := 1.0 / float64(len(col))
		for _, i := range col {
			t.m.Set(i, j, w)
		}
	}

	return t, nil
}

// N returns the node count.
func (t *Transition) N() int { return t.n }

// Edges returns the number of distinct links loaded.
func (t *Transition) Edges() int { return t.edges }

// Policy returns the dangling policy the matrix was built with.
func (t *Transition) Policy() DanglingPolicy { return t.policy }

// At returns M[i, j]. Indices are 0-based; panics when out of range, as
// gonum does.
func (t *Transition) At(i, j int) float64 { return t.m.At(i, j) }

// Column returns a copy of column j.
// Complexity: O(N).
func (t *Transition) Column(j int) []float64 {
	return mat.Col(nil, j, t.m)
}

// OutDegree returns the number of distinct out-links of node j.
func (t *Transition) OutDegree(j int) int { return len(t.neighbors[j]) }

// Neighbors returns the ascending destination indices of node j.
// The slice is shared; callers MUST NOT modify it.
func (t *Transition) Neighbors(j int) []int { return t.neighbors[j] }

// Dangling reports whether node j has no out-links.
func (t *Transition) Dangling(j int) bool { return t.dangling[j] }

// DanglingCount returns the number of zero out-degree nodes.
func (t *Transition) DanglingCount() int { return t.danglingCount }

// Dense exposes M as a read-only gonum matrix for linear-algebra callers.
func (t *Transition) Dense() mat.Matrix { return t.m }

// MulVec computes dst = M·src. Both slices must have length N and must not
// alias.
// Complexity: O(N²).
func (t *Transition) MulVec(dst, src []float64) error {
	if len(dst) != t.n || len(src) != t.n {
		return fmt.Errorf("%s: len(dst)=%d len(src)=%d n=%d: %w",
			methodMulVec, len(dst), len(src), t.n, ErrDimensionMismatch)
	}
	out := mat.NewVecDense(t.n, dst)
	out.MulVec(t.m, mat.NewVecDense(t.n, src))

	return nil
}
