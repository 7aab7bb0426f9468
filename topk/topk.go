// Package topk measures how far an approximate rank vector is from the
// exact one on the K nodes ranked highest.
//
// For every K the evaluator sums |exact[i] − approx[i]| over the top-K
// indices and reports the total and the per-node average (total / K).
//
// Ordering is by the APPROXIMATE vector by default: the metric is the error
// on the nodes the approximation itself considers important. ByExact ranks
// by the exact vector instead; it is opt-in and never implied.
package topk

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyVector is returned when the vectors have no entries.
	ErrEmptyVector = errors.New("topk: empty rank vector")

	// ErrLengthMismatch is returned when exact and approx differ in length.
	ErrLengthMismatch = errors.New("topk: vector length mismatch")

	// ErrBadK is returned when a requested K is < 1 or > N.
	ErrBadK = errors.New("topk: K must be in [1, N]")

	// ErrUnknownRanking is returned by ParseRanking for unknown names.
	ErrUnknownRanking = errors.New("topk: unknown ranking")
)

// Ranking selects which vector orders the nodes.
type Ranking int

const (
	// ByApprox orders nodes by the approximate vector (default).
	ByApprox Ranking = iota
	// ByExact orders nodes by the exact vector.
	ByExact
)

// String returns "approx" or "exact".
func (r Ranking) String() string {
	switch r {
	case ByApprox:
		return "approx"
	case ByExact:
		return "exact"
	default:
		return fmt.Sprintf("Ranking(%d)", int(r))
	}
}

// ParseRanking maps "approx" / "exact" to a Ranking.
func ParseRanking(name string) (Ranking, error) {
	switch name {
	case "approx", "":
		return ByApprox, nil
	case "exact":
		return ByExact, nil
	default:
		return 0, fmt.Errorf("ranking %q: %w", name, ErrUnknownRanking)
	}
}

// Result is the error for one K.
type Result struct {
	K       int
	Total   float64
	Average float64
}

// Option configures Evaluate.
type Option func(*options)

type options struct {
	ranking Ranking
}

// WithRanking selects the ordering vector. Panics on unknown values.
func WithRanking(r Ranking) Option {
	if r != ByApprox && r != ByExact {
		panic("topk: WithRanking: unknown ranking")
	}
	return func(o *options) { o.ranking = r }
}

// Order returns node indices sorted by v descending; ties keep the lower
// index first, so the order is deterministic.
// Complexity: O(N log N).
func Order(v []float64) []int {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return v[idx[a]] > v[idx[b]]
	})

	return idx
}

// Evaluate computes the top-K error of approx against exact for every K in
// ks, in the order given. All Ks are validated before any work is done.
// Complexity: O(N log N + Σ K).
func Evaluate(exact, approx []float64, ks []int, opts ...Option) ([]Result, error) {
	if len(exact) == 0 {
		return nil, fmt.Errorf("Evaluate: %w", ErrEmptyVector)
	}
	if len(exact) != len(approx) {
		return nil, fmt.Errorf("Evaluate: len(exact)=%d len(approx)=%d: %w", len(exact), len(approx), ErrLengthMismatch)
	}
	n := len(exact)
	for _, k := range ks {
		if k < 1 || k > n {
			return nil, fmt.Errorf("Evaluate: K=%d N=%d: %w", k, n, ErrBadK)
		}
	}
	o := options{ranking: ByApprox}
	for _, opt := range opts {
		opt(&o)
	}

	ranked := approx
	if o.ranking == ByExact {
		ranked = exact
	}
	order := Order(ranked)

	out := make([]Result, 0, len(ks))
	for _, k := range ks {
		var total float64
		for _, i := range order[:k] {
			total += math.Abs(exact[i] - approx[i])
		}
		out = append(out, Result{K: k, Total: total, Average: total / float64(k)})
	}

	return out, nil
}
