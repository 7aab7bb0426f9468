package topk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/topk"
)

// TestEvaluate_IdenticalVectors: zero error for every K.
func TestEvaluate_IdenticalVectors(t *testing.T) {
	v := []float64{0.1, 0.4, 0.2, 0.3}
	res, err := topk.Evaluate(v, v, []int{1, 2, 4})
	require.NoError(t, err)
	require.Len(t, res, 3)
	for _, r := range res {
		assert.Zero(t, r.Total, "K=%d", r.K)
		assert.Zero(t, r.Average, "K=%d", r.K)
	}
}

// TestEvaluate_Totals checks sums and averages by hand.
func TestEvaluate_Totals(t *testing.T) {
	exact := []float64{0.40, 0.30, 0.20, 0.10}
	approx := []float64{0.10, 0.35, 0.50, 0.05} // approx order: 2, 1, 0, 3

	res, err := topk.Evaluate(exact, approx, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.InDelta(t, 0.30, res[0].Total, 1e-12)
	require.InDelta(t, 0.35, res[1].Total, 1e-12)
	require.InDelta(t, 0.65, res[2].Total, 1e-12)
	require.InDelta(t, 0.70, res[3].Total, 1e-12)
	require.InDelta(t, 0.35/2, res[1].Average, 1e-12)
	require.Equal(t, 3, res[2].K)
}

// TestEvaluate_RankingAsymmetry pins that the default ranks by the
// approximation, and that ranking by the exact vector selects another set.
func TestEvaluate_RankingAsymmetry(t *testing.T) {
	exact := []float64{0.50, 0.30, 0.20}  // exact order: 0, 1, 2
	approx := []float64{0.45, 0.25, 0.30} // approx order: 0, 2, 1

	byApprox, err := topk.Evaluate(exact, approx, []int{2})
	require.NoError(t, err)
	require.InDelta(t, 0.15, byApprox[0].Total, 1e-12) // nodes 0, 2

	byExact, err := topk.Evaluate(exact, approx, []int{2}, topk.WithRanking(topk.ByExact))
	require.NoError(t, err)
	require.InDelta(t, 0.10, byExact[0].Total, 1e-12) // nodes 0, 1

	// Over all N nodes the two orders agree.
	byApprox, err = topk.Evaluate(exact, approx, []int{3})
	require.NoError(t, err)
	byExact, err = topk.Evaluate(exact, approx, []int{3}, topk.WithRanking(topk.ByExact))
	require.NoError(t, err)
	require.InDelta(t, byExact[0].Total, byApprox[0].Total, 1e-12)
}

// TestOrder_TiesStable keeps lower indices first among equal values.
func TestOrder_TiesStable(t *testing.T) {
	require.Equal(t, []int{1, 3, 0, 2}, topk.Order([]float64{0.1, 0.5, 0.1, 0.5}))
	require.Empty(t, topk.Order(nil))
}

// TestEvaluate_Errors covers each failure kind.
func TestEvaluate_Errors(t *testing.T) {
	v := []float64{0.5, 0.5}
	_, err := topk.Evaluate(nil, nil, []int{1})
	require.ErrorIs(t, err, topk.ErrEmptyVector)
	_, err = topk.Evaluate(v, []float64{1}, []int{1})
	require.ErrorIs(t, err, topk.ErrLengthMismatch)
	_, err = topk.Evaluate(v, v, []int{1, 3})
	require.ErrorIs(t, err, topk.ErrBadK)
	_, err = topk.Evaluate(v, v, []int{0})
	require.ErrorIs(t, err, topk.ErrBadK)

	r, err := topk.ParseRanking("exact")
	require.NoError(t, err)
	require.Equal(t, "exact", r.String())
	_, err = topk.ParseRanking("true")
	require.ErrorIs(t, err, topk.ErrUnknownRanking)
	require.Panics(t, func() { topk.WithRanking(topk.Ranking(5)) })
}
