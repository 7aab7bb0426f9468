// Package builder_test contains functional tests for the topology
// constructors, verifying node counts, edge sets and determinism.
package builder_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/edgelist"
)

// edgeSet indexes edges for membership checks.
func edgeSet(edges []edgelist.Edge) map[edgelist.Edge]bool {
	m := make(map[edgelist.Edge]bool, len(edges))
	for _, e := range edges {
		m[e] = true
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantN int
		wantE int
		check func(t *testing.T, g *builder.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantN: 5, wantE: 5,
			check: func(t *testing.T, g *builder.Graph) {
				set := edgeSet(g.Edges)
				for i := 1; i <= 5; i++ {
					assert.True(t, set[edgelist.Edge{From: i, To: i%5 + 1}], "missing %d→%d", i, i%5+1)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantN: 4, wantE: 3,
			check: func(t *testing.T, g *builder.Graph) {
				assert.Equal(t, []edgelist.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}, g.Edges)
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantN: 4, wantE: 6,
			check: func(t *testing.T, g *builder.Graph) {
				set := edgeSet(g.Edges)
				for j := 2; j <= 4; j++ {
					assert.True(t, set[edgelist.Edge{From: 1, To: j}])
					assert.True(t, set[edgelist.Edge{From: j, To: 1}])
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantN: 4, wantE: 12,
			check: func(t *testing.T, g *builder.Graph) {
				for _, e := range g.Edges {
					assert.NotEqual(t, e.From, e.To, "self-loop %v", e)
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantN: 1, wantE: 0,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantN: 6, wantE: 0,
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantN: 6, wantE: 30,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, g.N)
			assert.Len(t, g.Edges, tc.wantE)
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuild_ComposesAndDeduplicates(t *testing.T) {
	t.Parallel()

	// Cycle(3) and Complete(3) overlap on 1→2, 2→3, 3→1.
	g, err := builder.Build(nil, builder.Cycle(3), builder.Complete(3), builder.Path(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.N)
	// 6 from K3, plus 3→4 and 4→5 from the path.
	assert.Len(t, g.Edges, 8)
	assert.Equal(t, edgelist.Edge{From: 1, To: 2}, g.Edges[0])
}

func TestBuild_CustomConstructor(t *testing.T) {
	t.Parallel()

	// Reversed path n → n-1 → ... → 1, written outside the package.
	reversed := func(n int) builder.Constructor {
		return func(e *builder.Emitter) error {
			for i := n; i > 1; i-- {
				e.Link(i, i-1)
			}
			return nil
		}
	}
	// Records the options passed to Build.
	var sawRand, sawLoops bool
	inspect := func(e *builder.Emitter) error {
		sawRand, sawLoops = e.Rand() != nil, e.SelfLoops()
		e.Grow(6)
		return nil
	}

	g, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1), builder.WithSelfLoops(true)},
		reversed(4), inspect, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 6, g.N)
	assert.Equal(t, []edgelist.Edge{{From: 4, To: 3}, {From: 3, To: 2}, {From: 2, To: 1}, {From: 1, To: 2}}, g.Edges)
	assert.True(t, sawRand)
	assert.True(t, sawLoops)

	failing := func(*builder.Emitter) error { return builder.ErrConstructFailed }
	_, err = builder.Build(nil, builder.Cycle(3), failing)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_Source(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(nil, builder.Cycle(4))
	require.NoError(t, err)

	got, err := edgelist.ReadAll(g.Source())
	require.NoError(t, err)
	assert.Equal(t, g.Edges, got)

	// Each call yields a fresh pass.
	again, err := edgelist.ReadAll(g.Source())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)
	assert.NotEmpty(t, a.Edges)
	assert.Less(t, len(a.Edges), 20*19)

	for _, e := range a.Edges {
		assert.NotEqual(t, e.From, e.To)
	}
}

func TestRandomSparse_SelfLoops(t *testing.T) {
	t.Parallel()

	g, err := builder.Build([]builder.BuilderOption{builder.WithSelfLoops(true)}, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.Len(t, g.Edges, 9)
	assert.True(t, edgeSet(g.Edges)[edgelist.Edge{From: 2, To: 2}])
}

func TestRandomSparse_WithRand(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 7))
	g, err := builder.Build([]builder.BuilderOption{builder.WithRand(r)}, builder.RandomSparse(10, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.N)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"cycle too small", nil, []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"path too small", nil, []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"star too small", nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"complete too small", nil, []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"random too small", nil, []builder.Constructor{builder.RandomSparse(0, 0.5)}, builder.ErrTooFewVertices},
		{"random bad p", nil, []builder.Constructor{builder.RandomSparse(5, 1.5)}, builder.ErrInvalidProbability},
		{"random no rng", nil, []builder.Constructor{builder.RandomSparse(5, 0.5)}, builder.ErrNeedRandSource},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"no constructors", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.Build(tc.opts, tc.cons...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{builder.KindCycle, builder.KindPath, builder.KindStar, builder.KindComplete, "RANDOM"} {
		ctor, err := builder.ByName(kind, 4, 1)
		require.NoError(t, err, kind)
		g, err := builder.Build(nil, ctor)
		require.NoError(t, err, kind)
		assert.Equal(t, 4, g.N, kind)
	}

	_, err := builder.ByName("hexagram", 4, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}

func TestWithRand_NilPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithRand(nil) })
}
