// File: builder_test.go
// Package builder_test verifies topology, id allocation, ordering and error
// contracts of every Constructor.
package builder_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/core"
)

// e is a short edge literal.
func e(u, v int) core.Edge { return core.Edge{U: u, V: v} }

// TestBuilders_Functional runs table-driven checks for each deterministic constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantNodes int
		wantEdges []core.Edge
	}{
		{"Isolated(3)", builder.Isolated(3), 3, nil},
		{"Path(4)", builder.Path(4), 4, []core.Edge{e(1, 2), e(2, 3), e(3, 4)}},
		{"Cycle(3)", builder.Cycle(3), 3, []core.Edge{e(1, 2), e(2, 3), e(3, 1)}},
		{"Star(4)", builder.Star(4), 4, []core.Edge{e(1, 2), e(1, 3), e(1, 4)}},
		{"Complete(4)", builder.Complete(4), 4, []core.Edge{
			e(1, 2), e(1, 3), e(1, 4), e(2, 3), e(2, 4), e(3, 4),
		}},
		{"Grid(2,3)", builder.Grid(2, 3), 6, []core.Edge{
			e(1, 2), e(1, 4), e(2, 3), e(2, 5), e(3, 6), e(4, 5), e(5, 6),
		}},
		{"Grid(1,1)", builder.Grid(1, 1), 1, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			el, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, el.Nodes)
			assert.Equal(t, tc.wantEdges, el.Edges)
		})
	}
}

// TestBuild_DisjointBlocks checks that consecutive constructors get fresh ids.
func TestBuild_DisjointBlocks(t *testing.T) {
	el, err := builder.Build(nil, builder.Path(3), builder.Isolated(2), builder.Star(3))
	require.NoError(t, err)

	assert.Equal(t, 8, el.Nodes)
	assert.Equal(t, []core.Edge{e(1, 2), e(2, 3), e(6, 7), e(6, 8)}, el.Edges)
}

// TestBuild_Errors covers the sentinel error of every validation branch.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Isolated(0)", nil, builder.Isolated(0), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0)", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"p<0", nil, builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"p>1", nil, builder.RandomSparse(5, 1.1), builder.ErrInvalidProbability},
		{"p=NaN", nil, builder.RandomSparse(5, math.NaN()), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"nil ctor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			el, err := builder.Build(tc.opts, tc.ctor)
			assert.Nil(t, el)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestRandomSparse_Extremes: p=0 and p=1 need no RNG.
func TestRandomSparse_Extremes(t *testing.T) {
	el, err := builder.Build(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 5, el.Nodes)
	assert.Empty(t, el.Edges)

	el, err = builder.Build(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Len(t, el.Edges, 10)
}

// TestRandomSparse_Deterministic: same seed ⇒ same edges; WithRand matches WithSeed.
func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	c, err := builder.Build(
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42)))},
		builder.RandomSparse(40, 0.1),
	)
	require.NoError(t, err)

	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Edges, c.Edges)
	for _, ed := range a.Edges {
		assert.Less(t, ed.U, ed.V)
	}
}

// TestWithRand_NilPanics documents the option contract.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestGraph_BuildsRepresentation checks the Build + FromEdgeList shortcut.
func TestGraph_BuildsRepresentation(t *testing.T) {
	for _, repr := range []core.Representation{core.Matrix, core.List} {
		g, err := builder.Graph(repr, nil, builder.Cycle(6))
		require.NoError(t, err)
		assert.Equal(t, repr, g.Representation())
		assert.Equal(t, 6, g.NodeCount())
		assert.Equal(t, 6, g.EdgeCount())
	}
}
