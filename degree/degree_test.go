package degree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/degree"
)

var hub = []core.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5}, {U: 3, V: 5}}

func TestSummarize_ReferenceGraph(t *testing.T) {
	for _, repr := range []core.Representation{core.Matrix, core.List} {
		g, err := core.NewGraph(5, hub, repr)
		require.NoError(t, err)

		s, err := degree.Summarize(g)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 2, 2, 4}, s.Sorted)
		assert.Equal(t, 1, s.Min)
		assert.Equal(t, 4, s.Max)
		assert.InDelta(t, 2.0, s.Mean, 1e-12)
		assert.InDelta(t, 2.0, s.Median, 1e-12)
		assert.InDelta(t, 1.0954451150103321, s.StdDev, 1e-9)

		seq, err := degree.Sequence(g)
		require.NoError(t, err)
		assert.Equal(t, []int{4, 1, 2, 1, 2}, seq)
	}
}

func TestSummarize_EvenMedian(t *testing.T) {
	// Star(4): degrees [1 1 1 3] → median (1+1)/2; path 1-2-3-4: [1 1 2 2] → 1.5
	star, err := builder.Graph(core.List, nil, builder.Star(4))
	require.NoError(t, err)
	s, err := degree.Summarize(star)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.Median, 1e-12)
	assert.InDelta(t, 1.5, s.Mean, 1e-12)

	path, err := builder.Graph(core.Matrix, nil, builder.Path(4))
	require.NoError(t, err)
	s, err = degree.Summarize(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, s.Median, 1e-12)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 2, s.Max)
}

func TestSummarize_MeanCountsEdgeRecords(t *testing.T) {
	// The duplicate record counts toward E in both forms.
	edges := []core.Edge{{U: 1, V: 2}, {U: 1, V: 2}}
	for _, repr := range []core.Representation{core.Matrix, core.List} {
		g, err := core.NewGraph(2, edges, repr)
		require.NoError(t, err)
		s, err := degree.Summarize(g)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, s.Mean, 1e-12)
	}
}

func TestSummarize_Errors(t *testing.T) {
	_, err := degree.Summarize(nil)
	assert.ErrorIs(t, err, degree.ErrGraphNil)
	_, err = degree.Sequence(nil)
	assert.ErrorIs(t, err, degree.ErrGraphNil)

	g, err := core.NewGraph(0, nil, core.List)
	require.NoError(t, err)
	_, err = degree.Summarize(g)
	assert.ErrorIs(t, err, degree.ErrEmptyGraph)

	seq, err := degree.Sequence(g)
	require.NoError(t, err)
	assert.Empty(t, seq)
}
