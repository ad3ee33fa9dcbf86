package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/degree"
	"github.com/katalvlaran/hopgraph/dfs"
	"github.com/katalvlaran/hopgraph/report"
)

var hub = []core.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5}, {U: 3, V: 5}}

func hubGraph(t *testing.T, repr core.Representation) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(5, hub, repr, core.WithName("hub"))
	require.NoError(t, err)
	return g
}

func TestWriteTree_Format(t *testing.T) {
	g := hubGraph(t, core.List)
	tree, err := bfs.BFS(g, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTree(&buf, report.KindBFS, g.Name(), tree))

	want := `BFS spanning tree of graph hub rooted at node 5

Nodes: 5

Format: <node> <parent> <level>
1 5 1
2 1 2
3 5 1
4 1 2
5 0 0
`
	assert.Equal(t, want, buf.String())
}

func TestTree_RoundTrip(t *testing.T) {
	g := hubGraph(t, core.Matrix)
	for _, tc := range []struct {
		kind report.Kind
		run  func() (*core.SpanningTree, error)
	}{
		{report.KindBFS, func() (*core.SpanningTree, error) { return bfs.BFS(g, 2) }},
		{report.KindDFS, func() (*core.SpanningTree, error) { return dfs.DFS(g, 4) }},
	} {
		tree, err := tc.run()
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, report.WriteTree(&buf, tc.kind, "my graph", tree))

		d, err := report.ReadTree(&buf)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, d.Kind)
		assert.Equal(t, "my graph", d.Graph)
		assert.Equal(t, tree.Origin, d.Tree.Origin)
		assert.Equal(t, tree.Entries, d.Tree.Entries)
	}
}

func TestReadTree_EmptyName(t *testing.T) {
	tree := core.NewSpanningTree(3, 1)
	var buf bytes.Buffer
	require.NoError(t, report.WriteTree(&buf, report.KindDFS, "", tree))

	d, err := report.ReadTree(&buf)
	require.NoError(t, err)
	assert.Equal(t, "", d.Graph)
	assert.Equal(t, 3, d.Tree.Origin)
	assert.Equal(t, 1, d.Tree.Len())
}

func TestReadTree_Malformed(t *testing.T) {
	good := "BFS spanning tree of graph g rooted at node 1\n\nNodes: 2\n\nFormat: <node> <parent> <level>\n1 0 0\n2 1 1\n"
	cases := map[string]string{
		"short":       "BFS spanning tree of graph g rooted at node 1\n",
		"kind":        strings.Replace(good, "BFS", "XYZ", 1),
		"origin":      strings.Replace(good, "node 1", "node one", 1),
		"count":       strings.Replace(good, "Nodes: 2", "Nodes: two", 1),
		"count wrong": strings.Replace(good, "Nodes: 2", "Nodes: 3", 1),
		"format line": strings.Replace(good, "Format:", "Fmt:", 1),
		"entry":       strings.Replace(good, "2 1 1", "2 1", 1),
		"entry int":   strings.Replace(good, "2 1 1", "2 x 1", 1),
		"no root":     strings.Replace(good, "1 0 0", "1 2 1", 1),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := report.ReadTree(strings.NewReader(in))
			assert.ErrorIs(t, err, report.ErrMalformedDump)
		})
	}

	_, err := report.ReadTree(strings.NewReader(good))
	assert.NoError(t, err)
}

func TestBuildAndWrite(t *testing.T) {
	el, err := builder.Build(nil, builder.Path(4), builder.Path(2))
	require.NoError(t, err)
	g, err := core.FromEdgeList(el, core.Matrix, core.WithName("split"))
	require.NoError(t, err)

	r, err := report.Build(g)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Nodes)
	assert.Equal(t, 4, r.Edges)
	assert.Equal(t, 4, r.Largest())
	assert.Equal(t, 2, r.Smallest())

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, r))
	want := `Report for graph split
(internal representation: adjacency matrix)

Nodes: 6
Edges: 4

Max degree: 2
Min degree: 1
Mean degree: 1.3333333333333333
Median degree: 1.0

Connected components
Count: 2
Format: [size] node1 node2 ...
[4] 1 2 3 4
[2] 5 6
`
	assert.Equal(t, want, buf.String())
}

func TestBuild_Errors(t *testing.T) {
	_, err := report.Build(nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)

	empty, err := core.NewGraph(0, nil, core.List)
	require.NoError(t, err)
	_, err = report.Build(empty)
	assert.ErrorIs(t, err, degree.ErrEmptyGraph)
}

func TestTable(t *testing.T) {
	r, err := report.Build(hubGraph(t, core.List))
	require.NoError(t, err)

	out := report.Table(r)
	for _, s := range []string{"Metric", "Value", "hub", "list", "Median degree", "2.0", "Components"} {
		assert.Contains(t, out, s)
	}
}

func TestToDOT(t *testing.T) {
	tree, err := bfs.BFS(hubGraph(t, core.List), 1)
	require.NoError(t, err)

	dot := report.ToDOT(tree, "BFS from 1")
	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.Contains(t, dot, `label="BFS from 1";`)
	for _, e := range []string{"1 -- 2;", "1 -- 3;", "1 -- 4;", "1 -- 5;"} {
		assert.Contains(t, dot, e)
	}
	assert.Contains(t, dot, "{ rank=same; 1; }")
	assert.Contains(t, dot, "{ rank=same; 2; 3; 4; 5; }")
	assert.NotContains(t, dot, "3 -- 5")
}

func TestRenderSVG(t *testing.T) {
	tree, err := bfs.BFS(hubGraph(t, core.Matrix), 2)
	require.NoError(t, err)

	svg, err := report.RenderSVG(context.Background(), report.ToDOT(tree, "hub"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
