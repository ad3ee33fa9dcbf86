// File: dot.go
// Role: Graphviz output for spanning trees.

package report

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/hopgraph/core"
)

// ToDOT converts a spanning tree to an undirected Graphviz graph. Each
// non-root node gets the edge "parent -- node"; nodes of one level share a
// rank so the drawing reads top-down by hop count.
func ToDOT(tree *core.SpanningTree, title string) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", title)
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	nodes := tree.Nodes()
	fmt.Fprintf(&buf, "  %d [fillcolor=lightblue];\n", tree.Origin)
	for _, v := range nodes {
		if v == tree.Origin {
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", tree.Entries[v].Parent, v)
	}

	byLevel := make(map[int][]int)
	for _, v := range nodes {
		lvl := tree.Entries[v].Level
		byLevel[lvl] = append(byLevel[lvl], v)
	}
	levels := make([]int, 0, len(byLevel))
	for lvl := range byLevel {
		levels = append(levels, lvl)
	}
	slices.Sort(levels)

	buf.WriteString("\n")
	for _, lvl := range levels {
		buf.WriteString("  { rank=same;")
		for _, v := range byLevel[lvl] {
			fmt.Fprintf(&buf, " %d;", v)
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
