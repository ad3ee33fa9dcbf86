// File: report.go
// Role: the graph report: counts, degree summary and components.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hopgraph/connectivity"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/degree"
)

// Report is everything Write and Table render about one graph.
type Report struct {
	Name           string
	Representation core.Representation
	Nodes          int
	Edges          int
	Degree         degree.Summary

	// Components are sorted by size, largest first.
	Components [][]int
}

// Largest returns the size of the largest component (0 if none).
func (r *Report) Largest() int {
	if len(r.Components) == 0 {
		return 0
	}

	return len(r.Components[0])
}

// Smallest returns the size of the smallest component (0 if none).
func (r *Report) Smallest() int {
	if len(r.Components) == 0 {
		return 0
	}

	return len(r.Components[len(r.Components)-1])
}

// Build computes the Report of g. A graph without nodes fails with
// degree.ErrEmptyGraph.
func Build(g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	sum, err := degree.Summarize(g)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	comps, err := connectivity.Components(g)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	return &Report{
		Name:           g.Name(),
		Representation: g.Representation(),
		Nodes:          g.NodeCount(),
		Edges:          g.EdgeCount(),
		Degree:         sum,
		Components:     comps,
	}, nil
}

// Write renders r as plain text.
func Write(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Report for graph %s\n", r.Name)
	fmt.Fprintf(bw, "(internal representation: adjacency %s)\n", r.Representation)
	fmt.Fprintf(bw, "\nNodes: %d\n", r.Nodes)
	fmt.Fprintf(bw, "Edges: %d\n", r.Edges)
	fmt.Fprintf(bw, "\nMax degree: %d\n", r.Degree.Max)
	fmt.Fprintf(bw, "Min degree: %d\n", r.Degree.Min)
	fmt.Fprintf(bw, "Mean degree: %s\n", formatFloat(r.Degree.Mean))
	fmt.Fprintf(bw, "Median degree: %s\n", formatFloat(r.Degree.Median))
	fmt.Fprintf(bw, "\nConnected components\n")
	fmt.Fprintf(bw, "Count: %d\n", len(r.Components))
	fmt.Fprintf(bw, "Format: [size] node1 node2 ...\n")
	for _, comp := range r.Components {
		fmt.Fprintf(bw, "[%d]", len(comp))
		for _, v := range comp {
			fmt.Fprintf(bw, " %d", v)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// formatFloat prints at least one decimal and no trailing noise: 2.0, 1.5, 2.4.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}

	return s + ".0"
}
