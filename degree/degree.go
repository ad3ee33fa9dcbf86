// Package degree summarises the degree distribution of a graph.
//
// Summarize reports the minimum, maximum, mean and median degree. The mean is
// exact (2·E/N, counting every edge record), not the average of a sample.
// The median follows 1-based positions over the ascending sequence: for even
// N the average of positions N/2 and N/2+1, for odd N the element at N/2+1.
package degree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/hopgraph/core"
)

// Sentinel errors for degree statistics.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("degree: graph is nil")

	// ErrEmptyGraph is returned when the graph has no nodes.
	ErrEmptyGraph = errors.New("degree: graph has no nodes")
)

// Summary is the numeric overview of a degree sequence.
type Summary struct {
	Min    int
	Max    int
	Mean   float64
	Median float64

	// StdDev is the population standard deviation of the degrees.
	StdDev float64

	// Sorted is the degree sequence in ascending order.
	Sorted []int
}

// Sequence returns deg(1), …, deg(N) in node order.
func Sequence(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seq := make([]int, g.NodeCount())
	for v := 1; v <= g.NodeCount(); v++ {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("degree: %w", err)
		}
		seq[v-1] = d
	}

	return seq, nil
}

// Summarize computes the Summary of g. It fails with ErrEmptyGraph when N == 0.
func Summarize(g *core.Graph) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}
	n := g.NodeCount()
	if n == 0 {
		return Summary{}, ErrEmptyGraph
	}

	sorted, err := Sequence(g)
	if err != nil {
		return Summary{}, err
	}
	slices.Sort(sorted)

	data := stats.LoadRawData(sorted)
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("degree: median: %w", err)
	}
	sd, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, fmt.Errorf("degree: stddev: %w", err)
	}

	return Summary{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   2 * float64(g.EdgeCount()) / float64(n),
		Median: median,
		StdDev: sd,
		Sorted: sorted,
	}, nil
}
