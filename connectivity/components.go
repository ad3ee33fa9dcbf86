package connectivity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// Component returns the nodes of v's connected component in ascending order.
// Returns core.ErrOutOfRange if v is not in [1, N].
func Component(g *core.Graph, v int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	tree, err := bfs.BFS(g, v)
	if err != nil {
		return nil, fmt.Errorf("connectivity: component of %d: %w", v, err)
	}

	return tree.Nodes(), nil
}

// Components returns every connected component of g, each in ascending node
// order, sorted by size descending (stable on ties).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	assigned := make([]bool, n+1)
	var comps [][]int

	for v := 1; v <= n; v++ {
		if assigned[v] {
			continue
		}
		comp, err := Component(g, v)
		if err != nil {
			return nil, err
		}
		for _, u := range comp {
			assigned[u] = true
		}
		comps = append(comps, comp)
	}

	slices.SortStableFunc(comps, func(a, b []int) int {
		return len(b) - len(a)
	})

	return comps, nil
}

// IsConnected reports whether g has exactly one component. The empty graph
// is not connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return false, nil
	}
	comp, err := Component(g, 1)
	if err != nil {
		return false, err
	}

	return len(comp) == g.NodeCount(), nil
}
