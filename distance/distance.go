// File: distance.go
// Role: Distance, Eccentricity and Diameter over BFS trees.

package distance

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
)

// Distance returns the number of edges on a shortest path between a and b,
// or core.Unreachable when no path exists. Distance(g, v, v) == 0.
//
// Returns ErrGraphNil, or an error wrapping core.ErrOutOfRange for node ids
// outside [1, N].
func Distance(g *core.Graph, a, b int) (int, error) {
	if g == nil {
		return core.Unreachable, ErrGraphNil
	}
	if err := g.CheckNode(a); err != nil {
		return core.Unreachable, fmt.Errorf("distance: %w", err)
	}
	if err := g.CheckNode(b); err != nil {
		return core.Unreachable, fmt.Errorf("distance: %w", err)
	}

	tree, err := bfs.BFS(g, a, bfs.WithGoal(b))
	if err != nil {
		return core.Unreachable, err
	}

	return tree.Level(b), nil
}

// Eccentricity returns the largest distance from v to any node of its
// component (0 for an isolated node).
func Eccentricity(g *core.Graph, v int) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	tree, err := bfs.BFS(g, v)
	if err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}

	return tree.MaxLevel(), nil
}

// Diameter returns the largest finite distance between two nodes of g.
// An empty graph has diameter 0.
//
// In sampled mode the result is a lower bound on the true diameter. Under
// UnreachableIfDisconnected the result is core.Unreachable as soon as a BFS
// tree fails to span the graph; in sampled mode this detection is exact too,
// since any non-spanning tree proves the graph disconnected.
func Diameter(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	n := g.NodeCount()
	origins := exactOrigins(n)
	if o.SampleThreshold > 0 && n > o.SampleThreshold {
		rng := o.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(DefaultSeed))
		}
		origins = sampleOrigins(n, rng)
	}

	best := 0
	for _, v := range origins {
		tree, err := bfs.BFS(g, v)
		if err != nil {
			return 0, fmt.Errorf("distance: %w", err)
		}
		if o.Policy == UnreachableIfDisconnected && tree.Len() < n {
			return core.Unreachable, nil
		}
		if lvl := tree.MaxLevel(); lvl > best {
			best = lvl
		}
	}

	return best, nil
}

// exactOrigins lists 1..n.
func exactOrigins(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// sampleOrigins draws ⌊log2 n⌋ distinct node ids uniformly without replacement.
func sampleOrigins(n int, rng *rand.Rand) []int {
	k := SampleSize(n)
	perm := rng.Perm(n)[:k]
	for i := range perm {
		perm[i]++
	}

	return perm
}

// SampleSize is ⌊log2 n⌋, the number of origins used in sampled mode
// (0 for n < 2).
func SampleSize(n int) int {
	if n < 2 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}
