// Package dfs implements iterative depth-first search on core.Graph,
// producing a core.SpanningTree.
//
// Key features:
//   - Explicit stack (LIFO), never recursion: depth is bounded by memory,
//     not by the goroutine stack.
//   - Lexicographically-first order independent of representation: each
//     node's neighbors are sorted ascending and pushed in descending order, so
//     the lowest unexplored neighbor is popped first.
//   - Early exit via WithGoal.
//
// Semantics:
//
//   - The origin is recorded as (0, 0) before the loop.
//   - A popped node is marked explored; nodes already explored are skipped.
//   - Every unexplored neighbor is pushed, even if it already sits on the
//     stack (duplicate entries are allowed). Its parent and level are recorded
//     on first assignment only and never revised, so DFS levels are not
//     shortest-path distances.
//
// Complexity:
//
//   - Time:   O(N + E·log Δ) for List, O(N²) for Matrix (neighbor view scans rows).
//   - Memory: O(N + E) for the stack (duplicates included) and the tree.
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - ErrOptionViolation    for a goal below 1.
//   - core.ErrOutOfRange    for an origin or goal outside [1, N].
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hopgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    *core.Graph        // underlying graph
	opts     DFSOptions         // traversal options
	explored []bool             // indexed by node id; slot 0 unused
	stack    []int              // pending nodes, top at the end
	tree     *core.SpanningTree // result collector
}

// DFS performs depth-first search on g from origin and returns the spanning
// tree of everything it reached (or of everything reached until the goal was
// pushed).
func DFS(g *core.Graph, origin int, opts ...Option) (*core.SpanningTree, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Verify origin and goal
	if err := g.CheckNode(origin); err != nil {
		return nil, fmt.Errorf("dfs: origin: %w", err)
	}
	if dopts.Goal != 0 {
		if err := g.CheckNode(dopts.Goal); err != nil {
			return nil, fmt.Errorf("dfs: goal: %w", err)
		}
	}

	n := g.NodeCount()
	w := &dfsWalker{
		graph:    g,
		opts:     dopts,
		explored: make([]bool, n+1),
		stack:    make([]int, 0, n),
		tree:     core.NewSpanningTree(origin, n),
	}
	if origin == dopts.Goal {
		return w.tree, nil
	}

	// 4. Traverse
	if err := w.run(origin); err != nil {
		return nil, err
	}

	return w.tree, nil
}

// run drives the explicit stack until it empties or the goal is pushed.
func (w *dfsWalker) run(origin int) error {
	w.stack = append(w.stack, origin)

	for len(w.stack) > 0 {
		// Pop
		v := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.explored[v] {
			continue
		}
		w.explored[v] = true
		if w.opts.OnExplore != nil {
			w.opts.OnExplore(v)
		}

		nbrs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
		}
		slices.Sort(nbrs)

		level := w.tree.Entries[v].Level + 1
		// Push descending so the smallest unexplored neighbor ends on top.
		for i := len(nbrs) - 1; i >= 0; i-- {
			nb := nbrs[i]
			if w.explored[nb] {
				continue
			}
			// A stored entry is never overwritten by a later push.
			if !w.tree.Has(nb) {
				w.tree.Entries[nb] = core.TreeEntry{Parent: v, Level: level}
			}
			w.stack = append(w.stack, nb)
			if nb == w.opts.Goal {
				return nil
			}
		}
	}

	return nil
}
