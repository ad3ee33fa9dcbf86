// File: bfs.go
// Role: the BFS walker. Matrix and list graphs are walked by separate loops
// so that each one is timed on its native layout.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/hopgraph/core"
)

// queueItem pairs a node with its BFS level.
type queueItem struct {
	node  int
	level int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	known []bool // indexed by node id; slot 0 unused
	queue []queueItem
	tree  *core.SpanningTree
}

// BFS runs breadth-first search on g starting from origin, applying any
// number of functional Options.
//
// Without a goal (or with an unreachable one) the returned tree spans the
// connected component of origin. With WithGoal the search returns as soon as
// the goal is discovered.
//
// Returns ErrGraphNil, ErrOptionViolation, or core.ErrOutOfRange for an
// origin or goal outside [1, N].
func BFS(g *core.Graph, origin int, opts ...Option) (*core.SpanningTree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.CheckNode(origin); err != nil {
		return nil, fmt.Errorf("bfs: origin: %w", err)
	}
	if o.Goal != noGoal {
		if err := g.CheckNode(o.Goal); err != nil {
			return nil, fmt.Errorf("bfs: goal: %w", err)
		}
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		known: make([]bool, n+1),
		queue: make([]queueItem, 0, n),
		tree:  core.NewSpanningTree(origin, n),
	}

	// Seed queue with the origin (parent 0, level 0)
	w.known[origin] = true
	w.queue = append(w.queue, queueItem{node: origin})
	if w.opts.OnDiscover != nil {
		w.opts.OnDiscover(origin, 0, 0)
	}
	if origin == o.Goal {
		return w.tree, nil
	}

	switch adj := g.Adjacency().(type) {
	case *core.AdjacencyMatrix:
		w.loopMatrix(adj)
	case *core.AdjacencyList:
		w.loopList(adj)
	}

	return w.tree, nil
}

// discover records node under parent at level, enqueues it, and reports
// whether it is the goal.
func (w *walker) discover(node, parent, level int) bool {
	w.known[node] = true
	w.tree.Entries[node] = core.TreeEntry{Parent: parent, Level: level}
	w.queue = append(w.queue, queueItem{node: node, level: level})
	if w.opts.OnDiscover != nil {
		w.opts.OnDiscover(node, parent, level)
	}

	return node == w.opts.Goal
}

// loopMatrix drains the queue scanning each dequeued row column by column.
func (w *walker) loopMatrix(m *core.AdjacencyMatrix) {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		for col := range m.Row(item.node) {
			if w.known[col] {
				continue
			}
			if w.discover(col, item.node, item.level+1) {
				return
			}
		}
	}
}

// loopList drains the queue following each dequeued node's neighbor list.
func (w *walker) loopList(l *core.AdjacencyList) {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		for nbr := range l.Row(item.node) {
			if w.known[nbr] {
				continue
			}
			if w.discover(nbr, item.node, item.level+1) {
				return
			}
		}
	}
}
