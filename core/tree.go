// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: SpanningTree, the partial node → (parent, level) map produced by traversals.

package core

import (
	"fmt"
	"slices"
)

// TreeEntry is the traversal metadata of one reached node.
type TreeEntry struct {
	// Parent is the node that discovered this one; 0 for the root.
	Parent int

	// Level is the hop count from the root along discovered tree edges.
	Level int
}

// SpanningTree records, for every node a traversal reached, its parent and
// level. The root maps to {0, 0}; unreached nodes are absent.
type SpanningTree struct {
	// Origin is the root node of the traversal.
	Origin int

	// Entries maps each reached node to its TreeEntry.
	Entries map[int]TreeEntry
}

// NewSpanningTree returns a tree holding only origin at {0, 0}.
// sizeHint pre-sizes the entry map.
func NewSpanningTree(origin, sizeHint int) *SpanningTree {
	t := &SpanningTree{Origin: origin, Entries: make(map[int]TreeEntry, sizeHint)}
	t.Entries[origin] = TreeEntry{}

	return t
}

// Len returns the number of reached nodes, root included.
func (t *SpanningTree) Len() int { return len(t.Entries) }

// Has reports whether v was reached.
func (t *SpanningTree) Has(v int) bool {
	_, ok := t.Entries[v]

	return ok
}

// Lookup returns v's entry and whether it was reached.
func (t *SpanningTree) Lookup(v int) (TreeEntry, bool) {
	e, ok := t.Entries[v]

	return e, ok
}

// Level returns v's level, or Unreachable if v was not reached.
func (t *SpanningTree) Level(v int) int {
	if e, ok := t.Entries[v]; ok {
		return e.Level
	}

	return Unreachable
}

// Parent returns v's parent (0 for the root), or Unreachable if v was not reached.
func (t *SpanningTree) Parent(v int) int {
	if e, ok := t.Entries[v]; ok {
		return e.Parent
	}

	return Unreachable
}

// Nodes returns the reached nodes in ascending order.
func (t *SpanningTree) Nodes() []int {
	out := make([]int, 0, len(t.Entries))
	for v := range t.Entries {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Levels returns a node → level map, the representation-independent part of
// a BFS tree.
func (t *SpanningTree) Levels() map[int]int {
	out := make(map[int]int, len(t.Entries))
	for v, e := range t.Entries {
		out[v] = e.Level
	}

	return out
}

// MaxLevel returns the largest level in the tree (0 for a lone root).
func (t *SpanningTree) MaxLevel() int {
	maxLvl := 0
	for _, e := range t.Entries {
		if e.Level > maxLvl {
			maxLvl = e.Level
		}
	}

	return maxLvl
}

// PathTo reconstructs the tree path Origin → dest by following parent links.
// It fails with ErrOutOfRange if dest was not reached.
func (t *SpanningTree) PathTo(dest int) ([]int, error) {
	e, ok := t.Entries[dest]
	if !ok {
		return nil, fmt.Errorf("%w: node %d not reached from %d", ErrOutOfRange, dest, t.Origin)
	}
	path := make([]int, 0, e.Level+1)
	for cur := dest; ; {
		path = append(path, cur)
		if cur == t.Origin {
			break
		}
		cur = t.Entries[cur].Parent
	}
	slices.Reverse(path)

	return path, nil
}
