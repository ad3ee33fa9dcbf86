// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: the two adjacency representations behind the sealed Adjacency interface.
// Policy:
//   - Both layouts are sized N+1; slot 0 is never populated.
//   - Row accessors yield neighbors through iter.Seq and never hand out
//     the backing slices, so a built store stays immutable.

package core

import "iter"

// Adjacency is the sealed variant holding one of the two representations.
// The concrete types are *AdjacencyMatrix and *AdjacencyList.
type Adjacency interface {
	// Representation reports which layout this is.
	Representation() Representation

	// neighbors returns a fresh slice with the neighbors of v in native order.
	neighbors(v int) []int

	// degree returns the number of neighbor entries of v.
	degree(v int) int
}

// AdjacencyMatrix is a dense symmetric boolean grid stored row-major in a
// single (N+1)×(N+1) slice.
type AdjacencyMatrix struct {
	size  int // N+1
	cells []bool
}

// newAdjacencyMatrix allocates an all-false (n+1)×(n+1) grid.
func newAdjacencyMatrix(n int) *AdjacencyMatrix {
	size := n + 1

	return &AdjacencyMatrix{size: size, cells: make([]bool, size*size)}
}

// Representation returns Matrix.
func (m *AdjacencyMatrix) Representation() Representation { return Matrix }

// link marks u–v in both directions.
func (m *AdjacencyMatrix) link(u, v int) {
	m.cells[u*m.size+v] = true
	m.cells[v*m.size+u] = true
}

// Row yields the neighbors of v by scanning its row in ascending column order.
func (m *AdjacencyMatrix) Row(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row := m.row(v)
		for w := 1; w < len(row); w++ {
			if row[w] && !yield(w) {
				return
			}
		}
	}
}

// row is the live storage of v's row (N+1 cells, cell 0 always false).
func (m *AdjacencyMatrix) row(v int) []bool {
	start := v * m.size

	return m.cells[start : start+m.size]
}

// Adjacent reports whether u and v share an edge.
func (m *AdjacencyMatrix) Adjacent(u, v int) bool {
	return m.cells[u*m.size+v]
}

func (m *AdjacencyMatrix) neighbors(v int) []int {
	row := m.row(v)
	out := make([]int, 0)
	for w := 1; w < len(row); w++ {
		if row[w] {
			out = append(out, w)
		}
	}

	return out
}

func (m *AdjacencyMatrix) degree(v int) int {
	row := m.row(v)
	d := 0
	for w := 1; w < len(row); w++ {
		if row[w] {
			d++
		}
	}

	return d
}

// AdjacencyList keeps one insertion-ordered neighbor slice per node. Each
// slice is seeded with its own node id as a sentinel first element, which is
// never exposed through Row or the neighbor view.
type AdjacencyList struct {
	lists [][]int
}

// newAdjacencyList allocates n+1 slices, each holding only its sentinel.
func newAdjacencyList(n int) *AdjacencyList {
	lists := make([][]int, n+1)
	for v := range lists {
		lists[v] = []int{v}
	}

	return &AdjacencyList{lists: lists}
}

// Representation returns List.
func (l *AdjacencyList) Representation() Representation { return List }

// link appends v to u's list and u to v's list. A self-loop therefore
// appears twice in its own list.
func (l *AdjacencyList) link(u, v int) {
	l.lists[u] = append(l.lists[u], v)
	l.lists[v] = append(l.lists[v], u)
}

// Row yields the neighbors of v in insertion order, sentinel excluded.
func (l *AdjacencyList) Row(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, w := range l.lists[v][1:] {
			if !yield(w) {
				return
			}
		}
	}
}

func (l *AdjacencyList) neighbors(v int) []int {
	row := l.lists[v][1:]
	out := make([]int, len(row))
	copy(out, row)

	return out
}

func (l *AdjacencyList) degree(v int) int {
	return len(l.lists[v]) - 1
}
