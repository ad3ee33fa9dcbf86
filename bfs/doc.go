// Package bfs provides breadth-first search over a core.Graph, returning a
// core.SpanningTree: for every reached node its parent and its level (hop
// count from the origin).
//
// What
//
//   - Iterative, queue-based (FIFO) traversal; no recursion.
//   - The origin maps to (parent 0, level 0).
//   - Each dequeued node v at level L scans its neighbors in the native order
//     of the representation (ascending column for Matrix, insertion order for
//     List); every unseen neighbor w is recorded as (v, L+1) and enqueued.
//   - WithGoal(goal) returns as soon as goal is discovered. The tree then holds
//     only the nodes discovered up to and including goal.
//   - Without a goal the tree is exactly the connected component of the origin.
//
// Determinism
//
//	Levels and reachability are identical across representations. Parent
//	pointers may differ when two candidate parents sit on the same level,
//	because the two layouts expose neighbors in different orders. Compare
//	Levels(), not Entries, across representations.
//
// Complexity
//
//   - Matrix: O(N²) time per traversal (every dequeued row is scanned fully).
//   - List:   O(N + E) time.
//   - Memory: O(N) for the visited flags, queue and tree.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   if WithGoal receives a non-positive id.
//   - core.ErrOutOfRange   if the origin or goal lies outside [1, N].
//
// Usage
//
//	tree, err := bfs.BFS(g, 1)
//	tree, err := bfs.BFS(g, 1, bfs.WithGoal(7))
//	if tree.Has(7) { hops := tree.Level(7) }
package bfs
