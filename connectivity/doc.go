// Package connectivity discovers connected components of a core.Graph on top
// of the bfs package.
//
// Component(g, v) is the ascending key set of bfs.BFS(g, v).
// Components(g) scans nodes 1..N in order, runs one BFS from every node not
// yet assigned, and returns the components sorted by size, largest first;
// components of equal size keep their discovery order. The result always
// partitions 1..N.
//
// Complexity: O(N·(N+E)) worst case for Matrix (one O(N²) BFS per component
// is bounded by N² overall), O(N+E) for List.
package connectivity
