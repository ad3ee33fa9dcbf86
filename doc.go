// Package hopgraph is an in-memory toolkit for analyzing undirected,
// unweighted graphs by hop count: spanning trees, connected components,
// distances, diameter and degree statistics.
//
// What is inside?
//
//	Graphs are loaded from a plain edge list into one of two interchangeable
//	layouts, and every analysis runs on either:
//		• Storage: adjacency matrix (O(N²)) or adjacency list (O(N+E))
//		• Traversals: BFS (levels = hop distance) and DFS (lowest id first)
//		• Connectivity: component of a node, all components by size
//		• Distances: pairwise hops, eccentricity, exact or sampled diameter
//		• Degrees: min, max, mean (2E/N) and median
//		• Output: tree dumps, graph reports, lipgloss tables, Graphviz SVG
//
// Packages:
//
//	core/         — Graph, Edge, EdgeList, SpanningTree and the two adjacency layouts
//	bfs/, dfs/    — traversals producing parent/level spanning trees
//	connectivity/ — connected components
//	distance/     — Distance, Eccentricity, Diameter (exact or ⌊log2 N⌋ samples)
//	degree/       — degree sequence and summary
//	edgelist/     — parse, write and load the edge-list text format
//	report/       — tree dumps, reports, tables, DOT/SVG
//	builder/      — synthetic graphs (path, cycle, star, grid, G(n,p), …)
//	bench/        — timed case studies driven by a YAML/TOML config
//	cmd/hopgraph  — the command-line front end
//
// Node ids are 1..N. Storage is sized N+1 and slot 0 is never used.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	a square: distance(1,3) == 2, diameter == 2, one component of size 4.
package hopgraph
