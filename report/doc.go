// Package report renders analysis results for people and files.
//
//   - WriteTree / ReadTree: the text dump of a BFS or DFS spanning tree.
//   - Build / Write: the graph report (counts, degree summary, components).
//   - Table: the same report as a lipgloss table for terminals.
//   - ToDOT / RenderSVG: a spanning tree as a Graphviz drawing.
//
// Tree dump layout:
//
//	BFS spanning tree of graph <name> rooted at node <origin>
//
//	Nodes: <count>
//
//	Format: <node> <parent> <level>
//	<node> <parent> <level>
//	...
//
// Entry lines are in ascending node order; the root is listed with parent 0
// and level 0.
package report
