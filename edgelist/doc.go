// Package edgelist reads and writes the plain-text edge-list format:
//
//	# optional comment lines
//	<N>
//	<u> <v>
//	<u> <v>
//	...
//
// The first non-blank, non-comment line holds the node count N. Every
// following one holds two whitespace-separated node ids; further tokens on
// the line are ignored. Endpoint bounds are checked by core.NewGraph, so a
// bad id fails construction atomically.
package edgelist
