// File: tree.go
// Role: spanning-tree dump writer and reader.

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopgraph/core"
)

// ErrMalformedDump is returned by ReadTree for text that is not a tree dump.
var ErrMalformedDump = errors.New("report: malformed tree dump")

// Kind names the traversal that produced a tree.
type Kind string

const (
	KindBFS Kind = "BFS"
	KindDFS Kind = "DFS"
)

const (
	titleMid    = " spanning tree of graph "
	titleOrigin = " rooted at node "
	countPrefix = "Nodes: "
	formatLine  = "Format: <node> <parent> <level>"
)

// Dump is a parsed tree dump.
type Dump struct {
	Kind  Kind
	Graph string
	Tree  *core.SpanningTree
}

// WriteTree writes tree as a dump titled with kind and the graph name.
func WriteTree(w io.Writer, kind Kind, graph string, tree *core.SpanningTree) error {
	if tree == nil {
		return fmt.Errorf("report: nil tree")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%s%s%s%d\n", kind, titleMid, graph, titleOrigin, tree.Origin)
	fmt.Fprintf(bw, "\n%s%d\n", countPrefix, tree.Len())
	fmt.Fprintf(bw, "\n%s\n", formatLine)
	for _, v := range tree.Nodes() {
		e := tree.Entries[v]
		fmt.Fprintf(bw, "%d %d %d\n", v, e.Parent, e.Level)
	}

	return bw.Flush()
}

// ReadTree parses a dump produced by WriteTree.
func ReadTree(r io.Reader) (*Dump, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("report: read: %w", err)
	}
	if len(lines) < 5 {
		return nil, fmt.Errorf("%w: %d lines", ErrMalformedDump, len(lines))
	}

	d, origin, err := parseTitle(lines[0])
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(strings.TrimPrefix(lines[2], countPrefix))
	if err != nil || !strings.HasPrefix(lines[2], countPrefix) {
		return nil, fmt.Errorf("%w: line 3: %q", ErrMalformedDump, lines[2])
	}
	if lines[4] != formatLine {
		return nil, fmt.Errorf("%w: line 5: %q", ErrMalformedDump, lines[4])
	}

	tree := &core.SpanningTree{Origin: origin, Entries: make(map[int]core.TreeEntry, count)}
	for i, ln := range lines[5:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		f := strings.Fields(ln)
		if len(f) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedDump, i+6, ln)
		}
		var vals [3]int
		for j, tok := range f {
			if vals[j], err = strconv.Atoi(tok); err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedDump, i+6, ln)
			}
		}
		tree.Entries[vals[0]] = core.TreeEntry{Parent: vals[1], Level: vals[2]}
	}

	if tree.Len() != count {
		return nil, fmt.Errorf("%w: header says %d nodes, found %d", ErrMalformedDump, count, tree.Len())
	}
	if root, ok := tree.Lookup(origin); !ok || root != (core.TreeEntry{}) {
		return nil, fmt.Errorf("%w: root %d missing or not at {0 0}", ErrMalformedDump, origin)
	}
	d.Tree = tree

	return d, nil
}

// parseTitle splits "<KIND> spanning tree of graph <name> rooted at node <origin>".
func parseTitle(line string) (*Dump, int, error) {
	kind, rest, ok := strings.Cut(line, titleMid)
	if !ok || (Kind(kind) != KindBFS && Kind(kind) != KindDFS) {
		return nil, 0, fmt.Errorf("%w: title %q", ErrMalformedDump, line)
	}
	at := strings.LastIndex(rest, titleOrigin)
	if at < 0 {
		return nil, 0, fmt.Errorf("%w: title %q", ErrMalformedDump, line)
	}
	origin, err := strconv.Atoi(rest[at+len(titleOrigin):])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: origin in %q", ErrMalformedDump, line)
	}

	return &Dump{Kind: Kind(kind), Graph: rest[:at]}, origin, nil
}
