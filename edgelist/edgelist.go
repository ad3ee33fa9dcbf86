// File: edgelist.go
// Role: Parse/Write of the edge-list format and Load from disk.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopgraph/core"
)

// Sentinel errors for edge-list input.
var (
	// ErrInputNotFound is returned by Load when the file does not exist.
	ErrInputNotFound = errors.New("edgelist: input not found")

	// ErrMalformedInput is core.ErrMalformedInput, so a caller can match a
	// parse failure and a bounds failure with one errors.Is.
	ErrMalformedInput = core.ErrMalformedInput
)

const commentPrefix = "#"

// Parse reads an edge list from r. Errors carry the 1-based line number.
func Parse(r io.Reader) (*core.EdgeList, error) {
	sc := bufio.NewScanner(r)
	el := &core.EdgeList{}
	header := false
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], commentPrefix) {
			continue
		}

		if !header {
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: node count %q", ErrMalformedInput, line, fields[0])
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: line %d: negative node count %d", ErrMalformedInput, line, n)
			}
			el.Nodes = n
			header = true
			continue
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want two node ids, got %d", ErrMalformedInput, line, len(fields))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: node id %q", ErrMalformedInput, line, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: node id %q", ErrMalformedInput, line, fields[1])
		}
		el.Edges = append(el.Edges, core.Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: missing node count", ErrMalformedInput)
	}

	return el, nil
}

// Load validates repr, reads path and builds the graph. The graph name is
// the file's base name without extension; a WithName in opts overrides it.
//
// Errors: core.ErrConfiguration (before any I/O), ErrInputNotFound,
// ErrMalformedInput.
func Load(path string, repr core.Representation, opts ...core.GraphOption) (*core.Graph, error) {
	if !repr.Valid() {
		return nil, fmt.Errorf("%w: %s", core.ErrConfiguration, repr)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	el, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	all := append([]core.GraphOption{core.WithName(Name(path))}, opts...)

	return core.FromEdgeList(el, repr, all...)
}

// Name returns the base name of path without its extension.
func Name(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Write emits el in the format Parse reads.
func Write(w io.Writer, el *core.EdgeList) error {
	if el == nil {
		return fmt.Errorf("%w: nil edge list", ErrMalformedInput)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, el.Nodes)
	for _, e := range el.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
	}

	return bw.Flush()
}
