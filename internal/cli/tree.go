package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/dfs"
	"github.com/katalvlaran/hopgraph/report"
)

func (c *CLI) treeCommand() *cobra.Command {
	var (
		repr   string
		kind   string
		origin int
		goal   int
		out    string
		dot    string
		svg    string
	)

	cmd := &cobra.Command{
		Use:   "tree <edgelist>",
		Short: "Dump the BFS or DFS spanning tree rooted at --origin",
		Long: `Dump the BFS or DFS spanning tree rooted at --origin.

Each entry line is "<node> <parent> <level>" in ascending node order. With
--goal the traversal stops once the goal is reached. --dot and --svg also
write a Graphviz drawing of the tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			g, err := c.loadGraph(cmd.Context(), args[0], repr)
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			tree, err := traverse(g, k, origin, goal)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("%s from %d reached %d nodes", k, origin, tree.Len()))

			if err := writeDump(cmd, out, k, g.Name(), tree); err != nil {
				return err
			}

			title := fmt.Sprintf("%s spanning tree of %s from %d", k, g.Name(), origin)
			if dot != "" {
				if err := os.WriteFile(dot, []byte(report.ToDOT(tree, title)), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", dot, err)
				}
				printSuccess(cmd.OutOrStdout(), "DOT written to %s", dot)
			}
			if svg != "" {
				data, err := report.RenderSVG(cmd.Context(), report.ToDOT(tree, title))
				if err != nil {
					return err
				}
				if err := os.WriteFile(svg, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", svg, err)
				}
				printSuccess(cmd.OutOrStdout(), "SVG written to %s", svg)
			}
			return nil
		},
	}

	reprFlag(cmd, &repr)
	cmd.Flags().StringVarP(&kind, "kind", "k", "bfs", "traversal: bfs or dfs")
	cmd.Flags().IntVar(&origin, "origin", 1, "root node")
	cmd.Flags().IntVar(&goal, "goal", 0, "stop once this node is reached (0 = full traversal)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the dump to this file instead of stdout")
	cmd.Flags().StringVar(&dot, "dot", "", "also write the tree as Graphviz DOT")
	cmd.Flags().StringVar(&svg, "svg", "", "also render the tree as SVG")
	return cmd
}

// parseKind maps "bfs"/"dfs" (any case) to a report.Kind.
func parseKind(s string) (report.Kind, error) {
	switch k := report.Kind(strings.ToUpper(s)); k {
	case report.KindBFS, report.KindDFS:
		return k, nil
	default:
		return "", fmt.Errorf("unknown traversal %q (want bfs or dfs)", s)
	}
}

// traverse runs the selected traversal; goal 0 means none.
func traverse(g *core.Graph, k report.Kind, origin, goal int) (*core.SpanningTree, error) {
	if k == report.KindDFS {
		if goal != 0 {
			return dfs.DFS(g, origin, dfs.WithGoal(goal))
		}
		return dfs.DFS(g, origin)
	}
	if goal != 0 {
		return bfs.BFS(g, origin, bfs.WithGoal(goal))
	}
	return bfs.BFS(g, origin)
}

// shortestPath returns the BFS tree path from -> to.
func shortestPath(g *core.Graph, from, to int) ([]int, error) {
	tree, err := bfs.BFS(g, from, bfs.WithGoal(to))
	if err != nil {
		return nil, err
	}
	return tree.PathTo(to)
}

// writeDump writes the tree dump to path, or to the command output when empty.
func writeDump(cmd *cobra.Command, path string, k report.Kind, name string, tree *core.SpanningTree) error {
	if path == "" {
		return report.WriteTree(cmd.OutOrStdout(), k, name, tree)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteTree(f, k, name, tree); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Tree written to %s", path)
	return nil
}
