package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/connectivity"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/distance"
	"github.com/katalvlaran/hopgraph/report"
)

func (c *CLI) reportCommand() *cobra.Command {
	var (
		repr  string
		out   string
		table bool
	)

	cmd := &cobra.Command{
		Use:   "report <edgelist>",
		Short: "Print node/edge counts, degree statistics and components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context(), args[0], repr)
			if err != nil {
				return err
			}
			r, err := report.Build(g)
			if err != nil {
				return err
			}

			if table {
				fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render(r.Name))
				fmt.Fprintln(cmd.OutOrStdout(), report.Table(r))
				return nil
			}
			if out == "" {
				return report.Write(cmd.OutOrStdout(), r)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := report.Write(f, r); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Report written to %s", out)
			return nil
		},
	}

	reprFlag(cmd, &repr)
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&table, "table", false, "render a terminal table")
	return cmd
}

func (c *CLI) componentsCommand() *cobra.Command {
	var repr string

	cmd := &cobra.Command{
		Use:   "components <edgelist> [node]",
		Short: "List connected components, or the component of one node",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context(), args[0], repr)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if len(args) == 2 {
				v, err := parseNode(args[1])
				if err != nil {
					return err
				}
				comp, err := connectivity.Component(g, v)
				if err != nil {
					return err
				}
				writeComponent(w, comp)
				return nil
			}

			comps, err := connectivity.Components(g)
			if err != nil {
				return err
			}
			printKV(w, "Components", len(comps))
			for _, comp := range comps {
				writeComponent(w, comp)
			}
			return nil
		},
	}

	reprFlag(cmd, &repr)
	return cmd
}

// writeComponent prints "[size] n1 n2 ...".
func writeComponent(w io.Writer, comp []int) {
	fmt.Fprintf(w, "[%d]", len(comp))
	for _, v := range comp {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)
}

func (c *CLI) distanceCommand() *cobra.Command {
	var (
		repr string
		path bool
	)

	cmd := &cobra.Command{
		Use:   "distance <edgelist> <from> <to>",
		Short: "Print the hop distance between two nodes (-1 if unreachable)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseNode(args[1])
			if err != nil {
				return err
			}
			to, err := parseNode(args[2])
			if err != nil {
				return err
			}
			g, err := c.loadGraph(cmd.Context(), args[0], repr)
			if err != nil {
				return err
			}

			d, err := distance.Distance(g, from, to)
			if err != nil {
				return err
			}
			printKV(cmd.OutOrStdout(), fmt.Sprintf("Distance %d -> %d", from, to), d)

			if path && d != core.Unreachable {
				hops, err := shortestPath(g, from, to)
				if err != nil {
					return err
				}
				printKV(cmd.OutOrStdout(), "Path", hops)
			}
			return nil
		},
	}

	reprFlag(cmd, &repr)
	cmd.Flags().BoolVar(&path, "path", false, "also print one shortest path")
	return cmd
}

func (c *CLI) diameterCommand() *cobra.Command {
	var (
		repr      string
		threshold int
		seed      int64
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "diameter <edgelist>",
		Short: "Print the graph diameter (sampled above --sample-threshold nodes)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd.Context(), args[0], repr)
			if err != nil {
				return err
			}

			opts := []distance.Option{
				distance.WithSampleThreshold(threshold),
				distance.WithSeed(seed),
			}
			if strict {
				opts = append(opts, distance.WithDisconnectedPolicy(distance.UnreachableIfDisconnected))
			}

			prog := newProgress(c.Logger)
			d, err := distance.Diameter(g, opts...)
			if err != nil {
				return err
			}
			sampled := threshold > 0 && g.NodeCount() > threshold
			prog.done("Diameter computed")
			c.Logger.Debug("diameter", "sampled", sampled, "origins", distance.SampleSize(g.NodeCount()))

			printKV(cmd.OutOrStdout(), "Diameter", d)
			if sampled {
				fmt.Fprintln(cmd.OutOrStdout(), StyleDim.Render("(sampled: lower bound on the exact value)"))
			}
			return nil
		},
	}

	reprFlag(cmd, &repr)
	cmd.Flags().IntVar(&threshold, "sample-threshold", 0, "sample origins when the graph has more nodes than this (0 = exact)")
	cmd.Flags().Int64Var(&seed, "seed", distance.DefaultSeed, "seed for origin sampling")
	cmd.Flags().BoolVar(&strict, "strict", false, "report -1 for a disconnected graph")
	return cmd
}

// parseNode parses a positive node id argument.
func parseNode(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: node %q", core.ErrOutOfRange, s)
	}
	return v, nil
}
