package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/bench"
)

func (c *CLI) benchCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "bench <config.yaml|config.toml>",
		Short: "Run timed case studies and write a CSV of the measurements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bench.LoadConfig(args[0])
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			prog := newProgress(c.Logger)
			results, err := bench.Run(cmd.Context(), cfg, c.Logger)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Measured %d case(s)", len(results)))

			path, err := bench.WriteCSVFile(cfg.OutputDir, results)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Results written to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "override the config output_dir")
	return cmd
}
