package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// CSVFileName is the file WriteCSVFile creates inside Config.OutputDir.
const CSVFileName = "bench.csv"

var baseHeader = []string{
	"run_id", "case", "representation", "nodes", "edges",
	"load_ms", "heap_growth_bytes",
	"bfs_mean_ms", "bfs_median_ms", "bfs_stddev_ms",
	"dfs_mean_ms", "dfs_median_ms", "dfs_stddev_ms",
	"components", "largest_component", "smallest_component",
	"diameter", "diameter_sampled",
}

// WriteCSV writes one row per Result. Watch and pair columns are named after
// the first result (bfs_parent_<v>, dfs_parent_<v>, dist_<a>_<b>); all
// results of one Run share them.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	header := append([]string(nil), baseHeader...)
	if len(results) > 0 {
		for _, p := range results[0].Watch {
			header = append(header, fmt.Sprintf("bfs_parent_%d", p.Node), fmt.Sprintf("dfs_parent_%d", p.Node))
		}
		for _, d := range results[0].Distances {
			header = append(header, fmt.Sprintf("dist_%d_%d", d.From, d.To))
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("bench: csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.RunID, r.Case, r.Representation.String(),
			strconv.Itoa(r.Nodes), strconv.Itoa(r.Edges),
			ms(r.LoadTime), strconv.FormatInt(r.HeapGrowth, 10),
			ms(r.BFS.Mean), ms(r.BFS.Median), ms(r.BFS.StdDev),
			ms(r.DFS.Mean), ms(r.DFS.Median), ms(r.DFS.StdDev),
			strconv.Itoa(r.Components), strconv.Itoa(r.LargestComponent), strconv.Itoa(r.SmallestComponent),
			strconv.Itoa(r.Diameter), strconv.FormatBool(r.DiameterSampled),
		}
		for _, p := range r.Watch {
			row = append(row, strconv.Itoa(p.BFSParent), strconv.Itoa(p.DFSParent))
		}
		for _, d := range r.Distances {
			row = append(row, strconv.Itoa(d.Hops))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes results to <dir>/bench.csv, creating dir, and returns the path.
func WriteCSVFile(dir string, results []Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("bench: output dir: %w", err)
	}
	path := filepath.Join(dir, CSVFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("bench: create %s: %w", path, err)
	}
	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return "", err
	}

	return path, f.Close()
}

// ms formats d in milliseconds with microsecond precision.
func ms(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
