package bench_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopgraph/bench"
	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/edgelist"
)

// writeCase stores a path of 4 plus a separate edge as <dir>/split.txt.
func writeCase(t *testing.T, dir string) string {
	t.Helper()
	el, err := builder.Build(nil, builder.Path(4), builder.Path(2))
	require.NoError(t, err)

	path := filepath.Join(dir, "split.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, edgelist.Write(f, el))
	require.NoError(t, f.Close())
	return path
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bench.yaml", `
cases:
  - path: data/as_graph.txt
  - name: dblp
    path: data/dblp.txt
representations: [list]
runs: 5
watch: [10, 20]
pairs:
  - {from: 1, to: 10}
sample_threshold: -1
`)

	cfg, err := bench.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "as_graph", cfg.Cases[0].Name)
	assert.Equal(t, "dblp", cfg.Cases[1].Name)
	assert.Equal(t, []core.Representation{core.List}, cfg.RepresentationList())
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, bench.DefaultOrigin, cfg.Origin)
	assert.Equal(t, []int{10, 20}, cfg.Watch)
	assert.Equal(t, []bench.Pair{{From: 1, To: 10}}, cfg.Pairs)
	assert.Equal(t, -1, cfg.SampleThreshold)
	assert.Equal(t, int64(bench.DefaultSeed), cfg.Seed)
	assert.Equal(t, bench.DefaultOutputDir, cfg.OutputDir)
}

func TestLoadConfig_ZeroSeedIsDefault(t *testing.T) {
	dir := t.TempDir()
	zero := writeFile(t, dir, "zero.yaml", "cases: [{path: a.txt}]\nseed: 0\n")
	seven := writeFile(t, dir, "seven.yaml", "cases: [{path: a.txt}]\nseed: 7\n")

	cfg, err := bench.LoadConfig(zero)
	require.NoError(t, err)
	assert.Equal(t, int64(bench.DefaultSeed), cfg.Seed)

	cfg, err = bench.LoadConfig(seven)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadConfig_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bench.toml", `
runs = 3
origin = 2
seed = 9
output_dir = "out"

[[cases]]
path = "a.txt"

[[pairs]]
from = 1
to = 2
`)

	cfg, err := bench.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "a", cfg.Cases[0].Name)
	assert.Equal(t, []core.Representation{core.Matrix, core.List}, cfg.RepresentationList())
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, 2, cfg.Origin)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, bench.DefaultSampleThreshold, cfg.SampleThreshold)
	assert.Equal(t, []bench.Pair{{From: 1, To: 2}}, cfg.Pairs)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := bench.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cases := map[string]string{
		"bench.json":     `{}`,
		"nocases.yaml":   "runs: 2\n",
		"nopath.yaml":    "cases:\n  - name: x\n",
		"badrepr.yaml":   "cases: [{path: a.txt}]\nrepresentations: [tree]\n",
		"badruns.yaml":   "cases: [{path: a.txt}]\nruns: -1\n",
		"badwatch.yaml":  "cases: [{path: a.txt}]\nwatch: [0]\n",
		"badpair.toml":   "[[cases]]\npath = \"a.txt\"\n[[pairs]]\nfrom = 0\nto = 1\n",
		"badorigin.yaml": "cases: [{path: a.txt}]\norigin: -3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bench.LoadConfig(writeFile(t, dir, name, body))
			assert.ErrorIs(t, err, bench.ErrInvalidConfig)
		})
	}

	_, err = bench.LoadConfig(writeFile(t, dir, "broken.yaml", "cases: [\n"))
	assert.Error(t, err)

	_, err = bench.LoadConfig(writeFile(t, dir, "badrepr2.yaml", "cases: [{path: a.txt}]\nrepresentations: [tree]\n"))
	assert.ErrorIs(t, err, core.ErrConfiguration)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := &bench.Config{
		Cases:           []bench.Case{{Path: writeCase(t, dir)}},
		Runs:            4,
		Watch:           []int{3, 5},
		Pairs:           []bench.Pair{{From: 1, To: 4}, {From: 1, To: 6}},
		SampleThreshold: -1,
	}

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	results, err := bench.Run(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, core.Matrix, results[0].Representation)
	assert.Equal(t, core.List, results[1].Representation)
	_, err = uuid.Parse(results[0].RunID)
	require.NoError(t, err)

	for _, r := range results {
		assert.Equal(t, results[0].RunID, r.RunID)
		assert.Equal(t, "split", r.Case)
		assert.Equal(t, 6, r.Nodes)
		assert.Equal(t, 4, r.Edges)
		assert.Equal(t, 2, r.Components)
		assert.Equal(t, 4, r.LargestComponent)
		assert.Equal(t, 2, r.SmallestComponent)
		assert.Equal(t, 3, r.Diameter)
		assert.False(t, r.DiameterSampled)
		assert.Equal(t, []bench.WatchParent{
			{Node: 3, BFSParent: 2, DFSParent: 2},
			{Node: 5, BFSParent: core.Unreachable, DFSParent: core.Unreachable},
		}, r.Watch)
		assert.Equal(t, 3, r.Distances[0].Hops)
		assert.Equal(t, core.Unreachable, r.Distances[1].Hops)
		assert.GreaterOrEqual(t, int64(r.BFS.Mean), int64(0))
	}

	assert.Contains(t, logs.String(), "bench started")
	assert.Contains(t, logs.String(), "case done")
}

func TestRun_SampledDiameter(t *testing.T) {
	dir := t.TempDir()
	cfg := &bench.Config{
		Cases:           []bench.Case{{Path: writeCase(t, dir)}},
		Representations: []string{"list"},
		Runs:            1,
		SampleThreshold: 2,
	}

	results, err := bench.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].DiameterSampled)
	assert.LessOrEqual(t, results[0].Diameter, 3)
}

// TestRun_RepresentationsShareDraws checks that the matrix and list runs of
// a case replay the same random stream, so sampled diameters agree.
func TestRun_RepresentationsShareDraws(t *testing.T) {
	dir := t.TempDir()
	el, err := builder.Build(nil, builder.Path(64))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, el))
	path := writeFile(t, dir, "path64.txt", buf.String())

	for seed := int64(1); seed <= 5; seed++ {
		cfg := &bench.Config{
			Cases:           []bench.Case{{Path: path}},
			Runs:            3,
			SampleThreshold: 10,
			Seed:            seed,
		}
		results, err := bench.Run(context.Background(), cfg, nil)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.True(t, results[0].DiameterSampled)
		assert.Equal(t, results[0].Diameter, results[1].Diameter, "seed %d", seed)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := bench.Run(context.Background(), &bench.Config{}, nil)
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)

	missing := &bench.Config{Cases: []bench.Case{{Path: filepath.Join(dir, "nope.txt")}}}
	_, err = bench.Run(context.Background(), missing, nil)
	assert.ErrorIs(t, err, edgelist.ErrInputNotFound)

	empty := &bench.Config{Cases: []bench.Case{{Path: writeFile(t, dir, "empty.txt", "0\n")}}}
	_, err = bench.Run(context.Background(), empty, nil)
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := &bench.Config{Cases: []bench.Case{{Path: writeCase(t, dir)}}}
	results, err := bench.Run(ctx, ok, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	cfg := &bench.Config{
		Cases:           []bench.Case{{Path: writeCase(t, dir)}},
		Representations: []string{"matrix"},
		Runs:            2,
		Watch:           []int{2},
		Pairs:           []bench.Pair{{From: 1, To: 3}},
	}
	results, err := bench.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	path, err := bench.WriteCSVFile(filepath.Join(dir, "out"), results)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", bench.CSVFileName), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header, row := rows[0], rows[1]
	require.Len(t, row, len(header))
	col := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("missing column %q", name)
		return ""
	}
	assert.Equal(t, results[0].RunID, col("run_id"))
	assert.Equal(t, "split", col("case"))
	assert.Equal(t, "matrix", col("representation"))
	assert.Equal(t, "6", col("nodes"))
	assert.Equal(t, "2", col("components"))
	assert.Equal(t, "3", col("diameter"))
	assert.Equal(t, "1", col("bfs_parent_2"))
	assert.Equal(t, "1", col("dfs_parent_2"))
	assert.Equal(t, "2", col("dist_1_3"))
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, nil))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "run_id", rows[0][0])
}
