package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/connectivity"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/dfs"
	"github.com/katalvlaran/hopgraph/distance"
	"github.com/katalvlaran/hopgraph/edgelist"
)

// Timing summarises repeated traversal durations.
type Timing struct {
	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
}

// WatchParent is the parent of Node in the BFS and DFS trees rooted at
// Config.Origin; core.Unreachable when Node is outside that component.
type WatchParent struct {
	Node      int
	BFSParent int
	DFSParent int
}

// PairDistance is the hop distance of a configured pair.
type PairDistance struct {
	Pair
	Hops int
}

// Result holds the measurements of one case in one representation.
type Result struct {
	RunID          string
	Case           string
	Representation core.Representation
	Nodes          int
	Edges          int

	LoadTime time.Duration
	// HeapGrowth is the live-heap delta across the load, in bytes.
	HeapGrowth int64

	BFS Timing
	DFS Timing

	Watch     []WatchParent
	Distances []PairDistance

	Components        int
	LargestComponent  int
	SmallestComponent int

	Diameter        int
	DiameterSampled bool
}

// Run measures every case in every representation, sequentially. It stops
// between steps when ctx is cancelled. Progress is logged to logger; a nil
// logger discards it.
func Run(ctx context.Context, cfg *Config, logger *log.Logger) ([]Result, error) {
	if err := cfg.Prepare(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runID := uuid.NewString()
	logger.Info("bench started", "run", runID, "cases", len(cfg.Cases), "runs", cfg.Runs)

	var results []Result
	for _, cs := range cfg.Cases {
		for _, repr := range cfg.RepresentationList() {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			// Every representation of a case replays the same draws.
			rng := rand.New(rand.NewSource(cfg.Seed))
			res, err := runCase(ctx, cfg, cs, repr, rng, logger)
			if err != nil {
				return results, fmt.Errorf("case %s (%s): %w", cs.Name, repr, err)
			}
			res.RunID = runID
			results = append(results, res)
		}
	}

	logger.Info("bench finished", "run", runID, "results", len(results))
	return results, nil
}

// runCase measures one case in one representation.
func runCase(ctx context.Context, cfg *Config, cs Case, repr core.Representation, rng *rand.Rand, logger *log.Logger) (Result, error) {
	res := Result{Case: cs.Name, Representation: repr}

	g, took, growth, err := measureLoad(cs.Path, repr)
	if err != nil {
		return res, err
	}
	res.Nodes, res.Edges = g.NodeCount(), g.EdgeCount()
	res.LoadTime, res.HeapGrowth = took, growth
	logger.Debug("loaded", "case", cs.Name, "repr", repr, "nodes", res.Nodes, "edges", res.Edges, "took", took, "heap", growth)

	if res.Nodes == 0 {
		return res, fmt.Errorf("%w: graph has no nodes", ErrInvalidConfig)
	}

	bfsRun := func(v int) error { _, err := bfs.BFS(g, v); return err }
	dfsRun := func(v int) error { _, err := dfs.DFS(g, v); return err }
	if res.BFS, err = timeRuns(ctx, cfg.Runs, res.Nodes, rng, bfsRun); err != nil {
		return res, err
	}
	logger.Debug("bfs timed", "case", cs.Name, "repr", repr, "mean", res.BFS.Mean)
	if res.DFS, err = timeRuns(ctx, cfg.Runs, res.Nodes, rng, dfsRun); err != nil {
		return res, err
	}
	logger.Debug("dfs timed", "case", cs.Name, "repr", repr, "mean", res.DFS.Mean)

	if res.Watch, err = watchParents(g, cfg.Origin, cfg.Watch); err != nil {
		return res, err
	}
	for _, p := range cfg.Pairs {
		hops, err := distance.Distance(g, p.From, p.To)
		if err != nil {
			return res, err
		}
		res.Distances = append(res.Distances, PairDistance{Pair: p, Hops: hops})
	}

	comps, err := connectivity.Components(g)
	if err != nil {
		return res, err
	}
	res.Components = len(comps)
	res.LargestComponent = len(comps[0])
	res.SmallestComponent = len(comps[len(comps)-1])

	res.DiameterSampled = cfg.SampleThreshold > 0 && res.Nodes > cfg.SampleThreshold
	res.Diameter, err = distance.Diameter(g,
		distance.WithSampleThreshold(cfg.SampleThreshold),
		distance.WithRand(rng))
	if err != nil {
		return res, err
	}

	logger.Info("case done",
		"case", cs.Name, "repr", repr,
		"bfs", res.BFS.Mean, "dfs", res.DFS.Mean,
		"components", res.Components, "diameter", res.Diameter)
	return res, nil
}

// measureLoad loads path and reports wall time and live-heap growth.
func measureLoad(path string, repr core.Representation) (*core.Graph, time.Duration, int64, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	g, err := edgelist.Load(path, repr)
	took := time.Since(start)
	if err != nil {
		return nil, 0, 0, err
	}

	runtime.GC()
	runtime.ReadMemStats(&after)
	runtime.KeepAlive(g)

	return g, took, int64(after.HeapAlloc) - int64(before.HeapAlloc), nil
}

// timeRuns times fn from runs origins drawn uniformly from [1, n].
func timeRuns(ctx context.Context, runs, n int, rng *rand.Rand, fn func(origin int) error) (Timing, error) {
	samples := make(stats.Float64Data, 0, runs)
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return Timing{}, err
		}
		origin := rng.Intn(n) + 1
		start := time.Now()
		if err := fn(origin); err != nil {
			return Timing{}, err
		}
		samples = append(samples, float64(time.Since(start)))
	}

	return summarize(samples)
}

// summarize reduces nanosecond samples to a Timing.
func summarize(samples stats.Float64Data) (Timing, error) {
	mean, err := samples.Mean()
	if err != nil {
		return Timing{}, fmt.Errorf("bench: mean: %w", err)
	}
	median, err := samples.Median()
	if err != nil {
		return Timing{}, fmt.Errorf("bench: median: %w", err)
	}
	sd, err := samples.StandardDeviation()
	if err != nil {
		return Timing{}, fmt.Errorf("bench: stddev: %w", err)
	}

	return Timing{Mean: time.Duration(mean), Median: time.Duration(median), StdDev: time.Duration(sd)}, nil
}

// watchParents reports the parents of watched nodes in the BFS and DFS trees of origin.
func watchParents(g *core.Graph, origin int, watch []int) ([]WatchParent, error) {
	if len(watch) == 0 {
		return nil, nil
	}
	bt, err := bfs.BFS(g, origin)
	if err != nil {
		return nil, err
	}
	dt, err := dfs.DFS(g, origin)
	if err != nil {
		return nil, err
	}

	out := make([]WatchParent, 0, len(watch))
	for _, v := range watch {
		out = append(out, WatchParent{Node: v, BFSParent: bt.Parent(v), DFSParent: dt.Parent(v)})
	}
	return out, nil
}
