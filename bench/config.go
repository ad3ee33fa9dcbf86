// Package bench drives timed case studies over edge-list files: load cost,
// BFS/DFS timings from random origins, watched-node parents, pair distances,
// component sizes and diameter, for each configured representation.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/edgelist"
)

// ErrInvalidConfig is returned for a config that fails validation.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Defaults applied to zero-valued fields.
const (
	DefaultRuns            = 100
	DefaultOrigin          = 1
	DefaultSampleThreshold = 1000
	DefaultSeed            = 1
	DefaultOutputDir       = "reports"
)

// Config describes one benchmark session.
type Config struct {
	// Cases are the edge-list files to measure, in order.
	Cases []Case `yaml:"cases" toml:"cases"`

	// Representations to build each case in; default matrix and list.
	Representations []string `yaml:"representations" toml:"representations"`

	// Runs is the number of random origins timed for BFS and DFS.
	Runs int `yaml:"runs" toml:"runs"`

	// Origin roots the BFS/DFS trees whose watched-node parents are reported.
	Origin int `yaml:"origin" toml:"origin"`

	// Watch lists nodes whose parents in the Origin trees are reported.
	Watch []int `yaml:"watch" toml:"watch"`

	// Pairs are node pairs whose hop distance is reported.
	Pairs []Pair `yaml:"pairs" toml:"pairs"`

	// SampleThreshold switches the diameter to sampled mode above this N;
	// negative disables sampling.
	SampleThreshold int `yaml:"sample_threshold" toml:"sample_threshold"`

	// Seed feeds the origin picker and the diameter sampler. Zero is not a
	// usable seed: it is replaced by DefaultSeed.
	Seed int64 `yaml:"seed" toml:"seed"`

	// OutputDir receives the CSV written by the CLI.
	OutputDir string `yaml:"output_dir" toml:"output_dir"`

	reprs []core.Representation
}

// Case is one input file. Name defaults to the file's base name.
type Case struct {
	Name string `yaml:"name" toml:"name"`
	Path string `yaml:"path" toml:"path"`
}

// Pair is an ordered node pair for distance queries.
type Pair struct {
	From int `yaml:"from" toml:"from"`
	To   int `yaml:"to" toml:"to"`
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) config file,
// applies defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Prepare(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Prepare applies defaults and validates c. Run calls it too, so a Config
// built in code needs no extra step.
func (c *Config) Prepare() error {
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// RepresentationList returns the parsed representations (after Prepare).
func (c *Config) RepresentationList() []core.Representation { return c.reprs }

// applyDefaults fills zero-valued fields.
func (c *Config) applyDefaults() {
	if len(c.Representations) == 0 {
		c.Representations = []string{core.Matrix.String(), core.List.String()}
	}
	if c.Runs == 0 {
		c.Runs = DefaultRuns
	}
	if c.Origin == 0 {
		c.Origin = DefaultOrigin
	}
	if c.SampleThreshold == 0 {
		c.SampleThreshold = DefaultSampleThreshold
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	for i := range c.Cases {
		if c.Cases[i].Name == "" && c.Cases[i].Path != "" {
			c.Cases[i].Name = edgelist.Name(c.Cases[i].Path)
		}
	}
}

// validate checks the fields defaults cannot fix.
func (c *Config) validate() error {
	if len(c.Cases) == 0 {
		return fmt.Errorf("at least one case is required")
	}
	for i, cs := range c.Cases {
		if cs.Path == "" {
			return fmt.Errorf("cases[%d].path is required", i)
		}
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be >= 1 (got %d)", c.Runs)
	}
	if c.Origin < 1 {
		return fmt.Errorf("origin must be >= 1 (got %d)", c.Origin)
	}
	for _, p := range c.Watch {
		if p < 1 {
			return fmt.Errorf("watch node must be >= 1 (got %d)", p)
		}
	}
	for _, p := range c.Pairs {
		if p.From < 1 || p.To < 1 {
			return fmt.Errorf("pair nodes must be >= 1 (got %d, %d)", p.From, p.To)
		}
	}

	c.reprs = c.reprs[:0]
	for _, s := range c.Representations {
		r, err := core.ParseRepresentation(s)
		if err != nil {
			return err
		}
		c.reprs = append(c.reprs, r)
	}

	return nil
}
