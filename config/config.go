package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/seedtree/seedtree/experiment"
	"github.com/seedtree/seedtree/hierarchy"
	"github.com/seedtree/seedtree/sampler"
)

var (
	// ErrEmptyExperiment indicates a blank experiment name.
	ErrEmptyExperiment = errors.New("config: experiment name must not be empty")

	// ErrBadSeedRange indicates seed_range is not a [lo, hi] pair with lo < hi.
	ErrBadSeedRange = errors.New("config: seed_range must be [lo, hi] with lo < hi")
)

// Config is the resolved run configuration.
type Config struct {
	Experiment string

	NSeeds    int
	NSubSeeds int
	MaxDepth  int

	SamplingMethod string
	SeedRange      [2]int64

	NStrata           int
	NClusters         int
	SamplesPerCluster int

	Output string
	Format string
}

// Default returns the configuration used when no file or flag overrides
// anything: 10 seeds, 5 sub-seeds, depth 2, simple sampling over the
// default range, CSV output.
func Default() Config {
	return Config{
		Experiment:     "experiment",
		NSeeds:         10,
		NSubSeeds:      5,
		MaxDepth:       2,
		SamplingMethod: sampler.Simple.String(),
		SeedRange:      [2]int64{sampler.DefaultRange.Lo, sampler.DefaultRange.Hi},
		Format:         experiment.CSV.String(),
	}
}

// fileConfig mirrors the raw TOML keys; merging is gated on
// meta.IsDefined so absent keys keep their defaults.
type fileConfig struct {
	Experiment        string  `toml:"experiment"`
	NSeeds            int     `toml:"n_seeds"`
	NSubSeeds         int     `toml:"n_sub_seeds"`
	MaxDepth          int     `toml:"max_depth"`
	SamplingMethod    string  `toml:"sampling_method"`
	SeedRange         []int64 `toml:"seed_range"`
	NStrata           int     `toml:"n_strata"`
	NClusters         int     `toml:"n_clusters"`
	SamplesPerCluster int     `toml:"samples_per_cluster"`
	Output            string  `toml:"output"`
	Format            string  `toml:"format"`
}

// Load reads path and overlays its keys onto Default().
// The result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if meta.IsDefined("experiment") {
		cfg.Experiment = raw.Experiment
	}
	if meta.IsDefined("n_seeds") {
		cfg.NSeeds = raw.NSeeds
	}
	if meta.IsDefined("n_sub_seeds") {
		cfg.NSubSeeds = raw.NSubSeeds
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("sampling_method") {
		cfg.SamplingMethod = raw.SamplingMethod
	}
	if meta.IsDefined("seed_range") {
		if len(raw.SeedRange) != 2 {
			return Config{}, fmt.Errorf("%w: got %d elements", ErrBadSeedRange, len(raw.SeedRange))
		}
		cfg.SeedRange = [2]int64{raw.SeedRange[0], raw.SeedRange[1]}
	}
	if meta.IsDefined("n_strata") {
		cfg.NStrata = raw.NStrata
	}
	if meta.IsDefined("n_clusters") {
		cfg.NClusters = raw.NClusters
	}
	if meta.IsDefined("samples_per_cluster") {
		cfg.SamplesPerCluster = raw.SamplesPerCluster
	}
	if meta.IsDefined("output") {
		cfg.Output = raw.Output
	}
	if meta.IsDefined("format") {
		cfg.Format = raw.Format
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies the eager checks of the downstream packages to the
// configuration as a whole.
func (c Config) Validate() error {
	if c.Experiment == "" {
		return ErrEmptyExperiment
	}
	if c.NSeeds <= 0 || c.NSubSeeds <= 0 {
		return fmt.Errorf("%w: n_seeds=%d, n_sub_seeds=%d",
			hierarchy.ErrBadSeedCount, c.NSeeds, c.NSubSeeds)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max_depth=%d", hierarchy.ErrBadDepth, c.MaxDepth)
	}
	if c.SeedRange[0] >= c.SeedRange[1] {
		return fmt.Errorf("%w: [%d, %d]", ErrBadSeedRange, c.SeedRange[0], c.SeedRange[1])
	}
	if _, err := sampler.ParseMethod(c.SamplingMethod); err != nil {
		return err
	}
	if _, err := experiment.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// BuildOptions translates the configuration into hierarchy build options.
// Call Validate (or Load, which validates) first.
func (c Config) BuildOptions() (hierarchy.Options, error) {
	method, err := sampler.ParseMethod(c.SamplingMethod)
	if err != nil {
		return hierarchy.Options{}, err
	}
	return hierarchy.Options{
		NSeeds:            c.NSeeds,
		NSubSeeds:         c.NSubSeeds,
		MaxDepth:          c.MaxDepth,
		Method:            method,
		Range:             sampler.Range{Lo: c.SeedRange[0], Hi: c.SeedRange[1]},
		Strata:            c.NStrata,
		Clusters:          c.NClusters,
		SamplesPerCluster: c.SamplesPerCluster,
	}, nil
}
