package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/seedtree/seedtree/config"
	"github.com/seedtree/seedtree/hierarchy"
	"github.com/seedtree/seedtree/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a TOML file into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seedtree.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoad_DefaultsAndOverrides verifies that only keys present in the
// file override the defaults.
func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
experiment = "project_alpha"
n_seeds = 7
sampling_method = "stratified"
seed_range = [0, 100000]
n_strata = 10
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "project_alpha", cfg.Experiment)
	assert.Equal(t, 7, cfg.NSeeds)
	assert.Equal(t, "stratified", cfg.SamplingMethod)
	assert.Equal(t, [2]int64{0, 100000}, cfg.SeedRange)
	assert.Equal(t, 10, cfg.NStrata)

	// Untouched keys keep their defaults.
	def := config.Default()
	assert.Equal(t, def.NSubSeeds, cfg.NSubSeeds)
	assert.Equal(t, def.MaxDepth, cfg.MaxDepth)
	assert.Equal(t, def.Format, cfg.Format)
}

// TestLoad_Invalid verifies that validation failures surface the
// downstream sentinels.
func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"empty name", `experiment = ""`, config.ErrEmptyExperiment},
		{"bad count", `n_seeds = 0`, hierarchy.ErrBadSeedCount},
		{"bad depth", `max_depth = -1`, hierarchy.ErrBadDepth},
		{"inverted range", `seed_range = [9, 3]`, config.ErrBadSeedRange},
		{"short range", `seed_range = [5]`, config.ErrBadSeedRange},
		{"bad method", `sampling_method = "bootstrap"`, sampler.ErrUnknownMethod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_MissingFile verifies the file-level error path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

// TestBuildOptions verifies the translation into hierarchy options.
func TestBuildOptions(t *testing.T) {
	path := writeConfig(t, `
experiment = "demo"
n_seeds = 4
n_sub_seeds = 3
max_depth = 3
sampling_method = "cluster"
seed_range = [10, 5000]
n_clusters = 4
samples_per_cluster = 1
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	opts, err := cfg.BuildOptions()
	require.NoError(t, err)

	assert.Equal(t, 4, opts.NSeeds)
	assert.Equal(t, 3, opts.NSubSeeds)
	assert.Equal(t, 3, opts.MaxDepth)
	assert.Equal(t, sampler.Cluster, opts.Method)
	assert.Equal(t, sampler.Range{Lo: 10, Hi: 5000}, opts.Range)
	assert.Equal(t, 4, opts.Clusters)
	assert.Equal(t, 1, opts.SamplesPerCluster)

	// The options must drive a real build.
	tree, err := hierarchy.Build(42, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Depth())
}

// TestValidate_UnknownFormat verifies the export format check.
func TestValidate_UnknownFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "excel"
	assert.Error(t, cfg.Validate())
}
