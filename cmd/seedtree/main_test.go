package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/seedtree/seedtree/hierarchy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteTree_CSV verifies the tabular rendering: header plus one row
// per hierarchy position, lineage joined with '/'.
func TestWriteTree_CSV(t *testing.T) {
	opts := hierarchy.DefaultOptions()
	opts.NSeeds = 3
	opts.NSubSeeds = 2
	tree, err := hierarchy.Build(42, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, tree, "csv"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+1+3+6, "header + root + level1 + level2")
	assert.Equal(t, []string{"level", "index", "seed", "lineage"}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "42", rows[1][2])
	assert.Equal(t, "42", rows[1][3], "root lineage is just the master")
}

// TestWriteTree_JSON verifies the JSON rendering round-trips.
func TestWriteTree_JSON(t *testing.T) {
	tree, err := hierarchy.Build(42, hierarchy.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, tree, "json"))

	var rows []treeRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1+10+50)
	assert.Equal(t, int64(42), rows[0].Seed)
	assert.Equal(t, []int64{42}, rows[0].Lineage)
}

// TestWriteTree_UnknownFormat verifies rejection of formats the tree
// writer does not support.
func TestWriteTree_UnknownFormat(t *testing.T) {
	tree, err := hierarchy.Build(42, hierarchy.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, writeTree(&buf, tree, "excel"))
}

// TestRun_EndToEnd runs the command against a temp config and checks the
// produced file.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "tree.csv")
	cfgPath := filepath.Join(dir, "seedtree.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
experiment = "project_alpha"
n_seeds = 4
n_sub_seeds = 2
max_depth = 2
sampling_method = "systematic"
seed_range = [0, 100000]
`), 0o644))

	err := run([]string{"-config", cfgPath, "-out", outPath})
	require.NoError(t, err)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+1+4+8)
}

// TestRun_BadMethod verifies that validation failures abort the run.
func TestRun_BadMethod(t *testing.T) {
	err := run([]string{"-name", "x", "-method", "bootstrap"})
	assert.Error(t, err)
}
