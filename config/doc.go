// Package config loads seedtree run configuration from TOML files.
//
// Recognized options mirror the public knobs of the hierarchy and
// sampler packages: experiment name, n_seeds, n_sub_seeds, max_depth,
// sampling_method, seed_range, and the method-specific n_strata /
// n_clusters / samples_per_cluster, plus the export destination and
// format. Options absent from the file keep their defaults; only keys
// actually present override them.
package config
