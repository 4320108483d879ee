// Package seedtree turns string identifiers into reproducible seed
// hierarchies and tracks the experiments run with them.
//
// 🌱 What is seedtree?
//
//	A deterministic toolkit for seed management in repeated experiments:
//		• hashseed   — string identifier → stable integer seed (MD5-based)
//		• prng       — explicit xoshiro256** stream, bit-reproducible everywhere
//		• sampler    — simple / stratified / cluster / systematic seed sampling
//		• hierarchy  — master → seeds → sub-seeds trees with lineage tracking
//		• experiment — result registry, per-group aggregation, tabular export
//		• config     — TOML run configuration for the seedtree command
//
// ✨ Why seedtree?
//
//   - Reproducible by construction — every output is a pure function of
//     the experiment name and the documented parameters
//   - Collision-safe lineage — tree positions are identified structurally,
//     so equal seed values can never corrupt each other's ancestry
//   - Statistical structure on demand — stratified coverage, clustered
//     locality, or systematic spacing instead of plain uniform draws
//
// Typical flow:
//
//	master, _ := hashseed.DeriveDefault("project_alpha")
//	tree, _ := hierarchy.Build(int64(master), hierarchy.DefaultOptions())
//	reg, _ := experiment.NewRegistry("project_alpha", tree)
//	... run experiments with the generated seeds ...
//	reg.AddResult(seed, "classification", metrics, sampler.Stratified, nil)
//	reg.Export(file, experiment.CSV)
//
// See each package's documentation for contracts and error semantics.
package seedtree
