// Package experiment records results of seed-driven runs, reconstructs
// each seed's lineage from the hierarchy, and aggregates metrics.
//
// A Registry owns an append-only collection of Results. AddResult walks
// the hierarchy's parent links to rebuild the full root-to-leaf lineage
// of the seed that was used; a seed the hierarchy never produced is, by
// default, treated as a direct child of the master rather than rejected.
// WithStrictLineage turns that permissive fallback into ErrUnknownSeed.
//
// Aggregate groups the stored results by sampling method, task, or level
// and reports per-metric mean, sample standard deviation, min and max.
// Results missing a metric are excluded from that metric's aggregate,
// never counted as zero.
//
// Export writes the collection row-per-result with a deterministic column
// order: identity fields first, then metric columns sorted by name, then
// metadata columns sorted by name. CSV, JSON and YAML are supported.
//
// Registry methods are safe for concurrent use; appends and reads are
// guarded by an internal mutex.
package experiment
