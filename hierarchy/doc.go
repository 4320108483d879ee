// Package hierarchy expands a master seed into a tree of child seeds with
// full lineage tracking.
//
// Build starts from a single root (level 0 = the master), then for each
// depth d up to MaxDepth visits every node of level d-1 in order, roots a
// fresh sampler at that node's value, and appends its children to level d
// parent-major: all children of an earlier parent precede all children of
// a later one. Level 1 receives NSeeds children per parent, deeper levels
// NSubSeeds. Absent value collisions, level d holds
// NSeeds x NSubSeeds^(d-1) seeds.
//
// Lineage is keyed structurally, not by seed value: every node carries a
// generated unique identifier and a parent identifier, so two parents
// producing the same child value can never overwrite each other's lineage
// entry. The value-based lookups (Lineage, Node) resolve a value to its
// first-generated node, which keeps them deterministic when collisions do
// occur.
//
// A Tree is immutable after Build and safe for concurrent readers.
package hierarchy
