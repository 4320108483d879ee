package hierarchy

import (
	"github.com/google/uuid"

	"github.com/seedtree/seedtree/sampler"
)

// Hierarchy maps each level to the ordered seed values generated there.
// Level 0 is always the single master seed.
type Hierarchy map[int][]int64

// Node is one position in the tree. Nodes are created only by Build and
// never mutated afterwards.
type Node struct {
	// ID is the structural identity of this position. Lineage edges are
	// keyed by it, so equal seed values in different positions stay
	// distinct.
	ID uuid.UUID

	// Value is the seed at this position. Values are not unique across
	// the tree; collisions are tolerated.
	Value int64

	// Parent is the ID of the generating node, or uuid.Nil at the root.
	Parent uuid.UUID

	// Level is the depth of this node: 0 for the root.
	Level int
}

// Options configures Build.
//
// Fields:
//   - NSeeds    — children generated from the master (level 1 width).
//   - NSubSeeds — children generated per node at deeper levels.
//   - MaxDepth  — number of levels below the root (1 = seeds only).
//   - Method    — sampling strategy used at every expansion.
//   - Range     — closed interval all generated seeds fall into.
//   - Strata, Clusters, SamplesPerCluster — method-specific knobs;
//     zero values fall back to the sampler defaults.
type Options struct {
	NSeeds    int
	NSubSeeds int
	MaxDepth  int
	Method    sampler.Method
	Range     sampler.Range

	Strata            int
	Clusters          int
	SamplesPerCluster int
}

// DefaultOptions returns the conventional configuration: 10 seeds, 5
// sub-seeds, depth 2, simple sampling over the default range.
func DefaultOptions() Options {
	return Options{
		NSeeds:    10,
		NSubSeeds: 5,
		MaxDepth:  2,
		Method:    sampler.Simple,
		Range:     sampler.DefaultRange,
	}
}

// samplerOptions translates the method-specific knobs into sampler
// options, skipping unset (zero) values.
func (o Options) samplerOptions() []sampler.Option {
	var opts []sampler.Option
	if o.Strata > 0 {
		opts = append(opts, sampler.WithStrata(o.Strata))
	}
	if o.Clusters > 0 {
		opts = append(opts, sampler.WithClusters(o.Clusters))
	}
	if o.SamplesPerCluster > 0 {
		opts = append(opts, sampler.WithSamplesPerCluster(o.SamplesPerCluster))
	}
	return opts
}
