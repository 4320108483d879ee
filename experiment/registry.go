package experiment

import (
	"fmt"
	"sync"
	"time"

	"github.com/seedtree/seedtree/hierarchy"
	"github.com/seedtree/seedtree/sampler"
)

// Registry tracks experiment results against one seed hierarchy.
// The result collection is append-only; stored Results never change.
type Registry struct {
	mu      sync.Mutex
	name    string
	tree    *hierarchy.Tree
	results []Result

	strict bool
	now    func() time.Time
}

// RegistryOption customizes a Registry at construction.
type RegistryOption func(*Registry)

// WithStrictLineage makes AddResult fail with ErrUnknownSeed for seeds
// the hierarchy never produced, instead of recording them as direct
// children of the master.
func WithStrictLineage() RegistryOption {
	return func(r *Registry) { r.strict = true }
}

// WithClock overrides the timestamp source, for reproducible tests.
// Panics on nil.
func WithClock(now func() time.Time) RegistryOption {
	if now == nil {
		panic("experiment: WithClock(nil)")
	}
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates a Registry named name over the given hierarchy.
// Complexity: O(1).
func NewRegistry(name string, tree *hierarchy.Tree, opts ...RegistryOption) (*Registry, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if tree == nil {
		return nil, ErrNilTree
	}

	r := &Registry{
		name: name,
		tree: tree,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Name returns the registry's experiment name.
func (r *Registry) Name() string { return r.name }

// Master returns the master seed of the underlying hierarchy.
func (r *Registry) Master() int64 { return r.tree.Master() }

// AddResult records one experiment run for seed and returns the stored
// Result. The lineage is reconstructed by walking the hierarchy's parent
// links from the seed up to the root. A seed that was never generated is
// recorded as [master, seed] by default, or rejected with ErrUnknownSeed
// under WithStrictLineage.
// Complexity: O(level + len(metrics) + len(metadata)).
func (r *Registry) AddResult(
	seed int64,
	task string,
	metrics map[string]float64,
	method sampler.Method,
	metadata map[string]any,
) (Result, error) {
	lineage, ok := r.tree.Lineage(seed)
	if !ok {
		if r.strict {
			return Result{}, fmt.Errorf("%w: %d", ErrUnknownSeed, seed)
		}
		lineage = []int64{r.tree.Master(), seed}
	}

	res := Result{
		ExperimentID: fmt.Sprintf("%s_%s_seed%d", r.name, task, seed),
		Lineage:      lineage,
		Level:        len(lineage) - 1,
		Method:       method,
		Task:         task,
		Metrics:      cloneMetrics(metrics),
		Metadata:     cloneMetadata(metadata),
		Timestamp:    r.now(),
	}

	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()

	return res, nil
}

// Len returns the number of stored results.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

// Results returns a snapshot copy of the stored collection, in insertion
// order.
func (r *Registry) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// cloneMetrics copies the metric map so stored Results stay immutable.
func cloneMetrics(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// cloneMetadata copies the metadata map (shallow; values are caller-owned).
func cloneMetadata(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
