package experiment_test

import (
	"fmt"

	"github.com/seedtree/seedtree/experiment"
	"github.com/seedtree/seedtree/hierarchy"
	"github.com/seedtree/seedtree/sampler"
)

// ExampleRegistry_AddResult records a run for a level-2 seed and shows
// the reconstructed lineage length.
func ExampleRegistry_AddResult() {
	tree, _ := hierarchy.Build(42, hierarchy.DefaultOptions())
	reg, _ := experiment.NewRegistry("demo", tree)

	level2, _ := tree.Level(2)
	res, _ := reg.AddResult(level2[0], "classification",
		map[string]float64{"accuracy": 0.93}, sampler.Simple, nil)

	fmt.Println(len(res.Lineage))
	fmt.Println(res.Lineage[0] == tree.Master())
	fmt.Println(res.Level)
	// Output:
	// 3
	// true
	// 2
}

// ExampleRegistry_Aggregate groups three runs by sampling method.
func ExampleRegistry_Aggregate() {
	tree, _ := hierarchy.Build(42, hierarchy.DefaultOptions())
	reg, _ := experiment.NewRegistry("demo", tree)

	reg.AddResult(1, "t", map[string]float64{"score": 0.2}, sampler.Simple, nil)
	reg.AddResult(2, "t", map[string]float64{"score": 0.4}, sampler.Simple, nil)
	reg.AddResult(3, "t", map[string]float64{"score": 0.9}, sampler.Cluster, nil)

	groups, _ := reg.Aggregate(experiment.GroupByMethod)
	fmt.Printf("simple mean:  %.2f over %d runs\n",
		groups["simple"]["score"].Mean, groups["simple"]["score"].Count)
	fmt.Printf("cluster mean: %.2f over %d runs\n",
		groups["cluster"]["score"].Mean, groups["cluster"]["score"].Count)
	// Output:
	// simple mean:  0.30 over 2 runs
	// cluster mean: 0.90 over 1 runs
}
