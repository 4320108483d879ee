package hierarchy

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/seedtree/seedtree/sampler"
)

// Tree is a completed seed hierarchy with its lineage index.
// It is immutable after Build.
type Tree struct {
	master int64
	levels [][]int64      // seed values per level, generation order
	order  [][]uuid.UUID  // node IDs per level, same order as levels
	nodes  map[uuid.UUID]*Node
	byVal  map[int64]uuid.UUID // value -> first-generated node with it
}

// Build expands master into a tree according to opts.
//
// Level 0 holds only the master. For each depth d in 1..MaxDepth, every
// node at level d-1 roots a fresh sampler at its value and contributes
// NSeeds (d == 1) or NSubSeeds (d > 1) children, appended parent-major.
// Complexity: O(total nodes) time and space.
func Build(master int64, opts Options) (*Tree, error) {
	if opts.NSeeds <= 0 || opts.NSubSeeds <= 0 {
		return nil, fmt.Errorf("%w: n_seeds=%d, n_sub_seeds=%d",
			ErrBadSeedCount, opts.NSeeds, opts.NSubSeeds)
	}
	if opts.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: max_depth=%d", ErrBadDepth, opts.MaxDepth)
	}

	t := &Tree{
		master: master,
		nodes:  make(map[uuid.UUID]*Node),
		byVal:  make(map[int64]uuid.UUID),
	}

	root := &Node{ID: uuid.New(), Value: master, Parent: uuid.Nil, Level: 0}
	t.insert(root)
	t.levels = append(t.levels, []int64{master})
	t.order = append(t.order, []uuid.UUID{root.ID})

	smpOpts := opts.samplerOptions()
	for d := 1; d <= opts.MaxDepth; d++ {
		n := opts.NSeeds
		if d > 1 {
			n = opts.NSubSeeds
		}

		var (
			values []int64
			ids    []uuid.UUID
		)
		for _, parentID := range t.order[d-1] {
			parent := t.nodes[parentID]
			children, err := sampler.New(parent.Value).
				Sample(opts.Method, n, opts.Range, smpOpts...)
			if err != nil {
				return nil, fmt.Errorf("hierarchy: expanding level %d: %w", d, err)
			}
			for _, v := range children {
				node := &Node{ID: uuid.New(), Value: v, Parent: parentID, Level: d}
				t.insert(node)
				values = append(values, v)
				ids = append(ids, node.ID)
			}
		}
		t.levels = append(t.levels, values)
		t.order = append(t.order, ids)
	}

	return t, nil
}

// insert registers a node; the value index keeps the first occurrence so
// later collisions never rewrite an existing lineage.
func (t *Tree) insert(n *Node) {
	t.nodes[n.ID] = n
	if _, seen := t.byVal[n.Value]; !seen {
		t.byVal[n.Value] = n.ID
	}
}

// Master returns the root seed.
func (t *Tree) Master() int64 { return t.master }

// Depth returns the number of levels below the root.
func (t *Tree) Depth() int { return len(t.levels) - 1 }

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Level returns a copy of the ordered seed values at depth d.
func (t *Tree) Level(d int) ([]int64, error) {
	if d < 0 || d >= len(t.levels) {
		return nil, fmt.Errorf("%w: %d", ErrLevelOutOfRange, d)
	}
	out := make([]int64, len(t.levels[d]))
	copy(out, t.levels[d])
	return out, nil
}

// Levels returns a copy of the full level -> seeds mapping.
func (t *Tree) Levels() Hierarchy {
	h := make(Hierarchy, len(t.levels))
	for d, vals := range t.levels {
		out := make([]int64, len(vals))
		copy(out, vals)
		h[d] = out
	}
	return h
}

// Node returns the first-generated node holding value.
func (t *Tree) Node(value int64) (Node, bool) {
	id, ok := t.byVal[value]
	if !ok {
		return Node{}, false
	}
	return *t.nodes[id], true
}

// Lineage returns the root-to-node path of seed values for the
// first-generated node holding value, and whether the value is known to
// the tree at all. The path always starts at the master; its length is
// the node's level plus one.
// Complexity: O(level).
func (t *Tree) Lineage(value int64) ([]int64, bool) {
	id, ok := t.byVal[value]
	if !ok {
		return nil, false
	}

	var reversed []int64
	for id != uuid.Nil {
		n := t.nodes[id]
		reversed = append(reversed, n.Value)
		id = n.Parent
	}

	path := make([]int64, len(reversed))
	for i, v := range reversed {
		path[len(path)-1-i] = v
	}
	return path, true
}
