// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/katalvlaran/netcore/core"
)

// Components partitions g into connected components.
//
// order fixes the output: components appear in order of their first member in
// order, and members are listed in order too. Vertices missing from order
// follow, sorted by ID. A nil order means g.Vertices().
// Supported options: WithContext and WithFilterEdge; depth limits and hooks
// would split components and are rejected with ErrOptionViolation.
//
// Complexity: O(V + E) plus O(V log V) for ordering.
func Components(g *core.Graph, order []string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxDepth != 0 {
		return nil, ErrOptionViolation
	}
	if order == nil {
		order = g.Vertices()
	}

	rank := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := rank[id]; !dup {
			rank[id] = i
		}
	}
	less := func(a, b string) bool {
		ra, oka := rank[a]
		rb, okb := rank[b]
		switch {
		case oka && okb:
			return ra < rb
		case oka != okb:
			return oka
		default:
			return a < b
		}
	}

	seeds := append([]string(nil), order...)
	for _, id := range g.Vertices() {
		if _, ok := rank[id]; !ok {
			seeds = append(seeds, id)
		}
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range seeds {
		if seen[id] || !g.HasVertex(id) {
			continue
		}
		res, err := BFS(g, id, WithContext(o.Ctx), WithFilterEdge(o.FilterEdge))
		if err != nil {
			return nil, err
		}
		members := res.Order
		for _, m := range members {
			seen[m] = true
		}
		sort.Slice(members, func(i, j int) bool { return less(members[i], members[j]) })
		out = append(out, members)
	}

	return out, nil
}
