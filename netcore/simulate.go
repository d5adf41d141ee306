// SPDX-License-Identifier: MIT

package netcore

import (
	"fmt"

	"github.com/katalvlaran/netcore/core"
)

// SimulateRemainingDegree returns the maximum degree of the view of g without
// candidate and its direct neighbors; an empty view yields 0.
//
// The view is a membership filter over the live graph: nothing is copied or
// mutated, and the result depends only on g and candidate.
// The view size is re-checked against |V| - 1 - deg(candidate).
//
// Complexity: O(V + E) time, O(deg) memory.
func SimulateRemainingDegree(g *core.Graph, candidate string) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	nbrs, err := g.NeighborIDs(candidate)
	if err != nil {
		return 0, fmt.Errorf("SimulateRemainingDegree(%q): %w", candidate, err)
	}

	exclude := make(map[string]struct{}, len(nbrs)+1)
	exclude[candidate] = struct{}{}
	for _, id := range nbrs {
		exclude[id] = struct{}{}
	}

	maxDeg, size := g.MaxDegreeExcluding(exclude)
	if want := g.VertexCount() - len(exclude); size != want {
		return 0, invariantf("SimulateRemainingDegree(%q): view has %d vertices, want %d", candidate, size, want)
	}

	return maxDeg, nil
}
