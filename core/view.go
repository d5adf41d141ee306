// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views: deep Clone, InducedSubgraph, and the
//       predicate-filtered degree scan MaxDegreeExcluding.
// Determinism:
//   - Preserves vertex/edge IDs; results do not depend on map iteration order.
// Concurrency:
//   - Read locks on source; Clone/InducedSubgraph return fresh instances.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Vertex metadata maps are shared, not copied. nextEdgeID is carried over so future
// AddEdge calls on the clone never collide with copied IDs.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by keep: only vertices v where keep[v]
// is true, and all edges whose endpoints are both kept. A nil keep keeps everything.
// The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := &Graph{
		weighted:      g.weighted,
		allowLoops:    g.allowLoops,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}

	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if kept(id) {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]string)
		}
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		out.adjacencyList[e.From][e.To] = eid
		out.adjacencyList[e.To][e.From] = eid
	}

	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}

// MaxDegreeExcluding computes, over the logical view of g without the vertices in
// exclude, the maximum vertex degree and the number of vertices in that view.
//
// Implementation:
//   - Stage 1: Acquire read locks (muVert -> muEdgeAdj).
//   - Stage 2: For every vertex not excluded, count incident endpoints whose other
//     end is not excluded (loops count twice).
//   - Stage 3: Track the running maximum.
//
// Behavior highlights:
//   - Nothing is copied or mutated; exclusion is a membership predicate.
//   - An empty view yields (0, 0).
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) MaxDegreeExcluding(exclude map[string]struct{}) (maxDegree, viewSize int) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var id, nbr string
	var skip bool
	var d int
	for id = range g.vertices {
		if _, skip = exclude[id]; skip {
			continue
		}
		viewSize++

		d = 0
		for nbr = range g.adjacencyList[id] {
			if _, skip = exclude[nbr]; skip {
				continue
			}
			if nbr == id {
				d += 2
				continue
			}
			d++
		}
		if d > maxDegree {
			maxDegree = d
		}
	}

	return maxDegree, viewSize
}
