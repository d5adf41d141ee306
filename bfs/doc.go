// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus a Components helper
// that partitions a correlation graph into clusters of mutually reachable
// features.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start.
//   - Edge weights (signed correlations) never affect distance; they can be
//     used to prune edges through WithFilterEdge or WithMinAbsWeight.
//   - OnVisit may abort the walk with an error; MaxDepth bounds it.
//   - Components runs BFS from every unseen vertex in a caller-given order.
//
// Determinism
//
//	Neighbors are expanded in edge insertion order, and Components sorts
//	members by the caller's order, so output is reproducible run to run.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            nil graph
//   - ErrStartVertexNotFound start vertex absent
//   - ErrOptionViolation     negative MaxDepth, or MaxDepth on Components
//   - ErrNeighbors           neighbor lookup failed
package bfs
