// Package core provides a thread-safe, in-memory undirected Graph with
// float64 edge weights and a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Self-loops (WithLoops); rejected by default
//   - At most one edge per vertex pair (parallel edges are always rejected)
//   - Constant-time edge lookup via nested maps: adjacencyList[u][v] = edgeID,
//     mirrored for every non-loop edge
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), Isolates(), NeighborIDs() return sorted IDs;
//     Edges() and Neighbors() return edges in creation order.
//   - Shrink-only workflows are cheap: RemoveVertex is O(deg(v)).
//   - Non-mutating views: Clone, InducedSubgraph and the predicate-filtered
//     MaxDegreeExcluding scan never touch the source graph.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//	RemoveVertex(id string) error               // O(deg(v))
//	SetMetadata(id, key string, v any) error    // O(1)
//	Metadata(id, key string) (any, bool)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error             // O(1)
//	HasEdge(from, to string) bool               // O(1)
//	EdgeBetween(u, v string) (*Edge, error)     // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)       // O(d·log d)
//	NeighborIDs(id string) ([]string, error)    // O(d·log d)
//	Degree(id string) (int, error)              // O(1)
//	Isolates() []string                         // O(V·log V)
//	Vertices() []string                         // O(V·log V)
//	Edges() []*Edge                             // O(E·log E)
//	VertexCount(), EdgeCount() int              // O(1)
//
//	// Views
//	Clone() *Graph                              // O(V+E)
//	InducedSubgraph(g, keep) *Graph             // O(V+E)
//	MaxDegreeExcluding(exclude) (max, size int) // O(V+E), no allocation
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or NaN/±Inf weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
