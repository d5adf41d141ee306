package core_test

import (
	"fmt"

	"github.com/katalvlaran/netcore/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, weighted graph:
	g := core.NewGraph(core.WithWeighted())

	// 2) Add edges (auto-adds vertices A, B, C):
	_, _ = g.AddEdge("A", "B", 0.8)
	_, _ = g.AddEdge("B", "C", -0.7)
	_, _ = g.AddEdge("C", "A", 0.9)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edges left:", g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edges left: 1
}

// ExampleGraph_MaxDegreeExcluding shows a masked degree scan that leaves g untouched.
func ExampleGraph_MaxDegreeExcluding() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "B", 0)

	maxDeg, size := g.MaxDegreeExcluding(map[string]struct{}{"A": {}})
	fmt.Println(maxDeg, size, g.VertexCount())

	// Output:
	// 2 3 4
}
