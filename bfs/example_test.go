// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/netcore/bfs"
	"github.com/katalvlaran/netcore/core"
)

// ExampleComponents groups features that are linked by a chain of strong
// correlations.
func ExampleComponents() {
	g := core.NewGraph(core.WithWeighted())
	order := []string{"ph", "dose", "mic", "zone"}
	for _, id := range order {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("dose", "mic", 0.82)
	_, _ = g.AddEdge("mic", "zone", -0.71)

	clusters, err := bfs.Components(g, order)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(clusters)
	// Output:
	// [[ph] [dose mic zone]]
}
