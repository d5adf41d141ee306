// SPDX-License-Identifier: MIT

package netcore

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netcore/core"
	"github.com/katalvlaran/netcore/matrix"
)

// Vertex metadata keys set by BuildGraph.
const (
	MetaFeature = "feature" // string: the feature label
	MetaIndex   = "index"   // int: canonical column index in the validated matrix
)

// ValidateThreshold rejects NaN and values outside [0, 1].
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return fmt.Errorf("%g: %w", threshold, ErrThresholdOutOfRange)
	}

	return nil
}

// BuildGraph converts a validated correlation matrix into an undirected
// weighted graph: one vertex per feature (ID = label, tagged with MetaFeature
// and MetaIndex) and one edge per unordered pair {a, b}, a≠b, with
// |corr(a,b)| ≥ threshold. The edge weight is the signed coefficient.
//
// Complexity: O(n²) time, O(n + E) memory.
func BuildGraph(v *matrix.Validated, threshold float64) (*core.Graph, error) {
	if v == nil {
		return nil, ErrNilMatrix
	}
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithWeighted())
	n := v.Len()
	var i, j int
	var label string
	for i = 0; i < n; i++ {
		label = v.Label(i)
		if err := g.AddVertex(label); err != nil {
			return nil, fmt.Errorf("BuildGraph: vertex %q: %w", label, err)
		}
		_ = g.SetMetadata(label, MetaFeature, label)
		_ = g.SetMetadata(label, MetaIndex, i)
	}
	if g.VertexCount() != n {
		return nil, invariantf("BuildGraph: %d vertices for %d features", g.VertexCount(), n)
	}

	var c float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c = v.Corr(i, j)
			if math.Abs(c) < threshold {
				continue
			}
			if _, err := g.AddEdge(v.Label(i), v.Label(j), c); err != nil {
				return nil, fmt.Errorf("BuildGraph: edge %q-%q: %w", v.Label(i), v.Label(j), err)
			}
		}
	}

	return g, nil
}

// FeatureOf returns the feature label carried by vertex id.
func FeatureOf(g *core.Graph, id string) (string, bool) {
	raw, ok := g.Metadata(id, MetaFeature)
	if !ok {
		return "", false
	}
	f, ok := raw.(string)

	return f, ok
}
