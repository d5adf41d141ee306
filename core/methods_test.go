// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (weights, loops, parallel edges).

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netcore/core"
)

// TestGraph_AddRemoveVertex VERIFIES AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")

	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")
	if !g.HasVertex(VertexA) {
		t.Fatalf("HasVertex(A) after AddVertex(A) must be true")
	}

	// Duplicate AddVertex must be a no-op.
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A) duplicate")
	MustEqualInt(t, g.VertexCount(), 1, "duplicate AddVertex(A) must not change vertex count")

	MustErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID, "RemoveVertex(empty)")
	MustErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound, "RemoveVertex(X missing)")

	MustNoError(t, g.RemoveVertex(VertexA), "RemoveVertex(A)")
	if g.HasVertex(VertexA) {
		t.Fatalf("HasVertex(A) after RemoveVertex(A) must be false")
	}
}

// TestGraph_AddEdgeConstraints VERIFIES weight, loop and parallel-edge enforcement.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	// Unweighted graph rejects non-zero weight.
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, WeightHigh)
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge(A,B,0.9) on unweighted graph")

	// Weighted graph rejects non-finite weight.
	wg := core.NewGraph(core.WithWeighted())
	_, err = wg.AddEdge(VertexA, VertexB, math.NaN())
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge(A,B,NaN)")
	_, err = wg.AddEdge(VertexA, VertexB, math.Inf(-1))
	MustErrorIs(t, err, core.ErrBadWeight, "AddEdge(A,B,-Inf)")

	// Loops are rejected by default.
	_, err = wg.AddEdge(VertexA, VertexA, WeightHigh)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(A,A) loops disabled")

	// Parallel edges are rejected in both orientations.
	_, err = wg.AddEdge(VertexA, VertexB, WeightNeg)
	MustNoError(t, err, "AddEdge(A,B,-0.75)")
	_, err = wg.AddEdge(VertexB, VertexA, WeightHigh)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge(B,A) mirror of existing edge")

	// Loops allowed when configured; counted twice in Degree.
	lg := core.NewGraph(core.WithLoops())
	_, err = lg.AddEdge(VertexC, VertexC, Weight0)
	MustNoError(t, err, "AddEdge(C,C) loops enabled")
	d, err := lg.Degree(VertexC)
	MustNoError(t, err, "Degree(C)")
	MustEqualInt(t, d, 2, "self-loop contributes 2 to degree")
}

// TestGraph_EdgeQueries VERIFIES HasEdge/EdgeBetween symmetry and signed weights.
func TestGraph_EdgeQueries(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge(VertexA, VertexB, WeightNeg)
	MustNoError(t, err, "AddEdge(A,B)")

	if !g.HasEdge(VertexA, VertexB) || !g.HasEdge(VertexB, VertexA) {
		t.Fatalf("HasEdge must hold in both orientations")
	}
	if g.HasEdge(VertexEmpty, VertexA) {
		t.Fatalf("HasEdge(empty, A) must be false")
	}

	e, err := g.EdgeBetween(VertexB, VertexA)
	MustNoError(t, err, "EdgeBetween(B,A)")
	if e.ID != eid || e.Weight != WeightNeg {
		t.Fatalf("EdgeBetween(B,A): got id=%s w=%v; want id=%s w=%v", e.ID, e.Weight, eid, WeightNeg)
	}
	if e.Other(VertexB) != VertexA || e.Other(VertexA) != VertexB {
		t.Fatalf("Other must return the opposite endpoint")
	}

	_, err = g.EdgeBetween(VertexA, VertexC)
	MustErrorIs(t, err, core.ErrEdgeNotFound, "EdgeBetween(A,C) missing")

	MustNoError(t, g.RemoveEdge(eid), "RemoveEdge")
	MustErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound, "RemoveEdge twice")
	if g.HasEdge(VertexB, VertexA) {
		t.Fatalf("mirror adjacency must be removed with the edge")
	}
	MustEqualInt(t, g.VertexCount(), 2, "RemoveEdge must keep endpoints")
}

// TestGraph_RemoveVertexCascades VERIFIES incident edges disappear with the vertex.
func TestGraph_RemoveVertexCascades(t *testing.T) {
	g := NewTriangleWithTail(t)
	MustEqualInt(t, g.EdgeCount(), 4, "fixture edge count")

	MustNoError(t, g.RemoveVertex(VertexC), "RemoveVertex(C)")
	MustEqualInt(t, g.EdgeCount(), 1, "only A-B survives C removal")

	nbrs, err := g.NeighborIDs(VertexA)
	MustNoError(t, err, "NeighborIDs(A)")
	MustEqualStrings(t, nbrs, []string{VertexB}, "NeighborIDs(A) after C removal")

	MustEqualStrings(t, g.Isolates(), []string{VertexD, VertexE}, "D becomes isolated")
}

// TestGraph_DeterministicOrdering VERIFIES sorted enumerations and creation-ordered edges.
func TestGraph_DeterministicOrdering(t *testing.T) {
	g := core.NewGraph()
	// Create more than nine edges so that "e10" must sort after "e9".
	hubs := []string{"n01", "n02", "n03", "n04", "n05", "n06", "n07", "n08", "n09", "n10", "n11"}
	for _, h := range hubs {
		_, err := g.AddEdge(VertexX, h, Weight0)
		MustNoError(t, err, "AddEdge(X,"+h+")")
	}

	edges := g.Edges()
	MustEqualInt(t, len(edges), len(hubs), "edge count")
	for i, e := range edges {
		if e.To != hubs[i] {
			t.Fatalf("Edges()[%d]: got To=%s want %s", i, e.To, hubs[i])
		}
	}

	nbrs, err := g.Neighbors(VertexX)
	MustNoError(t, err, "Neighbors(X)")
	for i, e := range nbrs {
		if e.ID != edges[i].ID {
			t.Fatalf("Neighbors(X)[%d]: got %s want %s", i, e.ID, edges[i].ID)
		}
	}

	// Uppercase "X" sorts before the lowercase hub IDs.
	vs := g.Vertices()
	MustEqualInt(t, len(vs), len(hubs)+1, "vertex count")
	MustEqualStrings(t, vs[1:], hubs, "Vertices() sorted asc")
}

// TestGraph_Metadata VERIFIES vertex metadata round-trips and sentinel handling.
func TestGraph_Metadata(t *testing.T) {
	g := core.NewGraph()
	MustNoError(t, g.AddVertex(VertexA), "AddVertex(A)")

	MustNoError(t, g.SetMetadata(VertexA, "feature", "ph"), "SetMetadata(A)")
	v, ok := g.Metadata(VertexA, "feature")
	if !ok || v.(string) != "ph" {
		t.Fatalf("Metadata(A, feature): got %v,%v", v, ok)
	}
	if _, ok = g.Metadata(VertexA, "missing"); ok {
		t.Fatalf("Metadata for an unknown key must report false")
	}

	MustErrorIs(t, g.SetMetadata(VertexX, "feature", "x"), core.ErrVertexNotFound, "SetMetadata(X)")
	MustErrorIs(t, g.SetMetadata(VertexEmpty, "feature", "x"), core.ErrEmptyVertexID, "SetMetadata(empty)")
}

// TestGraph_Degree VERIFIES degree counts and sentinels.
func TestGraph_Degree(t *testing.T) {
	g := NewTriangleWithTail(t)

	for id, want := range map[string]int{VertexA: 2, VertexB: 2, VertexC: 3, VertexD: 1, VertexE: 0} {
		d, err := g.Degree(id)
		MustNoError(t, err, "Degree("+id+")")
		MustEqualInt(t, d, want, "Degree("+id+")")
	}

	_, err := g.Degree(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Degree(X)")
	_, err = g.Degree(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "Degree(empty)")
}
