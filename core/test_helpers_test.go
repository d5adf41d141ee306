// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for netcore/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netcore/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"

	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0    = 0.0
	WeightHigh = 0.9
	WeightNeg  = -0.75
)

// NewTriangleWithTail RETURNS the weighted graph A-B, B-C, C-A, C-D plus isolate E.
//
//	A───B
//	 \ /
//	  C───D      E
func NewTriangleWithTail(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithWeighted())
	MustNoError(t, g.AddVertex(VertexE), "AddVertex(E)")
	for _, p := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexA}, {VertexC, VertexD}} {
		_, err := g.AddEdge(p[0], p[1], WeightHigh)
		MustNoError(t, err, "AddEdge("+p[0]+","+p[1]+")")
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualInt FAILS if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualStrings FAILS if got and want differ in length or at any position.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got=%v want=%v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: mismatch at i=%d; got=%v want=%v", op, i, got, want)
		}
	}
}

// MustNoErrorsFromChan FAILS the test if any non-nil error is received.
// Goroutines send errors to errCh; the parent goroutine validates.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}
