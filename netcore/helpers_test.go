// SPDX-License-Identifier: MIT
package netcore_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netcore/matrix"
	"github.com/stretchr/testify/require"
)

type pair struct{ a, b string }

// corrTable builds a square table over labels: 1 on the diagonal, the given
// coefficients mirrored, 0 elsewhere.
func corrTable(t *testing.T, labels []string, coeffs map[pair]float64) *matrix.Labeled {
	t.Helper()
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	rows := make([][]float64, len(labels))
	for i := range rows {
		rows[i] = make([]float64, len(labels))
		rows[i][i] = 1
	}
	for p, c := range coeffs {
		i, ok := idx[p.a]
		require.Truef(t, ok, "unknown label %q", p.a)
		j, ok := idx[p.b]
		require.Truef(t, ok, "unknown label %q", p.b)
		rows[i][j], rows[j][i] = c, c
	}
	m, err := matrix.NewSquare(labels, rows)
	require.NoError(t, err)

	return m
}

func validated(t *testing.T, raw *matrix.Labeled) *matrix.Validated {
	t.Helper()
	v, err := matrix.Build(raw)
	require.NoError(t, err)

	return v
}

func requireErrorIs(t *testing.T, err, want error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
}

// Fixtures verified by hand against the cascade.
var (
	// q and p tie on degree 3; removing p leaves c-e-f (degree 2), removing q
	// leaves at most degree 1. p must win in round two.
	roundTwoLabels = []string{"q", "p", "a", "b", "c", "d", "e", "f"}
	roundTwoCoeffs = map[pair]float64{
		{"p", "q"}: 0.8, {"p", "a"}: 0.8, {"p", "b"}: 0.8,
		{"q", "c"}: 0.8, {"q", "d"}: 0.8,
		{"c", "e"}: 0.8, {"e", "f"}: 0.8,
	}

	// Two disjoint 2-stars, mean |corr| 0.65 vs 0.9.
	roundThreeLabels = []string{"p", "p1", "p2", "q", "q1", "q2"}
	roundThreeCoeffs = map[pair]float64{
		{"p", "p1"}: 0.65, {"p", "p2"}: -0.65,
		{"q", "q1"}: 0.9, {"q", "q2"}: -0.9,
	}

	// Path n1-…-n6.
	pathLabels = []string{"n1", "n2", "n3", "n4", "n5", "n6"}
	pathCoeffs = map[pair]float64{
		{"n1", "n2"}: 0.7, {"n2", "n3"}: 0.8, {"n3", "n4"}: 0.7,
		{"n4", "n5"}: -0.9, {"n5", "n6"}: 0.7,
	}
)
