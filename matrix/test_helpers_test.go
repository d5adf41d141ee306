// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/netcore/matrix"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

// mustSquare builds a square Labeled table or fails the test.
func mustSquare(t *testing.T, labels []string, values [][]float64) *matrix.Labeled {
	t.Helper()
	m, err := matrix.NewSquare(labels, values)
	require.NoError(t, err)

	return m
}

// requireErrorIs asserts err wraps want.
func requireErrorIs(t *testing.T, err, want error) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.Is(err, want), "expected errors.Is(%v, %v)", err, want)
}
