// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netcore/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())

	o = matrix.NewOptions(matrix.WithEpsilon(1e-3), nil, matrix.WithEpsilon(0))
	assert.Equal(t, 0.0, o.Epsilon(), "last writer wins, nil setters are skipped")
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}

// TestChecksToggle verifies each switch changes Build's outcome.
func TestChecksToggle(t *testing.T) {
	labels := []string{"a", "b"}

	asym := mustSquare(t, labels, [][]float64{{1, 0.5}, {0.4, 1}})
	_, err := matrix.Build(asym)
	requireErrorIs(t, err, matrix.ErrAsymmetry)
	_, err = matrix.Build(asym, matrix.WithSymmetryCheck(false))
	require.NoError(t, err)
	_, err = matrix.Build(asym, matrix.WithEpsilon(0.2))
	require.NoError(t, err)

	wide := mustSquare(t, labels, [][]float64{{1, 1.5}, {1.5, 1}})
	_, err = matrix.Build(wide)
	requireErrorIs(t, err, matrix.ErrOutOfBounds)
	_, err = matrix.Build(wide, matrix.WithBoundsCheck(false))
	require.NoError(t, err)
}
