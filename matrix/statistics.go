// SPDX-License-Identifier: MIT

// Package matrix: Pearson correlation of a numeric observation table.
//
// Correlation consumes observations in row-major form (one row per observation,
// one column per feature) and returns a square Labeled table:
//   - complete data goes through stat.CorrelationMatrix in one pass;
//   - data with NaN cells is correlated pair by pair over the rows where both
//     columns are defined (pairwise-complete);
//   - a constant column, or a pair with fewer than two shared observations,
//     yields NaN. The diagonal is 1, or NaN for a constant column.
//
// The NaN coefficients are exactly what Build later sanitizes away.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Correlation computes the Pearson correlation table of data.
//
// Returns ErrDimensionMismatch on ragged rows, ErrTooFewObservations when
// len(data) < 2 and at least one column exists, and label errors from ValidateLabels.
// Complexity: O(n*c²) time, O(n*c + c²) memory.
func Correlation(columns []string, data [][]float64) (*Labeled, error) {
	if err := ValidateLabels(columns); err != nil {
		return nil, fmt.Errorf("Correlation: %w", err)
	}
	c := len(columns)
	if c == 0 {
		return NewSquare(nil, nil)
	}
	n := len(data)
	if n < 2 {
		return nil, fmt.Errorf("Correlation: %d observations: %w", n, ErrTooFewObservations)
	}

	flat := make([]float64, 0, n*c)
	complete := true
	for i, row := range data {
		if len(row) != c {
			return nil, fmt.Errorf("Correlation: observation %d has %d values, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for _, v := range row {
			if math.IsNaN(v) {
				complete = false
			}
		}
		flat = append(flat, row...)
	}
	x := mat.NewDense(n, c, flat)

	out := &Dense{r: c, c: c, data: make([]float64, c*c)}
	if complete {
		sym := mat.NewSymDense(c, nil)
		stat.CorrelationMatrix(sym, x, nil)
		constant := make([]bool, c)
		col := make([]float64, n)
		for j := 0; j < c; j++ {
			constant[j] = isConstant(mat.Col(col, j, x))
		}
		for i := 0; i < c; i++ {
			for j := 0; j < c; j++ {
				v := sym.At(i, j)
				if constant[i] || constant[j] {
					v = math.NaN()
				}
				out.data[i*c+j] = clampUnit(v)
			}
		}

		return &Labeled{RowLabels: append([]string(nil), columns...), ColLabels: append([]string(nil), columns...), Values: out}, nil
	}

	cols := make([][]float64, c)
	for j := 0; j < c; j++ {
		cols[j] = mat.Col(nil, j, x)
	}
	for i := 0; i < c; i++ {
		out.data[i*c+i] = selfCorrelation(cols[i])
		for j := i + 1; j < c; j++ {
			v := pairwise(cols[i], cols[j])
			out.data[i*c+j] = v
			out.data[j*c+i] = v
		}
	}

	return &Labeled{RowLabels: append([]string(nil), columns...), ColLabels: append([]string(nil), columns...), Values: out}, nil
}

// pairwise correlates a and b over the rows where both are defined.
func pairwise(a, b []float64) float64 {
	xa := make([]float64, 0, len(a))
	xb := make([]float64, 0, len(b))
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		xa = append(xa, a[k])
		xb = append(xb, b[k])
	}
	if len(xa) < 2 || isConstant(xa) || isConstant(xb) {
		return math.NaN()
	}

	return clampUnit(stat.Correlation(xa, xb, nil))
}

// selfCorrelation is 1 for a column with two or more distinct defined values.
func selfCorrelation(a []float64) float64 {
	defined := make([]float64, 0, len(a))
	for _, v := range a {
		if !math.IsNaN(v) {
			defined = append(defined, v)
		}
	}
	if len(defined) < 2 || isConstant(defined) {
		return math.NaN()
	}

	return 1
}

// isConstant reports whether all non-NaN values are equal.
func isConstant(xs []float64) bool {
	first := math.NaN()
	for _, v := range xs {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(first) {
			first = v
			continue
		}
		if v != first {
			return false
		}
	}

	return true
}

// clampUnit folds rounding overshoot back into [-1, 1].
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}
