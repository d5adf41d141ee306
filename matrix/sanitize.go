// SPDX-License-Identifier: MIT

// Package matrix: sanitization of raw correlation tables.
//
// Build turns a Labeled table into a Validated matrix:
//  1. structural checks (nil, grid shape vs labels, non-empty unique labels);
//  2. drop every line that is NaN everywhere (a constant input column yields
//     one), then every line with no defined coefficient against another
//     surviving feature;
//  3. require row label set == column label set, then reorder rows to column order;
//  4. require zero NaN/Inf off the diagonal, |A[i,j]| ≤ 1+eps and symmetry within eps.
//
// Any violation aborts with a wrapped sentinel; no partial matrix is returned.
package matrix

import (
	"fmt"
	"math"
)

func buildErrorf(err error) error {
	return fmt.Errorf("Build: %w", err)
}

// Build validates and sanitizes raw. The diagonal only counts in pass 1 of
// line dropping; every later check ignores it.
//
// Complexity: O(r*c) time, O(n²) memory for the validated copy.
func Build(raw *Labeled, opts ...Option) (*Validated, error) {
	o := gatherOptions(opts...)

	if raw == nil || raw.Values == nil {
		return nil, buildErrorf(ErrNilMatrix)
	}
	r, c := raw.Values.Rows(), raw.Values.Cols()
	if r != len(raw.RowLabels) || c != len(raw.ColLabels) {
		return nil, buildErrorf(fmt.Errorf("%dx%d values for %d row and %d column labels: %w",
			r, c, len(raw.RowLabels), len(raw.ColLabels), ErrDimensionMismatch))
	}
	if err := ValidateLabels(raw.RowLabels); err != nil {
		return nil, buildErrorf(fmt.Errorf("rows: %w", err))
	}
	if err := ValidateLabels(raw.ColLabels); err != nil {
		return nil, buildErrorf(fmt.Errorf("columns: %w", err))
	}

	at := func(i, j int) float64 { return raw.Values.data[i*c+j] }

	// Pass 1: lines that are NaN everywhere, diagonal included.
	defRow := make([]bool, r)
	for i := 0; i < r; i++ {
		defRow[i] = !undefinedLine(c, func(j int) (float64, bool) { return at(i, j), true })
	}
	defCol := make([]bool, c)
	for j := 0; j < c; j++ {
		defCol[j] = !undefinedLine(r, func(i int) (float64, bool) { return at(i, j), true })
	}

	// Pass 2: lines with no defined coefficient against another surviving feature.
	keepRow := make([]bool, r)
	for i := 0; i < r; i++ {
		keepRow[i] = defRow[i] && !undefinedLine(c, func(j int) (float64, bool) {
			return at(i, j), defCol[j] && raw.ColLabels[j] != raw.RowLabels[i]
		})
	}
	keepCol := make([]bool, c)
	for j := 0; j < c; j++ {
		keepCol[j] = defCol[j] && !undefinedLine(r, func(i int) (float64, bool) {
			return at(i, j), defRow[i] && raw.RowLabels[i] != raw.ColLabels[j]
		})
	}

	rowIndex := make(map[string]int, r)
	for i, l := range raw.RowLabels {
		if keepRow[i] {
			rowIndex[l] = i
		}
	}
	labels := make([]string, 0, c)
	cols := make([]int, 0, c)
	var dropped []string
	for j, l := range raw.ColLabels {
		if !keepCol[j] {
			dropped = append(dropped, l)
			continue
		}
		if _, ok := rowIndex[l]; !ok {
			return nil, buildErrorf(fmt.Errorf("column %q has no matching row: %w", l, ErrLabelMismatch))
		}
		labels = append(labels, l)
		cols = append(cols, j)
	}
	if len(labels) != len(rowIndex) {
		for i, l := range raw.RowLabels {
			if keepRow[i] && !contains(labels, l) {
				return nil, buildErrorf(fmt.Errorf("row %q has no matching column: %w", l, ErrLabelMismatch))
			}
		}
	}

	n := len(labels)
	values := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for a, la := range labels {
		src := rowIndex[la]
		for b, j := range cols {
			values.data[a*n+b] = at(src, j)
		}
	}

	if err := ValidateFiniteOffDiagonal(values); err != nil {
		return nil, buildErrorf(labelled(err, labels, values))
	}
	if o.checkBounds {
		if err := ValidateCorrelationBounds(values, o.eps); err != nil {
			return nil, buildErrorf(err)
		}
	}
	if o.checkSymmetry {
		if err := ValidateSymmetric(values, o.eps); err != nil {
			return nil, buildErrorf(err)
		}
	}

	return &Validated{labels: labels, values: values, dropped: dropped}, nil
}

// undefinedLine reports whether every consulted entry of a line is NaN.
// A line with no consulted entries is not undefined.
func undefinedLine(n int, entry func(k int) (float64, bool)) bool {
	seen := false
	for k := 0; k < n; k++ {
		v, consult := entry(k)
		if !consult {
			continue
		}
		seen = true
		if !math.IsNaN(v) {
			return false
		}
	}

	return seen
}

// labelled names the first offending pair by feature label.
func labelled(err error, labels []string, m *Dense) error {
	n := len(labels)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.data[i*n+j]
			if i != j && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return fmt.Errorf("%q/%q: %w", labels[i], labels[j], err)
			}
		}
	}

	return err
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}

	return false
}
