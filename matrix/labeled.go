// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Labeled is a raw pairwise-correlation table: a value grid with one label per
// row and one per column. It is what an upstream correlation step produces and
// what Build consumes. Row and column label orders may differ.
type Labeled struct {
	RowLabels []string
	ColLabels []string
	Values    *Dense
}

// NewLabeled builds a Labeled table from row slices.
// Returns ErrDimensionMismatch when the grid shape disagrees with the label vectors.
func NewLabeled(rowLabels, colLabels []string, values [][]float64) (*Labeled, error) {
	d, err := NewDenseFrom(values)
	if err != nil {
		return nil, fmt.Errorf("NewLabeled: %w", err)
	}
	// NewDenseFrom reports 0 columns for 0 rows; accept that as an empty grid.
	if d.Rows() != len(rowLabels) || (d.Rows() > 0 && d.Cols() != len(colLabels)) {
		return nil, fmt.Errorf("NewLabeled: %dx%d values for %d row and %d column labels: %w",
			d.Rows(), d.Cols(), len(rowLabels), len(colLabels), ErrDimensionMismatch)
	}
	if d.Rows() == 0 && len(colLabels) > 0 {
		d = &Dense{r: 0, c: len(colLabels), data: nil}
	}

	return &Labeled{
		RowLabels: append([]string(nil), rowLabels...),
		ColLabels: append([]string(nil), colLabels...),
		Values:    d,
	}, nil
}

// NewSquare builds a Labeled table whose rows and columns share one label vector.
func NewSquare(labels []string, values [][]float64) (*Labeled, error) {
	return NewLabeled(labels, labels, values)
}

// Validated is a sanitized correlation matrix: square, one label vector shared
// by rows and columns, no NaN/Inf off the diagonal, symmetric within eps.
// The label order is canonical: it is the column order of the source table.
type Validated struct {
	labels  []string
	values  *Dense
	dropped []string
}

// Len returns the number of features.
func (v *Validated) Len() int { return len(v.labels) }

// Labels returns a copy of the feature labels in canonical order.
func (v *Validated) Labels() []string { return append([]string(nil), v.labels...) }

// Label returns the label at canonical index i.
func (v *Validated) Label(i int) string { return v.labels[i] }

// Dropped returns the labels removed during sanitization, in source column order.
func (v *Validated) Dropped() []string { return append([]string(nil), v.dropped...) }

// Corr returns the coefficient between features i and j.
// Indices must be in [0, Len()); the diagonal carries no meaning.
func (v *Validated) Corr(i, j int) float64 { return v.values.data[i*v.values.c+j] }

// Matrix returns a deep copy of the underlying values.
func (v *Validated) Matrix() *Dense { return v.values.Clone().(*Dense) }
