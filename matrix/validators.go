// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for validation checks used by Build.
//   - Return sentinel errors tagged with the validator name so call sites can match
//     with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; symmetry runs on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation (with the offending indices).
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d)=%g vs (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateFiniteOffDiagonal checks that every entry with i≠j is finite.
// The diagonal is ignored: self-correlation is never consulted.
// Complexity: O(n²).
func ValidateFiniteOffDiagonal(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateFiniteOffDiagonal", err)
	}
	n := m.Rows()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFiniteOffDiagonal", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateCorrelationBounds checks -1-tol ≤ A[i,j] ≤ 1+tol for all i≠j.
// Complexity: O(n²).
func ValidateCorrelationBounds(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateCorrelationBounds", err)
	}
	n := m.Rows()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.At(i, j)
			if math.Abs(v) > 1+tol {
				return validatorErrorf("ValidateCorrelationBounds", fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrOutOfBounds))
			}
		}
	}

	return nil
}

// ValidateLabels checks that labels are non-empty and unique.
// Complexity: O(n).
func ValidateLabels(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for i, l := range labels {
		if l == "" {
			return validatorErrorf("ValidateLabels", fmt.Errorf("position %d: %w", i, ErrEmptyLabel))
		}
		if _, dup := seen[l]; dup {
			return validatorErrorf("ValidateLabels", fmt.Errorf("%q: %w", l, ErrDuplicateLabel))
		}
		seen[l] = struct{}{}
	}

	return nil
}
