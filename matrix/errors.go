// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No function panics on
// user-triggered error conditions; option constructors panic only on
// programmer error.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Context is added at the boundary with fmt.Errorf("%s: %w", op, ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or between a matrix and its label vectors.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrLabelMismatch indicates that row and column label sets differ.
	ErrLabelMismatch = errors.New("matrix: row and column labels differ")

	// ErrEmptyLabel indicates an empty feature label.
	ErrEmptyLabel = errors.New("matrix: empty label")

	// ErrDuplicateLabel indicates a feature label that occurs twice on one axis.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrOutOfBounds indicates a correlation coefficient outside [-1, 1] (beyond eps).
	ErrOutOfBounds = errors.New("matrix: correlation outside [-1, 1]")

	// ErrTooFewObservations indicates fewer than two observations for a correlation.
	ErrTooFewObservations = errors.New("matrix: at least two observations required")
)
