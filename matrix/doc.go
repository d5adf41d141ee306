// Package matrix validates pairwise-correlation tables for feature reduction.
//
// The matrix package provides:
//
//   - Matrix, a small mutable 2-D interface, and Dense, its row-major implementation.
//   - Labeled, a raw correlation table with row and column feature labels.
//   - Correlation, which computes pairwise-complete Pearson coefficients of a
//     numeric observation table (gonum mat/stat). Constant columns yield NaN.
//   - Build, which sanitizes a Labeled table into a Validated matrix: fully
//     undefined lines are dropped, label sets must agree, and no NaN/Inf may
//     remain off the diagonal.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) and functional options
//     (WithEpsilon, WithSymmetryCheck, WithBoundsCheck).
//
// Errors are package sentinels (ErrNaNInf, ErrLabelMismatch, ...) wrapped with the
// failing operation; match them with errors.Is.
//
// See the examples in this package and netcore for usage patterns.
package matrix
