// Package dataset loads rectangular, column-named numeric tables from CSV/TSV.
//
// The first record is the header; every following record is one observation.
// Cells are parsed as float64. Empty cells and the usual missing markers
// (NA, N/A, NaN, null; case-insensitive) become NaN. A column holding any other
// non-numeric cell is excluded from the numeric table and listed in
// Table.Skipped, mirroring how correlation over a mixed table only considers
// numeric columns.
//
// Table.Correlation hands the numeric part to matrix.Correlation.
package dataset
