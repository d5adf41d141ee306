// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrNoHeader is returned for an input without a header record.
	ErrNoHeader = errors.New("dataset: missing header")

	// ErrEmptyColumnName is returned when a header cell is blank.
	ErrEmptyColumnName = errors.New("dataset: empty column name")

	// ErrDuplicateColumn is returned when two header cells carry the same name.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrRaggedRow is returned when a record's field count differs from the header's.
	ErrRaggedRow = errors.New("dataset: record length differs from header")
)
