// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/netcore/matrix"
)

// Options controls CSV parsing.
type Options struct {
	// Delimiter for fields. If 0, '\t' for .tsv/.tab files and ',' otherwise.
	Delimiter rune
	// MaxRows limits observations read; 0 means unlimited.
	MaxRows int
}

// DefaultOptions returns comma-or-tab auto selection and no row limit.
func DefaultOptions() Options { return Options{} }

// Table is the numeric part of a dataset.
type Table struct {
	Name    string      // base name of the source, if any
	Columns []string    // numeric column names, header order
	Rows    [][]float64 // Rows[i][j] is observation i of Columns[j]; NaN if missing
	Skipped []string    // non-numeric columns, header order
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if opt.Delimiter == 0 {
		opt.Delimiter = delimiterFor(path)
	}
	t, err := ReadCSV(f, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.Name = filepath.Base(path)

	return t, nil
}

// ReadCSV parses a header plus observations from r.
func ReadCSV(r io.Reader, opt Options) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comma = ','
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	names := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		n := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if n == "" {
			return nil, fmt.Errorf("column %d: %w", i+1, ErrEmptyColumnName)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("%q: %w", n, ErrDuplicateColumn)
		}
		seen[n] = struct{}{}
		names[i] = n
	}

	ncol := len(names)
	numeric := make([]bool, ncol)
	for j := range numeric {
		numeric[j] = true
	}
	var cells [][]float64
	line := 1
	for {
		if opt.MaxRows > 0 && len(cells) >= opt.MaxRows {
			break
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line++
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" && ncol > 1 {
			continue
		}
		if len(rec) != ncol {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(rec), ncol, ErrRaggedRow)
		}
		row := make([]float64, ncol)
		for j, s := range rec {
			v, ok := parseCell(s)
			if !ok {
				numeric[j] = false
			}
			row[j] = v
		}
		cells = append(cells, row)
	}

	t := &Table{}
	keep := make([]int, 0, ncol)
	for j, n := range names {
		if numeric[j] {
			t.Columns = append(t.Columns, n)
			keep = append(keep, j)
		} else {
			t.Skipped = append(t.Skipped, n)
		}
	}
	t.Rows = make([][]float64, len(cells))
	for i, full := range cells {
		row := make([]float64, len(keep))
		for k, j := range keep {
			row[k] = full[j]
		}
		t.Rows[i] = row
	}

	return t, nil
}

// Correlation returns the pairwise-complete Pearson table of the numeric columns.
func (t *Table) Correlation() (*matrix.Labeled, error) {
	return matrix.Correlation(t.Columns, t.Rows)
}

// parseCell returns (value, true) for numbers and missing markers (NaN), and
// (NaN, false) for anything else.
func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "na", "n/a", "nan", "null":
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN(), false
	}

	return v, true
}

func delimiterFor(path string) rune {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return '\t'
	default:
		return ','
	}
}
