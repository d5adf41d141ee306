// SPDX-License-Identifier: MIT
package dataset_test

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/netcore/dataset"
	"github.com/katalvlaran/netcore/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_MixedColumns(t *testing.T) {
	t.Parallel()

	in := "id, x ,label,y\n1,0.5,red,\n2,1.5,blue,NA\n3,2.5,NA,4\n"
	tbl, err := dataset.ReadCSV(strings.NewReader(in), dataset.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "x", "y"}, tbl.Columns)
	assert.Equal(t, []string{"label"}, tbl.Skipped)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, 1.5, tbl.Rows[1][1])
	assert.True(t, math.IsNaN(tbl.Rows[0][2]))
	assert.True(t, math.IsNaN(tbl.Rows[1][2]))
	assert.Equal(t, 4.0, tbl.Rows[2][2])
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", dataset.ErrNoHeader},
		{"blank column name", "a,,c\n1,2,3\n", dataset.ErrEmptyColumnName},
		{"duplicate column", "a,b,a\n1,2,3\n", dataset.ErrDuplicateColumn},
		{"ragged record", "a,b\n1,2\n3\n", dataset.ErrRaggedRow},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.ReadCSV(strings.NewReader(tc.in), dataset.DefaultOptions())
			require.Error(t, err)
			assert.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

func TestReadCSV_MaxRowsAndDelimiter(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.ReadCSV(strings.NewReader("a;b\n1;2\n3;4\n5;6\n"), dataset.Options{Delimiter: ';', MaxRows: 2})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, tbl.Rows)
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.LoadCSV(filepath.Join("testdata", "antibiotics.csv"), dataset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "antibiotics.csv", tbl.Name)
	assert.Equal(t, []string{"dose", "mic", "zone", "batch", "ph"}, tbl.Columns)
	assert.Equal(t, []string{"name"}, tbl.Skipped)

	raw, err := tbl.Correlation()
	require.NoError(t, err)
	v, err := matrix.Build(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"batch"}, v.Dropped(), "constant column is sanitized away")

	tsv, err := dataset.LoadCSV(filepath.Join("testdata", "small.tsv"), dataset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tsv.Columns)
	assert.Len(t, tsv.Rows, 3)

	_, err = dataset.LoadCSV(filepath.Join("testdata", "missing.csv"), dataset.DefaultOptions())
	require.Error(t, err)
}
