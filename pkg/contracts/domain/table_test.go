package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *DataTable {
	t.Helper()
	table, err := NewDataTable(
		[]string{"wavelength", "intensity"},
		[]SpectralRow{
			{Values: []float64{400.0, 123.4}, Line: 3},
			{Values: []float64{400.5, 125.0}, Line: 4},
		},
	)
	require.NoError(t, err)
	return table
}

func TestDataTableAccess(t *testing.T) {
	table := testTable(t)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.ColumnCount())
	assert.Equal(t, []string{"wavelength", "intensity"}, table.ColumnNames())

	wl, err := table.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{400.0, 400.5}, wl)

	in, err := table.ColumnByName("intensity")
	require.NoError(t, err)
	assert.Equal(t, []float64{123.4, 125.0}, in)

	row, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{400.5, 125.0}, row.Values)
	assert.Equal(t, 4, row.Line)
}

func TestDataTableOutOfRange(t *testing.T) {
	table := testTable(t)

	_, err := table.Column(2)
	assert.Error(t, err)
	_, err = table.Row(-1)
	assert.Error(t, err)
	_, err = table.ColumnByName("absorbance")
	assert.Error(t, err)
}

func TestDataTableRejectsRaggedRows(t *testing.T) {
	_, err := NewDataTable(
		[]string{"wavelength", "intensity"},
		[]SpectralRow{{Values: []float64{400.0}, Line: 3}},
	)
	assert.Error(t, err)
}

func TestDataTableRowsAreCopies(t *testing.T) {
	table := testTable(t)

	rows := table.Rows()
	rows[0].Values[0] = -1

	wl, err := table.Column(0)
	require.NoError(t, err)
	assert.Equal(t, 400.0, wl[0], "mutating a returned row must not touch the table")
}

func TestDataTableEqual(t *testing.T) {
	assert.True(t, testTable(t).Equal(testTable(t)))

	other, err := NewDataTable(
		[]string{"wavelength", "intensity"},
		[]SpectralRow{
			{Values: []float64{400.0, 123.4}, Line: 3},
			{Values: []float64{400.5, 999.0}, Line: 4},
		},
	)
	require.NoError(t, err)
	assert.False(t, testTable(t).Equal(other))
}

func TestEmptyDataTable(t *testing.T) {
	table, err := NewDataTable(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, table.ColumnCount())
	assert.Empty(t, table.Rows())
}
