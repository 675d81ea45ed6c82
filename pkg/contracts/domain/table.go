package domain

import (
	"fmt"
)

// DataTable is the numeric data block of one spectrum file: a fixed-width
// table of float64 rows. Columns are positionally meaningful; column 0 is
// the abscissa and column 1 the first intensity channel. Column names come
// from the file header where available ("XAxis mode"), otherwise defaults.
type DataTable struct {
	names []string
	rows  []SpectralRow
}

// NewDataTable builds a table from column names and rows. Every row must
// match len(names); the parser guarantees this before construction.
func NewDataTable(names []string, rows []SpectralRow) (*DataTable, error) {
	for _, r := range rows {
		if len(r.Values) != len(names) {
			return nil, fmt.Errorf("row at line %d has %d values, table has %d columns",
				r.Line, len(r.Values), len(names))
		}
	}
	return &DataTable{names: names, rows: rows}, nil
}

// Len returns the number of rows.
func (t *DataTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// ColumnCount returns the number of columns.
func (t *DataTable) ColumnCount() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// ColumnNames returns the column names in order.
func (t *DataTable) ColumnNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Rows returns a copy of all rows in file order.
func (t *DataTable) Rows() []SpectralRow {
	out := make([]SpectralRow, len(t.rows))
	for i, r := range t.rows {
		vals := make([]float64, len(r.Values))
		copy(vals, r.Values)
		out[i] = SpectralRow{Values: vals, Line: r.Line}
	}
	return out
}

// Row returns a copy of the i-th row.
func (t *DataTable) Row(i int) (SpectralRow, error) {
	if i < 0 || i >= len(t.rows) {
		return SpectralRow{}, fmt.Errorf("row index %d out of range [0,%d)", i, len(t.rows))
	}
	r := t.rows[i]
	vals := make([]float64, len(r.Values))
	copy(vals, r.Values)
	return SpectralRow{Values: vals, Line: r.Line}, nil
}

// Column returns a copy of the i-th column, top to bottom.
func (t *DataTable) Column(i int) ([]float64, error) {
	if i < 0 || i >= len(t.names) {
		return nil, fmt.Errorf("column index %d out of range [0,%d)", i, len(t.names))
	}
	out := make([]float64, len(t.rows))
	for j, r := range t.rows {
		out[j] = r.Values[i]
	}
	return out, nil
}

// ColumnByName returns the column with the given name.
func (t *DataTable) ColumnByName(name string) ([]float64, error) {
	for i, n := range t.names {
		if n == name {
			return t.Column(i)
		}
	}
	return nil, fmt.Errorf("no column named %q", name)
}

// Equal reports whether both tables have identical names and cell values.
func (t *DataTable) Equal(o *DataTable) bool {
	if t.ColumnCount() != o.ColumnCount() || t.Len() != o.Len() {
		return false
	}
	for i, n := range t.names {
		if o.names[i] != n {
			return false
		}
	}
	for i, r := range t.rows {
		for j, v := range r.Values {
			if o.rows[i].Values[j] != v {
				return false
			}
		}
	}
	return true
}
