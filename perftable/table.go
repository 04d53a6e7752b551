// SPDX-License-Identifier: MIT

package perftable

import (
	"fmt"
	"math"
	"strings"
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

// Table is an immutable performance table: N rows by the fixed 14 columns
// of Columns(). Values are stored row-major in a flat slice.
// A Table is safe for concurrent readers; it exposes no setters.
type Table struct {
	r    int       // number of rows
	data []float64 // flat backing storage, length == r*NumColumns
}

// newTable allocates a zero-filled r×NumColumns table. r may be zero.
func newTable(rows int) *Table {
	return &Table{r: rows, data: make([]float64, rows*NumColumns)}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}

	return t.r
}

// Cols returns the number of columns, always NumColumns.
func (t *Table) Cols() int { return NumColumns }

// Columns returns the column names in order (fresh copy).
func (t *Table) Columns() []string { return Columns() }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (t *Table) indexOf(method string, row, col int) (int, error) {
	if t == nil {
		return 0, tableErrorf(method, row, col, ErrNilTable)
	}
	// Validate row index
	if row < 0 || row >= t.r {
		return 0, tableErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= NumColumns {
		return 0, tableErrorf(method, row, col, ErrOutOfRange)
	}

	return row*NumColumns + col, nil
}

// At retrieves the value at (row, col).
// Complexity: O(1).
func (t *Table) At(row, col int) (float64, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Value retrieves the value at row for the named column.
func (t *Table) Value(row int, column string) (float64, error) {
	col, err := ColumnIndex(column)
	if err != nil {
		return 0, err
	}

	return t.At(row, col)
}

// Row returns a copy of row i in column order.
// Complexity: O(NumColumns).
func (t *Table) Row(i int) ([]float64, error) {
	start, err := t.indexOf("Row", i, 0)
	if err != nil {
		return nil, err
	}
	out := make([]float64, NumColumns)
	copy(out, t.data[start:start+NumColumns])

	return out, nil
}

// Column returns a copy of the named column, one value per row.
// Complexity: O(N).
func (t *Table) Column(name string) ([]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("Table.Column(%q): %w", name, ErrNilTable)
	}
	col, err := ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, t.r)
	for i := 0; i < t.r; i++ {
		out[i] = t.data[i*NumColumns+col]
	}

	return out, nil
}

// Records returns every row as a fresh slice, in row order.
// Complexity: O(N·NumColumns).
func (t *Table) Records() [][]float64 {
	if t == nil {
		return nil
	}
	out := make([][]float64, t.r)
	for i := 0; i < t.r; i++ {
		row := make([]float64, NumColumns)
		copy(row, t.data[i*NumColumns:(i+1)*NumColumns])
		out[i] = row
	}

	return out
}

// Equal reports whether t and o have the same shape and identical values.
// Two NaN cells compare equal, so a table holding NaN equals its rebuild.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.r != o.r {
		return false
	}
	for i := range t.data {
		if !sameValue(t.data[i], o.data[i]) {
			return false
		}
	}

	return true
}

// sameValue is == with NaN treated as equal to NaN.
func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// String implements fmt.Stringer: a header line followed by one line per row.
// Complexity: O(N·NumColumns).
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(columnNames[:], "\t"))
	sb.WriteByte('\n')
	if t == nil {
		return sb.String()
	}
	var i, j int
	for i = 0; i < t.r; i++ { // iterate over rows
		for j = 0; j < NumColumns; j++ { // iterate over columns
			if j > 0 {
				sb.WriteByte('\t')
			}
			fmt.Fprintf(&sb, "%g", t.data[i*NumColumns+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
