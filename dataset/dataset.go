// Package dataset holds the tabular data the engine annotates: ordered
// column names plus string-valued rows. The engine itself never reads
// cell values; the dataset exists so producers have something to
// validate and the demo TUI has something to draw.
package dataset

// Dataset is an immutable in-memory table.
type Dataset struct {
	columns []string
	rows    [][]string
}

// New builds a dataset from column names and rows. Short rows are
// padded with empty strings so Value stays total.
func New(columns []string, rows [][]string) *Dataset {
	d := &Dataset{
		columns: append([]string(nil), columns...),
		rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		padded := make([]string, len(columns))
		copy(padded, row)
		d.rows[i] = padded
	}
	return d
}

// Columns returns the column names in order. The slice is a copy.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.rows)
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// Value returns the cell value, or "" when out of range.
func (d *Dataset) Value(row, col int) string {
	if row < 0 || row >= len(d.rows) || col < 0 || col >= len(d.columns) {
		return ""
	}
	return d.rows[row][col]
}

// Row returns a copy of one data row, or nil when out of range.
func (d *Dataset) Row(i int) []string {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return append([]string(nil), d.rows[i]...)
}
