package core

import (
	"encoding/json"
	"fmt"
)

// Table is the in-memory form of a tabular output decoded from the wire
// row/column encoding {"columns":[...],"rows":[[...]]}. Column order matches
// the wire order; every row has exactly len(Columns) cells.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// DecodeTable parses the wire encoding into a Table, validating that each row
// matches the column count.
func DecodeTable(raw []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("decode table: row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	return &t, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return len(t.Rows) }

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.Columns) }

// Row returns row i keyed by column name.
func (t *Table) Row(i int) (map[string]any, error) {
	if i < 0 || i >= len(t.Rows) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, len(t.Rows))
	}
	m := make(map[string]any, len(t.Columns))
	for c, name := range t.Columns {
		m[name] = t.Rows[i][c]
	}
	return m, nil
}

// Column returns all cells of the named column in row order.
func (t *Table) Column(name string) ([]any, error) {
	for c, col := range t.Columns {
		if col != name {
			continue
		}
		vals := make([]any, len(t.Rows))
		for r, row := range t.Rows {
			vals[r] = row[c]
		}
		return vals, nil
	}
	return nil, fmt.Errorf("no such column %q", name)
}
