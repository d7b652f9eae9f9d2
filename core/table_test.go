package core

import "testing"

func TestDecodeTable(t *testing.T) {
	raw := []byte(`{"columns":["am","gear"],"rows":[[1,4],[0,3]]}`)
	tbl, err := DecodeTable(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tbl.NumRows() != 2 || tbl.NumColumns() != 2 {
		t.Fatalf("unexpected shape %dx%d", tbl.NumRows(), tbl.NumColumns())
	}
	row, err := tbl.Row(0)
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	if row["am"].(float64) != 1 {
		t.Fatalf("row 0 am = %v", row["am"])
	}
	col, err := tbl.Column("gear")
	if err != nil {
		t.Fatalf("column: %v", err)
	}
	if len(col) != 2 || col[1].(float64) != 3 {
		t.Fatalf("column gear = %v", col)
	}
}

func TestDecodeTable_RaggedRows(t *testing.T) {
	if _, err := DecodeTable([]byte(`{"columns":["a"],"rows":[[1,2]]}`)); err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestTable_BadLookups(t *testing.T) {
	tbl := &Table{Columns: []string{"a"}, Rows: [][]any{{1}}}
	if _, err := tbl.Row(5); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := tbl.Column("missing"); err == nil {
		t.Error("expected no such column error")
	}
}
