package core

import "testing"

func TestKind_Accepts(t *testing.T) {
	cases := []struct {
		kind Kind
		v    any
		want bool
	}{
		{KindNumber, 2.8, true},
		{KindNumber, 120, true},
		{KindNumber, "120", false},
		{KindInteger, 3, true},
		{KindInteger, 3.0, true},
		{KindInteger, 3.5, false},
		{KindString, "x", true},
		{KindString, 1, false},
		{KindBoolean, true, true},
		{KindBoolean, 0, false},
		{KindTable, &Table{}, true},
		{KindTable, map[string]any{}, false},
		{KindModel, struct{}{}, true},
	}
	for _, c := range cases {
		if got := c.kind.Accepts(c.v); got != c.want {
			t.Errorf("%s.Accepts(%v) = %v, want %v", c.kind, c.v, got, c.want)
		}
	}
}

func TestServiceSchema_Lookup(t *testing.T) {
	schema := &ServiceSchema{
		Descriptor: ServiceDescriptor{Name: "car-service", Version: "1.0"},
		Operations: []Operation{
			{Name: "predict", Parameters: []Parameter{{Name: "hp", Kind: KindNumber}}},
			{Name: "explain"},
		},
	}

	if op, ok := schema.Operation("explain"); !ok || op.Name != "explain" {
		t.Fatal("named operation lookup failed")
	}
	if _, ok := schema.Operation("missing"); ok {
		t.Fatal("missing operation should not resolve")
	}
	if op, ok := schema.DefaultOperation(); !ok || op.Name != "predict" {
		t.Fatal("default operation should be the first declared")
	}

	empty := &ServiceSchema{}
	if _, ok := empty.DefaultOperation(); ok {
		t.Fatal("empty schema has no default operation")
	}
}
