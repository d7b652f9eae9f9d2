package core

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
)

func carResult() *InvocationResult {
	outputs := map[string]OutputValue{
		"answer":  {Kind: KindTable, Raw: json.RawMessage(`{"columns":["am"],"rows":[[1]]}`)},
		"rating":  {Kind: KindNumber, Raw: json.RawMessage(`4.5`)},
		"label":   {Kind: KindString, Raw: json.RawMessage(`"automatic"`)},
		"matched": {Kind: KindBoolean, Raw: json.RawMessage(`true`)},
	}
	artifacts := map[string]string{
		"image.png": base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4E, 0x47}),
	}
	return NewInvocationResult("inv-1", ServiceDescriptor{Name: "car-service", Version: "v1.0.0"}, "predict", outputs, artifacts)
}

func TestInvocationResult_Outputs(t *testing.T) {
	r := carResult()

	v, err := r.Output("answer")
	if err != nil {
		t.Fatalf("output answer: %v", err)
	}
	tbl := v.(*Table)
	if tbl.NumRows() != 1 {
		t.Fatalf("answer rows = %d", tbl.NumRows())
	}
	row, _ := tbl.Row(0)
	if row["am"].(float64) != 1 {
		t.Fatalf("answer am = %v", row["am"])
	}

	if v, _ := r.Output("rating"); v.(float64) != 4.5 {
		t.Errorf("rating = %v", v)
	}
	if v, _ := r.Output("label"); v.(string) != "automatic" {
		t.Errorf("label = %v", v)
	}
	if v, _ := r.Output("matched"); v.(bool) != true {
		t.Errorf("matched = %v", v)
	}
}

func TestInvocationResult_OutputKindMismatch(t *testing.T) {
	r := NewInvocationResult("inv-2", ServiceDescriptor{}, "predict", map[string]OutputValue{
		"rating": {Kind: KindNumber, Raw: json.RawMessage(`"not a number"`)},
	}, nil)
	if _, err := r.Output("rating"); err == nil {
		t.Fatal("expected kind mismatch error")
	}
}

func TestInvocationResult_UnknownLookups(t *testing.T) {
	r := carResult()
	if _, err := r.Output("nonexistent"); !errors.Is(err, ErrUnknownOutput) {
		t.Fatalf("want ErrUnknownOutput, got %v", err)
	}
	if _, err := r.Artifact("nonexistent.png"); !errors.Is(err, ErrUnknownArtifact) {
		t.Fatalf("want ErrUnknownArtifact, got %v", err)
	}
	if _, err := r.RawArtifact("nonexistent.png"); !errors.Is(err, ErrUnknownArtifact) {
		t.Fatalf("want ErrUnknownArtifact, got %v", err)
	}
	// failed lookups must not mutate the result
	if len(r.Outputs()) != 4 || len(r.Artifacts()) != 1 {
		t.Fatal("result mutated by failed lookup")
	}
}

func TestInvocationResult_ArtifactRoundTrip(t *testing.T) {
	r := carResult()

	data, err := r.Artifact("image.png")
	if err != nil {
		t.Fatalf("artifact: %v", err)
	}
	if string(data) != "\x89PNG" {
		t.Fatalf("decoded bytes = %x", data)
	}

	raw, err := r.RawArtifact("image.png")
	if err != nil {
		t.Fatalf("raw artifact: %v", err)
	}
	if base64.StdEncoding.EncodeToString(data) != raw {
		t.Fatal("re-encoding decoded bytes should reproduce the raw base64 text")
	}
}

func TestInvocationResult_Immutability(t *testing.T) {
	outputs := map[string]OutputValue{"rating": {Kind: KindNumber, Raw: json.RawMessage(`1`)}}
	artifacts := map[string]string{"a.png": "QQ=="}
	r := NewInvocationResult("inv-3", ServiceDescriptor{}, "predict", outputs, artifacts)

	// mutate the source maps after construction
	outputs["extra"] = OutputValue{Kind: KindNumber, Raw: json.RawMessage(`2`)}
	delete(artifacts, "a.png")

	if len(r.Outputs()) != 1 {
		t.Error("result outputs should be isolated from source map")
	}
	if _, err := r.Artifact("a.png"); err != nil {
		t.Error("result artifacts should be isolated from source map")
	}
}

func TestInvocationResult_Metadata(t *testing.T) {
	r := carResult()
	if r.ID() != "inv-1" {
		t.Errorf("id = %q", r.ID())
	}
	if r.Descriptor().String() != "car-service@v1.0.0" {
		t.Errorf("descriptor = %q", r.Descriptor())
	}
	if r.Operation() != "predict" {
		t.Errorf("operation = %q", r.Operation())
	}
	if got := r.Outputs(); got[0] != "answer" {
		t.Errorf("outputs not sorted: %v", got)
	}
}
