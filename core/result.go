package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// OutputValue is one named output as received: the declared kind from the
// cached schema plus the undecoded JSON value.
type OutputValue struct {
	Kind Kind
	Raw  json.RawMessage
}

// InvocationResult is the complete, immutable result of one remote
// invocation: named typed outputs plus the artifact manifest (filename ->
// base64 text). Created once per invocation; accessors are pure reads and
// safe for concurrent use.
//
// Invariants:
//   - output names are unique, artifact filenames are unique
//   - unknown lookups fail with ErrUnknownOutput / ErrUnknownArtifact rather
//     than defaulting.
type InvocationResult struct {
	id        string
	desc      ServiceDescriptor
	operation string
	outputs   map[string]OutputValue
	artifacts map[string]string
}

// NewInvocationResult materializes a result from a transport payload. Maps
// are copied so later caller mutation cannot reach the result.
func NewInvocationResult(id string, desc ServiceDescriptor, operation string, outputs map[string]OutputValue, artifacts map[string]string) *InvocationResult {
	r := &InvocationResult{
		id:        id,
		desc:      desc,
		operation: operation,
		outputs:   make(map[string]OutputValue, len(outputs)),
		artifacts: make(map[string]string, len(artifacts)),
	}
	for name, v := range outputs {
		raw := make(json.RawMessage, len(v.Raw))
		copy(raw, v.Raw)
		r.outputs[name] = OutputValue{Kind: v.Kind, Raw: raw}
	}
	for name, b64 := range artifacts {
		r.artifacts[name] = b64
	}
	return r
}

// ID returns the unique invocation identifier.
func (r *InvocationResult) ID() string { return r.id }

// Descriptor returns the descriptor of the service that produced the result.
func (r *InvocationResult) Descriptor() ServiceDescriptor { return r.desc }

// Operation returns the operation name that was invoked.
func (r *InvocationResult) Operation() string { return r.operation }

// Outputs returns the sorted output names present in this result.
func (r *InvocationResult) Outputs() []string {
	names := make([]string, 0, len(r.outputs))
	for name := range r.outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Artifacts returns the sorted artifact filenames present in this result.
func (r *InvocationResult) Artifacts() []string {
	names := make([]string, 0, len(r.artifacts))
	for name := range r.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Output decodes the named output according to its declared kind:
// KindNumber -> float64, KindInteger -> int64, KindString -> string,
// KindBoolean -> bool, KindTable -> *Table, KindModel -> json.RawMessage.
// Returns ErrUnknownOutput when the name is not present.
func (r *InvocationResult) Output(name string) (any, error) {
	v, ok := r.outputs[name]
	if !ok {
		return nil, fmt.Errorf("output %q: %w", name, ErrUnknownOutput)
	}
	if !gjson.ValidBytes(v.Raw) {
		return nil, fmt.Errorf("output %q: malformed value", name)
	}
	res := gjson.ParseBytes(v.Raw)
	switch v.Kind {
	case KindNumber:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("output %q: expected number, got %s", name, res.Type)
		}
		return res.Float(), nil
	case KindInteger:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("output %q: expected integer, got %s", name, res.Type)
		}
		return res.Int(), nil
	case KindString:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("output %q: expected string, got %s", name, res.Type)
		}
		return res.String(), nil
	case KindBoolean:
		if !res.IsBool() {
			return nil, fmt.Errorf("output %q: expected boolean, got %s", name, res.Type)
		}
		return res.Bool(), nil
	case KindTable:
		t, err := DecodeTable(v.Raw)
		if err != nil {
			return nil, fmt.Errorf("output %q: %w", name, err)
		}
		return t, nil
	case KindModel:
		raw := make(json.RawMessage, len(v.Raw))
		copy(raw, v.Raw)
		return raw, nil
	default:
		return nil, fmt.Errorf("output %q: unsupported kind %q", name, v.Kind)
	}
}

// Table is a convenience accessor decoding the named output as a *Table.
func (r *InvocationResult) Table(name string) (*Table, error) {
	v, err := r.Output(name)
	if err != nil {
		return nil, err
	}
	t, ok := v.(*Table)
	if !ok {
		return nil, fmt.Errorf("output %q: not a table", name)
	}
	return t, nil
}

// Artifact returns the decoded bytes of the named file artifact or
// ErrUnknownArtifact.
func (r *InvocationResult) Artifact(filename string) ([]byte, error) {
	b64, ok := r.artifacts[filename]
	if !ok {
		return nil, fmt.Errorf("artifact %q: %w", filename, ErrUnknownArtifact)
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("artifact %q: %w", filename, err)
	}
	return data, nil
}

// RawArtifact returns the artifact's base64 text exactly as received, useful
// for embedding in a data URI without a decode / re-encode round trip.
func (r *InvocationResult) RawArtifact(filename string) (string, error) {
	b64, ok := r.artifacts[filename]
	if !ok {
		return "", fmt.Errorf("artifact %q: %w", filename, ErrUnknownArtifact)
	}
	return b64, nil
}
