package core

// ServiceDescriptor identifies one deployed remote service by name and
// version. Immutable once resolved; multiple versions of the same name may
// coexist as distinct descriptors. The version string is free-form
// (semver-like but not enforced, e.g. "v1.0.0" or "1.0").
type ServiceDescriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// String returns the canonical "name@version" form used in logs and errors.
func (d ServiceDescriptor) String() string { return d.Name + "@" + d.Version }

// Kind enumerates the wire value types a service declares for parameters and
// outputs.
type Kind string

const (
	// KindNumber is a floating point number.
	KindNumber Kind = "number"
	// KindInteger is a whole number.
	KindInteger Kind = "integer"
	// KindString is a UTF-8 string.
	KindString Kind = "string"
	// KindBoolean is a true/false value.
	KindBoolean Kind = "boolean"
	// KindTable is tabular data in row/column encoding.
	KindTable Kind = "table"
	// KindModel is an opaque serialized model object.
	KindModel Kind = "model"
)

// Accepts reports whether a Go value is a valid argument for this kind.
// Numeric kinds accept the common Go numeric types; KindInteger additionally
// requires float inputs to be whole.
func (k Kind) Accepts(v any) bool {
	switch k {
	case KindNumber:
		switch v.(type) {
		case int, int32, int64, float32, float64:
			return true
		}
	case KindInteger:
		switch n := v.(type) {
		case int, int32, int64:
			return true
		case float64:
			return n == float64(int64(n))
		case float32:
			return n == float32(int64(n))
		}
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindTable:
		switch v.(type) {
		case *Table, Table:
			return true
		}
	case KindModel:
		return true
	}
	return false
}

// Parameter is one declared input of a service operation. Order matters for
// positional invocation.
type Parameter struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Output is one declared named output of a service operation.
type Output struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Operation describes one remote-callable function of a service: an ordered
// parameter list and a named output schema.
type Operation struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`
	Outputs    []Output    `json:"outputs"`
}

// Output returns the declared output with the given name.
func (o Operation) Output(name string) (Output, bool) {
	for _, out := range o.Outputs {
		if out.Name == name {
			return out, true
		}
	}
	return Output{}, false
}

// ServiceSchema is the remote metadata returned at resolution time: the
// descriptor plus the declared operations. Proxies cache it for their
// lifetime; re-resolving is required to observe remote schema changes.
type ServiceSchema struct {
	Descriptor ServiceDescriptor `json:"descriptor"`
	Operations []Operation       `json:"operations"`
}

// Operation returns the named operation from the schema.
func (s *ServiceSchema) Operation(name string) (Operation, bool) {
	for _, op := range s.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}

// DefaultOperation returns the first declared operation, the conventional
// target for single-operation prediction services.
func (s *ServiceSchema) DefaultOperation() (Operation, bool) {
	if len(s.Operations) == 0 {
		return Operation{}, false
	}
	return s.Operations[0], true
}
