package core

import (
	"context"
	"encoding/json"
)

// LoginRequest carries one authentication exchange. Fields are the
// scheme-specific payload produced by a Credentials strategy; Persistent
// requests server-side session persistence across reconnects.
type LoginRequest struct {
	Scheme     string            `json:"scheme"`
	Fields     map[string]string `json:"fields"`
	Persistent bool              `json:"persistent"`
}

// LoginResponse is the successful outcome of a login exchange.
type LoginResponse struct {
	Token string `json:"token"`
}

// InvocationRequest carries one service invocation: the target operation and
// its arguments keyed by declared parameter name. Arguments are validated
// against the cached schema before the transport is called.
type InvocationRequest struct {
	Operation string         `json:"operation"`
	Arguments map[string]any `json:"arguments"`
}

// InvocationPayload is the raw multi-part response of one remote execution:
// declared outputs as undecoded JSON values plus the artifact manifest
// (filename -> base64 text). The manifest is the single source of truth for
// which files the execution produced; filenames are opaque keys.
type InvocationPayload struct {
	ID        string                     `json:"id"`
	Outputs   map[string]json.RawMessage `json:"outputs"`
	Artifacts map[string]string          `json:"artifacts"`
}

// Transport performs the wire exchanges against one serving endpoint.
// Implementations must map remote failures onto the core error taxonomy
// (ErrAuthentication, ErrSessionInvalid, ErrServiceNotFound,
// ErrRemoteExecution, ErrTransport) so callers can branch with errors.Is.
// Every method is a single synchronous round-trip; no retries.
type Transport interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Logout releases the remote session for the given token.
	Logout(ctx context.Context, token string) error

	// Describe fetches the schema of the (name, version) service.
	Describe(ctx context.Context, token string, desc ServiceDescriptor) (*ServiceSchema, error)

	// Invoke executes one operation and returns the complete payload.
	Invoke(ctx context.Context, token string, desc ServiceDescriptor, req InvocationRequest) (*InvocationPayload, error)
}
