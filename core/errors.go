package core

import "fmt"

var (
	// ErrAuthentication is returned when a login exchange is rejected by the
	// remote endpoint or the endpoint is unreachable.
	ErrAuthentication = fmt.Errorf("authentication failed")

	// ErrSessionInvalid is returned when an operation requires an
	// authenticated session and none is available. Detected locally, before
	// any network I/O.
	ErrSessionInvalid = fmt.Errorf("session not authenticated")

	// ErrServiceNotFound is returned when no deployed service matches the
	// requested (name, version) pair.
	ErrServiceNotFound = fmt.Errorf("service not found")

	// ErrInvalidArgument is returned when invocation arguments do not match
	// the cached service schema. Detected locally, before any network I/O.
	ErrInvalidArgument = fmt.Errorf("invocation argument mismatch")

	// ErrTransport is returned when the network exchange itself fails
	// (timeout, connection reset, malformed response).
	ErrTransport = fmt.Errorf("transport failure")

	// ErrRemoteExecution is returned when the remote service raised during
	// execution after the request was delivered.
	ErrRemoteExecution = fmt.Errorf("remote execution failed")

	// ErrUnknownOutput is returned when a result does not contain the
	// requested output name.
	ErrUnknownOutput = fmt.Errorf("unknown output")

	// ErrUnknownArtifact is returned when a result does not contain the
	// requested artifact filename.
	ErrUnknownArtifact = fmt.Errorf("unknown artifact")
)
