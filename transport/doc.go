// Package transport contains the HTTP implementation of core.Transport.
//
// The canonical Transport interface lives in the core package to keep domain
// contracts central. This implementation speaks the platform's JSON wire
// protocol: login/logout token exchange, schema discovery and service
// invocation, mapping HTTP status codes and error payloads onto the core
// error taxonomy so callers can branch with errors.Is.
package transport
