// Package logging provides a minimal logging interface and adapters for ModelBridge.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the session manager, locator and proxies use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - ModelBridgeLogger with contextual helpers for endpoint / service scope
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	client := modelbridge.New(endpoint, func(o *modelbridge.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
