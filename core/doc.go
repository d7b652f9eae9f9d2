// Package core provides the foundational domain types and interfaces used by
// ModelBridge. It defines the core abstractions for:
//
//   - Sessions (authenticated contexts against one serving endpoint)
//   - Credentials (pluggable authentication strategies)
//   - Service descriptors and schemas (remote parameter / output contracts)
//   - Invocation results (named outputs + base64 file artifacts)
//   - The Transport interface carrying the wire exchanges
//   - Pluggable stores for artifact retention
//
// The package intentionally keeps implementation concerns (HTTP wiring,
// concrete credential schemes, storage backends) out of scope, exposing small
// interfaces to enable custom backends and extensions. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
