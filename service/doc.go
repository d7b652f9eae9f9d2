// Package service provides the Locator, which resolves (name, version) pairs
// against the remote platform, and the Proxy, a local callable standing in
// for one deployed service. Proxies validate arguments against the schema
// cached at resolution time and forward invocations over the core.Transport.
//
// A proxy never mutates the session it was resolved with; any number of
// proxies may invoke concurrently over one authenticated session.
package service
