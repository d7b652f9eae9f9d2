// Package testutil contains helper fakes and builders used across tests to
// reduce boilerplate when standing up a fake serving backend (deployed
// services, canned outputs and artifacts, spy call counters). These helpers
// are intentionally minimal and avoid adding third‑party dependencies. They
// are not intended for production usage.
package testutil
