// Package artifact contains concrete implementations of core.ArtifactStore.
//
// The canonical ArtifactStore interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. Implementation
// packages like this one provide retention backends that can be swapped
// without touching calling code.
//
// Retention exists so presentation layers can re-render a result's file
// artifacts (plots, images) without re-invoking the remote service. Callers
// should depend on the core interface rather than concrete types so they can
// substitute alternative backends in tests or production.
package artifact
