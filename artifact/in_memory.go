package artifact

import "sync"

// InMemoryStore is a trivial in‑process ArtifactStore implementation useful
// for tests, examples and single‑process dashboards. It keeps all retained
// artifacts in a nested map guarded by an RWMutex. Data is copied on save /
// retrieval to avoid accidental external mutation of internal buffers.
//
// Layout: invocationID -> filename -> raw bytes
//
// This implementation is intentionally minimal; it does not enforce retention
// limits, size quotas, or eviction. Long-running dashboards should Delete
// entries once rendered or supply a bounded implementation.
type InMemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string]map[string][]byte // invocationID -> filename -> data
}

// NewInMemoryStore returns an empty in‑memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{artifacts: make(map[string]map[string][]byte)}
}

// Save stores (or overwrites) the artifact bytes for the given invocation and
// filename. The input slice is copied before storage.
func (a *InMemoryStore) Save(invocationID, filename string, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.artifacts[invocationID]; !exists {
		a.artifacts[invocationID] = make(map[string][]byte)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	a.artifacts[invocationID][filename] = cp
	return nil
}

// Get returns a copy of the stored artifact bytes or ErrNotFound.
func (a *InMemoryStore) Get(invocationID, filename string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.artifacts[invocationID]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := m[filename]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the filenames retained for the invocation. The slice is a
// snapshot and safe for caller mutation.
func (a *InMemoryStore) List(invocationID string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.artifacts[invocationID]
	if !ok {
		return []string{}, nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names, nil
}

// Delete removes the artifact if present or returns ErrNotFound.
func (a *InMemoryStore) Delete(invocationID, filename string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	m, ok := a.artifacts[invocationID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m[filename]; !ok {
		return ErrNotFound
	}
	delete(m, filename)
	return nil
}
