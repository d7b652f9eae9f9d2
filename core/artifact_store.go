package core

// ArtifactStore defines the interface for client-side artifact retention.
// Implementations should be thread-safe and scope artifacts by invocation
// identifier. Short method names (Save/Get/List/Delete) mirror other store
// interfaces for consistency.
//
// Retention is strictly a presentation convenience: the invocation response
// manifest remains the source of truth for which artifacts exist.
type ArtifactStore interface {
	Save(invocationID, filename string, data []byte) error
	Get(invocationID, filename string) ([]byte, error)
	List(invocationID string) ([]string, error)
	Delete(invocationID, filename string) error
}
