// Package store persists the two browser-local keys of the original demo
// (current user, ticket history) behind a small key-value interface with a
// JSON-file backend and a MySQL backend. Access is read-then-write,
// last-writer-wins; there are no transactional guarantees.
package store

// KV is a minimal persisted key-value store.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}
