// Package storage provides the durable key-value store backing the
// library. Values are opaque strings; callers own serialization.
package storage

// Store is the key-value contract the library persists through.
type Store interface {
	// Get returns the value for key. The second return is false when the
	// key has never been written.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}
