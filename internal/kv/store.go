// Package kv provides the durable key-value store behind the persistence
// adapter. Values are opaque strings; callers own the serialization.
package kv

// Store abstracts key-value persistence (SQLite for the app, in-memory for
// tests). Multi-key operations are atomic: all keys change or none do.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	MultiSet(pairs map[string]string) error
	MultiRemove(keys ...string) error
	Close() error
}
