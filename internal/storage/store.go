// Package storage persists settings and the run catalog in a key-value store.
package storage

// Store is a typed key-value store. A false ok means the key is absent or
// could not be read; callers treat both the same way and fall back to
// defaults. Setters replace the stored value atomically.
type Store interface {
	Bool(key string) (value bool, ok bool)
	SetBool(key string, value bool) error
	Float(key string) (value float64, ok bool)
	SetFloat(key string, value float64) error
	String(key string) (value string, ok bool)
	SetString(key string, value string) error
}
