package storage

import "sync"

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	bools   map[string]bool
	floats  map[string]float64
	strings map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bools:   map[string]bool{},
		floats:  map[string]float64{},
		strings: map[string]string{},
	}
}

func (store *MemoryStore) Bool(key string) (bool, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.bools[key]
	return value, ok
}

func (store *MemoryStore) SetBool(key string, value bool) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.bools[key] = value
	return nil
}

func (store *MemoryStore) Float(key string) (float64, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.floats[key]
	return value, ok
}

func (store *MemoryStore) SetFloat(key string, value float64) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.floats[key] = value
	return nil
}

func (store *MemoryStore) String(key string) (string, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	value, ok := store.strings[key]
	return value, ok
}

func (store *MemoryStore) SetString(key string, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.strings[key] = value
	return nil
}
