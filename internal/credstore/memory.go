package credstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a process-local Store. Used in tests and as a fallback
// when no database path is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	keys map[string]string
}

func NewMemory() *MemoryStore {
	return &MemoryStore{keys: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, backend string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key, ok := m.keys[backend]
	return key, ok, nil
}

func (m *MemoryStore) Put(ctx context.Context, backend, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[backend] = apiKey
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, backend string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, backend)
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	backends := make([]string, 0, len(m.keys))
	for b := range m.keys {
		backends = append(backends, b)
	}
	sort.Strings(backends)
	return backends, nil
}

func (m *MemoryStore) Close() error { return nil }
