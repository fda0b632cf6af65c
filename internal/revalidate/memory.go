package revalidate

import (
	"context"
	"sync"
)

// MemoryInvalidator is a process-local Invalidator used in tests and when no
// Redis is configured. Versions are not shared across instances.
type MemoryInvalidator struct {
	mu       sync.Mutex
	versions map[string]int64
}

// NewMemoryInvalidator creates an empty in-memory Invalidator.
func NewMemoryInvalidator() *MemoryInvalidator {
	return &MemoryInvalidator{versions: make(map[string]int64)}
}

func (m *MemoryInvalidator) Invalidate(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.versions[path]++
	return nil
}

func (m *MemoryInvalidator) Version(_ context.Context, path string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[path], nil
}
