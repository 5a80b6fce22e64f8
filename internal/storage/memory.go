package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is an in-process adapter used in tests. It counts writes and
// supports error injection on either direction.
type MemoryAdapter struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   map[string]int

	// GetErr/SetErr, when non-nil, are returned from every Get/Set call.
	GetErr error
	SetErr error
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		values: make(map[string][]byte),
		sets:   make(map[string]int),
	}
}

func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.GetErr != nil {
		return nil, a.GetErr
	}
	v, ok := a.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.SetErr != nil {
		return a.SetErr
	}
	a.sets[key]++
	stored := make([]byte, len(value))
	copy(stored, value)
	a.values[key] = stored
	return nil
}

func (a *MemoryAdapter) Close() error {
	return nil
}

// Seed stores a value without counting it as a write.
func (a *MemoryAdapter) Seed(key string, value []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[key] = value
}

// SetCount returns how many times Set was called for key.
func (a *MemoryAdapter) SetCount(key string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sets[key]
}

// Value returns the current stored value for key, or nil.
func (a *MemoryAdapter) Value(key string) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.values[key]
}
