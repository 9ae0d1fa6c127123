package store

import (
	"context"
	"sync"
)

// NewMemory returns a process-local backend. Nothing survives a restart.
func NewMemory() Backend {
	return &memoryBackend{values: make(map[string][]byte)}
}

type memoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (m *memoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *memoryBackend) Set(_ context.Context, key string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), raw...)
	return nil
}

func (m *memoryBackend) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryBackend) Close() error {
	return nil
}
