package store

import (
	"context"
	"sync"
)

// Memory defines a public type used by Planner session APIs.
//
// Memory is a process-wide in-memory [Store]. It is safe for concurrent use
// and is the backend of choice for tests and single-process shells.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory describes the newmemory operation and its observable behavior.
//
// NewMemory may return an error when input validation, dependency calls, or security checks fail.
// NewMemory does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get describes the get operation and its observable behavior.
//
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set describes the set operation and its observable behavior.
//
// Set does not mutate shared global state beyond the receiver and can be used concurrently.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete is idempotent: deleting an absent key is not an error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear removes all four session keys in one critical section so no reader
// ever observes a partially cleared session.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range Keys() {
		delete(m.values, key)
	}
	return nil
}
