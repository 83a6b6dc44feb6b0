package store

import (
	"context"
	"sync"
)

// Memory is a volatile in-process store. It exists for tests and examples;
// it does not survive a restart.
type Memory struct {
	mu     sync.Mutex
	values map[Slot]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[Slot]string)}
}

func (m *Memory) Read(_ context.Context, slot Slot) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[slot], nil
}

func (m *Memory) Write(_ context.Context, slot Slot, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == "" {
		delete(m.values, slot)
		return nil
	}
	m.values[slot] = value
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[Slot]string)
	return nil
}
