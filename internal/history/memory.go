package history

import (
	"context"
	"sync"
)

// MemoryStore is a Store that keeps entries in memory. The zero value is
// ready to use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (m *MemoryStore) Push(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fill(&e)
	m.entries = append(m.entries, e)
	return nil
}

func (m *MemoryStore) List(ctx context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.entries
	if limit > 0 && limit < len(l) {
		l = l[len(l)-limit:]
	}
	return append([]Entry(nil), l...), nil
}

func (m *MemoryStore) Trim(ctx context.Context, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if keep < 0 {
		keep = 0
	}
	if keep < len(m.entries) {
		m.entries = append(m.entries[:0:0], m.entries[len(m.entries)-keep:]...)
	}
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
