package docstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store with insertion-ordered collections.
type MemoryStore struct {
	mu        sync.Mutex
	projectID string
	docs      map[string][]Document
	err       error
	closed    bool
	calls     int
}

func NewMemoryStore(projectID string) *MemoryStore {
	return &MemoryStore{projectID: projectID, docs: make(map[string][]Document)}
}

// Add appends a document to collection, preserving insertion order.
func (m *MemoryStore) Add(collection string, doc Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append(m.docs[collection], doc)
}

// FailWith makes every subsequent call return err.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many read calls reached the store.
func (m *MemoryStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MemoryStore) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *MemoryStore) ProjectID() string { return m.projectID }

func (m *MemoryStore) ListDocuments(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]Document, len(m.docs[collection]))
	copy(out, m.docs[collection])
	return out, nil
}

func (m *MemoryStore) Ping(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
