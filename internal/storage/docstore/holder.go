package docstore

import (
	"errors"
	"sync"
)

// ErrNotConfigured is returned when no store has been configured.
var ErrNotConfigured = errors.New("document store is not configured")

// Holder owns the process-wide store handle. Readers run under a read lock
// for the duration of their call so Swap never closes a store in use.
type Holder struct {
	mu         sync.RWMutex
	store      Store
	collection string
}

// NewHolder creates a holder; store may be nil.
func NewHolder(collection string, store Store) *Holder {
	return &Holder{store: store, collection: collection}
}

// Collection is the collection project records are read from.
func (h *Holder) Collection() string {
	return h.collection
}

// Configured reports whether a store is currently set.
func (h *Holder) Configured() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.store != nil
}

// View calls fn with the current store while holding the read lock.
func (h *Holder) View(fn func(Store) error) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.store == nil {
		return ErrNotConfigured
	}
	return fn(h.store)
}

// Swap replaces the current store and closes the previous one.
func (h *Holder) Swap(store Store) error {
	h.mu.Lock()
	old := h.store
	h.store = store
	h.mu.Unlock()

	if old != nil {
		return old.Close()
	}
	return nil
}

// Close closes and clears the current store.
func (h *Holder) Close() error {
	return h.Swap(nil)
}
