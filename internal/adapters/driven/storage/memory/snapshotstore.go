// Package memory provides an in-memory implementation of the
// SnapshotStore port, used by tests and by fully ephemeral runs where
// losing all data at process exit is acceptable.
package memory

import (
	"sync"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// SnapshotStore keeps snapshots in a map.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates an empty in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snapshots: make(map[string][]byte)}
}

// Load returns the snapshot saved under name.
func (s *SnapshotStore) Load(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.snapshots[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

// Save stores the snapshot under name.
func (s *SnapshotStore) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.snapshots[name] = stored
	return nil
}
