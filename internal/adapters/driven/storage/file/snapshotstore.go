// Package file provides a file-backed implementation of the
// SnapshotStore port: each database's snapshot is one blob file under
// the data directory, written atomically via a temp file and rename.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// SnapshotStore stores snapshots as files named <name>.snapshot.
type SnapshotStore struct {
	dir string
}

var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore creates a snapshot store rooted at dir. If dir is
// empty, defaults to ~/.kasir/data.
func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".kasir", "data")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating snapshot directory: %w", err)
	}

	return &SnapshotStore{dir: dir}, nil
}

// Load returns the snapshot saved under name.
func (s *SnapshotStore) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, nil
}

// Save stores the snapshot under name. The write goes to a temp file
// first so a crash mid-write never leaves a truncated snapshot behind.
func (s *SnapshotStore) Save(name string, data []byte) error {
	path := s.path(name)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) path(name string) string {
	return filepath.Join(s.dir, name+".snapshot")
}
