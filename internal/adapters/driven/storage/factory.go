// Package storage provides the factory that selects a storage engine.
// The choice between the native file engine and the snapshot-persisted
// in-memory engine is an explicit configuration value, not a runtime
// environment probe, so core logic can be exercised against either.
package storage

import (
	"fmt"

	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/file"
	"github.com/koncoweb/kasir-go/internal/adapters/driven/storage/sqlite"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// EngineMode selects the engine backing the data layer.
type EngineMode string

const (
	// ModeFile is the native engine: a SQLite database file.
	ModeFile EngineMode = "file"

	// ModeSnapshot is the in-memory engine made durable by writing a
	// full snapshot to the data directory after every commit.
	ModeSnapshot EngineMode = "snapshot"
)

// IsValid returns true if the mode is recognised.
func (m EngineMode) IsValid() bool {
	return m == ModeFile || m == ModeSnapshot
}

// NewEngine creates the engine selected by mode. dataDir may be empty
// to use the default data directory; name is the database name without
// extension.
func NewEngine(mode EngineMode, dataDir, name string) (driven.Engine, error) {
	switch mode {
	case ModeFile:
		return sqlite.NewFileEngine(dataDir, name)
	case ModeSnapshot:
		snapshots, err := file.NewSnapshotStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("creating snapshot store: %w", err)
		}
		return sqlite.NewSnapshotEngine(name, snapshots)
	default:
		return nil, fmt.Errorf("unknown engine mode %q", mode)
	}
}
