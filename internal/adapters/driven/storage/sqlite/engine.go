package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
	"github.com/koncoweb/kasir-go/internal/logger"
)

// Engine is a SQLite-backed implementation of driven.Engine. The zero
// value is not usable; construct one with NewFileEngine or
// NewSnapshotEngine.
type Engine struct {
	mu     sync.Mutex
	db     *sql.DB
	name   string
	path   string
	closed bool

	// snapshots is nil for the file engine. When set, the full
	// database state is exported to it after every commit.
	snapshots driven.SnapshotStore
}

var _ driven.Engine = (*Engine)(nil)

// NewFileEngine opens a database file named <name>.db in dataDir,
// creating both as needed. If dataDir is empty, defaults to
// ~/.kasir/data.
func NewFileEngine(dataDir, name string) (*Engine, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".kasir", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, name+".db")

	// WAL mode for better concurrency; foreign keys on every connection.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	logger.Debug("opened file engine at %s", dbPath)
	return &Engine{db: db, name: name, path: dbPath}, nil
}

// NewSnapshotEngine opens an in-memory database and restores its state
// from the snapshot saved under name, if one exists. A missing snapshot
// starts an empty database; a corrupt one is logged and likewise starts
// empty rather than failing startup.
func NewSnapshotEngine(name string, snapshots driven.SnapshotStore) (*Engine, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	// A second connection would see a separate, empty in-memory
	// database, so the pool must stay at exactly one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	e := &Engine{db: db, name: name, snapshots: snapshots}
	e.restore(context.Background())
	return e, nil
}

// Path returns the database file path. Empty for the snapshot engine.
func (e *Engine) Path() string {
	return e.path
}

// RunTransaction implements driven.Engine. The body either commits as a
// whole or rolls back as a whole; for the snapshot engine a successful
// commit is followed by a best-effort snapshot write.
func (e *Engine) RunTransaction(ctx context.Context, fn func(tx driven.Tx) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return domain.ErrEngineClosed
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&engineTx{ctx: ctx, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Warn("rollback failed on %s: %v", e.name, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	e.persist(ctx)
	return nil
}

// Close persists the snapshot engine's state once more and releases the
// underlying database. Closing twice is a no-op.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	e.persist(context.Background())
	if err := e.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// persist exports the full database state to the snapshot store. It is
// best-effort: a failed export or save is logged and never unwinds the
// commit that preceded it, so the in-memory state stands for the life
// of the process but will not survive a restart.
func (e *Engine) persist(ctx context.Context) {
	if e.snapshots == nil {
		return
	}

	data, err := exportSnapshot(ctx, e.db)
	if err != nil {
		logger.Warn("exporting snapshot of %s: %v", e.name, err)
		return
	}
	if err := e.snapshots.Save(e.name, data); err != nil {
		logger.Warn("saving snapshot of %s: %v", e.name, err)
		return
	}
	logger.Debug("persisted snapshot of %s (%d bytes)", e.name, len(data))
}

// restore loads the saved snapshot, if any, into the fresh in-memory
// database. Any failure leaves the database empty: for a local store,
// starting over beats refusing to start.
func (e *Engine) restore(ctx context.Context) {
	data, err := e.snapshots.Load(e.name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("loading snapshot of %s: %v", e.name, err)
		}
		return
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		logger.Warn("corrupt snapshot for %s, starting empty: %v", e.name, err)
		return
	}

	if err := importSnapshot(ctx, e.db, snap); err != nil {
		logger.Warn("restoring snapshot of %s, starting empty: %v", e.name, err)
		return
	}
	logger.Debug("restored snapshot of %s (%d tables)", e.name, len(snap.Tables))
}
