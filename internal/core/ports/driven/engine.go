package driven

import "context"

// Engine is the uniform transaction interface over whichever storage
// engine is active. Repositories speak SQL to it without knowing which
// engine they are talking to.
//
// Engines serialize transaction bodies: no two bodies interleave their
// statements, the second waits for the first's commit or rollback.
// No timeout is imposed on a body; a hang in the underlying engine
// hangs the caller. Acceptable for a single-user local application.
type Engine interface {
	// RunTransaction executes fn atomically. Every statement issued
	// through the Tx is either fully applied (fn returns nil and the
	// commit succeeds) or fully discarded (fn returns an error, or the
	// commit fails). Statement errors return through the Tx methods so
	// fn can observe an individual failure and still decide whether to
	// abort or continue.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the engine. Engines with snapshot durability
	// persist their state once more before closing.
	Close() error
}

// Tx is a transaction-scoped statement executor. It is only valid for
// the duration of the RunTransaction body that received it.
type Tx interface {
	// Exec runs a statement that returns no rows and reports the
	// number of rows it affected.
	Exec(query string, args ...any) (int64, error)

	// Query runs a statement and returns its result rows. The caller
	// must close the returned Rows before issuing further statements.
	Query(query string, args ...any) (Rows, error)
}

// Rows is a materialized-or-streamed result set. It mirrors the subset
// of database/sql rows behaviour the repositories need.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}
