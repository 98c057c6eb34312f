// Package sqlite implements the storage engine ports on top of SQLite.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Two engines share one
// transaction implementation:
//
//   - File engine: a WAL-mode database file under the data directory. This
//     is the native engine; durability comes from SQLite itself.
//   - Snapshot engine: an in-memory database restored from a SnapshotStore
//     at startup and re-serialized to it after every committed transaction.
//     This serves hosts without a usable filesystem database, where the only
//     persistence available is a small external key-value blob store.
//
// The package also provides the schema manager (InitSchema) and the three
// SQL repositories (ProductStore, SaleStore, SettingsStore), which speak to
// either engine through the driven.Engine port.
//
// # Thread Safety
//
// Engines serialize transaction bodies behind a mutex: no two bodies
// interleave their statements, and the post-commit snapshot write always
// observes a fully committed state.
package sqlite
