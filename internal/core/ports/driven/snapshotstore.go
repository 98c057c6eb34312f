package driven

// SnapshotStore persists full engine snapshots in a key-value fashion,
// keyed by database name. It is the durability backend for the
// snapshot engine, standing in for browser local storage: a small
// store with no transactional guarantees of its own.
type SnapshotStore interface {
	// Load returns the snapshot saved under name, or
	// domain.ErrNotFound when none has been saved yet.
	Load(name string) ([]byte, error)

	// Save stores the snapshot under name, replacing any previous one.
	Save(name string, data []byte) error
}
