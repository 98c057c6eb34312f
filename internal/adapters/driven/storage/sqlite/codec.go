package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	"fmt"
	"strings"
)

// snapshot is the serialized full state of a database: for every user
// table its CREATE statement, column names, and rows. It is the unit
// the snapshot engine writes to its SnapshotStore after each commit.
type snapshot struct {
	Tables []tableState
}

// tableState captures one table.
type tableState struct {
	Name      string
	CreateSQL string
	Columns   []string
	Rows      [][]any
}

func init() {
	// Concrete types that travel inside the []any row values.
	gob.Register(int64(0))
	gob.Register(float64(0))
	gob.Register("")
	gob.Register([]byte(nil))
}

// exportSnapshot serializes every user table of db. It runs inside its
// own read transaction so the exported state is consistent.
func exportSnapshot(ctx context.Context, db *sql.DB) ([]byte, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// sqlite_master lists tables in creation order, which also orders
	// referencing tables after the tables they reference.
	rows, err := tx.QueryContext(ctx, `
		SELECT name, sql FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	var snap snapshot
	for rows.Next() {
		var t tableState
		if err := rows.Scan(&t.Name, &t.CreateSQL); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning table definition: %w", err)
		}
		snap.Tables = append(snap.Tables, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating table definitions: %w", err)
	}
	rows.Close()

	for i := range snap.Tables {
		if err := exportTable(ctx, tx, &snap.Tables[i]); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

func exportTable(ctx context.Context, tx *sql.Tx, t *tableState) error {
	rows, err := tx.QueryContext(ctx, "SELECT * FROM "+quoteIdent(t.Name))
	if err != nil {
		return fmt.Errorf("reading table %s: %w", t.Name, err)
	}
	defer rows.Close()

	t.Columns, err = rows.Columns()
	if err != nil {
		return fmt.Errorf("reading columns of %s: %w", t.Name, err)
	}

	for rows.Next() {
		values := make([]any, len(t.Columns))
		ptrs := make([]any, len(t.Columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scanning row of %s: %w", t.Name, err)
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows of %s: %w", t.Name, err)
	}
	return nil
}

// decodeSnapshot parses a serialized snapshot.
func decodeSnapshot(data []byte) (*snapshot, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// importSnapshot replays a snapshot into an empty database. It runs in
// one transaction: a failed import rolls back completely, leaving the
// database empty rather than half-restored.
func importSnapshot(ctx context.Context, db *sql.DB, snap *snapshot) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Snapshot table order is not guaranteed to satisfy foreign keys
	// row-by-row; defer enforcement to the commit.
	if _, err := tx.ExecContext(ctx, "PRAGMA defer_foreign_keys = ON"); err != nil {
		return fmt.Errorf("deferring foreign keys: %w", err)
	}

	for _, t := range snap.Tables {
		if _, err := tx.ExecContext(ctx, t.CreateSQL); err != nil {
			return fmt.Errorf("recreating table %s: %w", t.Name, err)
		}
		if len(t.Rows) == 0 {
			continue
		}

		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ")
		quoted := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			quoted[i] = quoteIdent(c)
		}
		insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quoteIdent(t.Name), strings.Join(quoted, ", "), placeholders)

		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return fmt.Errorf("preparing insert for %s: %w", t.Name, err)
		}
		for _, row := range t.Rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				stmt.Close()
				return fmt.Errorf("restoring row of %s: %w", t.Name, err)
			}
		}
		stmt.Close()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// quoteIdent quotes a SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
