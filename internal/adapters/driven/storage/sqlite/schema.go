package sqlite

import (
	"context"
	"fmt"

	"github.com/koncoweb/kasir-go/internal/core/domain"
	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// schemaStatements creates the four tables. All use IF NOT EXISTS so
// repeated initialization is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY NOT NULL,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		stock INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY NOT NULL,
		total_amount REAL NOT NULL,
		payment_amount REAL NOT NULL,
		change_amount REAL NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transaction_items (
		id TEXT PRIMARY KEY NOT NULL,
		transaction_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL,
		subtotal REAL NOT NULL,
		FOREIGN KEY (transaction_id) REFERENCES transactions (id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE RESTRICT
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY NOT NULL,
		value TEXT NOT NULL
	)`,
}

// InitSchema ensures the four tables and the default settings row
// exist. It runs in a single transaction and must complete before any
// repository call is issued. Calling it again is a no-op.
func InitSchema(ctx context.Context, engine driven.Engine) error {
	return engine.RunTransaction(ctx, func(tx driven.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("creating schema: %w", err)
			}
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
			domain.SettingStoreName, domain.DefaultStoreName,
		); err != nil {
			return fmt.Errorf("seeding settings: %w", err)
		}
		return nil
	})
}
