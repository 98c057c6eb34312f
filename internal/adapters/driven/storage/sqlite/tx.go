package sqlite

import (
	"context"
	"database/sql"

	"github.com/koncoweb/kasir-go/internal/core/ports/driven"
)

// engineTx is the transaction-scoped executor handed to RunTransaction
// bodies. Statement errors are returned to the body rather than aborting
// immediately, so repositories can observe individual failures (the
// delete-referenced check relies on this) and decide the transaction's
// outcome themselves.
type engineTx struct {
	ctx context.Context
	tx  *sql.Tx
}

var _ driven.Tx = (*engineTx)(nil)

func (t *engineTx) Exec(query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(t.ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (t *engineTx) Query(query string, args ...any) (driven.Rows, error) {
	rows, err := t.tx.QueryContext(t.ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
