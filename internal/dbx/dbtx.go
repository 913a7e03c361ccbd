// Package dbx holds the small database plumbing shared by all repositories:
// the DBTX interface that lets a repository run on either a plain connection
// or an open transaction, and WithTx for transactional sections.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface repositories depend on. Both *sql.DB and
// *sql.Tx satisfy it, so the same repository code serves transactional
// and non-transactional calls.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit on success, rollback on error
// or panic. A panic inside fn is rethrown after the rollback.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
