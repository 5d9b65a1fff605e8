package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

type txKey struct{}

// WithTransaction runs fn inside a transaction. The transaction rides the
// context, so repository calls made with the inner context share it; on any
// error the whole transaction rolls back.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetQuerier returns the transaction bound to the context when there is
// one, and the pool otherwise.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
