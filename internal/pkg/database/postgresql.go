package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

// PoolOptions controls connection pool sizing.
type PoolOptions struct {
	MaxConns int32
	MinConns int32
}

func DefaultPoolOptions() PoolOptions {
	return PoolOptions{MaxConns: 25, MinConns: 5}
}

func NewPostgreSQLDB(ctx context.Context, dsn string, opts PoolOptions) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = opts.MaxConns
	config.MinConns = opts.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx so repository
// methods can run inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
