package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB owns the connection pool behind the event journal.
type DB struct {
	pool *pgxpool.Pool
}

// New opens a pool for dsn and checks that the journal database answers.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening journal pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("journal database unreachable: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases every pooled connection.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool exposes the pool to repositories.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}
