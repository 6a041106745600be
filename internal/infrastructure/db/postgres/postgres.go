package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

// uniqueViolation is the Postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

// DB wraps a pgx connection pool and provides the transactional unit of
// work used by the service layer.
type DB struct {
	pool *pgxpool.Pool
}

// Connect builds a connection pool from the given URL and verifies
// connectivity with a ping.
func Connect(ctx context.Context, url string) (*DB, error) {
	if url == "" {
		return nil, fmt.Errorf("postgres: empty connection string")
	}

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close releases the underlying pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Ping reports store connectivity; used by the readiness probe.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

type txKey struct{}

// WithinTx runs fn inside a single transaction. The transaction rides on
// the derived context, so every repository call inside fn joins it. Nested
// calls reuse the outer transaction.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit tx: %w", err)
	}
	return nil
}

// querier is the subset of pgxpool.Pool and pgx.Tx the repositories need.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// conn returns the context's transaction when present, the pool otherwise.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.pool
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// Used as a backstop behind the service-layer uniqueness pre-checks.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
