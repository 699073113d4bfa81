// Package postgres implements the store on PostgreSQL through pgx.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nandanmaalige/fitness-forge/internal/domain"
	"github.com/nandanmaalige/fitness-forge/internal/persistence"
)

//go:embed schema.sql
var schemaSQL string

// Repository provides Postgres-backed persistence for every entity.
type Repository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var (
	_ domain.Store  = (*Repository)(nil)
	_ domain.Seeder = (*Repository)(nil)
)

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool, now: time.Now}
}

// Connect opens a pool and verifies the server is reachable.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", classify(err))
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", classify(err))
	}
	return pool, nil
}

// Migrate creates the tables if they do not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", classify(err))
	}
	return nil
}

// SeedDefaults implements domain.Seeder. It is safe to call on every start.
func (r *Repository) SeedDefaults(ctx context.Context) (bool, error) {
	return persistence.Seed(ctx, r, r.now())
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type scanFunc[T any] func(row pgx.Row) (T, error)

// queryOne returns (nil, nil) when no row matches.
func queryOne[T any](ctx context.Context, q querier, scan scanFunc[T], sql string, args ...any) (*T, error) {
	record, err := scan(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err)
	}
	return &record, nil
}

// queryAll never returns a nil slice on success.
func queryAll[T any](ctx context.Context, q querier, scan scanFunc[T], sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, classify(err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// updateRecord locks the row, merges the patch in Go and writes every column back,
// so both adapters share one merge implementation.
func updateRecord[T any](ctx context.Context, pool *pgxpool.Pool, scan scanFunc[T], selectSQL string, id int64, write func(tx pgx.Tx, current T) (T, error)) (*T, error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	current, err := queryOne(ctx, tx, scan, selectSQL+" WHERE id=$1 FOR UPDATE", id)
	if err != nil || current == nil {
		return nil, err
	}
	updated, err := write(tx, *current)
	if err != nil {
		return nil, classify(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return &updated, nil
}

func (r *Repository) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM "+table+" WHERE id=$1", id)
	if err != nil {
		return false, classify(err)
	}
	return tag.RowsAffected() > 0, nil
}

func utc(t time.Time) time.Time {
	return domain.NormalizeTime(t)
}
