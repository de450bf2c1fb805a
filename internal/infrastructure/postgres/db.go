package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB is the subset of pgxpool.Pool the repositories need. Keeping it
// narrow lets tests substitute a pgxmock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
