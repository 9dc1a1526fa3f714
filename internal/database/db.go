package database

import (
	"context"
)

// DB is the narrow query surface the catalog loader and seeder need.
// The pgx pool adapter in database/postgres implements it.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}
