package infrastructure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewPlansPool connects to the plans database. An empty DSN means the
// history feature is disabled and callers get a nil pool.
func NewPlansPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, nil
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect plans db: %w", err)
	}
	return pool, nil
}
