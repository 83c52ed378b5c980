package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/around-labs/around"
)

// Adapter implements around.Storage on a pgx connection pool. Single-row
// operations run directly against the pool; batch operations check out
// one connection, apply their per-item statements sequentially and
// release it when done, success or not.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ around.Storage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{pool: pool}
}
