package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loadout/internal/store"
)

var _ store.Store = (*Client)(nil)

type Client struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	c := &Client{pool: pool}
	if err := c.checkSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

const spawnColumnsQuery = `
SELECT column_name
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = 'spawns'
ORDER BY ordinal_position`

// checkSchema refuses a database whose spawns table was written by something
// other than the journal.
func (c *Client) checkSchema(ctx context.Context) error {
	rows, err := c.pool.Query(ctx, spawnColumnsQuery)
	if err != nil {
		return fmt.Errorf("reading spawns columns: %w", err)
	}
	columns, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("reading spawns columns: %w", err)
	}
	return store.CheckSpawnColumns(columns)
}

func (c *Client) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}
