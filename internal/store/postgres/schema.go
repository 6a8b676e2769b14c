package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS spawns (
    id         TEXT PRIMARY KEY,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    bundle     TEXT NOT NULL,
    tier       TEXT NOT NULL,
    level      INTEGER NOT NULL,
    role       TEXT NOT NULL DEFAULT '',
    location   TEXT NOT NULL DEFAULT '',
    night      BOOLEAN NOT NULL DEFAULT FALSE,
    elite      BOOLEAN NOT NULL DEFAULT FALSE,
    weapon_tpl TEXT NOT NULL DEFAULT '',
    ammo_tpl   TEXT NOT NULL DEFAULT '',
    items      JSONB NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_spawns_bundle_tier ON spawns (bundle, tier);
CREATE INDEX IF NOT EXISTS idx_spawns_created ON spawns (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_spawns_elite ON spawns (elite) WHERE elite = TRUE;
`
	_, err := c.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
