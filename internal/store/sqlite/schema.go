package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS spawns (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		bundle     TEXT NOT NULL,
		tier       TEXT NOT NULL,
		level      INTEGER NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		location   TEXT NOT NULL DEFAULT '',
		night      INTEGER NOT NULL DEFAULT 0,
		elite      INTEGER NOT NULL DEFAULT 0,
		weapon_tpl TEXT NOT NULL DEFAULT '',
		ammo_tpl   TEXT NOT NULL DEFAULT '',
		items      TEXT NOT NULL DEFAULT '[]'
	);

	-- created_at is RFC3339Nano UTC so it sorts lexically
	CREATE INDEX IF NOT EXISTS idx_spawns_bundle_tier ON spawns (bundle, tier);
	CREATE INDEX IF NOT EXISTS idx_spawns_created ON spawns (created_at);
	CREATE INDEX IF NOT EXISTS idx_spawns_elite ON spawns (elite) WHERE elite = 1;
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

// splitStatements cuts a DDL script at lines ending in ";", dropping "--"
// comment lines.
func splitStatements(ddl string) []string {
	var (
		statements []string
		current    strings.Builder
	)
	for _, line := range strings.Split(ddl, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(trimmed)
		current.WriteByte('\n')
		if strings.HasSuffix(trimmed, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}
