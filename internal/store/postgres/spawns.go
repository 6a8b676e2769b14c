package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"loadout/internal/store"
)

const spawnColumns = `id, created_at, bundle, tier, level, role, location, night, elite, weapon_tpl, ammo_tpl, items`

func (c *Client) RecordSpawn(ctx context.Context, rec store.SpawnRecord) error {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("encoding spawn items: %w", err)
	}
	_, err = c.pool.Exec(ctx, `
INSERT INTO spawns (`+spawnColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rec.ID, rec.CreatedAt, rec.Bundle, rec.Tier, rec.Level, rec.Role, rec.Location,
		rec.Night, rec.Elite, rec.WeaponTpl, rec.AmmoTpl, items)
	if err != nil {
		return fmt.Errorf("recording spawn: %w", err)
	}
	return nil
}

func (c *Client) GetSpawn(ctx context.Context, id string) (*store.SpawnRecord, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+spawnColumns+` FROM spawns WHERE id = $1`, id)
	rec, err := scanSpawn(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting spawn: %w", err)
	}
	return rec, nil
}

func (c *Client) ListSpawns(ctx context.Context, filter store.SpawnFilter) ([]store.SpawnRecord, error) {
	var (
		where []string
		args  []any
	)
	if filter.Bundle != "" {
		args = append(args, filter.Bundle)
		where = append(where, fmt.Sprintf("bundle = $%d", len(args)))
	}
	if filter.EliteOnly {
		where = append(where, "elite = TRUE")
	}

	query := `SELECT ` + spawnColumns + ` FROM spawns`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.EffectiveLimit())
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing spawns: %w", err)
	}
	defer rows.Close()

	var records []store.SpawnRecord
	for rows.Next() {
		rec, err := scanSpawn(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning spawn: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spawns: %w", err)
	}
	return records, nil
}

func (c *Client) CountByTier(ctx context.Context, bundle string) ([]store.TierCount, error) {
	rows, err := c.pool.Query(ctx, `
SELECT bundle, tier, COUNT(*), COUNT(*) FILTER (WHERE elite)
FROM spawns
WHERE $1 = '' OR bundle = $1
GROUP BY bundle, tier
ORDER BY bundle, tier`, bundle)
	if err != nil {
		return nil, fmt.Errorf("counting spawns: %w", err)
	}
	defer rows.Close()

	var counts []store.TierCount
	for rows.Next() {
		var tc store.TierCount
		if err := rows.Scan(&tc.Bundle, &tc.Tier, &tc.Count, &tc.Elite); err != nil {
			return nil, fmt.Errorf("scanning tier count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tier counts: %w", err)
	}
	return counts, nil
}

func scanSpawn(row pgx.Row) (*store.SpawnRecord, error) {
	var (
		rec   store.SpawnRecord
		items []byte
	)
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.Bundle, &rec.Tier, &rec.Level, &rec.Role,
		&rec.Location, &rec.Night, &rec.Elite, &rec.WeaponTpl, &rec.AmmoTpl, &items); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return nil, fmt.Errorf("decoding spawn items: %w", err)
		}
	}
	return &rec, nil
}
