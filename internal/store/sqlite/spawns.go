package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"loadout/internal/store"
)

// timeLayout has fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const spawnColumns = `id, created_at, bundle, tier, level, role, location, night, elite, weapon_tpl, ammo_tpl, items`

type scanner interface {
	Scan(dest ...any) error
}

func (c *Client) RecordSpawn(ctx context.Context, rec store.SpawnRecord) error {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("encoding spawn items: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
INSERT INTO spawns (`+spawnColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.UTC().Format(timeLayout), rec.Bundle, rec.Tier, rec.Level, rec.Role,
		rec.Location, rec.Night, rec.Elite, rec.WeaponTpl, rec.AmmoTpl, string(items))
	if err != nil {
		return fmt.Errorf("recording spawn: %w", err)
	}
	return nil
}

func (c *Client) GetSpawn(ctx context.Context, id string) (*store.SpawnRecord, error) {
	row := c.db.QueryRowContext(ctx, `SELECT `+spawnColumns+` FROM spawns WHERE id = ?`, id)
	rec, err := scanSpawn(row)
	if errors.Is(err, sql.ErrNoRows) {
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
		where = append(where, "bundle = ?")
		args = append(args, filter.Bundle)
	}
	if filter.EliteOnly {
		where = append(where, "elite = 1")
	}

	query := `SELECT ` + spawnColumns + ` FROM spawns`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id LIMIT ?"
	args = append(args, filter.EffectiveLimit())

	rows, err := c.db.QueryContext(ctx, query, args...)
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
	rows, err := c.db.QueryContext(ctx, `
SELECT bundle, tier, COUNT(*), COALESCE(SUM(elite), 0)
FROM spawns
WHERE ?1 = '' OR bundle = ?1
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

func scanSpawn(row scanner) (*store.SpawnRecord, error) {
	var (
		rec       store.SpawnRecord
		createdAt string
		items     string
	)
	if err := row.Scan(&rec.ID, &createdAt, &rec.Bundle, &rec.Tier, &rec.Level, &rec.Role,
		&rec.Location, &rec.Night, &rec.Elite, &rec.WeaponTpl, &rec.AmmoTpl, &items); err != nil {
		return nil, err
	}
	created, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = created
	if items != "" {
		if err := json.Unmarshal([]byte(items), &rec.Items); err != nil {
			return nil, fmt.Errorf("decoding spawn items: %w", err)
		}
	}
	return &rec, nil
}
