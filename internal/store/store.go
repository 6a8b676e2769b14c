package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrNotFound       = errors.New("spawn record not found")
	ErrSchemaMismatch = errors.New("spawns table does not match the journal schema")
)

// SpawnColumns are the columns every backend's spawns table carries.
var SpawnColumns = []string{
	"id", "created_at", "bundle", "tier", "level", "role", "location",
	"night", "elite", "weapon_tpl", "ammo_tpl", "items",
}

// Store is the spawn journal.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	RecordSpawn(ctx context.Context, rec SpawnRecord) error
	GetSpawn(ctx context.Context, id string) (*SpawnRecord, error)
	ListSpawns(ctx context.Context, filter SpawnFilter) ([]SpawnRecord, error)
	CountByTier(ctx context.Context, bundle string) ([]TierCount, error)

	RunSQL(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}

// PositionalArgs orders RunSQL params keyed "1", "2", ... into driver
// arguments. Numbering stops at the first gap.
func PositionalArgs(params map[string]any) []any {
	args := make([]any, 0, len(params))
	for i := 1; ; i++ {
		val, ok := params[strconv.Itoa(i)]
		if !ok {
			return args
		}
		args = append(args, val)
	}
}

// CheckSpawnColumns compares the columns found on an existing spawns table
// with SpawnColumns. No columns means the table does not exist yet, which
// EnsureSchema fixes.
func CheckSpawnColumns(have []string) error {
	if len(have) == 0 {
		return nil
	}
	if missing := lo.Without(SpawnColumns, have...); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}
