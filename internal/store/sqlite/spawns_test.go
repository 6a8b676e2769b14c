package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"loadout/internal/item"
	"loadout/internal/store"
)

func openTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	client, err := New(ctx, "sqlite://"+filepath.Join(t.TempDir(), "spawns.db"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close(ctx) })
	require.NoError(t, client.EnsureSchema(ctx))
	return client
}

func spawn(id, bundle, tier string, elite bool, at time.Time) store.SpawnRecord {
	return store.SpawnRecord{
		ID:        id,
		CreatedAt: at,
		Bundle:    bundle,
		Tier:      tier,
		Level:     30,
		Role:      "pmcBot",
		Location:  "bigmap",
		Elite:     elite,
		WeaponTpl: "rifle",
		AmmoTpl:   "ammo",
		Items: []item.Item{
			{ID: "w", Tpl: "rifle", ParentID: "eq", SlotID: "FirstPrimaryWeapon"},
			{ID: "m", Tpl: "mag", ParentID: "w", SlotID: "mod_magazine", Upd: map[string]any{"StackObjectsCount": float64(1)}},
		},
	}
}

func TestSpawnRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	records := []store.SpawnRecord{
		spawn("a", "default", "one", false, base),
		spawn("b", "default", "two", true, base.Add(time.Minute)),
		spawn("c", "meta", "one", false, base.Add(2*time.Minute)),
	}
	for _, rec := range records {
		require.NoError(t, client.RecordSpawn(ctx, rec))
	}

	t.Run("get", func(t *testing.T) {
		got, err := client.GetSpawn(ctx, "b")
		require.NoError(t, err)
		if diff := cmp.Diff(records[1], *got); diff != "" {
			t.Fatalf("unexpected record (-want +got):\n%s", diff)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := client.GetSpawn(ctx, "nope")
		if !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		got, err := client.ListSpawns(ctx, store.SpawnFilter{})
		require.NoError(t, err)
		ids := make([]string, 0, len(got))
		for _, rec := range got {
			ids = append(ids, rec.ID)
		}
		if diff := cmp.Diff([]string{"c", "b", "a"}, ids); diff != "" {
			t.Fatalf("unexpected order (-want +got):\n%s", diff)
		}
	})

	t.Run("list filtered", func(t *testing.T) {
		got, err := client.ListSpawns(ctx, store.SpawnFilter{Bundle: "default", EliteOnly: true})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "b", got[0].ID)

		got, err = client.ListSpawns(ctx, store.SpawnFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "c", got[0].ID)
	})

	t.Run("count by tier", func(t *testing.T) {
		got, err := client.CountByTier(ctx, "")
		require.NoError(t, err)
		want := []store.TierCount{
			{Bundle: "default", Tier: "one", Count: 1},
			{Bundle: "default", Tier: "two", Count: 1, Elite: 1},
			{Bundle: "meta", Tier: "one", Count: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("unexpected counts (-want +got):\n%s", diff)
		}

		got, err = client.CountByTier(ctx, "meta")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("run sql", func(t *testing.T) {
		rows, err := client.RunSQL(ctx, "SELECT id FROM spawns WHERE bundle = ?1 ORDER BY id", map[string]any{"1": "default"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "a", rows[0]["id"])
	})
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	client := openTestClient(t)
	require.NoError(t, client.EnsureSchema(context.Background()))
}

func TestMemoryDSN(t *testing.T) {
	ctx := context.Background()
	client, err := New(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	defer client.Close(ctx)

	require.NoError(t, client.EnsureSchema(ctx))
	require.NoError(t, client.RecordSpawn(ctx, spawn("x", "default", "one", false, time.Now())))
	got, err := client.ListSpawns(ctx, store.SpawnFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
}
