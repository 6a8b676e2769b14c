package weapon

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"loadout/internal/item"
	"loadout/internal/metrics"
	"loadout/internal/preset"
	"loadout/internal/rng"
)

const (
	m4Tpl     = "5447a9cd4bdc2dbd208b4567"
	stanagTpl = "55d4887d4bdc2d962f8b4570"
	m855Tpl   = "54527a984bdc2d4e668b4567"
	gripTpl   = "55d4b9964bdc2d1d4e8b456e"
	equipment = "equipment-root"
)

func testCatalog() *item.MemoryCatalog {
	return item.NewCatalog(
		item.Template{ID: m4Tpl, Name: "Colt M4A1", Caliber: "Caliber556x45NATO"},
		item.Template{ID: stanagTpl, Name: "STANAG 30", MagazineCapacity: 30},
		item.Template{ID: m855Tpl, Name: "M855", StackMaxSize: 20},
		item.Template{ID: "no-caliber", Name: "Flare gun"},
	)
}

// deepPreset lists children before their parents so the result cannot depend
// on node order.
func deepPreset(rootTpl string) preset.WeaponPreset {
	return preset.WeaponPreset{
		ID:   "deep",
		Name: "deep rifle",
		Items: []item.Item{
			{ID: "muzzle", Tpl: "muzzle-tpl", ParentID: "barrel", SlotID: "mod_muzzle"},
			{ID: "mag", Tpl: stanagTpl, ParentID: "root", SlotID: item.SlotMagazine},
			{ID: "root", Tpl: rootTpl},
			{ID: "barrel", Tpl: "barrel-tpl", ParentID: "upper", SlotID: "mod_barrel"},
			{ID: "upper", Tpl: "upper-tpl", ParentID: "root", SlotID: "mod_reciever"},
			{ID: "grip", Tpl: gripTpl, ParentID: "root", SlotID: "mod_pistol_grip"},
			{ID: "light", Tpl: "light-tpl", ParentID: "upper", SlotID: "mod_tactical_000"},
		},
	}
}

func testStore(weapon preset.WeaponPreset, ammo preset.Ammo, modules preset.Modules, opts ...preset.Option) *preset.Store {
	bundle := &preset.Bundle{
		Name:   "default",
		Weight: 1,
		Tiers:  []preset.Tier{{Name: "one", Min: 1, Max: 79}},
		Data: map[string]*preset.TierData{
			"one": {Ammo: ammo, Modules: modules, Weapons: []preset.WeaponPreset{weapon}},
		},
	}
	return preset.NewStore([]*preset.Bundle{bundle}, opts...)
}

func defaultAmmo() preset.Ammo {
	return preset.Ammo{"Caliber556x45NATO": {m855Tpl}}
}

func missCount(t *testing.T, m *metrics.Metrics, kind string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "loadout_lookup_miss_total" {
			continue
		}
		for _, sample := range family.GetMetric() {
			for _, label := range sample.GetLabel() {
				if label.GetName() == "kind" && label.GetValue() == kind {
					return sample.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

type node struct {
	Tpl    string
	Slot   string
	Parent int
	Count  int
}

func shape(items []item.Item) []node {
	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.ID] = i
	}
	out := make([]node, len(items))
	for i, it := range items {
		parent := -1
		if p, ok := index[it.ParentID]; ok {
			parent = p
		}
		out[i] = node{Tpl: it.Tpl, Slot: it.SlotID, Parent: parent, Count: it.StackCount()}
	}
	return out
}

func TestGenerate(t *testing.T) {
	ids := &item.SequenceGenerator{Prefix: "w"}
	a := New(testStore(deepPreset(m4Tpl), defaultAmmo(), nil), testCatalog(), nil, WithIDs(ids))

	result, err := a.Generate("default", 10, equipment)
	require.NoError(t, err)

	t.Run("no dangling parents", func(t *testing.T) {
		assert.Empty(t, item.DanglingParents(result.Items, equipment))
	})

	t.Run("root is attached to the primary slot", func(t *testing.T) {
		root := result.Items[result.Root]
		assert.Equal(t, m4Tpl, root.Tpl)
		assert.Equal(t, equipment, root.ParentID)
		assert.Equal(t, SlotPrimary, root.SlotID)
	})

	t.Run("every id is fresh", func(t *testing.T) {
		for _, it := range result.Items {
			assert.Regexp(t, `^w\d{6}$`, it.ID)
		}
	})

	t.Run("chamber holds one round", func(t *testing.T) {
		i := item.FindSlot(result.Items, item.SlotChamber)
		require.GreaterOrEqual(t, i, 0)
		assert.Equal(t, m855Tpl, result.Items[i].Tpl)
		assert.Equal(t, 1, result.Items[i].StackCount())
		assert.Equal(t, result.Items[result.Root].ID, result.Items[i].ParentID)
	})

	t.Run("magazine is filled in place", func(t *testing.T) {
		mag := item.FindSlot(result.Items, item.SlotMagazine)
		require.Equal(t, 1, mag)
		first, second := result.Items[mag+1], result.Items[mag+2]
		assert.Equal(t, item.SlotCartridges, first.SlotID)
		assert.Equal(t, result.Items[mag].ID, first.ParentID)
		assert.Equal(t, 20, first.StackCount())
		assert.Equal(t, 10, second.StackCount())
		require.NotNil(t, second.Location)
		assert.Equal(t, 1, *second.Location)
	})

	t.Run("result carries template and ammo", func(t *testing.T) {
		assert.True(t, result.Loaded())
		assert.Equal(t, m855Tpl, result.AmmoTpl)
		assert.Equal(t, "Caliber556x45NATO", result.Template.Caliber)
		assert.Equal(t, "deep rifle", result.Preset)
	})
}

func TestGenerateTwiceSameShape(t *testing.T) {
	ids := &item.SequenceGenerator{Prefix: "s"}
	a := New(testStore(deepPreset(m4Tpl), defaultAmmo(), nil), testCatalog(), nil, WithIDs(ids))

	first, err := a.Generate("default", 10, equipment)
	require.NoError(t, err)
	second, err := a.Generate("default", 10, equipment)
	require.NoError(t, err)

	if diff := cmp.Diff(shape(first.Items), shape(second.Items)); diff != "" {
		t.Fatalf("shape mismatch (-first +second):\n%s", diff)
	}

	seen := make(map[string]struct{}, len(first.Items))
	for _, it := range first.Items {
		seen[it.ID] = struct{}{}
	}
	for _, it := range second.Items {
		_, dup := seen[it.ID]
		assert.False(t, dup, "id %s reused across spawns", it.ID)
	}
}

func TestGenerateMissingData(t *testing.T) {
	t.Run("unknown caliber leaves the weapon unloaded", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		a := New(testStore(deepPreset(m4Tpl), preset.Ammo{}, nil), testCatalog(), nil, WithLogger(zap.New(core)))

		result, err := a.Generate("default", 10, equipment)
		require.NoError(t, err)
		assert.False(t, result.Loaded())
		assert.Equal(t, -1, item.FindSlot(result.Items, item.SlotChamber))
		assert.Equal(t, -1, item.FindSlot(result.Items, item.SlotCartridges))
		assert.Len(t, result.Items, 7)
		assert.Equal(t, 1, logs.FilterMessage("weapon left unloaded").Len())
	})

	t.Run("ammo miss is counted once", func(t *testing.T) {
		m := metrics.New()
		store := testStore(deepPreset(m4Tpl), preset.Ammo{}, nil, preset.WithMetrics(m))
		a := New(store, testCatalog(), nil, WithMetrics(m))

		_, err := a.Generate("default", 10, equipment)
		require.NoError(t, err)
		assert.Equal(t, 1.0, missCount(t, m, metrics.MissAmmo))

		static := New(store, testCatalog(), NewStaticAmmo(map[string]string{"Caliber9x19PARA": "pst"}), WithMetrics(m))
		_, err = static.Generate("default", 10, equipment)
		require.NoError(t, err)
		assert.Equal(t, 2.0, missCount(t, m, metrics.MissAmmo))
	})

	t.Run("template without caliber", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		a := New(testStore(deepPreset("no-caliber"), defaultAmmo(), nil), testCatalog(), nil, WithLogger(zap.New(core)))

		result, err := a.Generate("default", 10, equipment)
		require.NoError(t, err)
		assert.False(t, result.Loaded())
		assert.Equal(t, 1, logs.FilterMessage("weapon template has no caliber").Len())
	})

	t.Run("template missing from catalog", func(t *testing.T) {
		a := New(testStore(deepPreset("unknown-weapon"), defaultAmmo(), nil), testCatalog(), nil)

		result, err := a.Generate("default", 10, equipment)
		require.NoError(t, err)
		assert.Empty(t, item.DanglingParents(result.Items, equipment))
		assert.Empty(t, result.Template.ID)
	})

	t.Run("unknown bundle", func(t *testing.T) {
		a := New(testStore(deepPreset(m4Tpl), defaultAmmo(), nil), testCatalog(), nil)

		_, err := a.Generate("nope", 10, equipment)
		assert.True(t, errors.Is(err, preset.ErrUnknownBundle))
	})

	t.Run("tier without presets", func(t *testing.T) {
		bundle := &preset.Bundle{
			Name:   "empty",
			Weight: 1,
			Tiers:  []preset.Tier{{Name: "one", Min: 1, Max: 79}},
			Data:   map[string]*preset.TierData{"one": {}},
		}
		a := New(preset.NewStore([]*preset.Bundle{bundle}), testCatalog(), nil)

		_, err := a.Generate("empty", 10, equipment)
		assert.True(t, errors.Is(err, ErrNoWeaponPreset))
	})
}

func TestModuleSubstitution(t *testing.T) {
	modules := preset.Modules{gripTpl: {"grip-alt"}}
	store := testStore(deepPreset(m4Tpl), defaultAmmo(), modules, preset.WithRandom(rng.New(11)))
	a := New(store, testCatalog(), nil)

	seen := map[string]int{}
	for i := 0; i < 100; i++ {
		result, err := a.Generate("default", 10, equipment)
		require.NoError(t, err)
		grip := item.FindSlot(result.Items, "mod_pistol_grip")
		require.GreaterOrEqual(t, grip, 0)
		seen[result.Items[grip].Tpl]++
		assert.Equal(t, m4Tpl, result.Items[result.Root].Tpl)
	}
	assert.Positive(t, seen[gripTpl])
	assert.Positive(t, seen["grip-alt"])
	assert.Len(t, seen, 2)
}

func TestLoadChamberOverwrites(t *testing.T) {
	items := []item.Item{
		{ID: "root", Tpl: m4Tpl},
		{ID: "round", Tpl: "old-ammo", ParentID: "root", SlotID: item.SlotChamber, Upd: map[string]any{"StackObjectsCount": 5}},
	}

	out := loadChamber(items, 0, m855Tpl, &item.SequenceGenerator{})
	require.Len(t, out, 2)
	assert.Equal(t, m855Tpl, out[1].Tpl)
	assert.Equal(t, 1, out[1].StackCount())
	assert.Equal(t, "round", out[1].ID)
}

func TestStaticAmmo(t *testing.T) {
	policy, err := LoadStaticAmmo(filepath.Join("testdata", "static_ammo.yaml"))
	require.NoError(t, err)

	tpl, ok := policy.Ammo("any", 1, "Caliber556x45NATO")
	assert.True(t, ok)
	assert.Equal(t, "54527ac44bdc2d36668b4567", tpl)

	_, ok = policy.Ammo("any", 1, "Caliber9x19PARA")
	assert.False(t, ok)

	_, err = LoadStaticAmmo(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	t.Run("static policy drives generation", func(t *testing.T) {
		a := New(testStore(deepPreset(m4Tpl), preset.Ammo{}, nil), testCatalog(), policy)
		result, err := a.Generate("default", 50, equipment)
		require.NoError(t, err)
		assert.Equal(t, "54527ac44bdc2d36668b4567", result.AmmoTpl)
	})
}
