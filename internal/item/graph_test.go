package item

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(depth int) []Item {
	items := []Item{{ID: "n0", Tpl: "root"}}
	for i := 1; i < depth; i++ {
		items = append(items, Item{ID: fmt.Sprintf("n%d", i), Tpl: "mod", ParentID: fmt.Sprintf("n%d", i-1), SlotID: "mod_slot"})
	}
	return items
}

func TestReidentifyKeepsParentLinks(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{name: "single root", items: []Item{{ID: "a", Tpl: "root"}}},
		{name: "deep chain", items: chain(12)},
		{
			name: "children before parents",
			items: []Item{
				{ID: "sight", Tpl: "sight", ParentID: "mount", SlotID: "mod_scope"},
				{ID: "mount", Tpl: "mount", ParentID: "rifle", SlotID: "mod_mount"},
				{ID: "rifle", Tpl: "rifle"},
				{ID: "mag", Tpl: "mag", ParentID: "rifle", SlotID: SlotMagazine},
			},
		},
		{
			name: "wide tree",
			items: []Item{
				{ID: "w", Tpl: "rifle"},
				{ID: "a", Tpl: "stock", ParentID: "w", SlotID: "mod_stock"},
				{ID: "b", Tpl: "grip", ParentID: "w", SlotID: "mod_pistol_grip"},
				{ID: "c", Tpl: "mag", ParentID: "w", SlotID: SlotMagazine},
				{ID: "d", Tpl: "pad", ParentID: "a", SlotID: "mod_stock"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Root(tt.items)
			require.NoError(t, err)
			Rehome(tt.items, root, "equipment", "FirstPrimaryWeapon")

			out := Reidentify(tt.items, &SequenceGenerator{Prefix: "new"})
			require.Len(t, out, len(tt.items))
			assert.NoError(t, CheckIntegrity(out, "equipment"))
			assert.Empty(t, DanglingParents(out, "equipment"))

			for i := range out {
				assert.NotEqual(t, tt.items[i].ID, out[i].ID)
				assert.Equal(t, tt.items[i].Tpl, out[i].Tpl)
				assert.Equal(t, tt.items[i].SlotID, out[i].SlotID)
			}
			assert.Equal(t, "equipment", out[root].ParentID)
		})
	}
}

func TestReidentifySurvivesIDCollisions(t *testing.T) {
	// The generator hands out ids that already exist in the graph.
	items := []Item{
		{ID: "x000001", Tpl: "rifle"},
		{ID: "x000002", Tpl: "stock", ParentID: "x000001"},
		{ID: "x000003", Tpl: "pad", ParentID: "x000002"},
	}
	out := Reidentify(items, &SequenceGenerator{Prefix: "x"})
	require.NoError(t, CheckIntegrity(out, ""))
	assert.Equal(t, out[0].ID, out[1].ParentID)
	assert.Equal(t, out[1].ID, out[2].ParentID)
}

func TestReidentifyDoesNotMutateInput(t *testing.T) {
	items := chain(3)
	items[1].SetStackCount(2)
	before := CloneAll(items)

	out := Reidentify(items, &SequenceGenerator{})
	out[1].SetStackCount(99)
	assert.Equal(t, before, items)
}

func TestRoot(t *testing.T) {
	_, err := Root(nil)
	assert.True(t, errors.Is(err, ErrEmptyGraph))

	_, err = Root([]Item{{ID: "a"}, {ID: "b"}})
	assert.True(t, errors.Is(err, ErrMultipleRoots))

	_, err = Root([]Item{{ID: "a", ParentID: "b"}, {ID: "b", ParentID: "a"}})
	assert.True(t, errors.Is(err, ErrNoRoot))

	root, err := Root([]Item{{ID: "child", ParentID: "r"}, {ID: "r"}})
	require.NoError(t, err)
	assert.Equal(t, 1, root)
}

func TestCheckIntegrityReportsDangling(t *testing.T) {
	items := []Item{{ID: "w", ParentID: "equipment"}, {ID: "m", ParentID: "gone"}}
	err := CheckIntegrity(items, "equipment")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
}

func TestCloneIsDeep(t *testing.T) {
	loc := 1
	original := Item{ID: "a", Location: &loc, Upd: map[string]any{"Repairable": map[string]any{"Durability": 50}}}
	copied := original.Clone()
	copied.Upd["Repairable"].(map[string]any)["Durability"] = 10
	*copied.Location = 5

	assert.Equal(t, 50, original.Upd["Repairable"].(map[string]any)["Durability"])
	assert.Equal(t, 1, *original.Location)
}

func TestFindSlot(t *testing.T) {
	items := []Item{{ID: "w"}, {ID: "m", SlotID: SlotMagazine}}
	assert.Equal(t, 1, FindSlot(items, SlotMagazine))
	assert.Equal(t, -1, FindSlot(items, SlotChamber))
}
