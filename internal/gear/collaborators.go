package gear

import (
	"fmt"

	"go.uber.org/zap"

	"loadout/internal/item"
	"loadout/internal/weapon"
)

// MagazineStocker adds spare magazines for the generated weapon.
type MagazineStocker interface {
	AddMagazines(inv *Inventory, w weapon.Result, role string)
}

// LootGenerator fills containers with loot once the gear is in place.
type LootGenerator interface {
	GenerateLoot(inv *Inventory, req LootRequest)
}

type LootRequest struct {
	SessionID string
	Role      string
	Level     int
	// BackpackLootDisabled is set when another integration loots for the
	// bot and its backpack must start empty.
	BackpackLootDisabled bool
}

type NopStocker struct{}

func (NopStocker) AddMagazines(*Inventory, weapon.Result, string) {}

type NopLoot struct{}

func (NopLoot) GenerateLoot(*Inventory, LootRequest) {}

const pocketSlots = 4

// PocketMagazines puts loaded copies of the weapon's magazine into the
// pocket slots, at most one per pocket.
type PocketMagazines struct {
	Count   int
	Catalog item.Catalog
	IDs     item.IDGenerator
	Logger  *zap.Logger
}

func (s PocketMagazines) AddMagazines(inv *Inventory, w weapon.Result, _ string) {
	if !w.Loaded() || s.Count <= 0 {
		return
	}
	mag := item.FindSlot(w.Items, item.SlotMagazine)
	if mag < 0 {
		return
	}
	pockets, ok := inv.Equipped(SlotPockets)
	if !ok {
		return
	}
	magazineTpl, ok := s.Catalog.Template(w.Items[mag].Tpl)
	if !ok {
		if s.Logger != nil {
			s.Logger.Warn("spare magazine template not found", zap.String("tpl", w.Items[mag].Tpl))
		}
		return
	}
	ammo, ok := s.Catalog.Template(w.AmmoTpl)
	if !ok {
		ammo = item.Template{ID: w.AmmoTpl}
	}

	for i := 0; i < min(s.Count, pocketSlots); i++ {
		spare := item.Item{
			ID:       s.IDs.NewID(),
			Tpl:      magazineTpl.ID,
			ParentID: pockets.ID,
			SlotID:   fmt.Sprintf("pocket%d", i+1),
		}
		inv.Items = append(inv.Items, item.FillMagazine(spare, magazineTpl, ammo, s.IDs)...)
	}
}
