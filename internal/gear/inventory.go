package gear

import "loadout/internal/item"

// Equipment slots of the bot inventory root.
const (
	SlotPockets      = "Pockets"
	SlotSecured      = "SecuredContainer"
	SlotEarpiece     = "Earpiece"
	SlotBackpack     = "Backpack"
	SlotFaceCover    = "FaceCover"
	SlotEyewear      = "Eyewear"
	SlotScabbard     = "Scabbard"
	SlotArmorVest    = "ArmorVest"
	SlotTacticalVest = "TacticalVest"
)

// Container and fixed gear templates.
const (
	EquipmentTpl       = "55d7217a4bdc2d86028b456d"
	StashTpl           = "566abbc34bdc2d92178b4576"
	QuestRaidItemsTpl  = "5963866286f7747bf429b572"
	QuestStashItemsTpl = "5963866b86f7747bfa1c4462"
	SortingTableTpl    = "602543c13fee350cd564d032"
	PocketsTpl         = "557ffd194bdc2d28148b457f"
	SecuredBossTpl     = "5c0a794586f77461c458f892"
	ThorTpl            = "60a283193cb70855c43a381d"
	ZabraloTpl         = "545cdb794bdc2d3a198b456a"
)

// Inventory is a bot inventory in the host's profile layout.
type Inventory struct {
	Items              []item.Item       `json:"items"`
	Equipment          string            `json:"equipment"`
	Stash              string            `json:"stash"`
	QuestRaidItems     string            `json:"questRaidItems"`
	QuestStashItems    string            `json:"questStashItems"`
	SortingTable       string            `json:"sortingTable"`
	HideoutAreaStashes map[string]string `json:"hideoutAreaStashes"`
	FastPanel          map[string]string `json:"fastPanel"`
}

// NewInventory creates the container skeleton every bot starts from.
func NewInventory(ids item.IDGenerator) *Inventory {
	inv := &Inventory{
		Equipment:          ids.NewID(),
		Stash:              ids.NewID(),
		QuestRaidItems:     ids.NewID(),
		QuestStashItems:    ids.NewID(),
		SortingTable:       ids.NewID(),
		HideoutAreaStashes: map[string]string{},
		FastPanel:          map[string]string{},
	}
	inv.Items = []item.Item{
		{ID: inv.Equipment, Tpl: EquipmentTpl},
		{ID: inv.Stash, Tpl: StashTpl},
		{ID: inv.QuestRaidItems, Tpl: QuestRaidItemsTpl},
		{ID: inv.QuestStashItems, Tpl: QuestStashItemsTpl},
		{ID: inv.SortingTable, Tpl: SortingTableTpl},
	}
	return inv
}

// Equipped returns the item in an equipment slot.
func (inv *Inventory) Equipped(slot string) (item.Item, bool) {
	for _, it := range inv.Items {
		if it.ParentID == inv.Equipment && it.SlotID == slot {
			return it, true
		}
	}
	return item.Item{}, false
}

// Children returns the direct children of an item.
func (inv *Inventory) Children(parentID string) []item.Item {
	var out []item.Item
	for _, it := range inv.Items {
		if it.ParentID == parentID {
			out = append(out, it)
		}
	}
	return out
}

// Templates lists every item template in the inventory.
func (inv *Inventory) Templates() []string {
	out := make([]string, 0, len(inv.Items))
	for _, it := range inv.Items {
		out = append(out, it.Tpl)
	}
	return out
}
