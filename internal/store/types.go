package store

import (
	"time"

	"loadout/internal/item"
)

type SpawnRecord struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Bundle    string      `json:"bundle"`
	Tier      string      `json:"tier"`
	Level     int         `json:"level"`
	Role      string      `json:"role"`
	Location  string      `json:"location"`
	Night     bool        `json:"night"`
	Elite     bool        `json:"elite"`
	WeaponTpl string      `json:"weapon_tpl"`
	AmmoTpl   string      `json:"ammo_tpl"`
	Items     []item.Item `json:"items,omitempty"`
}

// SpawnFilter narrows ListSpawns. Zero values match everything; Limit 0
// means DefaultLimit.
type SpawnFilter struct {
	Bundle    string
	EliteOnly bool
	Limit     int
}

const DefaultLimit = 50

func (f SpawnFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	return f.Limit
}

type TierCount struct {
	Bundle string `json:"bundle"`
	Tier   string `json:"tier"`
	Count  int    `json:"count"`
	Elite  int    `json:"elite"`
}
