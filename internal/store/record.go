package store

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"loadout/internal/gear"
)

// NewSpawnRecord captures a generated loadout for the journal.
func NewSpawnRecord(l *gear.Loadout, now time.Time) SpawnRecord {
	rec := SpawnRecord{
		ID:        uuid.Must(uuid.NewV4()).String(),
		CreatedAt: now.UTC(),
		Bundle:    l.Bundle,
		Tier:      l.Tier,
		Level:     l.Level,
		Role:      l.Role,
		Location:  l.Raid.Location,
		Night:     l.Raid.Night,
		Elite:     l.Elite,
		AmmoTpl:   l.Weapon.AmmoTpl,
	}
	if len(l.Weapon.Items) > 0 {
		rec.WeaponTpl = l.Weapon.Items[l.Weapon.Root].Tpl
	}
	if l.Inventory != nil {
		rec.Items = l.Inventory.Items
	}
	return rec
}
