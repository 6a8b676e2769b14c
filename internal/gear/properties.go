package gear

import "loadout/internal/item"

// PropertyGenerator derives the upd properties a freshly placed item starts
// with.
type PropertyGenerator interface {
	Properties(tpl item.Template, role string) map[string]any
}

// DurabilityProperties gives repairable items full durability.
type DurabilityProperties struct{}

func (DurabilityProperties) Properties(tpl item.Template, _ string) map[string]any {
	if tpl.MaxDurability <= 0 {
		return nil
	}
	return map[string]any{
		"Repairable": map[string]any{
			"Durability":    tpl.MaxDurability,
			"MaxDurability": tpl.MaxDurability,
		},
	}
}
