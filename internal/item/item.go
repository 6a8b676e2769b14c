package item

// Slot identifiers used by the weapon and gear assemblers.
const (
	SlotChamber    = "patron_in_weapon"
	SlotMagazine   = "mod_magazine"
	SlotCartridges = "cartridges"
	SlotNVG        = "mod_nvg"
	SlotEquipment  = "mod_equipment"
	SlotTactical   = "mod_tactical"
)

// Item is one node of an item graph as the host inventory stores it.
type Item struct {
	ID       string         `json:"_id" yaml:"_id"`
	Tpl      string         `json:"_tpl" yaml:"_tpl"`
	ParentID string         `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	SlotID   string         `json:"slotId,omitempty" yaml:"slotId,omitempty"`
	Location *int           `json:"location,omitempty" yaml:"location,omitempty"`
	Upd      map[string]any `json:"upd,omitempty" yaml:"upd,omitempty"`
}

// Clone returns a deep copy, including nested upd values.
func (i Item) Clone() Item {
	out := i
	if i.Location != nil {
		location := *i.Location
		out.Location = &location
	}
	if i.Upd != nil {
		out.Upd = cloneValue(i.Upd).(map[string]any)
	}
	return out
}

// SetStackCount replaces the stack count, keeping other properties.
func (i *Item) SetStackCount(count int) {
	if i.Upd == nil {
		i.Upd = make(map[string]any)
	}
	i.Upd["StackObjectsCount"] = count
}

// StackCount returns the stack count property, or 0 when absent.
func (i Item) StackCount() int {
	switch v := i.Upd["StackObjectsCount"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// SetToggled marks a togglable module as switched on.
func (i *Item) SetToggled(on bool) {
	if i.Upd == nil {
		i.Upd = make(map[string]any)
	}
	i.Upd["Togglable"] = map[string]any{"On": on}
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[key] = cloneValue(nested)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, nested := range v {
			out[i] = cloneValue(nested)
		}
		return out
	default:
		return v
	}
}
