package helmet

import "loadout/internal/item"

type Placement struct {
	ID       string `json:"id"`
	Tpl      string `json:"tpl"`
	Name     string `json:"name"`
	Slot     string `json:"slot"`
	ParentID string `json:"parent_id,omitempty"`
}

// Recorder is a Putter that only remembers what was placed.
type Recorder struct {
	ids    item.IDGenerator
	Placed []Placement
}

func NewRecorder() *Recorder {
	return &Recorder{ids: &item.SequenceGenerator{Prefix: "part"}}
}

func (r *Recorder) PutGear(slot, tpl string) string {
	return r.put(tpl, slot, "")
}

func (r *Recorder) PutMod(tpl, slot, parentID string) string {
	return r.put(tpl, slot, parentID)
}

func (r *Recorder) put(tpl, slot, parentID string) string {
	id := r.ids.NewID()
	r.Placed = append(r.Placed, Placement{ID: id, Tpl: tpl, Name: Name(tpl), Slot: slot, ParentID: parentID})
	return id
}

// Templates lists the placed templates in placement order.
func (r *Recorder) Templates() []string {
	out := make([]string, 0, len(r.Placed))
	for _, p := range r.Placed {
		out = append(out, p.Tpl)
	}
	return out
}
