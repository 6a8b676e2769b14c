package item

// FillMagazine returns the magazine followed by cartridge stacks of ammoTpl up
// to the magazine capacity. Stacks are capped at the ammo stack size when the
// catalog knows it.
func FillMagazine(magazine Item, magazineTpl Template, ammo Template, ids IDGenerator) []Item {
	out := []Item{magazine}
	remaining := magazineTpl.MagazineCapacity
	stackSize := ammo.StackMaxSize
	if stackSize <= 0 {
		stackSize = remaining
	}

	for location := 0; remaining > 0; location++ {
		count := min(remaining, stackSize)
		loc := location
		cartridges := Item{
			ID:       ids.NewID(),
			Tpl:      ammo.ID,
			ParentID: magazine.ID,
			SlotID:   SlotCartridges,
			Location: &loc,
		}
		cartridges.SetStackCount(count)
		out = append(out, cartridges)
		remaining -= count
	}
	return out
}
