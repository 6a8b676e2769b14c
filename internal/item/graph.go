package item

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGraph    = errors.New("item graph is empty")
	ErrNoRoot        = errors.New("item graph has no root")
	ErrMultipleRoots = errors.New("item graph has more than one root")
)

// CloneAll deep copies an item list so the result never aliases the input.
func CloneAll(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

// Root returns the index of the single node whose parent is not another node
// of the graph.
func Root(items []Item) (int, error) {
	if len(items) == 0 {
		return -1, ErrEmptyGraph
	}
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		ids[it.ID] = struct{}{}
	}
	root := -1
	for i, it := range items {
		if _, internal := ids[it.ParentID]; internal && it.ParentID != "" {
			continue
		}
		if root != -1 {
			return -1, ErrMultipleRoots
		}
		root = i
	}
	if root == -1 {
		return -1, ErrNoRoot
	}
	return root, nil
}

// Rehome attaches the graph root to a container slot.
func Rehome(items []Item, root int, parentID, slotID string) {
	items[root].ParentID = parentID
	items[root].SlotID = slotID
}

// Reidentify returns a copy of the graph in which every node carries a fresh id
// and every parent reference follows its parent's new id. Parent links are
// resolved by position before any id changes, so the result does not depend on
// node order or on collisions between old and new ids. References to ids outside
// the graph are kept as they are.
func Reidentify(items []Item, ids IDGenerator) []Item {
	index := make(map[string]int, len(items))
	for i, it := range items {
		if _, exists := index[it.ID]; !exists {
			index[it.ID] = i
		}
	}

	parents := make([]int, len(items))
	for i, it := range items {
		parents[i] = -1
		if p, ok := index[it.ParentID]; ok && it.ParentID != "" && p != i {
			parents[i] = p
		}
	}

	newIDs := make([]string, len(items))
	for i := range items {
		newIDs[i] = ids.NewID()
	}

	out := make([]Item, len(items))
	for i := range items {
		node := items[i].Clone()
		node.ID = newIDs[i]
		if parents[i] >= 0 {
			node.ParentID = newIDs[parents[i]]
		}
		out[i] = node
	}
	return out
}

// DanglingParents lists the nodes whose parent is neither the container id nor
// another node of the graph.
func DanglingParents(items []Item, containerID string) []Item {
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		ids[it.ID] = struct{}{}
	}
	var dangling []Item
	for _, it := range items {
		if it.ParentID == containerID {
			continue
		}
		if _, ok := ids[it.ParentID]; ok {
			continue
		}
		dangling = append(dangling, it)
	}
	return dangling
}

// CheckIntegrity returns an error naming the first dangling parent reference.
func CheckIntegrity(items []Item, containerID string) error {
	dangling := DanglingParents(items, containerID)
	if len(dangling) == 0 {
		return nil
	}
	return fmt.Errorf("item %s (%s) references missing parent %q", dangling[0].ID, dangling[0].Tpl, dangling[0].ParentID)
}

// FindSlot returns the index of the first node in the slot, or -1.
func FindSlot(items []Item, slotID string) int {
	for i, it := range items {
		if it.SlotID == slotID {
			return i
		}
	}
	return -1
}
