package entities

import (
	"github.com/iancoleman/orderedmap"
)

// Stack is an item id with a count
type Stack struct {
	ItemID string
	Count  int
}

// Change describes the outcome of Inventory.Modify
type Change struct {
	ItemID string
	Delta  int
	// Reported is the quantity to announce: the prior count when the update
	// removed the entry, the delta otherwise
	Reported int
	Applied  bool
}

// Gained reports whether the change added items
func (c Change) Gained() bool {
	return c.Delta > 0
}

// Inventory maps item ids to strictly positive counts. Iteration follows
// insertion order; a removed and re-added id moves to the end.
type Inventory struct {
	counts *orderedmap.OrderedMap
}

// NewInventory creates an inventory seeded with stacks. Seeding skips the
// acquirable check so enemy templates can carry their natural weapons.
func NewInventory(stacks ...Stack) *Inventory {
	inv := &Inventory{counts: orderedmap.New()}
	for _, s := range stacks {
		if s.Count <= 0 {
			continue
		}
		inv.counts.Set(s.ItemID, inv.Count(s.ItemID)+s.Count)
	}
	return inv
}

// Count returns how many of the item are held, 0 when absent
func (inv *Inventory) Count(itemID string) int {
	v, ok := inv.counts.Get(itemID)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// Has reports whether at least one of the item is held
func (inv *Inventory) Has(itemID string) bool {
	return inv.Count(itemID) > 0
}

// IDs returns the held item ids in iteration order
func (inv *Inventory) IDs() []string {
	keys := inv.counts.Keys()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Len returns the number of distinct items held
func (inv *Inventory) Len() int {
	return len(inv.counts.Keys())
}

// Stacks returns every entry in iteration order
func (inv *Inventory) Stacks() []Stack {
	ids := inv.IDs()
	out := make([]Stack, 0, len(ids))
	for _, id := range ids {
		out = append(out, Stack{ItemID: id, Count: inv.Count(id)})
	}
	return out
}

// Modify applies delta to the item's count. Non-acquirable items and a zero
// delta are no-ops. An entry whose count drops to zero or below is removed.
func (inv *Inventory) Modify(item *Item, delta int) Change {
	if item == nil || !item.Acquirable || delta == 0 {
		return Change{}
	}

	change := Change{
		ItemID:   item.ID,
		Delta:    delta,
		Reported: delta,
		Applied:  true,
	}

	_, exists := inv.counts.Get(item.ID)
	prior := inv.Count(item.ID)
	next := prior + delta
	if next <= 0 {
		inv.counts.Delete(item.ID)
		if exists {
			change.Reported = prior
		}
		return change
	}

	inv.counts.Set(item.ID, next)
	return change
}

// Clear removes every entry
func (inv *Inventory) Clear() {
	inv.counts = orderedmap.New()
}
