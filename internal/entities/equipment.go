package entities

import (
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
)

// Equipment binds every slot to an item. A slot with nothing equipped holds
// its default filler, never nil.
type Equipment struct {
	slots    map[Slot]*Item
	defaults map[Slot]*Item
}

// NewEquipment creates equipment with every slot holding its default filler.
// defaults must cover all five slots.
func NewEquipment(defaults map[Slot]*Item) (*Equipment, error) {
	e := &Equipment{
		slots:    make(map[Slot]*Item, len(AllSlots())),
		defaults: make(map[Slot]*Item, len(AllSlots())),
	}
	for _, slot := range AllSlots() {
		item, ok := defaults[slot]
		if !ok || item == nil {
			return nil, errors.InvalidArgumentf("no default filler for slot %s", slot)
		}
		e.defaults[slot] = item
		e.slots[slot] = item
	}
	return e, nil
}

// InSlot returns the item bound to slot
func (e *Equipment) InSlot(slot Slot) *Item {
	return e.slots[slot]
}

// IsDefault reports whether slot holds its filler
func (e *Equipment) IsDefault(slot Slot) bool {
	return e.slots[slot] == e.defaults[slot]
}

// TryEquip assigns item to its slots. Every non-filler item currently in
// slots (or in the item's own slots) is first torn down from all slots of its
// own slot-set, so removing one hand of a two-handed weapon frees both.
// A nil item only tears down. Non-equippable items are rejected.
func (e *Equipment) TryEquip(slots SlotSet, item *Item) bool {
	if item != nil && !item.IsEquippable() {
		return false
	}

	affected := slots
	if item != nil {
		affected = slots.Union(item.Slots)
	}

	var occupants []*Item
	for _, slot := range affected {
		if !slot.IsValid() || e.IsDefault(slot) {
			continue
		}
		occupants = append(occupants, e.slots[slot])
	}

	for _, occupant := range occupants {
		for _, slot := range occupant.Slots {
			if slot.IsValid() {
				e.slots[slot] = e.defaults[slot]
			}
		}
	}

	if item == nil {
		return true
	}

	for _, slot := range item.Slots {
		e.slots[slot] = item
	}
	return true
}

// Unequip tears down whatever occupies slots
func (e *Equipment) Unequip(slots SlotSet) {
	e.TryEquip(slots, nil)
}

// EquipAuto walks the inventory in iteration order and equips every
// equippable entry. It is greedy: later entries displace earlier ones that
// share a slot and no damage or rating comparison is made.
func (e *Equipment) EquipAuto(inv *Inventory, items ItemSource) {
	for _, id := range inv.IDs() {
		item, ok := items.Item(id)
		if !ok || !item.IsEquippable() {
			continue
		}
		e.TryEquip(item.Slots, item)
	}
}

// UniqueEquipped returns the distinct non-filler items in slot order
func (e *Equipment) UniqueEquipped() []*Item {
	var out []*Item
	seen := make(map[*Item]bool)
	for _, slot := range AllSlots() {
		if e.IsDefault(slot) {
			continue
		}
		item := e.slots[slot]
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// IsEquipped reports whether the item with itemID occupies any slot
func (e *Equipment) IsEquipped(itemID string) bool {
	for _, item := range e.UniqueEquipped() {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// Snapshot maps every slot to the id of the item it holds
func (e *Equipment) Snapshot() map[Slot]string {
	out := make(map[Slot]string, len(e.slots))
	for slot, item := range e.slots {
		out[slot] = item.ID
	}
	return out
}
