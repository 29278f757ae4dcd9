package entities

// Slot is a named equipment attachment point
type Slot string

// Define all available equipment slots
const (
	SlotMain Slot = "main"
	SlotOff  Slot = "off"
	SlotHead Slot = "head"
	SlotBody Slot = "body"
	SlotLegs Slot = "legs"
)

// String returns the string representation of the slot
func (s Slot) String() string {
	return string(s)
}

// IsValid checks if the slot is one of the five equipment slots
func (s Slot) IsValid() bool {
	switch s {
	case SlotMain, SlotOff, SlotHead, SlotBody, SlotLegs:
		return true
	default:
		return false
	}
}

// AllSlots returns every slot in display order
func AllSlots() []Slot {
	return []Slot{
		SlotMain,
		SlotOff,
		SlotHead,
		SlotBody,
		SlotLegs,
	}
}

// SlotFromString converts a string to a Slot.
// Returns the slot and true if valid, empty slot and false if invalid
func SlotFromString(s string) (Slot, bool) {
	slot := Slot(s)
	if slot.IsValid() {
		return slot, true
	}
	return "", false
}

// SlotSet is the set of slots an equippable item occupies at once. A
// two-handed weapon spans main and off.
type SlotSet []Slot

// Contains reports whether slot is part of the set
func (ss SlotSet) Contains(slot Slot) bool {
	for _, s := range ss {
		if s == slot {
			return true
		}
	}
	return false
}

// Union returns the slots of ss followed by any slot of other not already
// present
func (ss SlotSet) Union(other SlotSet) SlotSet {
	out := make(SlotSet, 0, len(ss)+len(other))
	out = append(out, ss...)
	for _, s := range other {
		if !out.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}
