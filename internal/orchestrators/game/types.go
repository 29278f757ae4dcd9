package game

import (
	"github.com/KirkDiggler/rpg-caravan/internal/engine/combat"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// AdvanceDayInput defines the request for moving to the next day
type AdvanceDayInput struct{}

// AdvanceDayOutput defines the response for moving to the next day
type AdvanceDayOutput struct {
	Day int
	// InCombat is set when the day's events started a fight
	InCombat bool
}

// StartCombatInput defines the request for starting a balanced fight
type StartCombatInput struct{}

// StartCombatOutput defines the response for starting a balanced fight
type StartCombatOutput struct {
	EncounterID string
	Status      combat.Status
}

// ChooseCombatActionInput defines the request for acting on a party turn.
// An attack without TargetID opens a target selection.
type ChooseCombatActionInput struct {
	Action   combat.Action
	TargetID string
}

// ChooseCombatActionOutput defines the response for acting on a party turn
type ChooseCombatActionOutput struct {
	// Selection is set when the action waits for a target
	Selection *PendingSelection
	Status    combat.Status
}

// UseItemInput defines the request for using an item from the stash
type UseItemInput struct {
	ItemID string
}

// UseItemOutput defines the response for using an item from the stash
type UseItemOutput struct {
	Selection *PendingSelection
}

// EquipItemInput defines the request for equipping a stash item directly
type EquipItemInput struct {
	ItemID      string
	CharacterID string
}

// EquipItemOutput defines the response for equipping a stash item
type EquipItemOutput struct {
	Character *CharacterView
}

// ResolveSelectionInput defines the request for completing a selection
type ResolveSelectionInput struct {
	SelectionID string
	TargetID    string
}

// ResolveSelectionOutput defines the response for completing a selection
type ResolveSelectionOutput struct {
	Kind   SelectionKind
	Target *CharacterView
	Status combat.Status
}

// AddCharacterInput defines the request for adding a party member
type AddCharacterInput struct {
	Name string
	// MaxHealth defaults to DefaultMaxHealth
	MaxHealth int
}

// AddCharacterOutput defines the response for adding a party member
type AddCharacterOutput struct {
	Character *CharacterView
}

// RemoveCharacterInput defines the request for removing a party member
type RemoveCharacterInput struct {
	CharacterID string
}

// RemoveCharacterOutput defines the response for removing a party member
type RemoveCharacterOutput struct{}

// GetRosterInput defines the request for the roster
type GetRosterInput struct{}

// GetRosterOutput defines the response for the roster
type GetRosterOutput struct {
	Day      int
	InCombat bool
	Party    []*CharacterView
	Enemies  []*CharacterView
}

// GetCharacterInput defines the request for one character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for one character
type GetCharacterOutput struct {
	Character *CharacterView
}

// GetInventoryInput defines the request for an inventory. An empty
// CharacterID means the party stash.
type GetInventoryInput struct {
	CharacterID string
}

// GetInventoryOutput defines the response for an inventory
type GetInventoryOutput struct {
	Items []*StackView
}

// GetCombatStatusInput defines the request for the combat status
type GetCombatStatusInput struct{}

// GetCombatStatusOutput defines the response for the combat status
type GetCombatStatusOutput struct {
	Status combat.Status
}

// GetPendingSelectionInput defines the request for the open selection
type GetPendingSelectionInput struct{}

// GetPendingSelectionOutput defines the response for the open selection
type GetPendingSelectionOutput struct {
	// Selection is nil when nothing is pending
	Selection *PendingSelection
}

// EffectView is a held status effect
type EffectView struct {
	ID   string
	Name string
}

// StackView is an inventory entry
type StackView struct {
	ItemID   string
	Name     string
	Count    int
	Equipped bool
	Usable   bool
}

// CharacterView is a read-only snapshot of a character
type CharacterView struct {
	ID        string
	Name      string
	Faction   entities.Faction
	Health    int
	MaxHealth int
	Alive     bool
	Effects   []EffectView
	Equipped  map[entities.Slot]string
	Inventory []*StackView
}
