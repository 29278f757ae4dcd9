package engine

import (
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// MaxPartySize caps how many characters can travel with the caravan
const MaxPartySize = 4

// NoTurn is the turn index of a world that is not in combat
const NoTurn = -1

// Outcome is how the last combat ended
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// CombatState is the turn bookkeeping of the current fight
type CombatState struct {
	// Order is the turn order snapshot taken when combat started
	Order []*entities.Character
	// Index points at the acting character, NoTurn outside combat
	Index int
	// Round counts completed wraps of Order
	Round   int
	Outcome Outcome
}

// Active reports whether a fight is in progress
func (s *CombatState) Active() bool {
	return s.Index != NoTurn
}

// Current returns the character whose turn it is
func (s *CombatState) Current() *entities.Character {
	if !s.Active() || s.Index >= len(s.Order) {
		return nil
	}
	return s.Order[s.Index]
}

// Reset returns the state to out-of-combat, remembering outcome
func (s *CombatState) Reset(outcome Outcome) {
	s.Order = nil
	s.Index = NoTurn
	s.Round = 0
	s.Outcome = outcome
}
