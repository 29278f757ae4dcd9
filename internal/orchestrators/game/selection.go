package game

import (
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// SelectionKind says what completing a selection does
type SelectionKind string

const (
	// SelectionAttack aims the awaited party member's attack
	SelectionAttack SelectionKind = "attack"
	// SelectionHeal applies a healing item
	SelectionHeal SelectionKind = "heal"
	// SelectionEquip hands an equippable item to a party member
	SelectionEquip SelectionKind = "equip"
)

// Candidate is one character a selection may pick
type Candidate struct {
	CharacterID string
	Name        string
	Health      int
	MaxHealth   int
	Eligible    bool
}

// PendingSelection is an open request for a target. While it is open every
// other mutating command is refused.
type PendingSelection struct {
	ID         string
	Kind       SelectionKind
	Prompt     string
	ActorID    string
	ItemID     string
	Amount     int
	Candidates []Candidate
}

func (p *PendingSelection) clone() *PendingSelection {
	if p == nil {
		return nil
	}
	out := *p
	out.Candidates = append([]Candidate(nil), p.Candidates...)
	return &out
}

func (p *PendingSelection) candidate(id string) (Candidate, bool) {
	for _, c := range p.Candidates {
		if c.CharacterID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

// livingCandidates lists every character, eligible only while alive
func livingCandidates(chars []*entities.Character) []Candidate {
	out := make([]Candidate, 0, len(chars))
	for _, c := range chars {
		out = append(out, Candidate{
			CharacterID: c.GetID(),
			Name:        c.Name(),
			Health:      c.Health(),
			MaxHealth:   c.MaxHealth(),
			Eligible:    c.IsAlive(),
		})
	}
	return out
}
