package catalog

import "github.com/KirkDiggler/rpg-caravan/internal/entities"

// EntryStage is the stage a freshly started chain plays first
const EntryStage = 0

// Chain ids of the built-in event chains
const (
	ChainCampfire = "campfire"
	ChainAmbush   = "ambush"
	ChainTrader   = "trader"
)

// OutcomeKind selects what a stage does besides narrating
type OutcomeKind string

const (
	// OutcomeStash adds (or removes) items from the party stash
	OutcomeStash OutcomeKind = "stash"
	// OutcomeCombat starts a balanced random encounter
	OutcomeCombat OutcomeKind = "combat"
)

// Outcome is one side effect of a stage
type Outcome struct {
	Kind   OutcomeKind
	ItemID string
	Delta  int
}

// Branch is a possible continuation of a chain
type Branch struct {
	Stage int
	// Delay is how many days after the current one the stage plays
	Delay int
}

// Stage is one step of an event chain. Text may use {0}..{3} for party
// members in a random order. When Next holds several branches one is picked
// uniformly.
type Stage struct {
	Text     string
	Outcomes []Outcome
	Next     []Branch

	// Requires lists what the stash must hold for the stage to play. When it
	// falls short the Otherwise stage plays in its place.
	Requires  []entities.Stack
	Otherwise int
}

// Chain is a named, branching sequence of stages
type Chain struct {
	ID     string
	Stages map[int]*Stage
}

// Stage returns the stage with id
func (c *Chain) Stage(id int) (*Stage, bool) {
	s, ok := c.Stages[id]
	return s, ok && s != nil
}

func defaultChains() []*Chain {
	return []*Chain{
		{
			ID: ChainCampfire,
			Stages: map[int]*Stage{
				0: {
					Text: "{0} chatted to {1} about where to find food.",
					Next: []Branch{{Stage: 1, Delay: 1}},
				},
				1: {
					Text:     "{0} and {1} foraged along the road and came back with rations.",
					Outcomes: []Outcome{{Kind: OutcomeStash, ItemID: ItemFood, Delta: 4}},
				},
			},
		},
		{
			ID: ChainAmbush,
			Stages: map[int]*Stage{
				0: {
					Text:     "The party is attacked by some enemies!",
					Outcomes: []Outcome{{Kind: OutcomeCombat}},
				},
			},
		},
		{
			ID: ChainTrader,
			Stages: map[int]*Stage{
				0: {
					Text: "{0} spots a trader's wagon on the horizon.",
					Next: []Branch{{Stage: 1, Delay: 1}, {Stage: 2, Delay: 1}},
				},
				1: {
					Text: "The trader swaps {0} a sack of rations for some gold.",
					Outcomes: []Outcome{
						{Kind: OutcomeStash, ItemID: ItemGold, Delta: -10},
						{Kind: OutcomeStash, ItemID: ItemFood, Delta: 6},
					},
					Next:      []Branch{{Stage: 3, Delay: 2}},
					Requires:  []entities.Stack{{ItemID: ItemGold, Count: 10}},
					Otherwise: 4,
				},
				2: {
					Text: "The wagon is gone by the time {0} reaches the crossroads.",
				},
				3: {
					Text: "The trader catches up with the caravan and presses a leather cap on {1}.",
					Outcomes: []Outcome{
						{Kind: OutcomeStash, ItemID: ItemGold, Delta: -5},
						{Kind: OutcomeStash, ItemID: "amr_head_leather", Delta: 1},
					},
					Requires:  []entities.Stack{{ItemID: ItemGold, Count: 5}},
					Otherwise: 5,
				},
				4: {
					Text: "The trader eyes {0}'s empty purse and rides on.",
				},
				5: {
					Text: "The trader catches up with the caravan but leaves when nobody can pay.",
				},
			},
		},
	}
}
