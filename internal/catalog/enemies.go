package catalog

import (
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// EnemyTemplate describes an enemy the balancer can spawn
type EnemyTemplate struct {
	ID        string
	Name      string
	MaxHealth int
	// Inventory is carried into combat and equipped automatically; whatever
	// is acquirable drops to the party on death
	Inventory []entities.Stack
}

// Encounter is a group of enemies tuned for a party value
type Encounter struct {
	ID      string
	Level   int
	Enemies []string
}

func defaultEnemies() []*EnemyTemplate {
	return []*EnemyTemplate{
		{
			ID: "rat", Name: "Rat", MaxHealth: 2,
			Inventory: []entities.Stack{{ItemID: ItemGold, Count: 5}, {ItemID: "wpn_claws", Count: 1}},
		},
		{
			ID: "giant_rat", Name: "Giant Rat", MaxHealth: 4,
			Inventory: []entities.Stack{{ItemID: ItemGold, Count: 25}, {ItemID: "wpn_claws", Count: 1}},
		},
		{
			ID: "wizard", Name: "Wizard", MaxHealth: 3,
			Inventory: []entities.Stack{
				{ItemID: ItemGold, Count: 5},
				{ItemID: "skill_consumable", Count: 1},
				{ItemID: "wpn_claws", Count: 1},
			},
		},
	}
}

func defaultEncounters() []*Encounter {
	return []*Encounter{
		{ID: "rat", Level: 0, Enemies: []string{"rat"}},
		{ID: "lone_rat", Level: 10, Enemies: []string{"rat"}},
		{ID: "rats", Level: 20, Enemies: []string{"rat", "rat"}},
		{ID: "rat_pack", Level: 30, Enemies: []string{"rat", "rat", "rat"}},
		{ID: "rat_spellcaster", Level: 30, Enemies: []string{"wizard", "rat"}},
		{ID: "rats_king", Level: 40, Enemies: []string{"giant_rat", "rat", "rat"}},
		{ID: "rat_kings", Level: 40, Enemies: []string{"giant_rat", "giant_rat"}},
		{ID: "rat_king_caster", Level: 40, Enemies: []string{"giant_rat", "wizard"}},
		{ID: "rats_king_casters", Level: 50, Enemies: []string{"giant_rat", "wizard", "wizard"}},
	}
}
