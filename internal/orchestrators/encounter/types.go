package encounter

import (
	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
)

// ComputeValueInput defines the request for rating the party
type ComputeValueInput struct{}

// ComputeValueOutput defines the response for rating the party
type ComputeValueOutput struct {
	Value int
}

// SelectEncounterInput defines the request for picking an encounter
type SelectEncounterInput struct {
	Value int
}

// SelectEncounterOutput defines the response for picking an encounter
type SelectEncounterOutput struct {
	Encounter *catalog.Encounter
	// ClosestLevel is the level the candidates were gathered around
	ClosestLevel int
	Candidates   []*catalog.Encounter
}

// SpawnInput defines the request for instantiating an encounter
type SpawnInput struct {
	Encounter *catalog.Encounter
}

// SpawnOutput defines the response for instantiating an encounter
type SpawnOutput struct {
	Enemies []*entities.Character
}

// SpawnBalancedInput defines the request for rating, picking and spawning
// in one go
type SpawnBalancedInput struct{}

// SpawnBalancedOutput defines the response for SpawnBalanced
type SpawnBalancedOutput struct {
	Value     int
	Encounter *catalog.Encounter
	Enemies   []*entities.Character
}
