// Package encounter picks and spawns enemy groups sized to the party
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-caravan/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-caravan/internal/catalog"
	"github.com/KirkDiggler/rpg-caravan/internal/engine"
	"github.com/KirkDiggler/rpg-caravan/internal/entities"
	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/random"
)

const (
	// LevelWindow is how far from the closest level an encounter may be
	// and still be a candidate
	LevelWindow = 5

	// itemValueWeight scales the stash's contribution to the party value.
	// Gear does not count yet.
	itemValueWeight = 0

	noLevel = -9999
)

// Service defines the interface for encounter operations
type Service interface {
	// ComputeValue rates the party's current strength
	ComputeValue(ctx context.Context, input *ComputeValueInput) (*ComputeValueOutput, error)

	// SelectEncounter picks an encounter whose level is close to a value
	SelectEncounter(ctx context.Context, input *SelectEncounterInput) (*SelectEncounterOutput, error)

	// Spawn instantiates an encounter's enemies in the world
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)

	// SpawnBalanced rates the party, picks an encounter and spawns it
	SpawnBalanced(ctx context.Context, input *SpawnBalancedInput) (*SpawnBalancedOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	World *engine.World
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.World == nil {
		vb.RequiredField("World")
	}

	return vb.Build()
}

type orchestrator struct {
	world *engine.World
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{world: cfg.World}, nil
}

// ComputeValue sums the health of every living party member
func (o *orchestrator) ComputeValue(ctx context.Context, input *ComputeValueInput) (*ComputeValueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	value := 0
	for _, c := range o.world.Living(entities.FactionParty) {
		value += c.Health()
	}
	value += itemValueWeight * o.world.Stash().Len()

	return &ComputeValueOutput{Value: value}, nil
}

// SelectEncounter finds the level closest to the value (the first one seen
// wins a tie) and picks uniformly among the encounters within LevelWindow
// of it
func (o *orchestrator) SelectEncounter(ctx context.Context, input *SelectEncounterInput) (*SelectEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounters := o.world.Catalog().Encounters()
	if len(encounters) == 0 {
		return nil, errors.FailedPrecondition("no encounters are defined")
	}

	closest := noLevel
	for _, enc := range encounters {
		if abs(enc.Level-input.Value) < abs(closest-input.Value) {
			closest = enc.Level
		}
	}

	var candidates []*catalog.Encounter
	for _, enc := range encounters {
		if abs(enc.Level-closest) <= LevelWindow {
			candidates = append(candidates, enc)
		}
	}

	chosen, _ := random.Pick(o.world.Random(), candidates)

	slog.Debug("Encounter selected",
		"value", input.Value,
		"closest_level", closest,
		"candidates", len(candidates),
		"encounter_id", chosen.ID,
	)

	return &SelectEncounterOutput{
		Encounter:    chosen,
		ClosestLevel: closest,
		Candidates:   candidates,
	}, nil
}

// Spawn creates the encounter's enemies, each seeded with its template's
// inventory and equipped from it
func (o *orchestrator) Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil || input.Encounter == nil {
		return nil, errors.InvalidArgument("encounter is required")
	}

	cat := o.world.Catalog()
	spawned := make([]*entities.Character, 0, len(input.Encounter.Enemies))
	for _, id := range input.Encounter.Enemies {
		tmpl, ok := cat.Enemy(id)
		if !ok {
			return nil, errors.NotFoundf("enemy %s not found", id)
		}

		inv := entities.NewInventory(tmpl.Inventory...)
		enemy, err := o.world.NewCharacter(tmpl.Name, entities.FactionEnemy, tmpl.MaxHealth, inv)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create enemy %s", id)
		}
		enemy.Equipment.EquipAuto(inv, cat)

		spawned = append(spawned, enemy)
	}

	for _, enemy := range spawned {
		o.world.AddEnemy(enemy)
	}

	slog.Info("Encounter spawned",
		"world_id", o.world.GetID(),
		"encounter_id", input.Encounter.ID,
		"enemy_count", len(spawned),
	)

	return &SpawnOutput{Enemies: spawned}, nil
}

// SpawnBalanced rates the party, picks an encounter and spawns it
func (o *orchestrator) SpawnBalanced(ctx context.Context, input *SpawnBalancedInput) (*SpawnBalancedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	value, err := o.ComputeValue(ctx, &ComputeValueInput{})
	if err != nil {
		return nil, err
	}

	selected, err := o.SelectEncounter(ctx, &SelectEncounterInput{Value: value.Value})
	if err != nil {
		return nil, err
	}

	spawned, err := o.Spawn(ctx, &SpawnInput{Encounter: selected.Encounter})
	if err != nil {
		return nil, err
	}

	return &SpawnBalancedOutput{
		Value:     value.Value,
		Encounter: selected.Encounter,
		Enemies:   spawned.Enemies,
	}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
